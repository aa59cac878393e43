package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/directory"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/media"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
	"github.com/goliatone/go-sitekit/sections"
	"github.com/goliatone/go-sitekit/themes"
)

const (
	relatedCount  = 3
	homeListLimit = 6
	heroThumbTime = 10
	dateLayout    = "January 2, 2006"
)

// Composer orchestrates a page build: retrieve, normalize, resolve media,
// expand sections, render. It holds no per-request state and is safe for
// concurrent use.
type Composer struct {
	brand     themes.BrandConfig
	theme     themes.ThemeTokens
	retriever content.Retriever
	filter    directory.Filter
	media     *media.Resolver
	renderer  *sections.Renderer
	regions   []directory.Region
	log       interfaces.Logger
}

// NewComposer validates the brand configuration and resolves its theme before
// any page can be composed. A misconfigured brand fails loud here, at startup,
// not at request time.
func NewComposer(brand themes.BrandConfig, retriever content.Retriever, filter directory.Filter, provider interfaces.LoggerProvider) (*Composer, error) {
	if err := brand.Validate(); err != nil {
		return nil, fmt.Errorf("pages: invalid brand config: %w", err)
	}
	theme, err := themes.Resolve(brand.Accent)
	if err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}

	return &Composer{
		brand:     brand,
		theme:     theme,
		retriever: retriever,
		filter:    filter,
		media:     media.NewResolver(),
		renderer:  sections.NewRenderer(),
		regions:   directory.DefaultRegions(),
		log:       logging.ModuleLogger(provider, "sitekit.pages"),
	}, nil
}

// WithRegions overrides the default regional route table.
func (c *Composer) WithRegions(regions []directory.Region) *Composer {
	if len(regions) > 0 {
		c.regions = regions
	}
	return c
}

// Regions returns the active regional route table.
func (c *Composer) Regions() []directory.Region {
	return c.regions
}

// Article composes a single article page with its related list.
func (c *Composer) Article(ctx context.Context, slug string) (*ArticlePage, error) {
	article, related, err := c.retriever.GetWithRelated(ctx, content.KindArticle, slug, relatedCount)
	if err != nil {
		return nil, c.mapContentError(err, content.KindArticle, slug)
	}

	return &ArticlePage{
		Brand:    c.brand,
		Theme:    c.theme,
		Slug:     article.Slug,
		Title:    article.Title,
		Excerpt:  deref(article.Excerpt),
		Meta:     c.metaFor(article),
		Sections: c.composeSections(article),
		Related:  toRelated(related),
	}, nil
}

// Guide composes a country guide page.
func (c *Composer) Guide(ctx context.Context, slug string) (*GuidePage, error) {
	article, err := c.retriever.Get(ctx, content.KindGuide, slug)
	if err != nil {
		return nil, c.mapContentError(err, content.KindGuide, slug)
	}

	payload := content.NormalizePayload(article.Payload)
	return &GuidePage{
		Brand:    c.brand,
		Theme:    c.theme,
		Slug:     article.Slug,
		Title:    article.Title,
		Excerpt:  deref(article.Excerpt),
		Country:  deref(article.Country),
		Meta:     c.metaFor(article),
		Sections: c.composeSections(article),
		Sources:  payload.Sources,
	}, nil
}

// Directory composes a regional directory page. An empty region is a valid
// page in the building state, not an error.
func (c *Composer) Directory(ctx context.Context, regionSlug string) (*DirectoryPage, error) {
	region, ok := directory.FindRegion(c.regions, regionSlug)
	if !ok {
		return nil, fmt.Errorf("%w: region %q", ErrNotFound, regionSlug)
	}

	entries, err := c.filter.ListByRegion(ctx, region.Selector)
	if err != nil {
		return nil, fmt.Errorf("pages: directory %q: %w", regionSlug, err)
	}

	page := &DirectoryPage{
		Brand:  c.brand,
		Theme:  c.theme,
		Region: region,
	}
	if len(entries) == 0 {
		page.Building = true
		return page, nil
	}

	page.Sections = c.renderer.Render([]sections.Section{
		{Kind: sections.KindDirectoryGrid, Entries: entries},
	}, c.theme)
	return page, nil
}

// Home composes the brand landing page from the most recent articles and
// guides. List failures degrade to empty rails, never a broken landing page.
func (c *Composer) Home(ctx context.Context) (*HomePage, error) {
	articles, err := c.retriever.List(ctx, content.ListQuery{Kind: content.KindArticle, Limit: homeListLimit})
	if err != nil {
		c.log.Warn("home article rail unavailable", "error", err)
		articles = nil
	}
	guides, err := c.retriever.List(ctx, content.ListQuery{Kind: content.KindGuide, Limit: homeListLimit})
	if err != nil {
		c.log.Warn("home guide rail unavailable", "error", err)
		guides = nil
	}

	return &HomePage{
		Brand:    c.brand,
		Theme:    c.theme,
		Articles: toRelated(articles),
		Guides:   toRelated(guides),
		Regions:  c.regions,
	}, nil
}

// composeSections builds the ordered section list for an entity: hero first,
// the markdown body, then the payload-driven sections.
func (c *Composer) composeSections(article *content.Article) []sections.Rendered {
	payload := content.NormalizePayload(article.Payload)

	list := make([]sections.Section, 0, 8)
	list = append(list, sections.Section{Kind: sections.KindHero, Hero: c.heroFor(article)})
	if body := deref(article.Body); body != "" {
		list = append(list, sections.Section{Kind: sections.KindFreeText, Text: body})
	}
	list = append(list, sections.FromPayload(payload)...)

	return c.renderer.Render(list, c.theme)
}

func (c *Composer) heroFor(article *content.Article) *sections.Hero {
	var video *media.VideoRef
	if id := deref(article.VideoPlaybackID); id != "" {
		video = &media.VideoRef{PlaybackID: id}
	}
	var image *media.ImageRef
	if url := deref(article.HeroAssetURL); url != "" {
		image = &media.ImageRef{URL: url, Alt: deref(article.HeroAssetAlt)}
	}

	badge := article.Mode
	if badge == "" {
		badge = article.Kind
	}
	return &sections.Hero{
		Title:      article.Title,
		BadgeLabel: badge,
		FlagEmoji:  deref(article.FlagEmoji),
		Media:      c.media.Resolve(video, image, heroThumbTime),
	}
}

func (c *Composer) metaFor(article *content.Article) Meta {
	meta := Meta{ReadTimeMin: article.ReadTime()}
	if article.WordCount != nil {
		meta.WordCount = *article.WordCount
	}
	if article.PublishedAt != nil {
		meta.PublishedOn = article.PublishedAt.Format(dateLayout)
	}
	return meta
}

func (c *Composer) mapContentError(err error, kind, slug string) error {
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrSlugRequired) {
		return fmt.Errorf("%w: %s %q", ErrNotFound, kind, slug)
	}
	return fmt.Errorf("pages: %s %q: %w", kind, slug, err)
}

func toRelated(articles []*content.Article) []Related {
	out := make([]Related, 0, len(articles))
	for _, article := range articles {
		out = append(out, Related{
			Slug:    article.Slug,
			Title:   article.Title,
			Excerpt: deref(article.Excerpt),
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
