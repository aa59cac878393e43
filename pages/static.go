package pages

import (
	"context"

	"github.com/goliatone/go-sitekit/content"
)

// StaticPaths enumerates every path the static build should render: all
// published article and guide slugs plus the regional directory slugs. Slugs
// that fail validation are skipped with a warning so one bad record cannot
// break the whole build.
func (c *Composer) StaticPaths(ctx context.Context) (Manifest, error) {
	manifest := Manifest{
		Articles: []string{},
		Guides:   []string{},
		Regions:  make([]string, 0, len(c.regions)),
	}

	articles, err := c.retriever.List(ctx, content.ListQuery{Kind: content.KindArticle})
	if err != nil {
		return manifest, err
	}
	manifest.Articles = c.collectSlugs(articles)

	guides, err := c.retriever.List(ctx, content.ListQuery{Kind: content.KindGuide})
	if err != nil {
		return manifest, err
	}
	manifest.Guides = c.collectSlugs(guides)

	for _, region := range c.regions {
		manifest.Regions = append(manifest.Regions, region.Slug)
	}
	return manifest, nil
}

func (c *Composer) collectSlugs(articles []*content.Article) []string {
	slugs := make([]string, 0, len(articles))
	for _, article := range articles {
		if !content.IsValidSlug(article.Slug) {
			c.log.Warn("skipping entity with invalid slug", "kind", article.Kind, "slug", article.Slug)
			continue
		}
		slugs = append(slugs, article.Slug)
	}
	return slugs
}
