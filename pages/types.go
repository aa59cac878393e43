package pages

import (
	"errors"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/directory"
	"github.com/goliatone/go-sitekit/sections"
	"github.com/goliatone/go-sitekit/themes"
)

// ErrNotFound marks a page whose backing entity or region does not exist.
// Callers render their 404 surface on errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("pages: not found")

// Meta is the byline block rendered under a page title.
type Meta struct {
	// PublishedOn is the human-readable publish date, empty when unknown.
	PublishedOn string
	WordCount   int
	ReadTimeMin int
}

// Related is a compact pointer to another entity of the same kind.
type Related struct {
	Slug    string
	Title   string
	Excerpt string
}

// ArticlePage is the fully composed view model for a single article.
type ArticlePage struct {
	Brand    themes.BrandConfig
	Theme    themes.ThemeTokens
	Slug     string
	Title    string
	Excerpt  string
	Meta     Meta
	Sections []sections.Rendered
	Related  []Related
}

// GuidePage is the composed view model for a country guide.
type GuidePage struct {
	Brand    themes.BrandConfig
	Theme    themes.ThemeTokens
	Slug     string
	Title    string
	Excerpt  string
	Country  string
	Meta     Meta
	Sections []sections.Rendered
	Sources  []content.Source
}

// DirectoryPage is the composed view model for a regional directory listing.
type DirectoryPage struct {
	Brand    themes.BrandConfig
	Theme    themes.ThemeTokens
	Region   directory.Region
	Sections []sections.Rendered

	// Building is set when the region resolved but holds no published
	// entries yet; the shell renders the in-progress state instead of an
	// empty grid.
	Building bool
}

// HomePage is the composed view model for the brand landing page.
type HomePage struct {
	Brand    themes.BrandConfig
	Theme    themes.ThemeTokens
	Articles []Related
	Guides   []Related
	Regions  []directory.Region
}

// Manifest enumerates every statically renderable path for a brand, grouped
// by page family. Slugs that fail validation are excluded rather than
// emitted as broken routes.
type Manifest struct {
	Articles []string `json:"articles"`
	Guides   []string `json:"guides"`
	Regions  []string `json:"regions"`
}
