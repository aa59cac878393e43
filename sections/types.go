package sections

import (
	"html/template"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/directory"
	"github.com/goliatone/go-sitekit/media"
	"github.com/goliatone/go-sitekit/themes"
)

// Kind discriminates the closed set of section variants a page can carry.
type Kind string

const (
	KindHero          Kind = "hero"
	KindFreeText      Kind = "free-text"
	KindFAQ           Kind = "faq"
	KindTimeline      Kind = "timeline"
	KindCallouts      Kind = "callouts"
	KindStatHighlight Kind = "stat-highlight"
	KindGuideSection  Kind = "guide-section"
	KindDirectoryGrid Kind = "directory-grid"
)

// Hero is the page header block: title, badge, and the resolved media source.
type Hero struct {
	Title      string
	BadgeLabel string
	FlagEmoji  string
	Media      media.Resolved
}

// Section is a tagged variant: Kind selects which single field below is
// meaningful. Unknown kinds and empty variants are skipped by the renderer,
// never an error.
type Section struct {
	Kind Kind

	Hero     *Hero
	Text     string
	FAQ      []content.FaqEntry
	Timeline []content.TimelineItem
	Callouts []content.Callout
	Stat     *content.StatHighlight
	Guide    *content.GuideSection
	Entries  []*directory.Company
}

// Item is one row of a rendered list section: an FAQ pair, a timeline step,
// a callout, or a directory card.
type Item struct {
	Label string
	Title string
	Body  string
	URL   string
	Meta  string
}

// Rendered is the final per-section view model handed to the page shell.
type Rendered struct {
	Kind  Kind
	Title string
	Body  template.HTML
	Items []Item
	Stat  *content.StatHighlight
	Hero  *Hero

	// Placeholder is set on hero sections whose media resolved to none; the
	// shell renders the themed gradient instead of an empty media region.
	Placeholder string

	Theme themes.ThemeTokens
}
