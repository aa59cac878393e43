package content

import (
	"time"

	"github.com/goliatone/go-sitekit/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Entity kinds understood by the retrieval tiers. The gateway exposes one
// endpoint per kind and the direct store filters on the same value.
const (
	KindArticle = "article"
	KindGuide   = "guide"
	KindListing = "listing"
)

// Article is the canonical record for CMS-authored content entries: articles,
// country guides and similar long-form pages. The engine never mutates these;
// they are created and edited by an external authoring system.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID              uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Brand           string         `bun:"brand,notnull" json:"brand"`
	Kind            string         `bun:"kind,notnull,default:'article'" json:"kind"`
	Slug            string         `bun:"slug,notnull" json:"slug"`
	Title           string         `bun:"title,notnull" json:"title"`
	Excerpt         *string        `bun:"excerpt" json:"excerpt,omitempty"`
	Body            *string        `bun:"body" json:"body,omitempty"`
	Mode            string         `bun:"mode" json:"mode,omitempty"`
	Country         *string        `bun:"country" json:"country,omitempty"`
	FlagEmoji       *string        `bun:"flag_emoji" json:"flag_emoji,omitempty"`
	HeroAssetURL    *string        `bun:"hero_asset_url" json:"hero_asset_url,omitempty"`
	HeroAssetAlt    *string        `bun:"hero_asset_alt" json:"hero_asset_alt,omitempty"`
	VideoPlaybackID *string        `bun:"video_playback_id" json:"video_playback_id,omitempty"`
	WordCount       *int           `bun:"word_count" json:"word_count,omitempty"`
	Status          domain.Status  `bun:"status,notnull,default:'draft'" json:"status"`
	PublishedAt     *time.Time     `bun:"published_at,nullzero" json:"published_at,omitempty"`
	Payload         map[string]any `bun:"payload,type:jsonb" json:"payload,omitempty"`
}

// IsPublished reports whether the article is publicly visible.
func (a *Article) IsPublished() bool {
	return a != nil && a.Status.IsPublished()
}

// ReadTime estimates reading time in minutes from the word count, defaulting
// to five minutes when the count is unknown.
func (a *Article) ReadTime() int {
	if a == nil || a.WordCount == nil || *a.WordCount <= 0 {
		return 5
	}
	minutes := (*a.WordCount + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ListQuery narrows List calls. Zero-valued fields are ignored; Limit <= 0
// means no limit.
type ListQuery struct {
	Kind    string
	Mode    string
	Country string
	Limit   int
}
