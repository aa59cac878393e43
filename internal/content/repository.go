package content

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitekit/content"
)

// NewArticleRepository builds the bun-backed repository for articles. Slug is
// the identifier column because it is the only externally addressable key.
func NewArticleRepository(db *bun.DB) repository.Repository[*content.Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.Article]{
		NewRecord: func() *content.Article { return &content.Article{} },
		GetID: func(a *content.Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *content.Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(a *content.Article) string {
			if a == nil {
				return ""
			}
			return a.Slug
		},
	})
}
