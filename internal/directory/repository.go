package directory

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitekit/directory"
)

// NewCompanyRepository builds the bun-backed repository for directory entries.
func NewCompanyRepository(db *bun.DB) repository.Repository[*directory.Company] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*directory.Company]{
		NewRecord: func() *directory.Company { return &directory.Company{} },
		GetID: func(c *directory.Company) uuid.UUID {
			return c.ID
		},
		SetID: func(c *directory.Company, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(c *directory.Company) string {
			if c == nil {
				return ""
			}
			return c.Slug
		},
	})
}
