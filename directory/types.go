package directory

import (
	"github.com/goliatone/go-sitekit/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Company is a directory entry: a placement agent, agency or similar listed
// organization. Read-only here; authored elsewhere.
type Company struct {
	bun.BaseModel `bun:"table:companies,alias:co"`

	ID              uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Name            string        `bun:"name,notnull" json:"name"`
	DisplayName     *string       `bun:"display_name" json:"display_name,omitempty"`
	Slug            string        `bun:"slug,notnull" json:"slug"`
	Description     *string       `bun:"description" json:"description,omitempty"`
	LogoURL         *string       `bun:"logo_url" json:"logo_url,omitempty"`
	Headquarters    *string       `bun:"headquarters" json:"headquarters,omitempty"`
	Specializations []string      `bun:"specializations,type:jsonb" json:"specializations,omitempty"`
	GlobalRank      *int          `bun:"global_rank" json:"global_rank,omitempty"`
	CompanyType     string        `bun:"company_type,notnull" json:"company_type"`
	Status          domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	PrimaryCountry  string        `bun:"primary_country" json:"primary_country,omitempty"`
	PrimaryRegion   string        `bun:"primary_region" json:"primary_region,omitempty"`
}

// Display returns the preferred display name, falling back to the legal name.
func (c *Company) Display() string {
	if c == nil {
		return ""
	}
	if c.DisplayName != nil && *c.DisplayName != "" {
		return *c.DisplayName
	}
	return c.Name
}
