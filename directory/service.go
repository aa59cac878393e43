package directory

import (
	"context"
	"sort"
	"strings"
)

// RegionSelector narrows a directory listing to one country or one region.
// Exactly one field must be set; both matches are strict equality.
type RegionSelector struct {
	Country string
	Region  string
}

// Validate enforces the mutually exclusive selector contract.
func (s RegionSelector) Validate() error {
	country := strings.TrimSpace(s.Country) != ""
	region := strings.TrimSpace(s.Region) != ""
	if country == region {
		return ErrSelectorInvalid
	}
	return nil
}

// Filter resolves directory entries. Implementations always apply the
// (company_type, status=published) pre-filter before any selector predicate.
type Filter interface {
	// ListByRegion returns the matching subset in stable rank order. An
	// empty result is valid, not an error.
	ListByRegion(ctx context.Context, sel RegionSelector) ([]*Company, error)

	// GetBySlug resolves a single published entry for detail pages. Absence
	// yields an error satisfying errors.Is(err, ErrNotFound).
	GetBySlug(ctx context.Context, slug string) (*Company, error)
}

// Region names an addressable directory page: a URL slug, display copy and
// the selector it expands to.
type Region struct {
	Slug        string
	Name        string
	Description string
	Selector    RegionSelector
}

// DefaultRegions is the closed route table for regional directory pages.
// Brands can override it through configuration; the shape stays the same.
func DefaultRegions() []Region {
	return []Region{
		{Slug: "us", Name: "United States", Selector: RegionSelector{Country: "United States"}},
		{Slug: "uk", Name: "United Kingdom", Selector: RegionSelector{Country: "United Kingdom"}},
		{Slug: "singapore", Name: "Singapore", Selector: RegionSelector{Country: "Singapore"}},
		{Slug: "europe", Name: "Europe", Selector: RegionSelector{Region: "Europe"}},
		{Slug: "north-america", Name: "North America", Selector: RegionSelector{Region: "North America"}},
		{Slug: "latin-america", Name: "Latin America", Selector: RegionSelector{Region: "Latin America"}},
		{Slug: "asia-pacific", Name: "Asia Pacific", Selector: RegionSelector{Region: "Asia Pacific"}},
		{Slug: "middle-east", Name: "Middle East", Selector: RegionSelector{Region: "Middle East"}},
		{Slug: "africa", Name: "Africa", Selector: RegionSelector{Region: "Africa"}},
	}
}

// FindRegion resolves a region slug against a route table.
func FindRegion(regions []Region, slug string) (Region, bool) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	for _, region := range regions {
		if region.Slug == slug {
			return region, true
		}
	}
	return Region{}, false
}

// SortEntries orders companies the way every directory surface renders them:
// ranked entries first ascending by rank, unranked entries after, with name
// as the total tiebreaker. The ordering is stable and total so identical
// data always yields identical output.
func SortEntries(entries []*Company) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := entries[i].GlobalRank, entries[j].GlobalRank
		switch {
		case ri != nil && rj != nil:
			if *ri != *rj {
				return *ri < *rj
			}
		case ri != nil:
			return true
		case rj != nil:
			return false
		}
		return entries[i].Name < entries[j].Name
	})
}
