package directory

import (
	"context"
	"sync"

	"github.com/goliatone/go-sitekit/directory"
)

// MemoryFilter is an in-memory directory source for scaffolding and tests. It
// applies the same pre-filter and ordering contract as the bun filter.
type MemoryFilter struct {
	mu          sync.RWMutex
	companyType string
	companies   []*directory.Company
}

// NewMemoryFilter creates an empty in-memory filter for a company type.
func NewMemoryFilter(companyType string) *MemoryFilter {
	if companyType == "" {
		companyType = DefaultCompanyType
	}
	return &MemoryFilter{companyType: companyType}
}

var _ directory.Filter = (*MemoryFilter)(nil)

// Put inserts a company.
func (m *MemoryFilter) Put(company *directory.Company) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *company
	m.companies = append(m.companies, &copied)
}

// ListByRegion returns published entries matching the selector in rank order.
func (m *MemoryFilter) ListByRegion(_ context.Context, sel directory.RegionSelector) ([]*directory.Company, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*directory.Company, 0, len(m.companies))
	for _, company := range m.companies {
		if company.CompanyType != m.companyType || !company.Status.IsPublished() {
			continue
		}
		if sel.Country != "" && company.PrimaryCountry != sel.Country {
			continue
		}
		if sel.Region != "" && company.PrimaryRegion != sel.Region {
			continue
		}
		copied := *company
		matched = append(matched, &copied)
	}

	directory.SortEntries(matched)
	return matched, nil
}

// GetBySlug resolves a single published entry by slug.
func (m *MemoryFilter) GetBySlug(_ context.Context, slug string) (*directory.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, company := range m.companies {
		if company.Slug == slug && company.CompanyType == m.companyType && company.Status.IsPublished() {
			copied := *company
			return &copied, nil
		}
	}
	return nil, &directory.NotFoundError{Resource: "company", Key: slug}
}
