package directory

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitekit/directory"
	"github.com/goliatone/go-sitekit/domain"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
)

// DefaultCompanyType is the directory segment served when no override is
// configured.
const DefaultCompanyType = "placement_agency"

// BunFilter resolves directory entries from the database. Every query carries
// the (company_type, status = published) pre-filter before any selector
// predicate; draft and archived rows are invisible to every caller.
type BunFilter struct {
	repo        repository.Repository[*directory.Company]
	companyType string
	log         interfaces.Logger
}

// NewBunFilter constructs an uncached filter.
func NewBunFilter(db *bun.DB, companyType string, provider interfaces.LoggerProvider) *BunFilter {
	return NewBunFilterWithCache(db, companyType, provider, nil, nil)
}

// NewBunFilterWithCache wraps reads with the repository cache when a cache
// service is supplied.
func NewBunFilterWithCache(db *bun.DB, companyType string, provider interfaces.LoggerProvider, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunFilter {
	if companyType == "" {
		companyType = DefaultCompanyType
	}
	base := NewCompanyRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunFilter{
		repo:        base,
		companyType: companyType,
		log:         logging.ModuleLogger(provider, "sitekit.directory"),
	}
}

var _ directory.Filter = (*BunFilter)(nil)

// ListByRegion returns published entries matching the selector, ranked
// entries first ascending, unranked after, name as the tiebreaker. The
// ordering is pushed into SQL so pagination stays consistent with in-memory
// sorting.
func (f *BunFilter) ListByRegion(ctx context.Context, sel directory.RegionSelector) ([]*directory.Company, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	records, _, err := f.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.company_type = ?", f.companyType).
				Where("?TableAlias.status = ?", domain.StatusPublished)
			if sel.Country != "" {
				q = q.Where("?TableAlias.primary_country = ?", sel.Country)
			} else {
				q = q.Where("?TableAlias.primary_region = ?", sel.Region)
			}
			return q.OrderExpr("CASE WHEN ?TableAlias.global_rank IS NULL THEN 1 ELSE 0 END").
				OrderExpr("?TableAlias.global_rank ASC").
				OrderExpr("?TableAlias.name ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("company repository error: %w", err)
	}
	return records, nil
}

// GetBySlug resolves a single published entry for detail pages.
func (f *BunFilter) GetBySlug(ctx context.Context, slug string) (*directory.Company, error) {
	records, _, err := f.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.company_type = ?", f.companyType).
				Where("?TableAlias.status = ?", domain.StatusPublished)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &directory.NotFoundError{Resource: "company", Key: slug}
		}
		return nil, fmt.Errorf("company repository error: %w", err)
	}
	if len(records) == 0 {
		return nil, &directory.NotFoundError{Resource: "company", Key: slug}
	}
	return records[0], nil
}
