package content

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/domain"
)

// BunArticleStore is the tier-2 direct data store. Every read carries the
// stricter filter contract: status = published scoped to the calling brand.
type BunArticleStore struct {
	repo repository.Repository[*content.Article]
}

// NewBunArticleStore constructs an uncached store.
func NewBunArticleStore(db *bun.DB) *BunArticleStore {
	return NewBunArticleStoreWithCache(db, nil, nil)
}

// NewBunArticleStoreWithCache constructs a store whose reads are wrapped with
// the repository cache when a cache service is supplied.
func NewBunArticleStoreWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleStore {
	base := NewArticleRepository(db)
	return &BunArticleStore{repo: wrapWithCache(base, cacheService, keySerializer)}
}

var _ content.Store = (*BunArticleStore)(nil)

// GetPublishedBySlug resolves a single published article scoped to the brand.
func (s *BunArticleStore) GetPublishedBySlug(ctx context.Context, brand, kind, slug string) (*content.Article, error) {
	records, _, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.kind = ?", kind).
				Where("?TableAlias.status = ?", domain.StatusPublished).
				Where("?TableAlias.brand = ?", brand)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, kind, slug)
	}
	if len(records) == 0 {
		return nil, &content.NotFoundError{Resource: kind, Key: slug}
	}
	return records[0], nil
}

// ListPublished returns published articles for the brand ordered by recency.
func (s *BunArticleStore) ListPublished(ctx context.Context, brand string, query content.ListQuery) ([]*content.Article, error) {
	opts := []repository.SelectCriteria{
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.status = ?", domain.StatusPublished).
				Where("?TableAlias.brand = ?", brand)
			if query.Kind != "" {
				q = q.Where("?TableAlias.kind = ?", query.Kind)
			}
			if query.Mode != "" {
				q = q.Where("?TableAlias.mode = ?", query.Mode)
			}
			if query.Country != "" {
				q = q.Where("?TableAlias.country = ?", query.Country)
			}
			return q.OrderExpr("?TableAlias.published_at DESC NULLS LAST")
		}),
	}
	if query.Limit > 0 {
		opts = append(opts, repository.SelectPaginate(query.Limit, 0))
	}

	records, _, err := s.repo.List(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("article repository error: %w", err)
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &content.NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
