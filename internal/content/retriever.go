package content

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
)

// Retriever implements the two-tier fetch strategy: the remote gateway first,
// then the direct store. The tiers run strictly in order; tier 2 carries a
// stricter filter contract and is only consulted after tier 1 definitively
// fails. Both tiers fail closed: errors are logged and degrade to not-found
// or empty results.
type Retriever struct {
	gateway content.Gateway
	store   content.Store
	brand   string
	log     interfaces.Logger
}

// NewRetriever wires the two retrieval tiers for a brand. Either tier may be
// nil, in which case it is skipped.
func NewRetriever(gw content.Gateway, store content.Store, brand string, provider interfaces.LoggerProvider) *Retriever {
	return &Retriever{
		gateway: gw,
		store:   store,
		brand:   brand,
		log:     logging.ModuleLogger(provider, "sitekit.content"),
	}
}

var _ content.Retriever = (*Retriever)(nil)

// Get resolves a single published entity. Any tier-1 error (transport,
// non-2xx, malformed body, kind mismatch, absence) falls through to tier 2.
func (r *Retriever) Get(ctx context.Context, kind, slug string) (*content.Article, error) {
	if slug == "" {
		return nil, content.ErrSlugRequired
	}

	if r.gateway != nil {
		article, err := r.gateway.Entity(ctx, kind, slug)
		if err == nil && article != nil {
			return article, nil
		}
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			r.log.Warn("gateway fetch failed, falling back to store", "kind", kind, "slug", slug, "error", err)
		}
	}

	if r.store != nil {
		article, err := r.store.GetPublishedBySlug(ctx, r.brand, kind, slug)
		if err == nil && article != nil {
			return article, nil
		}
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			r.log.Error("store fetch failed", "kind", kind, "slug", slug, "error", err)
		}
	}

	return nil, &content.NotFoundError{Resource: kind, Key: slug}
}

// List returns an ordered set of published entities. Total failure yields an
// empty slice, never an error.
func (r *Retriever) List(ctx context.Context, query content.ListQuery) ([]*content.Article, error) {
	if r.gateway != nil && query.Mode == "" && query.Country == "" {
		entities, err := r.gateway.Entities(ctx, query.Kind, query.Limit)
		if err == nil {
			return entities, nil
		}
		r.log.Warn("gateway list failed, falling back to store", "kind", query.Kind, "error", err)
	}

	if r.store != nil {
		entities, err := r.store.ListPublished(ctx, r.brand, query)
		if err == nil {
			return entities, nil
		}
		r.log.Error("store list failed", "kind", query.Kind, "error", err)
	}

	return []*content.Article{}, nil
}

// GetWithRelated fetches the primary entity and a related list concurrently.
// The related list reuses the primary's classification mode when available
// after the join; its failure is non-fatal and yields zero related items.
func (r *Retriever) GetWithRelated(ctx context.Context, kind, slug string, related int) (*content.Article, []*content.Article, error) {
	var (
		wg      sync.WaitGroup
		primary *content.Article
		primErr error
		list    []*content.Article
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		primary, primErr = r.Get(ctx, kind, slug)
	}()
	go func() {
		defer wg.Done()
		// Fetch one extra so the primary can be excluded without a refetch.
		list, _ = r.List(ctx, content.ListQuery{Kind: kind, Limit: related + 1})
	}()
	wg.Wait()

	if primErr != nil {
		return nil, nil, primErr
	}

	filtered := make([]*content.Article, 0, related)
	for _, article := range list {
		if article.Slug == slug {
			continue
		}
		filtered = append(filtered, article)
		if len(filtered) == related {
			break
		}
	}
	return primary, filtered, nil
}
