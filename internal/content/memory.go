package content

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-sitekit/content"
)

// MemoryStore is an in-memory tier-2 store for scaffolding and tests. It
// applies the same (published, brand) filter contract as the bun store.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []*content.Article
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ content.Store = (*MemoryStore)(nil)

// Put inserts an article.
func (m *MemoryStore) Put(article *content.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *article
	m.articles = append(m.articles, &copied)
}

// GetPublishedBySlug retrieves a published article by brand, kind and slug.
func (m *MemoryStore) GetPublishedBySlug(_ context.Context, brand, kind, slug string) (*content.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, article := range m.articles {
		if article.Brand == brand && article.Kind == kind && article.Slug == slug && article.IsPublished() {
			copied := *article
			return &copied, nil
		}
	}
	return nil, &content.NotFoundError{Resource: kind, Key: slug}
}

// ListPublished returns published articles for the brand, newest first.
func (m *MemoryStore) ListPublished(_ context.Context, brand string, query content.ListQuery) ([]*content.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*content.Article, 0, len(m.articles))
	for _, article := range m.articles {
		if article.Brand != brand || !article.IsPublished() {
			continue
		}
		if query.Kind != "" && article.Kind != query.Kind {
			continue
		}
		if query.Mode != "" && article.Mode != query.Mode {
			continue
		}
		if query.Country != "" && (article.Country == nil || *article.Country != query.Country) {
			continue
		}
		copied := *article
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		pi, pj := matched[i].PublishedAt, matched[j].PublishedAt
		switch {
		case pi != nil && pj != nil:
			return pi.After(*pj)
		case pi != nil:
			return true
		default:
			return false
		}
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}
