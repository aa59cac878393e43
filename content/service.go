package content

import "context"

// Retriever fetches named content entities through the two-tier strategy:
// a remote content gateway first, falling back to a direct data-store query.
// Implementations fail closed: retrieval failures degrade to not-found or
// empty results, never to a propagated transport error.
type Retriever interface {
	// Get resolves a single published entity by kind and slug. Absence after
	// both tiers yields an error satisfying errors.Is(err, ErrNotFound).
	Get(ctx context.Context, kind, slug string) (*Article, error)

	// List returns an ordered set of published entities. On total failure it
	// returns an empty slice rather than an error.
	List(ctx context.Context, query ListQuery) ([]*Article, error)

	// GetWithRelated fetches the primary entity and a related list
	// concurrently. A missing primary is fatal (ErrNotFound); a missing
	// related list is not and yields zero related items.
	GetWithRelated(ctx context.Context, kind, slug string, related int) (*Article, []*Article, error)
}

// Gateway is the tier-1 remote content API.
type Gateway interface {
	Entity(ctx context.Context, kind, slug string) (*Article, error)
	Entities(ctx context.Context, kind string, limit int) ([]*Article, error)
}

// Store is the tier-2 direct data store. Every read is scoped to a published
// state and the calling brand; that filter contract is stricter than the
// gateway's and is why the tiers are never tried in parallel.
type Store interface {
	GetPublishedBySlug(ctx context.Context, brand, kind, slug string) (*Article, error)
	ListPublished(ctx context.Context, brand string, query ListQuery) ([]*Article, error)
}
