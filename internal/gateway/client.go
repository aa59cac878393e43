package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/patrickmn/go-cache"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
)

const (
	defaultTimeout    = 3 * time.Second
	defaultRevalidate = time.Hour
)

// Config captures the remote content API settings.
type Config struct {
	// BaseURL is the gateway root, e.g. https://quest-gateway.example.com.
	BaseURL string
	// Timeout bounds each gateway call so a slow tier-1 falls through to
	// tier-2 instead of blocking the page render.
	Timeout time.Duration
	// Revalidate is the caching window for successful responses. Content is
	// editorially slow-moving; staleness within the window is acceptable.
	Revalidate time.Duration
}

// Client is the tier-1 retrieval source: the remote content API. Successful
// lookups are cached for the revalidation window; every failure is returned
// to the caller so the retriever can fall through to the direct store.
type Client struct {
	http       *http.Client
	routes     *urlkit.RouteManager
	cache      *cache.Cache
	revalidate time.Duration
	log        interfaces.Logger
}

// New constructs a gateway client.
func New(cfg Config, provider interfaces.LoggerProvider) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Revalidate <= 0 {
		cfg.Revalidate = defaultRevalidate
	}

	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		routes: urlkit.NewRouteManager(&urlkit.Config{
			Groups: []urlkit.GroupConfig{
				{
					Name:    "content",
					BaseURL: cfg.BaseURL,
					Paths: map[string]string{
						"entity": "/content/:kind/:slug",
						"list":   "/content/:kind",
					},
				},
			},
		}),
		cache:      cache.New(cfg.Revalidate, 2*cfg.Revalidate),
		revalidate: cfg.Revalidate,
		log:        logging.ModuleLogger(provider, "sitekit.gateway"),
	}
}

var _ content.Gateway = (*Client)(nil)

type entityEnvelope struct {
	Entity *content.Article `json:"entity"`
}

type listEnvelope struct {
	Entities []*content.Article `json:"entities"`
}

// Entity fetches a single record by kind and slug. Records of a different
// kind than requested are treated as absent, mirroring the sub-type guard the
// directory of brands relies on.
func (c *Client) Entity(ctx context.Context, kind, slug string) (*content.Article, error) {
	cacheKey := "entity:" + kind + ":" + slug
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.(*content.Article), nil
	}

	builder := c.routes.Group("content").Builder("entity")
	builder.WithParam("kind", kind)
	builder.WithParam("slug", slug)
	url, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("gateway: build entity url: %w", err)
	}

	var envelope entityEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, err
	}
	if envelope.Entity == nil {
		return nil, &content.NotFoundError{Resource: kind, Key: slug}
	}
	if envelope.Entity.Kind != kind {
		c.log.Debug("gateway entity kind mismatch", "slug", slug, "want", kind, "got", envelope.Entity.Kind)
		return nil, fmt.Errorf("gateway: %w: want %s, got %s", content.ErrKindMismatch, kind, envelope.Entity.Kind)
	}

	c.cache.Set(cacheKey, envelope.Entity, cache.DefaultExpiration)
	return envelope.Entity, nil
}

// Entities fetches an ordered list of records for a kind.
func (c *Client) Entities(ctx context.Context, kind string, limit int) ([]*content.Article, error) {
	cacheKey := "list:" + kind + ":" + strconv.Itoa(limit)
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]*content.Article), nil
	}

	builder := c.routes.Group("content").Builder("list")
	builder.WithParam("kind", kind)
	if limit > 0 {
		builder.WithQuery("limit", strconv.Itoa(limit))
	}
	url, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("gateway: build list url: %w", err)
	}

	var envelope listEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, err
	}

	entities := envelope.Entities
	if entities == nil {
		entities = []*content.Article{}
	}
	c.cache.Set(cacheKey, entities, cache.DefaultExpiration)
	return entities, nil
}

// getJSON performs a GET and decodes the body. Non-2xx responses and
// malformed bodies are failures that trigger the tier-2 fallback upstream.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway: unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}
