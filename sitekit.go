package sitekit

import (
	"database/sql"
	"fmt"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/directory"
	internalcontent "github.com/goliatone/go-sitekit/internal/content"
	internaldirectory "github.com/goliatone/go-sitekit/internal/directory"
	"github.com/goliatone/go-sitekit/internal/gateway"
	"github.com/goliatone/go-sitekit/internal/logging/gologger"
	"github.com/goliatone/go-sitekit/pages"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
	"github.com/goliatone/go-sitekit/themes"
)

// Retriever exports the content retrieval contract for engine consumers.
type Retriever = content.Retriever

// Filter exports the directory filter contract.
type Filter = directory.Filter

// Composer exports the page composition facade.
type Composer = pages.Composer

// Engine wires the retrieval tiers, the directory filter and the page
// composer for one brand. Construct it once at startup and share it; every
// component it holds is safe for concurrent use.
type Engine struct {
	config    Config
	provider  interfaces.LoggerProvider
	db        *bun.DB
	retriever content.Retriever
	filter    directory.Filter
	composer  *pages.Composer
}

// New builds an engine from the configuration. Misconfiguration fails here,
// before any page is served.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sitekit: invalid config: %w", err)
	}
	if cfg.Gateway.BaseURL == "" {
		cfg.Gateway.BaseURL = cfg.Brand.GatewayURL
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("sitekit: %w", err)
	}

	engine := &Engine{config: cfg, provider: provider}

	var store content.Store
	if cfg.Storage.DSN != "" {
		db, err := openDB(cfg.Storage)
		if err != nil {
			return nil, err
		}
		engine.db = db

		var cacheService repocache.CacheService
		var keySerializer repocache.KeySerializer
		if cfg.Storage.CacheEnabled {
			cacheService, err = repocache.NewCacheService(repocache.DefaultConfig())
			if err != nil {
				return nil, fmt.Errorf("sitekit: cache service: %w", err)
			}
			keySerializer = repocache.NewDefaultKeySerializer()
		}

		store = internalcontent.NewBunArticleStoreWithCache(db, cacheService, keySerializer)
		engine.filter = internaldirectory.NewBunFilterWithCache(db, cfg.Directory.CompanyType, provider, cacheService, keySerializer)
	} else {
		engine.filter = internaldirectory.NewMemoryFilter(cfg.Directory.CompanyType)
	}

	client := gateway.New(gateway.Config{
		BaseURL:    cfg.Gateway.BaseURL,
		Timeout:    cfg.Gateway.Timeout,
		Revalidate: cfg.Gateway.Revalidate,
	}, provider)
	engine.retriever = internalcontent.NewRetriever(client, store, brandKey(cfg.Brand), provider)

	composer, err := pages.NewComposer(cfg.Brand, engine.retriever, engine.filter, provider)
	if err != nil {
		return nil, err
	}
	engine.composer = composer.WithRegions(cfg.Directory.Regions)

	return engine, nil
}

// Pages returns the page composer.
func (e *Engine) Pages() *pages.Composer {
	return e.composer
}

// Content returns the two-tier content retriever.
func (e *Engine) Content() content.Retriever {
	return e.retriever
}

// Directory returns the directory filter.
func (e *Engine) Directory() directory.Filter {
	return e.filter
}

// DB exposes the underlying database handle for migrations and seeding. It is
// nil when storage is disabled.
func (e *Engine) DB() *bun.DB {
	return e.db
}

// Logger returns a named logger from the engine's provider.
func (e *Engine) Logger(name string) interfaces.Logger {
	return e.provider.GetLogger(name)
}

// Close releases the database handle when one was opened.
func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}

func brandKey(brand themes.BrandConfig) string {
	if brand.Key != "" {
		return brand.Key
	}
	if key, err := content.NormalizeSlug(brand.Name); err == nil {
		return key
	}
	return brand.Name
}

func openDB(cfg StorageConfig) (*bun.DB, error) {
	switch cfg.Driver {
	case "postgres":
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("sitekit: open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "sqlite3":
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("sitekit: open sqlite: %w", err)
		}
		db := bun.NewDB(sqldb, sqlitedialect.New())
		db.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("sitekit: unsupported storage driver %q", cfg.Driver)
	}
}
