package sitekit

import (
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitekit/directory"
	"github.com/goliatone/go-sitekit/themes"
)

// Config is the complete engine configuration. One Config composes one brand;
// multi-brand deployments construct one engine per brand.
type Config struct {
	Brand     themes.BrandConfig
	Gateway   GatewayConfig
	Storage   StorageConfig
	Logging   LoggingConfig
	Directory DirectoryConfig
}

// GatewayConfig configures the tier-1 remote content API.
type GatewayConfig struct {
	// BaseURL defaults to the brand's GatewayURL when empty.
	BaseURL    string
	Timeout    time.Duration
	Revalidate time.Duration
}

// StorageConfig configures the tier-2 direct store. An empty DSN disables the
// tier; the retriever then serves from the gateway alone.
type StorageConfig struct {
	// Driver is "postgres" or "sqlite3".
	Driver string
	DSN    string
	// CacheEnabled wraps repository reads with the in-process cache.
	CacheEnabled bool
}

// LoggingConfig configures the go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DirectoryConfig configures the directory segment and its route table.
type DirectoryConfig struct {
	// CompanyType narrows the directory to one segment, e.g. a brand that
	// lists placement agencies versus one that lists law firms.
	CompanyType string
	// Regions overrides the default regional route table when non-empty.
	Regions []directory.Region
}

// DefaultConfig returns a runnable baseline: JSON logging at info, the
// gateway taken from the GATEWAY_URL environment variable, storage disabled.
func DefaultConfig() Config {
	return Config{
		Gateway: GatewayConfig{
			BaseURL:    os.Getenv("GATEWAY_URL"),
			Timeout:    3 * time.Second,
			Revalidate: time.Hour,
		},
		Storage: StorageConfig{
			Driver:       "postgres",
			CacheEnabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the cross-field constraints the engine relies on. Brand
// validation runs separately inside the composer so library consumers that
// bypass the engine still hit it.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Storage, validation.By(validateStorage)),
		validation.Field(&c.Logging, validation.By(validateLogging)),
	)
}

func validateStorage(value any) error {
	cfg, _ := value.(StorageConfig)
	if cfg.DSN == "" {
		return nil
	}
	return validation.Validate(cfg.Driver, validation.Required, validation.In("postgres", "sqlite3"))
}

func validateLogging(value any) error {
	cfg, _ := value.(LoggingConfig)
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Level, validation.In("", "trace", "debug", "info", "warn", "error", "fatal")),
		validation.Field(&cfg.Format, validation.In("", "json", "console", "pretty")),
	)
}
