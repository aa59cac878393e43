package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	sitekit "github.com/goliatone/go-sitekit"
	"github.com/goliatone/go-sitekit/themes"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("static: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("static", flag.ExitOnError)
	brandName := fs.String("brand", "", "Brand name the manifest is built for")
	brandKey := fs.String("brand-key", "", "Stable brand key content records are scoped by (defaults to a slug of the name)")
	accent := fs.String("accent", "indigo", "Brand accent palette")
	gatewayURL := fs.String("gateway-url", "", "Content gateway base URL (defaults to GATEWAY_URL)")
	driver := fs.String("driver", "postgres", "Storage driver: postgres or sqlite3")
	dsn := fs.String("dsn", "", "Storage DSN; empty disables the direct store tier")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *brandName == "" {
		return fmt.Errorf("-brand is required")
	}

	cfg := sitekit.DefaultConfig()
	cfg.Brand = themes.BrandConfig{
		Name:       *brandName,
		Key:        *brandKey,
		Accent:     themes.Accent(*accent),
		GatewayURL: *gatewayURL,
	}
	if cfg.Brand.GatewayURL == "" {
		cfg.Brand.GatewayURL = cfg.Gateway.BaseURL
	}
	cfg.Storage.Driver = *driver
	cfg.Storage.DSN = *dsn

	engine, err := sitekit.New(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	manifest, err := engine.Pages().StaticPaths(context.Background())
	if err != nil {
		return fmt.Errorf("enumerate static paths: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(manifest)
}
