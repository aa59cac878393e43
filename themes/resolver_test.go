package themes_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitekit/themes"
)

func TestResolveKnownAccents(t *testing.T) {
	for _, accent := range []themes.Accent{
		themes.AccentIndigo,
		themes.AccentEmerald,
		themes.AccentBlue,
		themes.AccentAmber,
	} {
		tokens, err := themes.Resolve(accent)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", accent, err)
		}
		if tokens.Accent != accent {
			t.Fatalf("Resolve(%q) returned tokens for %q", accent, tokens.Accent)
		}
		if tokens.Badge == "" || tokens.Button == "" || tokens.Gradient == "" ||
			tokens.Border == "" || tokens.Placeholder == "" {
			t.Fatalf("Resolve(%q) left a token empty: %+v", accent, tokens)
		}
	}
}

func TestResolveUnknownAccentFailsLoud(t *testing.T) {
	_, err := themes.Resolve("fuchsia")
	if err == nil {
		t.Fatal("expected an error for an unknown accent")
	}
	var unknown *themes.UnknownAccentError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownAccentError, got %T", err)
	}
	if unknown.Accent != "fuchsia" {
		t.Fatalf("error carries wrong accent: %q", unknown.Accent)
	}
}

func TestBrandConfigValidate(t *testing.T) {
	valid := themes.BrandConfig{
		Name:       "Relocation Quest",
		Accent:     themes.AccentAmber,
		GatewayURL: "https://gateway.example.com",
		NavItems: []themes.NavItem{
			{Href: "/articles", Label: "Articles", Highlight: true},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*themes.BrandConfig)
	}{
		{"missing name", func(c *themes.BrandConfig) { c.Name = "" }},
		{"unknown accent", func(c *themes.BrandConfig) { c.Accent = "neon" }},
		{"missing gateway", func(c *themes.BrandConfig) { c.GatewayURL = "" }},
		{"nav item without label", func(c *themes.BrandConfig) { c.NavItems = []themes.NavItem{{Href: "/x"}} }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
