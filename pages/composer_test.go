package pages_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/directory"
	internalcontent "github.com/goliatone/go-sitekit/internal/content"
	internaldirectory "github.com/goliatone/go-sitekit/internal/directory"
	"github.com/goliatone/go-sitekit/pages"
	"github.com/goliatone/go-sitekit/sections"
	"github.com/goliatone/go-sitekit/themes"
	"github.com/google/uuid"
)

const testBrand = "relocation"

func brandConfig() themes.BrandConfig {
	return themes.BrandConfig{
		Name:       "Relocation Quest",
		Accent:     themes.AccentIndigo,
		GatewayURL: "https://gateway.example.com",
	}
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func seedArticle(slug, title string, publishedAt time.Time) *content.Article {
	body := "## Overview\n\nSome **useful** body copy."
	return &content.Article{
		ID:          uuid.New(),
		Brand:       testBrand,
		Kind:        content.KindArticle,
		Slug:        slug,
		Title:       title,
		Excerpt:     strPtr("short excerpt"),
		Body:        &body,
		WordCount:   intPtr(640),
		Status:      "published",
		PublishedAt: &publishedAt,
		Payload: map[string]any{
			"faq": []any{
				map[string]any{"question": "Is it hard?", "answer": "No."},
			},
		},
	}
}

func newComposer(t *testing.T, store *internalcontent.MemoryStore, filter directory.Filter) *pages.Composer {
	t.Helper()
	retriever := internalcontent.NewRetriever(nil, store, testBrand, nil)
	composer, err := pages.NewComposer(brandConfig(), retriever, filter, nil)
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}
	return composer
}

func TestNewComposerRejectsBadBrand(t *testing.T) {
	retriever := internalcontent.NewRetriever(nil, internalcontent.NewMemoryStore(), testBrand, nil)

	bad := brandConfig()
	bad.Accent = "chartreuse"
	if _, err := pages.NewComposer(bad, retriever, internaldirectory.NewMemoryFilter(""), nil); err == nil {
		t.Fatal("expected an unknown accent to fail composer construction")
	}

	missing := brandConfig()
	missing.GatewayURL = ""
	if _, err := pages.NewComposer(missing, retriever, internaldirectory.NewMemoryFilter(""), nil); err == nil {
		t.Fatal("expected a missing gateway url to fail composer construction")
	}
}

func TestArticlePageComposition(t *testing.T) {
	store := internalcontent.NewMemoryStore()
	base := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	store.Put(seedArticle("visa-basics", "Visa Basics", base))
	store.Put(seedArticle("tax-primer", "Tax Primer", base.Add(-time.Hour)))
	store.Put(seedArticle("banking-abroad", "Banking Abroad", base.Add(-2*time.Hour)))

	composer := newComposer(t, store, internaldirectory.NewMemoryFilter(""))

	page, err := composer.Article(context.Background(), "visa-basics")
	if err != nil {
		t.Fatalf("Article returned error: %v", err)
	}

	if page.Title != "Visa Basics" {
		t.Fatalf("unexpected title: %s", page.Title)
	}
	if page.Meta.PublishedOn != "March 14, 2026" {
		t.Fatalf("unexpected publish date: %s", page.Meta.PublishedOn)
	}
	if page.Meta.ReadTimeMin != 4 {
		t.Fatalf("expected 4 minute read for 640 words, got %d", page.Meta.ReadTimeMin)
	}

	if len(page.Sections) < 3 {
		t.Fatalf("expected hero, body and faq sections, got %d", len(page.Sections))
	}
	if page.Sections[0].Kind != sections.KindHero {
		t.Fatalf("expected hero first, got %s", page.Sections[0].Kind)
	}
	if page.Sections[0].Placeholder == "" {
		t.Fatal("hero without media must carry the themed placeholder")
	}
	if page.Sections[1].Kind != sections.KindFreeText {
		t.Fatalf("expected body second, got %s", page.Sections[1].Kind)
	}
	if !strings.Contains(string(page.Sections[1].Body), "<strong>useful</strong>") {
		t.Fatalf("body markdown was not rendered: %s", page.Sections[1].Body)
	}
	last := page.Sections[len(page.Sections)-1]
	if last.Kind != sections.KindFAQ {
		t.Fatalf("expected faq last, got %s", last.Kind)
	}

	if len(page.Related) != 2 {
		t.Fatalf("expected 2 related entries, got %d", len(page.Related))
	}
	for _, related := range page.Related {
		if related.Slug == "visa-basics" {
			t.Fatal("related list must exclude the page itself")
		}
	}
}

func TestArticleNotFound(t *testing.T) {
	composer := newComposer(t, internalcontent.NewMemoryStore(), internaldirectory.NewMemoryFilter(""))

	_, err := composer.Article(context.Background(), "missing")
	if !errors.Is(err, pages.ErrNotFound) {
		t.Fatalf("expected pages.ErrNotFound, got %v", err)
	}
}

func TestGuidePageCarriesCountryAndSources(t *testing.T) {
	store := internalcontent.NewMemoryStore()
	published := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	store.Put(&content.Article{
		ID:          uuid.New(),
		Brand:       testBrand,
		Kind:        content.KindGuide,
		Slug:        "spain",
		Title:       "Moving to Spain",
		Country:     strPtr("Spain"),
		FlagEmoji:   strPtr("🇪🇸"),
		Status:      "published",
		PublishedAt: &published,
		Payload: map[string]any{
			"sources": []any{
				map[string]any{"title": "Official portal", "url": "https://example.es"},
			},
			"sections": map[string]any{
				"visas": map[string]any{"title": "Visas", "items": []any{"Digital nomad visa"}},
			},
		},
	})

	composer := newComposer(t, store, internaldirectory.NewMemoryFilter(""))

	page, err := composer.Guide(context.Background(), "spain")
	if err != nil {
		t.Fatalf("Guide returned error: %v", err)
	}
	if page.Country != "Spain" {
		t.Fatalf("unexpected country: %s", page.Country)
	}
	if len(page.Sources) != 1 || page.Sources[0].URL != "https://example.es" {
		t.Fatalf("unexpected sources: %+v", page.Sources)
	}

	foundGuideSection := false
	for _, section := range page.Sections {
		if section.Kind == sections.KindGuideSection && section.Title == "Visas" {
			foundGuideSection = true
		}
	}
	if !foundGuideSection {
		t.Fatal("expected the visas guide section to render")
	}
}

func TestDirectoryPageStates(t *testing.T) {
	filter := internaldirectory.NewMemoryFilter("")
	filter.Put(&directory.Company{
		ID:            uuid.New(),
		Name:          "Acme Placements",
		Slug:          "acme-placements",
		CompanyType:   internaldirectory.DefaultCompanyType,
		Status:        "published",
		PrimaryRegion: "Europe",
		GlobalRank:    intPtr(1),
	})

	composer := newComposer(t, internalcontent.NewMemoryStore(), filter)

	page, err := composer.Directory(context.Background(), "europe")
	if err != nil {
		t.Fatalf("Directory returned error: %v", err)
	}
	if page.Building {
		t.Fatal("a populated region must not be in the building state")
	}
	if len(page.Sections) != 1 || page.Sections[0].Kind != sections.KindDirectoryGrid {
		t.Fatalf("expected a single directory grid section, got %+v", page.Sections)
	}
	if page.Sections[0].Items[0].Title != "Acme Placements" {
		t.Fatalf("unexpected first entry: %+v", page.Sections[0].Items[0])
	}

	empty, err := composer.Directory(context.Background(), "africa")
	if err != nil {
		t.Fatalf("empty region returned error: %v", err)
	}
	if !empty.Building {
		t.Fatal("an empty region must compose in the building state")
	}

	if _, err := composer.Directory(context.Background(), "atlantis"); !errors.Is(err, pages.ErrNotFound) {
		t.Fatalf("expected pages.ErrNotFound for unknown region, got %v", err)
	}
}

func TestHomePageDegradesToEmptyRails(t *testing.T) {
	composer := newComposer(t, internalcontent.NewMemoryStore(), internaldirectory.NewMemoryFilter(""))

	page, err := composer.Home(context.Background())
	if err != nil {
		t.Fatalf("Home returned error: %v", err)
	}
	if len(page.Articles) != 0 || len(page.Guides) != 0 {
		t.Fatalf("expected empty rails, got %d articles, %d guides", len(page.Articles), len(page.Guides))
	}
	if len(page.Regions) == 0 {
		t.Fatal("home must always list the regional directory routes")
	}
}

func TestStaticPathsSkipsInvalidSlugs(t *testing.T) {
	store := internalcontent.NewMemoryStore()
	now := time.Now()
	store.Put(seedArticle("visa-basics", "Visa Basics", now))

	bad := seedArticle("Visa Basics!!", "Broken Slug", now)
	store.Put(bad)

	composer := newComposer(t, store, internaldirectory.NewMemoryFilter(""))

	manifest, err := composer.StaticPaths(context.Background())
	if err != nil {
		t.Fatalf("StaticPaths returned error: %v", err)
	}
	if len(manifest.Articles) != 1 || manifest.Articles[0] != "visa-basics" {
		t.Fatalf("unexpected article paths: %v", manifest.Articles)
	}
	if len(manifest.Regions) != len(directory.DefaultRegions()) {
		t.Fatalf("expected all region slugs, got %v", manifest.Regions)
	}
}
