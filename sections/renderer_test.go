package sections_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/media"
	"github.com/goliatone/go-sitekit/sections"
	"github.com/goliatone/go-sitekit/themes"
)

func testTheme(t *testing.T) themes.ThemeTokens {
	t.Helper()
	tokens, err := themes.Resolve(themes.AccentIndigo)
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	return tokens
}

func TestRenderSkipsEmptyAndUnknownSections(t *testing.T) {
	renderer := sections.NewRenderer()
	list := []sections.Section{
		{Kind: sections.KindFAQ}, // present but empty
		{Kind: sections.KindFAQ, FAQ: []content.FaqEntry{{Question: "Q", Answer: "A"}}},
		{Kind: "carousel"}, // unknown tag
		{Kind: sections.KindTimeline, Timeline: []content.TimelineItem{{Label: "Day 1", Title: "Arrive"}}},
		{Kind: sections.KindCallouts},
	}

	out := renderer.Render(list, testTheme(t))
	if len(out) != 2 {
		t.Fatalf("expected 2 rendered sections, got %d", len(out))
	}
	if out[0].Kind != sections.KindFAQ || out[1].Kind != sections.KindTimeline {
		t.Fatalf("order not preserved: %q, %q", out[0].Kind, out[1].Kind)
	}
}

func TestRenderHeroPlaceholderWhenNoMedia(t *testing.T) {
	renderer := sections.NewRenderer()
	theme := testTheme(t)

	out := renderer.Render([]sections.Section{{
		Kind: sections.KindHero,
		Hero: &sections.Hero{
			Title: "Moving to Spain",
			Media: media.Resolved{Kind: media.KindNone},
		},
	}}, theme)

	if len(out) != 1 {
		t.Fatalf("expected hero to render, got %d sections", len(out))
	}
	if out[0].Placeholder != theme.Placeholder {
		t.Fatalf("hero without media must carry the themed placeholder, got %q", out[0].Placeholder)
	}

	withVideo := renderer.Render([]sections.Section{{
		Kind: sections.KindHero,
		Hero: &sections.Hero{
			Title: "Moving to Spain",
			Media: media.Resolved{Kind: media.KindVideo, URL: "https://stream.mux.com/x.m3u8"},
		},
	}}, theme)
	if withVideo[0].Placeholder != "" {
		t.Fatalf("hero with media must not use the placeholder")
	}
}

func TestRenderFreeTextMarkdown(t *testing.T) {
	renderer := sections.NewRenderer()

	out := renderer.Render([]sections.Section{{
		Kind: sections.KindFreeText,
		Text: "## Visas\n\nApply **early**.",
	}}, testTheme(t))

	if len(out) != 1 {
		t.Fatalf("expected one rendered section, got %d", len(out))
	}
	body := string(out[0].Body)
	if !strings.Contains(body, "<h2") || !strings.Contains(body, "<strong>early</strong>") {
		t.Fatalf("markdown body not rendered: %q", body)
	}

	empty := renderer.Render([]sections.Section{{Kind: sections.KindFreeText, Text: "   "}}, testTheme(t))
	if len(empty) != 0 {
		t.Fatal("blank free-text must be skipped")
	}
}

func TestFromPayloadExpandsInRenderOrder(t *testing.T) {
	payload := content.NormalizePayload(map[string]any{
		"faq":            []any{map[string]any{"q": "Q", "a": "A"}},
		"stat_highlight": map[string]any{"value": "90", "label": "days"},
		"sections": map[string]any{
			"cost": map[string]any{"title": "Cost", "items": []any{"Rent"}},
		},
	})

	list := sections.FromPayload(payload)
	kinds := make([]sections.Kind, 0, len(list))
	for _, section := range list {
		kinds = append(kinds, section.Kind)
	}

	want := []sections.Kind{sections.KindStatHighlight, sections.KindGuideSection, sections.KindFAQ}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, kinds)
		}
	}
}
