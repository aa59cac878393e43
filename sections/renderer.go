package sections

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/media"
	"github.com/goliatone/go-sitekit/themes"
)

// Renderer dispatches the canonical section list into per-section view
// models. It is stateless apart from the shared markdown engine and safe for
// concurrent use.
type Renderer struct {
	markdown goldmark.Markdown
}

// NewRenderer constructs a renderer with GFM extensions and auto heading ids,
// matching how article bodies are authored.
func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render walks the ordered section list and produces one view model per
// renderable section. The state machine per section is: absent -> skip,
// present-but-empty -> skip, present-with-data -> render. Sections are
// independent; one section's absence never affects another's output.
func (r *Renderer) Render(list []Section, theme themes.ThemeTokens) []Rendered {
	out := make([]Rendered, 0, len(list))
	for _, section := range list {
		if rendered, ok := r.renderOne(section, theme); ok {
			out = append(out, rendered)
		}
	}
	return out
}

func (r *Renderer) renderOne(section Section, theme themes.ThemeTokens) (Rendered, bool) {
	switch section.Kind {
	case KindHero:
		if section.Hero == nil || section.Hero.Title == "" {
			return Rendered{}, false
		}
		rendered := Rendered{
			Kind:  KindHero,
			Title: section.Hero.Title,
			Hero:  section.Hero,
			Theme: theme,
		}
		if section.Hero.Media.Kind == media.KindNone {
			rendered.Placeholder = theme.Placeholder
		}
		return rendered, true

	case KindFreeText:
		text := strings.TrimSpace(section.Text)
		if text == "" {
			return Rendered{}, false
		}
		return Rendered{
			Kind:  KindFreeText,
			Body:  r.renderMarkdown(text),
			Theme: theme,
		}, true

	case KindFAQ:
		if len(section.FAQ) == 0 {
			return Rendered{}, false
		}
		items := make([]Item, 0, len(section.FAQ))
		for _, entry := range section.FAQ {
			items = append(items, Item{Title: entry.Question, Body: entry.Answer})
		}
		return Rendered{
			Kind:  KindFAQ,
			Title: "Frequently asked questions",
			Items: items,
			Theme: theme,
		}, true

	case KindTimeline:
		if len(section.Timeline) == 0 {
			return Rendered{}, false
		}
		items := make([]Item, 0, len(section.Timeline))
		for _, step := range section.Timeline {
			items = append(items, Item{Label: step.Label, Title: step.Title, Body: step.Body})
		}
		return Rendered{
			Kind:  KindTimeline,
			Items: items,
			Theme: theme,
		}, true

	case KindCallouts:
		if len(section.Callouts) == 0 {
			return Rendered{}, false
		}
		items := make([]Item, 0, len(section.Callouts))
		for _, callout := range section.Callouts {
			items = append(items, Item{Title: callout.Title, Body: callout.Body})
		}
		return Rendered{
			Kind:  KindCallouts,
			Items: items,
			Theme: theme,
		}, true

	case KindStatHighlight:
		if section.Stat == nil {
			return Rendered{}, false
		}
		return Rendered{
			Kind:  KindStatHighlight,
			Stat:  section.Stat,
			Theme: theme,
		}, true

	case KindGuideSection:
		if section.Guide == nil || len(section.Guide.Items) == 0 {
			return Rendered{}, false
		}
		items := make([]Item, 0, len(section.Guide.Items))
		for _, line := range section.Guide.Items {
			items = append(items, Item{Body: line})
		}
		return Rendered{
			Kind:  KindGuideSection,
			Title: section.Guide.Title,
			Items: items,
			Theme: theme,
		}, true

	case KindDirectoryGrid:
		if len(section.Entries) == 0 {
			return Rendered{}, false
		}
		items := make([]Item, 0, len(section.Entries))
		for _, company := range section.Entries {
			item := Item{
				Title: company.Display(),
				URL:   "/directory/" + company.Slug,
				Meta:  strings.Join(company.Specializations, ", "),
			}
			if company.Description != nil {
				item.Body = *company.Description
			}
			if company.Headquarters != nil {
				item.Label = *company.Headquarters
			}
			items = append(items, item)
		}
		return Rendered{
			Kind:  KindDirectoryGrid,
			Items: items,
			Theme: theme,
		}, true

	default:
		// Unknown tags are omitted from the sequence, never an error.
		return Rendered{}, false
	}
}

// FromPayload expands a normalized payload into its section list in render
// order. Absent payload fields simply contribute nothing.
func FromPayload(payload content.Payload) []Section {
	list := make([]Section, 0, 8)
	if payload.Stat != nil {
		list = append(list, Section{Kind: KindStatHighlight, Stat: payload.Stat})
	}
	for i := range payload.Sections {
		list = append(list, Section{Kind: KindGuideSection, Guide: &payload.Sections[i]})
	}
	if len(payload.Callouts) > 0 {
		list = append(list, Section{Kind: KindCallouts, Callouts: payload.Callouts})
	}
	if len(payload.Timeline) > 0 {
		list = append(list, Section{Kind: KindTimeline, Timeline: payload.Timeline})
	}
	if len(payload.FAQ) > 0 {
		list = append(list, Section{Kind: KindFAQ, FAQ: payload.FAQ})
	}
	return list
}

func (r *Renderer) renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(text), &buf); err != nil {
		// Malformed markdown degrades to escaped plain text rather than
		// failing the section.
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}
