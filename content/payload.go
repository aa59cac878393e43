package content

import (
	"sort"
	"strings"
)

// Payload is the canonical in-memory shape all rendering consumes, regardless
// of which wire variant was authored. Every field is optional; absence is an
// empty list or nil, never an error.
type Payload struct {
	FAQ      []FaqEntry     `json:"faq,omitempty"`
	Callouts []Callout      `json:"callouts,omitempty"`
	Timeline []TimelineItem `json:"timeline,omitempty"`
	Stat     *StatHighlight `json:"stat_highlight,omitempty"`
	Sources  []Source       `json:"sources,omitempty"`
	Sections []GuideSection `json:"sections,omitempty"`
}

// FaqEntry is a normalized question/answer pair. Both fields are non-empty;
// entries that cannot satisfy that are dropped during normalization.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Callout is a short emphasized block inside an article body.
type Callout struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TimelineItem is a single step in an ordered timeline section.
type TimelineItem struct {
	Label string `json:"label"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// StatHighlight is a single headline number with its caption.
type StatHighlight struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Caption string `json:"caption,omitempty"`
}

// Source is an attributed external reference.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// GuideSection is a titled list block from country-guide payloads. Sections
// are authored as a keyed map; normalization orders them by key so output is
// deterministic.
type GuideSection struct {
	Key   string   `json:"key"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// IsEmpty reports whether the payload carries nothing renderable.
func (p Payload) IsEmpty() bool {
	return len(p.FAQ) == 0 && len(p.Callouts) == 0 && len(p.Timeline) == 0 &&
		p.Stat == nil && len(p.Sources) == 0 && len(p.Sections) == 0
}

// NormalizePayload reconciles a raw CMS payload bag into the canonical shape.
// It is total (every input maps to exactly one output), deterministic, and
// idempotent: normalizing the map produced by Payload.Map yields the same
// payload. Fields that cannot be reconciled are treated as absent; a single
// malformed entry never fails its list.
func NormalizePayload(raw map[string]any) Payload {
	if len(raw) == 0 {
		return Payload{}
	}

	return Payload{
		FAQ:      normalizeFAQ(raw["faq"]),
		Callouts: normalizeCallouts(raw["callouts"]),
		Timeline: normalizeTimeline(raw["timeline"]),
		Stat:     normalizeStat(raw["stat_highlight"]),
		Sources:  normalizeSources(raw["sources"]),
		Sections: normalizeGuideSections(raw["sections"]),
	}
}

// Map re-encodes the canonical payload as a wire bag. NormalizePayload(p.Map())
// reproduces p, which is what makes normalization idempotent end to end.
func (p Payload) Map() map[string]any {
	out := map[string]any{}
	if len(p.FAQ) > 0 {
		entries := make([]any, 0, len(p.FAQ))
		for _, e := range p.FAQ {
			entries = append(entries, map[string]any{"question": e.Question, "answer": e.Answer})
		}
		out["faq"] = entries
	}
	if len(p.Callouts) > 0 {
		entries := make([]any, 0, len(p.Callouts))
		for _, c := range p.Callouts {
			entries = append(entries, map[string]any{"title": c.Title, "body": c.Body})
		}
		out["callouts"] = entries
	}
	if len(p.Timeline) > 0 {
		entries := make([]any, 0, len(p.Timeline))
		for _, t := range p.Timeline {
			entries = append(entries, map[string]any{"label": t.Label, "title": t.Title, "body": t.Body})
		}
		out["timeline"] = entries
	}
	if p.Stat != nil {
		out["stat_highlight"] = map[string]any{
			"value":   p.Stat.Value,
			"label":   p.Stat.Label,
			"caption": p.Stat.Caption,
		}
	}
	if len(p.Sources) > 0 {
		entries := make([]any, 0, len(p.Sources))
		for _, s := range p.Sources {
			entries = append(entries, map[string]any{"title": s.Title, "url": s.URL})
		}
		out["sources"] = entries
	}
	if len(p.Sections) > 0 {
		sections := map[string]any{}
		for _, s := range p.Sections {
			sections[s.Key] = map[string]any{"title": s.Title, "items": toAnySlice(s.Items)}
		}
		out["sections"] = sections
	}
	return out
}

// normalizeFAQ accepts both legacy wire shapes, {question,answer} and {q,a},
// preferring the long form when both are present. Partially-filled entries
// are dropped.
func normalizeFAQ(raw any) []FaqEntry {
	items := asMapSlice(raw)
	if len(items) == 0 {
		return nil
	}
	entries := make([]FaqEntry, 0, len(items))
	for _, item := range items {
		question := stringField(item, "question")
		if question == "" {
			question = stringField(item, "q")
		}
		answer := stringField(item, "answer")
		if answer == "" {
			answer = stringField(item, "a")
		}
		if question == "" || answer == "" {
			continue
		}
		entries = append(entries, FaqEntry{Question: question, Answer: answer})
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func normalizeCallouts(raw any) []Callout {
	items := asMapSlice(raw)
	if len(items) == 0 {
		return nil
	}
	entries := make([]Callout, 0, len(items))
	for _, item := range items {
		title := stringField(item, "title")
		body := stringField(item, "body")
		if body == "" {
			body = stringField(item, "content")
		}
		if title == "" && body == "" {
			continue
		}
		entries = append(entries, Callout{Title: title, Body: body})
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func normalizeTimeline(raw any) []TimelineItem {
	items := asMapSlice(raw)
	if len(items) == 0 {
		return nil
	}
	entries := make([]TimelineItem, 0, len(items))
	for _, item := range items {
		entry := TimelineItem{
			Label: stringField(item, "label"),
			Title: stringField(item, "title"),
			Body:  stringField(item, "body"),
		}
		if entry.Label == "" {
			entry.Label = stringField(item, "date")
		}
		if entry.Title == "" && entry.Body == "" {
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func normalizeStat(raw any) *StatHighlight {
	item, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	stat := StatHighlight{
		Value:   stringField(item, "value"),
		Label:   stringField(item, "label"),
		Caption: stringField(item, "caption"),
	}
	if stat.Value == "" || stat.Label == "" {
		return nil
	}
	return &stat
}

func normalizeSources(raw any) []Source {
	items := asMapSlice(raw)
	if len(items) == 0 {
		return nil
	}
	entries := make([]Source, 0, len(items))
	for _, item := range items {
		src := Source{
			Title: stringField(item, "title"),
			URL:   stringField(item, "url"),
		}
		if src.URL == "" {
			continue
		}
		if src.Title == "" {
			src.Title = src.URL
		}
		entries = append(entries, src)
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func normalizeGuideSections(raw any) []GuideSection {
	keyed, ok := raw.(map[string]any)
	if !ok || len(keyed) == 0 {
		return nil
	}
	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sections := make([]GuideSection, 0, len(keys))
	for _, key := range keys {
		item, ok := keyed[key].(map[string]any)
		if !ok {
			continue
		}
		section := GuideSection{
			Key:   key,
			Title: stringField(item, "title"),
			Items: asStringSlice(item["items"]),
		}
		if section.Title == "" || len(section.Items) == 0 {
			continue
		}
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		return nil
	}
	return sections
}

func stringField(item map[string]any, key string) string {
	value, ok := item[key]
	if !ok {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(str)
}

func asMapSlice(raw any) []map[string]any {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if item, ok := entry.(map[string]any); ok {
			items = append(items, item)
		}
	}
	return items
}

func asStringSlice(raw any) []string {
	switch list := raw.(type) {
	case []string:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			str, ok := item.(string)
			if !ok {
				continue
			}
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}

func toAnySlice(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
