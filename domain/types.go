package domain

import "strings"

// Status represents lifecycle states for content and directory entities.
// The engine is read-only: statuses are authored elsewhere and only ever
// filtered on here.
type Status string

const (
	// StatusDraft indicates a record still under preparation.
	StatusDraft Status = "draft"
	// StatusPublished identifies records visible to consumers.
	StatusPublished Status = "published"
	// StatusArchived marks records retained for history but not publicly visible.
	StatusArchived Status = "archived"
)

// NormalizeStatus coerces arbitrary status strings into a known representation.
// Unknown values normalize to draft so they can never widen a published-only
// filter.
func NormalizeStatus(input string) Status {
	status := Status(strings.ToLower(strings.TrimSpace(input)))
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
		return status
	default:
		return StatusDraft
	}
}

// IsPublished reports whether the status makes a record publicly visible.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}
