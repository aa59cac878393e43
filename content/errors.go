package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks an entity absent after both retrieval tiers.
	ErrNotFound = errors.New("content: not found")
	// ErrSlugRequired marks a lookup attempted without a slug.
	ErrSlugRequired = errors.New("content: slug is required")
	// ErrSlugInvalid marks a slug containing characters outside the slug rules.
	ErrSlugInvalid = errors.New("content: slug contains invalid characters")
	// ErrKindMismatch marks a gateway record of a different kind than requested.
	ErrKindMismatch = errors.New("content: entity kind mismatch")
)

// NotFoundError carries the resource and key that failed to resolve. It
// unwraps to ErrNotFound so callers can branch with errors.Is.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return fmt.Sprintf("content: %s not found", e.Resource)
	}
	return fmt.Sprintf("content: %s %q not found", e.Resource, key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
