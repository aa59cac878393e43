package directory

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectorInvalid marks a region selector that does not set exactly
	// one of country or region.
	ErrSelectorInvalid = errors.New("directory: selector must set exactly one of country or region")
	// ErrNotFound marks an absent directory entry or region.
	ErrNotFound = errors.New("directory: not found")
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
	return fmt.Sprintf("directory: %s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
