package minisite

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that no counselor owns the requested public
// profile name. Callers render a 404 and never retry.
var ErrNotFound = errors.New("mini-site not found")

// ResolveError wraps a failure of the primary counselor lookup.
type ResolveError struct {
	ProfileName string
	Err         error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve mini-site %q: %v", e.ProfileName, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }
