package core

import (
	"errors"
	"strings"
)

// Sentinel errors shared by the services. Handlers map these onto the
// stable API error codes.
var (
	// ErrPermissionDenied means the caller is authenticated but not allowed
	// to touch the target resource. It deliberately carries no detail about
	// whether the resource exists.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound means the resource does not exist, reported only to
	// callers already authorized for its family.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries the complete list of violated rules from a
// validator run. The joined message is the client-facing invalid-argument
// detail.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}
