package route

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ConfigurationError. Use errors.Is to test for
// a specific cause.
var (
	ErrDuplicatePath   = errors.New("duplicate sibling path")
	ErrMissingPath     = errors.New("missing required path")
	ErrNoFeatures      = errors.New("no feature routes registered")
	ErrInvalidPath     = errors.New("invalid path")
	ErrInvalidRedirect = errors.New("invalid redirect")

	// ErrNoMatch is returned by Resolve when no route matches a URL.
	ErrNoMatch = errors.New("no route matches")
	// ErrRedirectLoop is returned by Resolve when redirects do not settle.
	ErrRedirectLoop = errors.New("too many redirects")
)

// ConfigurationError reports a malformed route tree. It is fatal at start-up:
// the console cannot navigate with an ambiguous or incomplete table.
type ConfigurationError struct {
	Location string // URL of the sibling list or node at fault, e.g. "/modules"
	Path     string // offending path segment, when there is one
	Err      error  // one of the sentinel errors above
}

func (e *ConfigurationError) Error() string {
	loc := display(e.Location)
	if e.Path != "" {
		return fmt.Sprintf("route configuration: %v %q under %s", e.Err, e.Path, loc)
	}
	return fmt.Sprintf("route configuration: %v at %s", e.Err, loc)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErr(location, path string, err error) *ConfigurationError {
	return &ConfigurationError{Location: location, Path: path, Err: err}
}
