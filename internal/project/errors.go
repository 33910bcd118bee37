package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable engine conditions. Callers distinguish
// them with errors.Is; none of them is fatal at the engine boundary.
var (
	// ErrRootNotConfigured indicates no projects root was supplied.
	ErrRootNotConfigured = errors.New("projects root not configured")

	// ErrNoProjects indicates a successful scan that found zero projects.
	ErrNoProjects = errors.New("no projects found")

	// ErrNoMatch indicates a fuzzy query matched nothing above the threshold.
	ErrNoMatch = errors.New("no project matched the query")
)

// ScanError reports that the projects root itself could not be enumerated.
// Per-entry stat failures are skipped during scanning and never produce a
// ScanError.
type ScanError struct {
	Root string
	Err  error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Root, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ScanError) Unwrap() error {
	return e.Err
}
