// Package project implements discovery and resolution of project directories.
//
// A project is an immediate subdirectory of a configured root. Every
// invocation rescans the root from scratch; there is no persistent identity
// between scans and no caching of results.
package project

import "time"

// Record represents one discovered project directory.
type Record struct {
	// Name is the display identifier, equal to the subdirectory's base name.
	// Unique within a single scan.
	Name string

	// Path is the filesystem path to the project directory. Immutable after
	// creation.
	Path string

	// ModifiedAt is the last-modified timestamp of the directory entry, used
	// only for recency ordering.
	ModifiedAt time.Time
}
