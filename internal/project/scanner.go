package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Logger receives per-entry diagnostics from the scanner. It matches the
// warn-level method of logger.ConsoleLogger so the scanner stays testable
// without a concrete logger.
type Logger interface {
	LogWarn(message string)
}

// Scanner discovers projects beneath a root directory. One level deep only:
// every immediate subdirectory is a candidate, nothing else is.
type Scanner struct {
	root   string
	logger Logger
}

// NewScanner creates a Scanner for the given root path.
// An empty root is reported as ErrRootNotConfigured at scan time, not here,
// so construction never fails.
func NewScanner(root string, logger Logger) *Scanner {
	return &Scanner{
		root:   root,
		logger: logger,
	}
}

// Scan enumerates the immediate subdirectories of the root and returns one
// Record per directory entry. Non-directories are excluded. Entries whose
// metadata cannot be read are skipped individually; only a failure to
// enumerate the root itself produces a ScanError.
//
// The returned slice preserves the directory enumeration order. Callers
// impose recency order afterwards with SortByRecency.
func (s *Scanner) Scan() ([]Record, error) {
	if s.root == "" {
		return nil, ErrRootNotConfigured
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &ScanError{Root: s.root, Err: err}
	}

	// Stat entries concurrently; each goroutine reads a disjoint path and
	// writes into its own slot, so no ordering or locking is needed beyond
	// the WaitGroup. The final order is re-imposed by the sorter.
	slots := make([]*Record, len(entries))
	var wg sync.WaitGroup

	for i, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()

			path := filepath.Join(s.root, name)
			info, err := os.Stat(path)
			if err != nil {
				s.warn(fmt.Sprintf("skipping %s: %v", path, err))
				return
			}

			slots[i] = &Record{
				Name:       name,
				Path:       path,
				ModifiedAt: info.ModTime(),
			}
		}(i, entry.Name())
	}

	wg.Wait()

	records := make([]Record, 0, len(entries))
	for _, r := range slots {
		if r != nil {
			records = append(records, *r)
		}
	}

	return records, nil
}

// warn logs a per-entry skip if a logger is attached.
func (s *Scanner) warn(message string) {
	if s.logger != nil {
		s.logger.LogWarn(message)
	}
}
