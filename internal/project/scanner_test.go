package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestScanFindsSubdirectories verifies that immediate subdirectories become
// records and plain files are excluded
func TestScanFindsSubdirectories(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	scanner := NewScanner(root, nil)
	records, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	seen := make(map[string]Record)
	for _, r := range records {
		seen[r.Name] = r
	}
	for _, name := range []string{"alpha", "beta", "gamma"} {
		r, ok := seen[name]
		if !ok {
			t.Errorf("missing record for %s", name)
			continue
		}
		if r.Path != filepath.Join(root, name) {
			t.Errorf("Path = %q, want %q", r.Path, filepath.Join(root, name))
		}
		if r.ModifiedAt.IsZero() {
			t.Errorf("ModifiedAt for %s is zero", name)
		}
	}
}

// TestScanNestedDirectoriesIgnored verifies discovery stays one level deep
func TestScanNestedDirectoriesIgnored(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "outer", "inner"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	scanner := NewScanner(root, nil)
	records, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "outer" {
		t.Errorf("Name = %q, want %q", records[0].Name, "outer")
	}
}

// TestScanEmptyRoot verifies a root with no entries yields an empty slice,
// not an error
func TestScanEmptyRoot(t *testing.T) {
	scanner := NewScanner(t.TempDir(), nil)
	records, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

// TestScanUnsetRoot verifies the configuration error sentinel
func TestScanUnsetRoot(t *testing.T) {
	scanner := NewScanner("", nil)
	_, err := scanner.Scan()
	if !errors.Is(err, ErrRootNotConfigured) {
		t.Errorf("Scan() error = %v, want ErrRootNotConfigured", err)
	}
}

// TestScanUnreadableRoot verifies an unenumerable root produces a ScanError
func TestScanUnreadableRoot(t *testing.T) {
	scanner := NewScanner(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	_, err := scanner.Scan()

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("Scan() error = %v, want *ScanError", err)
	}
	if scanErr.Root == "" {
		t.Error("ScanError.Root is empty")
	}
	if scanErr.Unwrap() == nil {
		t.Error("ScanError should wrap the underlying error")
	}
}

// TestScanRepeatable verifies two scans of an unchanged tree are value-equal
func TestScanRepeatable(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"one", "two"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	scanner := NewScanner(root, nil)
	first, err := scanner.Scan()
	if err != nil {
		t.Fatalf("first Scan() error = %v", err)
	}
	second, err := scanner.Scan()
	if err != nil {
		t.Fatalf("second Scan() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("scan lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
