// Package launcher executes a resolved project's entry point and proxies its
// exit code back to the caller.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/callie/launchpad/internal/project"
)

// Launcher runs project entry points.
type Launcher struct {
	// Command, when non-empty, overrides entry point detection. It is run
	// with the project path appended as its final argument, before any
	// forwarded tokens.
	Command string
}

// Result captures the outcome of a completed launch.
type Result struct {
	ExitCode int
	Duration time.Duration
}

// NewLauncher creates a Launcher. command may be empty to use entry point
// detection.
func NewLauncher(command string) *Launcher {
	return &Launcher{Command: command}
}

// EntryPoint locates the executable to run inside a project directory.
// Preference order: an executable named after the directory itself (extension
// ignored), then run.sh, then the lexically first executable file. Returns an
// error when the directory holds no executable at all.
func EntryPoint(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read project directory: %w", err)
	}

	base := strings.ToLower(filepath.Base(dir))
	var executables []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&0111 == 0 {
			continue
		}
		executables = append(executables, entry.Name())
	}

	if len(executables) == 0 {
		return "", fmt.Errorf("no executable entry point in %s", dir)
	}

	sort.Strings(executables)

	for _, name := range executables {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.ToLower(stem) == base {
			return filepath.Join(dir, name), nil
		}
	}
	for _, name := range executables {
		if name == "run.sh" {
			return filepath.Join(dir, name), nil
		}
	}

	return filepath.Join(dir, executables[0]), nil
}

// BuildCommandArgs constructs the argv for launching the given project.
// Trailing tokens are forwarded verbatim; they are never interpreted here.
func (l *Launcher) BuildCommandArgs(record project.Record, extra []string) ([]string, error) {
	if l.Command != "" {
		argv := strings.Fields(l.Command)
		argv = append(argv, record.Path)
		return append(argv, extra...), nil
	}

	entry, err := EntryPoint(record.Path)
	if err != nil {
		return nil, err
	}

	return append([]string{entry}, extra...), nil
}

// Launch runs the project's entry point with inherited stdio and returns its
// exit code. A process that starts but exits non-zero is a normal Result;
// failing to start at all is the one fatal error in the launch flow.
func (l *Launcher) Launch(ctx context.Context, record project.Record, extra []string) (*Result, error) {
	argv, err := l.BuildCommandArgs(record, extra)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = record.Path
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	startTime := time.Now()
	err = cmd.Run()

	result := &Result{
		Duration: time.Since(startTime),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("launch %s: %w", record.Name, err)
	}

	return result, nil
}
