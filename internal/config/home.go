package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Home returns the launchpad home directory.
// Priority order:
//  1. LAUNCHPAD_HOME environment variable (if set)
//  2. ~/.launchpad
//
// The directory is created if it doesn't exist.
func Home() (string, error) {
	if home := os.Getenv("LAUNCHPAD_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create launchpad home directory: %w", err)
		}
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}

	home := filepath.Join(userHome, ".launchpad")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create launchpad home directory: %w", err)
	}

	return home, nil
}
