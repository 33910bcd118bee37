package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/callie/launchpad/internal/match"
	"github.com/callie/launchpad/internal/paginate"
)

// HistoryConfig represents launch history configuration
type HistoryConfig struct {
	// Enabled enables recording of launches
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`
}

// LaunchConfig represents launch behavior configuration
type LaunchConfig struct {
	// Command overrides entry point detection. When set, launching runs this
	// command with the project path as its first argument.
	Command string `yaml:"command"`
}

// Config represents launchpad configuration options
type Config struct {
	// ProjectsDir is the root directory scanned for projects. The engine
	// receives it as an explicit parameter; nothing reads it implicitly.
	ProjectsDir string `yaml:"projects_dir"`

	// PageSize is the number of projects per listing page
	PageSize int `yaml:"page_size"`

	// MatchThreshold is the minimum similarity score for fuzzy matches
	MatchThreshold float64 `yaml:"match_threshold"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// History contains launch history configuration
	History HistoryConfig `yaml:"history"`

	// Launch contains launch behavior configuration
	Launch LaunchConfig `yaml:"launch"`
}

// DefaultConfig returns a Config with sensible default values.
// The LAUNCHPAD_PROJECTS_DIR environment variable seeds ProjectsDir when set.
func DefaultConfig() *Config {
	return &Config{
		ProjectsDir:    os.Getenv("LAUNCHPAD_PROJECTS_DIR"),
		PageSize:       paginate.DefaultPageSize,
		MatchThreshold: match.DefaultThreshold,
		LogLevel:       "info",
		History: HistoryConfig{
			Enabled: true,
		},
		Launch: LaunchConfig{},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.ProjectsDir != "" {
		cfg.ProjectsDir = fileCfg.ProjectsDir
	}
	if fileCfg.PageSize != 0 {
		cfg.PageSize = fileCfg.PageSize
	}
	if fileCfg.MatchThreshold != 0 {
		cfg.MatchThreshold = fileCfg.MatchThreshold
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.History.DBPath != "" {
		cfg.History.DBPath = fileCfg.History.DBPath
	}
	// Enabled defaults to true; an explicit "enabled: false" must stick, so
	// re-decode just that key to tell "absent" apart from "false".
	cfg.History.Enabled = historyEnabled(data)
	if fileCfg.Launch.Command != "" {
		cfg.Launch.Command = fileCfg.Launch.Command
	}

	return cfg, nil
}

// LoadConfigFromHome loads config.yaml from the launchpad home directory,
// falling back to defaults when absent.
func LoadConfigFromHome() (*Config, error) {
	home, err := Home()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(filepath.Join(home, "config.yaml"))
	if err != nil {
		return nil, err
	}

	if cfg.History.DBPath == "" {
		cfg.History.DBPath = filepath.Join(home, "history.db")
	}

	return cfg, nil
}

// historyEnabled reports the history.enabled value in the raw YAML,
// defaulting to true when the key is absent.
func historyEnabled(data []byte) bool {
	var probe struct {
		History struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"history"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil || probe.History.Enabled == nil {
		return true
	}
	return *probe.History.Enabled
}
