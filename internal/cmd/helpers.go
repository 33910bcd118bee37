package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/callie/launchpad/internal/config"
	"github.com/callie/launchpad/internal/logger"
	"github.com/callie/launchpad/internal/project"
)

// loadConfig loads configuration honoring the --config and --projects-dir
// flags. Flags override file values, which override defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromHome()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if dir, _ := cmd.Flags().GetString("projects-dir"); dir != "" {
		cfg.ProjectsDir = dir
	}

	return cfg, nil
}

// newEngine builds the resolution engine for the loaded configuration.
// Scan diagnostics go to stderr so they never pollute command output.
func newEngine(cfg *config.Config) *project.Engine {
	log := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
	return project.NewEngine(cfg.ProjectsDir, cfg.MatchThreshold, log)
}

// useColor reports whether output to w should be colored.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && isatty.IsTerminal(f.Fd())
}

// completeProjectNames suggests project names for shell completion.
// Failures yield no suggestions rather than an error.
func completeProjectNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Silent engine: completion must never write diagnostics to the shell.
	engine := project.NewEngine(cfg.ProjectsDir, cfg.MatchThreshold, nil)
	return engine.Names(), cobra.ShellCompDirectiveNoFileComp
}
