// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/config"
	"github.com/radio4000/r4/internal/logging"
	"github.com/radio4000/r4/internal/ui"
)

var (
	// Global flags
	configPath   string
	dbPathFlag   string
	logLevelFlag string

	// Resolved values
	resolvedConfigPath string
	resolvedDBPath     string
	cfg                *config.Config

	// Command output goes here; tests swap it for a buffer.
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "r4",
	Short: "r4 - browse radio4000 channels and tracks offline",
	Long: `r4 keeps a local copy of radio4000 channels and tracks and lets you
search them with an incremental fuzzy matcher.

Import an export once, then search, filter and browse without a network.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		// config subcommands must work with a broken config file.
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.LogLevel
		if strings.TrimSpace(logLevelFlag) != "" {
			level = logLevelFlag
		}
		logging.Setup(level, cfg.LogFormat)
		ui.ConfigureTheme(cfg.UI.Accent)

		if strings.TrimSpace(dbPathFlag) != "" {
			resolvedDBPath = dbPathFlag
		} else {
			resolvedDBPath = cfg.DatabasePath()
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the SQLite data file (overrides database in config)")
	rootCmd.PersistentFlags().VarP(&outputFormat, "format", "f", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (same as --format json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level for stderr: debug, info, warn, error")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolvePath(configPath)

	loadedCfg, err := config.LoadFrom(resolvedPath)
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, resolvedPath, nil
}

// commandContext returns the command's context, which is nil when RunE is
// called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil {
		if ctx := cmd.Context(); ctx != nil {
			return ctx
		}
	}
	return context.Background()
}
