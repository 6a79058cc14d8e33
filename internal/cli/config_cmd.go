package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/config"
	"github.com/radio4000/r4/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the r4 config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolvePath(configPath)
		_, statErr := os.Stat(path)

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"path":   path,
				"exists": statErr == nil,
			}, nil)
			return nil
		}
		fmt.Fprintln(stdout, path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Fix the file or run 'r4 config set'")
		}

		data := configData(loaded, path)
		if isStructuredOutput() {
			outputSuccess(data, nil)
			return nil
		}

		table := ui.NewTable(2)
		table.AddRow(ui.Muted.Render("config"), path)
		table.AddRow(ui.Muted.Render("database"), loaded.DatabasePath())
		table.AddRow(ui.Muted.Render("default_limit"), fmt.Sprintf("%d", loaded.DefaultLimit))
		table.AddRow(ui.Muted.Render("log_level"), orDefault(loaded.LogLevel, "warn"))
		table.AddRow(ui.Muted.Render("log_format"), orDefault(loaded.LogFormat, "text"))
		table.AddRow(ui.Muted.Render("ui.accent"), orDefault(loaded.UI.Accent, "default"))
		fmt.Fprint(stdout, table.String())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolvePath(configPath)
		created, err := config.CreateDefault(path)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"path":    path,
				"created": created,
			}, nil)
			return nil
		}
		if created {
			fmt.Fprintln(stdout, ui.Successf("Created %s", path))
		} else {
			fmt.Fprintln(stdout, ui.Hint("Config already exists: "+path))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config value",
	Long: fmt.Sprintf(`Sets one value and rewrites the config file.

Keys: %s

Examples:
  r4 config set default_limit 20
  r4 config set ui.accent '#7aa2f7'`, strings.Join(config.Keys, ", ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if err := loaded.Set(args[0], args[1]); err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if err := config.SaveTo(path, loaded); err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(configData(loaded, path), nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Set %s in %s", args[0], path))
		return nil
	},
}

func configData(c *config.Config, path string) map[string]interface{} {
	return map[string]interface{}{
		"config_path":   path,
		"database":      c.DatabasePath(),
		"default_limit": c.DefaultLimit,
		"log_level":     strings.TrimSpace(c.LogLevel),
		"log_format":    strings.TrimSpace(c.LogFormat),
		"ui": map[string]interface{}{
			"accent": strings.TrimSpace(c.UI.Accent),
		},
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
