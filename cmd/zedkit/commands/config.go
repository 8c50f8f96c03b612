package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/zedkit/internal/config"
	"github.com/thoreinstein/zedkit/internal/editor"
	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/paths"
	"github.com/thoreinstein/zedkit/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage zedkit configuration",
	Long: `Manage zedkit configuration stored in ~/.config/zedkit/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  zedkit config

  # Get a specific value
  zedkit config get zed.path

  # Pin a specific Zed binary
  zedkit config set zed.path /opt/zed/bin/zed

See Also: zedkit init, zedkit doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. Array values are printed one per line.`,
	Example: `  # Get the pinned Zed binary
  zedkit config get zed.path

  # Get extra search paths
  zedkit config get search.extra_paths

See Also: zedkit config set, zedkit config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

For search.extra_paths, use comma-separated directories. Path values
are validated before the file is written.`,
	Example: `  # Pin a specific Zed binary
  zedkit config set zed.path /opt/zed/bin/zed

  # Add extra directories to discovery
  zedkit config set search.extra_paths /opt/zed/bin,/srv/tools/zed

See Also: zedkit config get, zedkit config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  zedkit config list

See Also: zedkit config get, zedkit config set`,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, falling back to $VISUAL, then nano, then vi.
If no configuration file exists, prints an error suggesting to run 'zedkit init'.`,
	Example: `  # Open config in default editor
  zedkit config edit

  # Open with specific editor
  EDITOR=nano zedkit config edit

See Also: zedkit config list, zedkit init`,
	RunE: runConfigEdit,
}

func runConfigGet(_ *cobra.Command, args []string) error {
	key := args[0]

	// Check if value exists
	if !viper.IsSet(key) {
		fmt.Println("not set")
		return nil
	}

	// Get the value and determine its type
	val := viper.Get(key)

	switch v := val.(type) {
	case []any:
		// Array values - print one per line
		for _, item := range v {
			fmt.Println(item)
		}
	case []string:
		// String slice - print one per line
		for _, item := range v {
			fmt.Println(item)
		}
	default:
		// Scalar values
		fmt.Println(viper.GetString(key))
	}

	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Handle special keys
	switch key {
	case "search.extra_paths":
		dirs := parsePathList(value)
		if len(dirs) == 0 {
			return errors.New("no paths specified")
		}

		candidate := config.Default()
		candidate.Search.ExtraPaths = dirs
		if errs := config.Validate(candidate); len(errs) > 0 {
			return errs[0]
		}

		viper.Set(key, dirs)
		if err := writeConfig(); err != nil {
			return err
		}
		fmt.Printf("Set %s = %v\n", key, dirs)

	case "zed.path":
		candidate := config.Default()
		candidate.Zed.Path = value
		if errs := config.Validate(candidate); len(errs) > 0 {
			return errs[0]
		}

		viper.Set(key, value)
		if err := writeConfig(); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)

	default:
		viper.Set(key, value)
		if err := writeConfig(); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
	}

	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(currentConfigMap())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Print(string(data))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	configPath := paths.AppConfigFile()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "config file %s", configPath),
			"Run: zedkit init",
		)
	}

	return editor.Open(configPath)
}

// parsePathList splits a comma-separated string into a slice of paths.
func parsePathList(s string) []string {
	var dirs []string
	for p := range strings.SplitSeq(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// currentConfigMap mirrors the viper state as the nested structure the
// config file uses on disk.
func currentConfigMap() map[string]any {
	return map[string]any{
		"version": viper.GetInt("version"),
		"search": map[string]any{
			"extra_paths": viper.GetStringSlice("search.extra_paths"),
		},
		"zed": map[string]any{
			"path": viper.GetString("zed.path"),
		},
	}
}

// writeConfig writes the current viper configuration to the config file.
func writeConfig() error {
	configPath := paths.AppConfigFile()

	if err := paths.EnsureDir(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, currentConfigMap()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}
