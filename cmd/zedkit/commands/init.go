package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zedkit/internal/backup"
	"github.com/thoreinstein/zedkit/internal/config"
	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/logging"
	"github.com/thoreinstein/zedkit/internal/paths"
	"github.com/thoreinstein/zedkit/internal/prompt"
	"github.com/thoreinstein/zedkit/pkg/fileutil"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Non-interactive mode, accept all defaults")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize zedkit configuration",
	Long: `Bootstrap the zedkit configuration file.

Creates ~/.config/zedkit/config.yaml with default values and reports
which Zed installations discovery can currently see. The generated file
documents the available keys (search.extra_paths, zed.path).`,
	Example: `  # Initialize with interactive prompts
  zedkit init

  # Initialize non-interactively, accepting defaults
  zedkit init --yes

  # Force overwrite existing configuration
  zedkit init --force

  See Also: zedkit doctor`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	// Report what discovery sees so a missing install is caught early
	installs := newLocator(logger).Discover()
	fmt.Printf("Discovered %d Zed installation(s)\n", len(installs))
	for _, inst := range installs {
		fmt.Printf("  %s  %s\n", inst.Name, inst.Path)
	}

	return initAt(os.Stdout, paths.AppConfigFile())
}

// initAt writes the default configuration to configPath, prompting
// before creation unless --yes was given.
func initAt(w io.Writer, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	// Interactive confirmation
	if !initYes {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "This will create:")
		fmt.Fprintf(w, "  %s\n", configPath)
		fmt.Fprintln(w)

		if !confirm("Proceed?") {
			fmt.Fprintln(w, "Aborted")
			return nil
		}
	}

	// Preserve anything --force is about to replace
	if initForce {
		bak, err := backup.File(configPath)
		if err != nil {
			return errors.Wrap(err, "backing up existing config")
		}
		if bak != "" {
			fmt.Fprintf(w, "Backed up existing config to %s\n", bak)
		}
	}

	// Create config directory
	if err := paths.EnsureDir(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	// Write config file
	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}

// confirm asks the user a yes/no question on the terminal.
func confirm(question string) bool {
	return prompt.NewPrompter().Confirm(question)
}
