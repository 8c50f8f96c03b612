package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/paths"
	"github.com/thoreinstein/zedkit/internal/settings"
)

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage per-project Zed settings",
	Long: `Manage the .zed/settings.json file of a project.

The settings file configures Zed for the project, most importantly
file_scan_exclusions: glob patterns for engine artifacts and binary
assets the editor should not index.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Materialize .zed/settings.json for a project",
	Long: `Create the project's .zed/settings.json with the default
file_scan_exclusions payload.

The directory and file are created when absent. An existing settings
file is never rewritten, so user edits always survive.

Examples:
  # Materialize settings for the current directory
  zedkit settings init

  # Materialize settings for another project
  zedkit settings init ~/src/game`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsInit,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Print the project settings file",
	Long: `Print the project's .zed/settings.json.

When the file has not been materialized yet, prints the default payload
that 'zedkit settings init' would write.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsShow,
}

func runSettingsInit(_ *cobra.Command, args []string) error {
	dir, err := projectDirArg(args)
	if err != nil {
		return err
	}
	return settingsInitAt(os.Stdout, dir)
}

// settingsInitAt materializes settings for dir, reporting what happened.
func settingsInitAt(w io.Writer, dir string) error {
	path := paths.ProjectSettingsPath(dir)
	_, statErr := os.Stat(path)

	if err := settings.Ensure(dir); err != nil {
		return errors.Wrap(err, "materializing settings")
	}

	if statErr == nil {
		fmt.Fprintf(w, "Settings already exist at %s\n", path)
	} else {
		fmt.Fprintf(w, "Created %s\n", path)
	}
	return nil
}

func runSettingsShow(_ *cobra.Command, args []string) error {
	dir, err := projectDirArg(args)
	if err != nil {
		return err
	}
	return settingsShowAt(os.Stdout, dir)
}

// settingsShowAt prints the raw settings file for dir, falling back to
// the default payload when no file exists yet.
func settingsShowAt(w io.Writer, dir string) error {
	path := paths.ProjectSettingsPath(dir)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		out, merr := json.MarshalIndent(settings.Payload(), "", "  ")
		if merr != nil {
			return errors.Wrap(merr, "encoding default settings")
		}
		_, werr := fmt.Fprintln(w, string(out))
		return werr
	}
	if err != nil {
		return errors.Wrap(err, "reading settings file")
	}

	_, err = w.Write(data)
	return err
}

// projectDirArg resolves the optional [dir] argument, defaulting to the
// current working directory.
func projectDirArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory")
	}
	return dir, nil
}
