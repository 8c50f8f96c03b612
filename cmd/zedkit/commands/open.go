package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/launch"
	"github.com/thoreinstein/zedkit/internal/locator"
	"github.com/thoreinstein/zedkit/internal/logging"
	"github.com/thoreinstein/zedkit/internal/settings"
)

var (
	openLine     int
	openColumn   int
	openSolution string
	openPath     string
)

func init() {
	openCmd.Flags().IntVarP(&openLine, "line", "l", 1,
		"line to place the cursor on (1-based)")
	openCmd.Flags().IntVarP(&openColumn, "column", "c", 0,
		"column to place the cursor on")
	openCmd.Flags().StringVarP(&openSolution, "solution", "s", "",
		"solution or workspace file whose directory anchors the workspace")
	openCmd.Flags().StringVar(&openPath, "path", "",
		"launch this Zed binary or bundle instead of discovering one")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open [file]",
	Short: "Open a file in Zed at a given position",
	Long: `Launch Zed with the workspace added and, optionally, a file opened at
an exact line and column.

The installation to launch is resolved in order: the --path flag, the
zed.path configuration key, then discovery. When discovery finds more
than one installation on an interactive terminal, a fuzzy picker is
shown; otherwise the highest-precedence candidate is used.

Line numbers below 1 are clamped to 1 and negative columns to 0. The
editor is started without waiting for it to exit.

Examples:
  # Open the workspace only
  zedkit open

  # Open a file at line 42, column 8
  zedkit open src/main.go -l 42 -c 8

  # Anchor the workspace at a solution file's directory
  zedkit open src/player.go -s ./game.sln

  # Launch a specific installation
  zedkit open src/main.go --path /usr/local/bin/zed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	installPath, err := resolveInstallPath(logger)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Println("Aborted")
			return nil
		}
		return err
	}

	req := launch.Request{
		Line:     openLine,
		Column:   openColumn,
		Solution: openSolution,
	}
	if len(args) > 0 {
		req.File = args[0]
	}

	// The workspace being opened picks up its settings artifact on the way.
	settings.CreateExtraFiles(filepath.Dir(req.Solution), logger)

	launcher := launch.NewLauncher(logger)
	if !launcher.Open(installPath, req) {
		return errors.NewSystemError(errors.ErrLaunchFailed,
			"Run: zedkit doctor")
	}

	return nil
}

// resolveInstallPath decides which installation to launch: the --path
// flag wins, then the zed.path configuration pin, then discovery.
func resolveInstallPath(logger *slog.Logger) (string, error) {
	if openPath != "" {
		return openPath, nil
	}

	if pin := currentConfig().Zed.Path; pin != "" {
		logger.Debug("using pinned installation", "path", pin)
		return pin, nil
	}

	installs := newLocator(logger).Discover()
	if len(installs) == 0 {
		return "", errors.NewUserError(errors.ErrNoInstallation,
			"Run `zedkit doctor` to see where discovery looked")
	}

	inst, err := pickInstallation(installs)
	if err != nil {
		return "", err
	}
	return inst.Path, nil
}

// pickInstallation chooses among discovered installations. Interactive
// terminals get a fuzzy picker; otherwise the highest-precedence
// candidate wins.
func pickInstallation(installs []locator.Installation) (locator.Installation, error) {
	if len(installs) == 1 || !logging.IsTTY(os.Stdout) {
		return installs[0], nil
	}

	idx, err := fuzzyfinder.Find(
		installs,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", installs[i].Name, installs[i].Path)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			inst := installs[i]
			return fmt.Sprintf("Name: %s\nPath: %s\nVersion: %s\nLanguage: %s",
				inst.Name, inst.Path, inst.Version, inst.LanguageVersion)
		}),
	)
	if err != nil {
		return locator.Installation{}, err
	}

	return installs[idx], nil
}
