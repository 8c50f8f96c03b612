package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/zedkit/cmd"
	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/updater"
)

var updateCheck bool

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false,
		"check for a new release without installing it")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update zedkit to the latest release",
	Long: `Check GitHub releases for a newer zedkit and install it in place.

The running binary is backed up next to itself before the new release
is written, and restored if the swap fails. Release assets are verified
against the published checksums.`,
	Example: `  # Check whether a newer release exists
  zedkit update --check

  # Download and install the latest release
  zedkit update

See Also: zedkit version`,
	RunE: runUpdate,
}

func runUpdate(cobraCmd *cobra.Command, _ []string) error {
	if cmd.Version == "dev" {
		return errors.NewUserError(
			errors.New("development builds cannot self-update"),
			"Install a release build from https://github.com/thoreinstein/zedkit/releases")
	}

	ctx, cancel := context.WithTimeout(cobraCmd.Context(), updater.Timeout)
	defer cancel()

	u, err := updater.New(cmd.Version)
	if err != nil {
		return errors.Wrap(err, "initializing updater")
	}

	fmt.Println("Checking for updates...")

	release, err := u.Check(ctx)
	if err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "checking for updates"),
			"Check your network connection and try again")
	}

	if release == nil {
		fmt.Println(color.GreenString("Already up to date (%s)", cmd.Version))
		return nil
	}

	fmt.Printf("Update available: %s -> %s\n", cmd.Version, release.Version())

	if updateCheck {
		fmt.Println("Run `zedkit update` to install it")
		return nil
	}

	if !confirm("Install now?") {
		fmt.Println("Aborted")
		return nil
	}

	fmt.Printf("Downloading zedkit %s...\n", release.Version())

	if err := u.Apply(ctx, release); err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "applying update"),
			"Download manually from https://github.com/thoreinstein/zedkit/releases")
	}

	fmt.Println(color.GreenString("✓ Updated to %s", release.Version()))
	fmt.Println("Restart zedkit to use the new version.")
	return nil
}
