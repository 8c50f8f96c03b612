package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zedkit/internal/locator"
	"github.com/thoreinstein/zedkit/internal/logging"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered Zed installations",
	Long: `List Zed installations discovered on this machine.

Discovery probes the conventional install locations for the current OS
plus any search.extra_paths from the configuration. Each entry shows the
display name, the version (0.0.0 when none could be read), and the path
the installation was found at.

Examples:
  # List all installations
  zedkit list

  # Output as JSON
  zedkit list --json`,
	RunE: runList,
}

// installationJSON represents an installation in JSON output format.
type installationJSON struct {
	Name            string `json:"name"`
	Path            string `json:"path"`
	Version         string `json:"version"`
	LanguageVersion string `json:"language_version"`
}

func runList(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	installs := newLocator(logger).Discover()
	return outputInstallations(os.Stdout, installs)
}

// outputInstallations writes the installations in the selected format.
func outputInstallations(w io.Writer, installs []locator.Installation) error {
	if listJSON {
		return outputInstallationsJSON(w, installs)
	}
	return outputInstallationsTabular(w, installs)
}

// outputInstallationsJSON outputs installations in JSON format.
func outputInstallationsJSON(w io.Writer, installs []locator.Installation) error {
	out := make([]installationJSON, len(installs))
	for i, inst := range installs {
		out[i] = installationJSON{
			Name:            inst.Name,
			Path:            inst.Path,
			Version:         inst.Version.String(),
			LanguageVersion: inst.LanguageVersion,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// outputInstallationsTabular outputs installations as an aligned table.
func outputInstallationsTabular(w io.Writer, installs []locator.Installation) error {
	if len(installs) == 0 {
		fmt.Fprintln(w, "No Zed installation found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sVERSION%s\t%sPATH%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, inst := range installs {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s%s%s\n",
			colorGreen, inst.Name, colorReset,
			inst.Version.String(),
			colorGray, inst.Path, colorReset)
	}

	return tw.Flush()
}
