package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/zedkit/internal/doctor"
	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/logging"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"attempt to fix issues automatically")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose discovery and configuration issues",
	Long: `Run diagnostic checks on the zedkit environment.

Verifies that a Zed installation can be discovered, that the
configuration file loads and validates, that project settings are
materialized, and that the platform launch helper is available.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Run all checks
  zedkit doctor

  # Show every check, including passed ones
  zedkit doctor --verbose

  # Create the missing project settings file
  zedkit doctor --fix

  See Also: zedkit init, zedkit settings init`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	projectDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "resolving working directory")
	}

	loc := newLocator(logger)
	settingsCheck := doctor.NewSettingsCheck(projectDir)

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigCheck(cfg, configLoadErr, viper.ConfigFileUsed()))
	runner.AddCheck(doctor.NewInstallationCheck(loc))
	runner.AddCheck(doctor.NewCandidateCheck(loc))
	runner.AddCheck(settingsCheck)
	runner.AddCheck(doctor.NewOpenHelperCheck())

	report := runner.Run()

	if doctorFix {
		fixOut := io.Writer(os.Stdout)
		if doctorQuiet || doctorJSON {
			fixOut = io.Discard
		}
		if applyFixes(fixOut, settingsCheck) {
			// Re-run so the report reflects the repaired state
			report = runner.Run()
		}
	}

	if err := outputDoctorReport(os.Stdout, report); err != nil {
		return err
	}

	// Determine exit code based on results
	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, 2)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, 1)
	}
	return nil
}

// applyFixes runs every fixer that reports a fixable issue and prints
// the outcome of each attempt. Returns true if anything was repaired.
func applyFixes(w io.Writer, fixers ...doctor.Fixer) bool {
	fixed := false
	for _, f := range fixers {
		if !f.CanFix() {
			continue
		}
		for _, res := range f.Fix() {
			if res.Error != nil {
				fmt.Fprintf(w, "%s fix %s: %s: %v\n",
					color.RedString("✗"), res.Path, res.Description, res.Error)
				continue
			}
			fmt.Fprintf(w, "%s fix %s: %s\n",
				color.GreenString("✓"), res.Path, res.Description)
			fixed = true
		}
	}
	return fixed
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(w, report)
	}

	return outputDoctorText(w, report)
}

func outputDoctorJSON(w io.Writer, report *doctor.DoctorReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) error {
	// In normal mode, show only errors and warnings
	// In verbose mode, show all checks
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		icon := statusIcon(result.Status)
		fmt.Fprintf(w, "%s [%s] %s: %s\n", icon, result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	// Print summary
	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

// errDoctorWarnings is the sentinel behind exit code 1.
var errDoctorWarnings = errors.New("warnings found")

// errDoctorErrors is the sentinel behind exit code 2.
var errDoctorErrors = errors.New("errors found")
