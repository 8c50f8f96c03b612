package doctor

import (
	"github.com/thoreinstein/zedkit/internal/paths"
	"github.com/thoreinstein/zedkit/internal/settings"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
// Checks that implement Fixer can fix issues they detect when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run() to check if there are issues that can be fixed.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Returns a slice of FixResult indicating what was fixed or why it couldn't be fixed.
	// Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file or directory that was targeted for fixing.
	Path string

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool

	// Description explains what was fixed or why it couldn't be fixed.
	Description string

	// Error contains the error if the fix failed.
	Error error
}

// SettingsFixer materializes a missing project settings file.
// It is embedded in SettingsCheck to provide fix capability.
type SettingsFixer struct {
	projectDir string
	missing    bool
}

// CanFix returns true if the settings file is missing and can be created.
func (f *SettingsFixer) CanFix() bool {
	return f.missing && f.projectDir != ""
}

// Fix materializes the default settings file.
// Returns a single FixResult describing the outcome.
func (f *SettingsFixer) Fix() []FixResult {
	if !f.CanFix() {
		return nil
	}

	result := FixResult{
		Path: paths.ProjectSettingsPath(f.projectDir),
	}

	if err := settings.Ensure(f.projectDir); err != nil {
		result.Description = "failed to create settings file"
		result.Error = err
		return []FixResult{result}
	}

	f.missing = false
	result.Fixed = true
	result.Description = "created with default file_scan_exclusions"
	return []FixResult{result}
}

// setTarget stores the project directory and whether the settings file is missing.
// This is called internally by SettingsCheck after running.
func (f *SettingsFixer) setTarget(projectDir string, missing bool) {
	f.projectDir = projectDir
	f.missing = missing
}

// CountFixable returns the number of fixable issues.
func (f *SettingsFixer) CountFixable() int {
	if f.CanFix() {
		return 1
	}
	return 0
}
