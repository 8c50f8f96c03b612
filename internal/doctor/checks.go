package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/thoreinstein/zedkit/internal/config"
	"github.com/thoreinstein/zedkit/internal/locator"
	"github.com/thoreinstein/zedkit/internal/paths"
)

// InstallationCheck verifies that at least one Zed installation is discoverable.
type InstallationCheck struct {
	loc *locator.Locator
}

// Ensure InstallationCheck implements Check interface.
var _ Check = (*InstallationCheck)(nil)

// NewInstallationCheck creates a new installation discovery check.
func NewInstallationCheck(loc *locator.Locator) *InstallationCheck {
	return &InstallationCheck{loc: loc}
}

// Name returns the unique identifier for this check.
func (c *InstallationCheck) Name() string {
	return "installations"
}

// Category returns the grouping for this check.
func (c *InstallationCheck) Category() string {
	return "discovery"
}

// Run executes the installation discovery check and returns its result.
func (c *InstallationCheck) Run() *CheckResult {
	installs := c.loc.Discover()

	// Build details with one entry per discovered installation
	found := make([]map[string]any, 0, len(installs))
	for _, inst := range installs {
		found = append(found, map[string]any{
			"name":    inst.Name,
			"path":    inst.Path,
			"version": inst.Version.String(),
		})
	}

	details := map[string]any{
		"installations": found,
		"total":         len(installs),
	}

	if len(installs) == 0 {
		// Nothing to launch - every open invocation would fail
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "no Zed installation found",
			Details:  details,
			FixHint:  "install Zed from https://zed.dev or set zed.path in " + paths.AppConfigFile(),
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d Zed installation(s) found", len(installs)),
		Details:  details,
	}
}

// CandidateCheck reports which discovery candidate paths exist on disk.
// It is informational: existence alone does not make a path a valid
// installation, but the list shows where discovery is looking.
type CandidateCheck struct {
	loc *locator.Locator
}

// Ensure CandidateCheck implements Check interface.
var _ Check = (*CandidateCheck)(nil)

// NewCandidateCheck creates a new candidate path check.
func NewCandidateCheck(loc *locator.Locator) *CandidateCheck {
	return &CandidateCheck{loc: loc}
}

// Name returns the unique identifier for this check.
func (c *CandidateCheck) Name() string {
	return "candidate-paths"
}

// Category returns the grouping for this check.
func (c *CandidateCheck) Category() string {
	return "discovery"
}

// Run executes the candidate path check and returns its result.
func (c *CandidateCheck) Run() *CheckResult {
	candidates := c.loc.Candidates()

	existing := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}

	details := map[string]any{
		"probed":   candidates,
		"existing": existing,
		"total":    len(candidates),
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  fmt.Sprintf("probed %d candidate path(s), %d exist", len(candidates), len(existing)),
		Details:  details,
	}
}

// ConfigCheck validates the loaded zedkit configuration.
type ConfigCheck struct {
	cfg      *config.Config
	loadErr  error
	fileUsed string
}

// Ensure ConfigCheck implements Check interface.
var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check over an already-loaded configuration.
// loadErr carries the error from config.Load, fileUsed the resolved config
// file path (empty when running on defaults).
func NewConfigCheck(cfg *config.Config, loadErr error, fileUsed string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, loadErr: loadErr, fileUsed: fileUsed}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the configuration check and returns its result.
func (c *ConfigCheck) Run() *CheckResult {
	details := map[string]any{}
	if c.fileUsed != "" {
		details["file"] = c.fileUsed
	}

	if c.loadErr != nil || c.cfg == nil {
		msg := "configuration not loaded"
		if c.loadErr != nil {
			details["error"] = c.loadErr.Error()
			msg = "configuration failed to load"
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  msg,
			Details:  details,
			FixHint:  "run `zedkit init` to regenerate " + paths.AppConfigFile(),
		}
	}

	if errs := config.Validate(c.cfg); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, err := range errs {
			msgs = append(msgs, err.Error())
		}
		details["errors"] = msgs
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("configuration has %d validation error(s)", len(errs)),
			Details:  details,
			FixHint:  "edit " + paths.AppConfigFile(),
		}
	}

	// A pinned path that no longer exists breaks `zedkit open`
	if pin := c.cfg.Zed.Path; pin != "" {
		details["zed_path"] = pin
		if _, err := os.Stat(pin); err != nil {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityWarning,
				Message:  "pinned zed.path does not exist: " + pin,
				Details:  details,
				FixHint:  "update zed.path in " + paths.AppConfigFile() + " or remove it to use discovery",
			}
		}
	}

	if c.fileUsed == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no config file found, using defaults",
			Details:  details,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "configuration valid",
		Details:  details,
	}
}

// SettingsCheck verifies the project's Zed settings artifact.
type SettingsCheck struct {
	SettingsFixer

	projectDir string
}

// Ensure SettingsCheck implements Check and Fixer interfaces.
var (
	_ Check = (*SettingsCheck)(nil)
	_ Fixer = (*SettingsCheck)(nil)
)

// NewSettingsCheck creates a settings check for the given project directory.
func NewSettingsCheck(projectDir string) *SettingsCheck {
	return &SettingsCheck{projectDir: projectDir}
}

// Name returns the unique identifier for this check.
func (c *SettingsCheck) Name() string {
	return "project-settings"
}

// Category returns the grouping for this check.
func (c *SettingsCheck) Category() string {
	return "settings"
}

// Run executes the settings check and returns its result.
func (c *SettingsCheck) Run() *CheckResult {
	path := paths.ProjectSettingsPath(c.projectDir)
	details := map[string]any{"path": path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c.setTarget(c.projectDir, true)
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "project settings not materialized",
			Details:  details,
			Fixable:  true,
			FixHint:  "run `zedkit settings init` in the project root",
		}
	}
	if err != nil {
		details["error"] = err.Error()
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot read settings file: %v", err),
			Details:  details,
		}
	}

	c.setTarget(c.projectDir, false)

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		details["error"] = err.Error()
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "settings file is not valid JSON",
			Details:  details,
			FixHint:  "fix or remove " + path + " and run `zedkit settings init` again",
		}
	}

	// User content is never rewritten, so a missing key is informational
	exclusions, ok := parsed["file_scan_exclusions"].([]any)
	if !ok {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "settings file present without file_scan_exclusions",
			Details:  details,
		}
	}

	details["exclusions"] = len(exclusions)
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("settings file present with %d exclusion(s)", len(exclusions)),
		Details:  details,
	}
}

// OpenHelperCheck verifies the macOS open(1) helper used for bundle launches.
type OpenHelperCheck struct {
	goos     string
	lookPath func(string) (string, error)
}

// Ensure OpenHelperCheck implements Check interface.
var _ Check = (*OpenHelperCheck)(nil)

// NewOpenHelperCheck creates a launch helper check for the current system.
func NewOpenHelperCheck() *OpenHelperCheck {
	return &OpenHelperCheck{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *OpenHelperCheck) Name() string {
	return "launch-helper"
}

// Category returns the grouping for this check.
func (c *OpenHelperCheck) Category() string {
	return "launch"
}

// Run executes the launch helper check and returns its result.
func (c *OpenHelperCheck) Run() *CheckResult {
	if c.goos != "darwin" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "binaries are launched directly, no helper required",
		}
	}

	path, err := c.lookPath("open")
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "open helper not found; .app bundles cannot be launched",
			FixHint:  "ensure /usr/bin/open is on PATH",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "open helper available",
		Details:  map[string]any{"path": path},
	}
}
