package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Names of the per-project settings artifact Zed reads.
const (
	// SettingsDirName is the directory Zed looks for inside a project root.
	SettingsDirName = ".zed"

	// SettingsFileName is the workspace settings file inside SettingsDirName.
	SettingsFileName = "settings.json"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ProjectDirPerm is the permission for directories created inside a project
// tree, such as .zed. Project artifacts are world-readable by convention.
const ProjectDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// BinHome returns the XDG directory for user-installed executables.
// On Linux and macOS this is ~/.local/bin.
func BinHome() string {
	return xdg.BinHome
}

// AppConfigDir returns zedkit's own configuration directory:
// <ConfigHome>/zedkit/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), "zedkit")
}

// AppConfigFile returns the path of zedkit's configuration file:
// <ConfigHome>/zedkit/config.yaml
func AppConfigFile() string {
	return filepath.Join(AppConfigDir(), "config.yaml")
}

// ProjectSettingsDir returns the Zed settings directory for a project:
// <projectRoot>/.zed/
//
// Returns an empty string for an empty projectRoot.
func ProjectSettingsDir(projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	return filepath.Join(projectRoot, SettingsDirName)
}

// ProjectSettingsPath returns the Zed workspace settings file for a project:
// <projectRoot>/.zed/settings.json
//
// Returns an empty string for an empty projectRoot.
func ProjectSettingsPath(projectRoot string) string {
	dir := ProjectSettingsDir(projectRoot)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, SettingsFileName)
}
