// Package settings materializes the per-project .zed/settings.json
// artifact that keeps Zed's file scanner away from engine caches, build
// output, and binary assets.
package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/paths"
	"github.com/thoreinstein/zedkit/pkg/fileutil"
)

// fileScanExclusions is the payload written into new settings files.
// Existing files are never touched, so changes here only affect projects
// initialized afterwards.
var fileScanExclusions = []string{
	"**/.git",
	"**/.svn",
	"**/.hg",
	"**/CVS",
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/.godot",
	"**/.import",
	"**/bin",
	"**/obj",
	"**/*.import",
	"**/*.uid",
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.webp",
	"**/*.svg",
	"**/*.ogg",
	"**/*.wav",
	"**/*.mp3",
	"**/*.ttf",
	"**/*.otf",
	"**/*.glb",
	"**/*.gltf",
}

// Payload returns the default settings document. The result is a fresh
// copy; callers may modify it freely.
func Payload() map[string][]string {
	return map[string][]string{
		"file_scan_exclusions": slices.Clone(fileScanExclusions),
	}
}

// Ensure creates <projectDir>/.zed/settings.json unless it already exists.
// The .zed directory is created as needed. An existing settings file is
// left untouched regardless of its content: the file belongs to the user
// once it exists.
func Ensure(projectDir string) error {
	if projectDir == "" {
		return errors.Wrap(paths.ErrInvalidPath, "empty project directory")
	}
	projectDir = filepath.Clean(projectDir)

	dir := paths.ProjectSettingsDir(projectDir)
	if err := paths.EnsureDir(dir, paths.ProjectDirPerm); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}

	file := paths.ProjectSettingsPath(projectDir)
	if _, err := os.Stat(file); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "checking settings file")
	}

	if err := fileutil.AtomicWriteJSON(file, Payload()); err != nil {
		return errors.Wrap(err, "writing settings file")
	}
	return nil
}

// CreateExtraFiles materializes the settings artifact, best effort.
// Failures are logged at debug level and never propagated; a project that
// cannot take the artifact still opens fine.
func CreateExtraFiles(projectDir string, logger *slog.Logger) {
	if err := Ensure(projectDir); err != nil {
		logger.Debug("skipping settings artifact", "dir", projectDir, "error", err)
	}
}
