// Package launch builds and fires the process invocations that open Zed
// on a file inside a project workspace.
package launch

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/thoreinstein/zedkit/internal/bundle"
)

// addToWorkspaceFlag is Zed's CLI flag for adding a path to the opened
// workspace instead of replacing it.
const addToWorkspaceFlag = "-a"

// openHelper launches macOS application bundles.
const openHelper = "open"

// Request describes what to open. The zero value opens the current
// directory alone.
type Request struct {
	// File is the file to open; empty opens just the project.
	File string

	// Line is the 1-based target line. Values below 1 are clamped to 1.
	Line int

	// Column is the 0-based target column. Negative values are clamped to 0.
	Column int

	// Solution is a file whose parent directory is the project to open.
	Solution string
}

// clamp normalizes the cursor position in place.
func (r *Request) clamp() {
	if r.Line < 1 {
		r.Line = 1
	}
	if r.Column < 0 {
		r.Column = 0
	}
}

// Command is a ready-to-fire process invocation.
type Command struct {
	// Path is the executable to start: the installation itself, or the
	// system open helper for macOS bundles.
	Path string

	// Args is the single opaque argument string handed to the process.
	// Every path inside it is double-quoted.
	Args string

	// ViaShell selects /bin/sh -c execution, required for `open ... --args`
	// forwarding on macOS.
	ViaShell bool

	// Dir is the working directory for the spawned process.
	Dir string
}

// Builder renders launch commands for an installation path.
type Builder struct {
	goos string
}

// NewBuilder creates a Builder for the current operating system.
func NewBuilder() *Builder {
	return &Builder{goos: runtime.GOOS}
}

// Build renders the invocation that opens req through the installation at
// installPath. Out-of-range cursor positions are clamped, not rejected.
//
// The project directory is the parent of req.Solution and always leads the
// argument string; the file, when present, follows as
// `-a "<file>":line:column`. On macOS a bundle installation is wrapped in
// `open -n -a "<bundle>" --args ...` so a fresh editor instance receives
// the forwarded arguments.
func (b *Builder) Build(installPath string, req Request) Command {
	req.clamp()

	dir := filepath.Dir(req.Solution)
	args := quote(dir)
	if req.File != "" {
		args += fmt.Sprintf(" %s %s:%d:%d", addToWorkspaceFlag, quote(req.File), req.Line, req.Column)
	}

	if b.goos == "darwin" && bundle.IsBundle(installPath) {
		return Command{
			Path:     openHelper,
			Args:     fmt.Sprintf("-n -a %s --args %s", quote(installPath), args),
			ViaShell: true,
			Dir:      dir,
		}
	}

	return Command{
		Path: installPath,
		Args: args,
		Dir:  dir,
	}
}

// quote wraps s in double quotes so paths with spaces survive the opaque
// argument string.
func quote(s string) string {
	return `"` + s + `"`
}
