package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("expectations use POSIX paths")
	}
}

func TestRequest_Clamp(t *testing.T) {
	tests := []struct {
		name       string
		line       int
		column     int
		wantLine   int
		wantColumn int
	}{
		{"negative line clamps to 1", -5, 3, 1, 3},
		{"zero line clamps to 1", 0, 0, 1, 0},
		{"valid line kept", 10, 0, 10, 0},
		{"negative column clamps to 0", 1, -1, 1, 0},
		{"zero column kept", 1, 0, 1, 0},
		{"valid column kept", 1, 42, 1, 42},
		{"both out of range", -5, -1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{Line: tt.line, Column: tt.column}
			r.clamp()
			if r.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", r.Line, tt.wantLine)
			}
			if r.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", r.Column, tt.wantColumn)
			}
		})
	}
}

func TestBuilder_Build_Direct(t *testing.T) {
	skipOnWindows(t)

	b := &Builder{goos: "linux"}

	tests := []struct {
		name     string
		req      Request
		wantArgs string
		wantDir  string
	}{
		{
			name:     "directory only",
			req:      Request{Solution: "/home/dev/proj/app.sln"},
			wantArgs: `"/home/dev/proj"`,
			wantDir:  "/home/dev/proj",
		},
		{
			name:     "file with position",
			req:      Request{Solution: "/home/dev/proj/app.sln", File: "/a/b.cs", Line: 10, Column: 3},
			wantArgs: `"/home/dev/proj" -a "/a/b.cs":10:3`,
			wantDir:  "/home/dev/proj",
		},
		{
			name:     "paths with spaces stay quoted",
			req:      Request{Solution: "/My Projects/game/game.sln", File: "/My Projects/game/src/Player.cs", Line: 1, Column: 0},
			wantArgs: `"/My Projects/game" -a "/My Projects/game/src/Player.cs":1:0`,
			wantDir:  "/My Projects/game",
		},
		{
			name:     "out of range position is clamped",
			req:      Request{Solution: "/home/dev/proj/app.sln", File: "/a/b.cs", Line: -5, Column: -1},
			wantArgs: `"/home/dev/proj" -a "/a/b.cs":1:0`,
			wantDir:  "/home/dev/proj",
		},
		{
			name:     "empty solution degrades to current directory",
			req:      Request{File: "/a/b.cs", Line: 1, Column: 0},
			wantArgs: `"." -a "/a/b.cs":1:0`,
			wantDir:  ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Build("/usr/bin/zed", tt.req)

			if got.Path != "/usr/bin/zed" {
				t.Errorf("Path = %q, want the installation path", got.Path)
			}
			if got.Args != tt.wantArgs {
				t.Errorf("Args = %q, want %q", got.Args, tt.wantArgs)
			}
			if got.ViaShell {
				t.Error("ViaShell = true, want false for direct launches")
			}
			if got.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", got.Dir, tt.wantDir)
			}
		})
	}
}

func TestBuilder_Build_DarwinBundle(t *testing.T) {
	skipOnWindows(t)

	apps := t.TempDir()
	bundlePath := filepath.Join(apps, "Zed.app")
	if err := os.MkdirAll(filepath.Join(bundlePath, "Contents"), 0o755); err != nil {
		t.Fatal(err)
	}

	b := &Builder{goos: "darwin"}
	got := b.Build(bundlePath, Request{
		Solution: "/home/dev/proj/app.sln",
		File:     "/a/b.cs",
		Line:     10,
		Column:   3,
	})

	if got.Path != "open" {
		t.Errorf("Path = %q, want open helper", got.Path)
	}
	if !got.ViaShell {
		t.Error("ViaShell = false, want true for bundle launches")
	}
	wantArgs := fmt.Sprintf(`-n -a "%s" --args "/home/dev/proj" -a "/a/b.cs":10:3`, bundlePath)
	if got.Args != wantArgs {
		t.Errorf("Args = %q, want %q", got.Args, wantArgs)
	}
	if !strings.Contains(got.Args, "-n ") {
		t.Error("bundle launch must request a new instance with -n")
	}
	if !strings.Contains(got.Args, "--args") {
		t.Error("bundle launch must separate forwarded arguments with --args")
	}
}

func TestBuilder_Build_DarwinPlainBinary(t *testing.T) {
	tmpDir := t.TempDir()
	binary := filepath.Join(tmpDir, "zed")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	b := &Builder{goos: "darwin"}
	got := b.Build(binary, Request{Solution: "/proj/app.sln"})

	if got.Path != binary {
		t.Errorf("Path = %q, want the binary itself", got.Path)
	}
	if got.ViaShell {
		t.Error("ViaShell = true, want false for non-bundle launches")
	}
}

func TestBuilder_Build_BundleIgnoredOffDarwin(t *testing.T) {
	tmpDir := t.TempDir()
	bundlePath := filepath.Join(tmpDir, "Zed.app")
	if err := os.MkdirAll(bundlePath, 0o755); err != nil {
		t.Fatal(err)
	}

	b := &Builder{goos: "linux"}
	got := b.Build(bundlePath, Request{Solution: "/proj/app.sln"})

	if got.Path != bundlePath || got.ViaShell {
		t.Errorf("Build() = %+v, want direct launch outside darwin", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a/b.cs", `"/a/b.cs"`},
		{"/My Projects/game", `"/My Projects/game"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
