package launch

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/logging"
)

func TestExecCommand_Direct(t *testing.T) {
	cmd := Command{
		Path: "/usr/bin/zed",
		Args: `"/my dir" -a "/my dir/src/main.cs":10:3`,
		Dir:  "/my dir",
	}

	c, err := execCommand(cmd)
	if err != nil {
		t.Fatalf("execCommand() error = %v", err)
	}

	want := []string{"/usr/bin/zed", "/my dir", "-a", "/my dir/src/main.cs:10:3"}
	if len(c.Args) != len(want) {
		t.Fatalf("argv = %v, want %v", c.Args, want)
	}
	for i := range want {
		if c.Args[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, c.Args[i], want[i])
		}
	}
	if c.Dir != "/my dir" {
		t.Errorf("Dir = %q, want %q", c.Dir, "/my dir")
	}
}

func TestExecCommand_ViaShell(t *testing.T) {
	cmd := Command{
		Path:     "open",
		Args:     `-n -a "/Applications/Zed.app" --args "/proj"`,
		ViaShell: true,
		Dir:      "/proj",
	}

	c, err := execCommand(cmd)
	if err != nil {
		t.Fatalf("execCommand() error = %v", err)
	}

	if len(c.Args) != 3 || c.Args[1] != "-c" {
		t.Fatalf("argv = %v, want [/bin/sh -c <command>]", c.Args)
	}
	wantLine := `open -n -a "/Applications/Zed.app" --args "/proj"`
	if c.Args[2] != wantLine {
		t.Errorf("shell command = %q, want %q", c.Args[2], wantLine)
	}
}

func TestExecCommand_MalformedArgs(t *testing.T) {
	cmd := Command{
		Path: "/usr/bin/zed",
		Args: `"/unbalanced`,
	}

	if _, err := execCommand(cmd); err == nil {
		t.Error("execCommand() should fail on unbalanced quoting")
	}
}

func TestLauncher_Open(t *testing.T) {
	t.Run("successful spawn", func(t *testing.T) {
		var started Command
		l := NewLauncher(logging.ForTest(t))
		l.builder = &Builder{goos: "linux"}
		l.start = func(cmd Command) error {
			started = cmd
			return nil
		}

		ok := l.Open("/usr/bin/zed", Request{Solution: "/proj/app.sln", File: "/proj/a.cs", Line: 2, Column: 1})
		if !ok {
			t.Fatal("Open() = false, want true")
		}
		if started.Path != "/usr/bin/zed" {
			t.Errorf("started Path = %q, want /usr/bin/zed", started.Path)
		}
		if !strings.Contains(started.Args, ":2:1") {
			t.Errorf("started Args = %q, want position suffix :2:1", started.Args)
		}
	})

	t.Run("failed spawn", func(t *testing.T) {
		l := NewLauncher(logging.NewDiscard())
		l.builder = &Builder{goos: "linux"}
		l.start = func(Command) error {
			return errors.New("no such file")
		}

		if l.Open("/usr/bin/zed", Request{Solution: "/proj/app.sln"}) {
			t.Error("Open() = true, want false when the spawn fails")
		}
	})
}

func TestLauncher_Open_FireAndForget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script mock")
	}

	tmpDir := t.TempDir()
	projDir := filepath.Join(tmpDir, "proj")
	if err := os.MkdirAll(projDir, 0o755); err != nil {
		t.Fatal(err)
	}

	outputFile := filepath.Join(tmpDir, "output.txt")
	mockEditor := filepath.Join(tmpDir, "mock-zed.sh")
	script := "#!/bin/sh\necho \"$@\" > " + outputFile + "\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	l := NewLauncher(logging.ForTest(t))
	l.builder = &Builder{goos: "linux"}

	file := filepath.Join(projDir, "main.cs")
	ok := l.Open(mockEditor, Request{
		Solution: filepath.Join(projDir, "app.sln"),
		File:     file,
		Line:     10,
		Column:   3,
	})
	if !ok {
		t.Fatal("Open() = false, want true")
	}

	// The process is detached; wait for the mock to write its arguments.
	deadline := time.Now().Add(2 * time.Second)
	var got []byte
	for time.Now().Before(deadline) {
		var err error
		got, err = os.ReadFile(outputFile)
		if err == nil && len(got) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if len(got) == 0 {
		t.Fatal("mock editor never wrote its arguments")
	}

	args := string(got)
	if !strings.Contains(args, projDir) {
		t.Errorf("mock received %q, want project dir %q", args, projDir)
	}
	if !strings.Contains(args, file+":10:3") {
		t.Errorf("mock received %q, want %q", args, file+":10:3")
	}
}
