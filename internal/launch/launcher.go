package launch

import (
	"log/slog"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/thoreinstein/zedkit/internal/errors"
)

// Launcher spawns editor processes without waiting on them.
type Launcher struct {
	builder *Builder
	logger  *slog.Logger

	// start fires the constructed command; tests replace it.
	start func(cmd Command) error
}

// NewLauncher creates a Launcher for the current operating system.
func NewLauncher(logger *slog.Logger) *Launcher {
	l := &Launcher{
		builder: NewBuilder(),
		logger:  logger,
	}
	l.start = spawn
	return l
}

// Open builds the invocation for req and fires it, decoupled from the
// editor process's lifetime. The return value reports only whether the
// spawn succeeded; the editor's own exit is never observed.
func (l *Launcher) Open(installPath string, req Request) bool {
	cmd := l.builder.Build(installPath, req)

	l.logger.Debug("launching editor",
		"path", cmd.Path, "args", cmd.Args, "dir", cmd.Dir, "shell", cmd.ViaShell)

	if err := l.start(cmd); err != nil {
		l.logger.Error("editor launch failed", "path", cmd.Path, "error", err)
		return false
	}
	return true
}

// spawn starts the process and releases it so the editor outlives us.
func spawn(cmd Command) error {
	execCmd, err := execCommand(cmd)
	if err != nil {
		return err
	}
	if err := execCmd.Start(); err != nil {
		return errors.Wrap(err, "starting editor process")
	}
	return errors.Wrap(execCmd.Process.Release(), "releasing editor process")
}

// execCommand translates a Command into an exec.Cmd. Shell commands go
// through /bin/sh -c; direct commands have their argument string split by
// shell quoting rules, so `"/a/b.cs":10:3` arrives as one argument.
func execCommand(cmd Command) (*exec.Cmd, error) {
	var c *exec.Cmd
	if cmd.ViaShell {
		c = exec.Command("/bin/sh", "-c", cmd.Path+" "+cmd.Args)
	} else {
		argv, err := shellquote.Split(cmd.Args)
		if err != nil {
			return nil, errors.Wrap(err, "splitting launch arguments")
		}
		c = exec.Command(cmd.Path, argv...)
	}
	c.Dir = cmd.Dir
	return c, nil
}
