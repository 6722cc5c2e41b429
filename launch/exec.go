package launch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/sparkpool/internal/baseerror"
)

// ErrLaunch is returned when an external command cannot be started or fails.
var ErrLaunch = baseerror.New("launch failed")

// OSExecutor runs commands as child processes of the current one.
type OSExecutor struct {
	logger log.Logger
}

func NewOSExecutor(logger log.Logger) *OSExecutor {
	return &OSExecutor{logger: logger}
}

// Start spawns the command and detaches from it. The process is not
// supervised: once spawned, its lifetime is not tied to ours.
func (e *OSExecutor) Start(ctx context.Context, cmd Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c := exec.Command(cmd.Path, cmd.Args...)
	c.Env = cmd.environ(os.Environ())
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Start(); err != nil {
		return 0, fmt.Errorf("%w: start %s: %v", ErrLaunch, cmd.Path, err)
	}

	pid := c.Process.Pid

	level.Info(e.logger).Log("msg", "process started", "cmd", cmd.String(), "pid", pid)

	if err := c.Process.Release(); err != nil {
		level.Warn(e.logger).Log("msg", "failed to release process", "pid", pid, "err", err)
	}

	return pid, nil
}

// Run executes the command and waits for it. The combined output is attached
// to the error if the command fails.
func (e *OSExecutor) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Env = cmd.environ(os.Environ())

	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = &out

	level.Debug(e.logger).Log("msg", "running command", "cmd", cmd.String())

	if err := c.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v: %s", ErrLaunch, cmd.String(), err, strings.TrimSpace(out.String()))
	}

	return nil
}
