package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/xpumon/internal/errors"
	"github.com/rileyhilliard/xpumon/internal/logger"
	"github.com/rileyhilliard/xpumon/internal/xpum"
)

// drainTimeout bounds how long Shutdown waits for the subprocess to exit,
// first after SIGTERM and again after SIGKILL.
const drainTimeout = 500 * time.Millisecond

// Runner owns the lifecycle of the `dump -m` subprocess: spawn with a piped
// stdout, stream parsed samples into the dashboard, and terminate with a
// bounded grace period on shutdown.
type Runner struct {
	path    string
	metrics string
	log     logger.Logger

	cmd      *exec.Cmd
	stdout   io.ReadCloser
	waitDone chan struct{}
	waitErr  error

	shutdownOnce sync.Once
}

// NewRunner prepares a runner for the resolved metrics command. metrics is
// the comma-separated metric id list passed verbatim to `dump -m`.
func NewRunner(path, metrics string, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Noop()
	}
	return &Runner{
		path:     path,
		metrics:  metrics,
		log:      log,
		waitDone: make(chan struct{}),
	}
}

// Start spawns the subprocess with a line-streamed stdout pipe.
func (r *Runner) Start() error {
	cmd := exec.Command(r.path, "dump", "-m", r.metrics)
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't open a pipe to the metrics command",
			"This shouldn't happen - please report this bug!")
	}

	if err := cmd.Start(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Couldn't start %s dump", r.path),
			"Make sure the resolved command is executable.")
	}

	r.cmd = cmd
	r.stdout = stdout
	r.log.Debug("started %s dump -m %s (pid %d)", r.path, r.metrics, cmd.Process.Pid)
	return nil
}

// Stream reads the subprocess stdout line by line, forwarding each parsed
// sample through send. It blocks until the stream ends, then reaps the
// subprocess and emits a StreamClosedMsg. Callers run it in a goroutine.
func (r *Runner) Stream(send func(tea.Msg)) {
	parser := xpum.NewStreamParser()
	scanner := bufio.NewScanner(r.stdout)
	for scanner.Scan() {
		if id, sample, ok := parser.ParseLine(scanner.Text()); ok {
			send(SampleMsg{DeviceID: id, Sample: sample})
		}
	}

	r.waitErr = r.cmd.Wait()
	if r.waitErr != nil {
		r.log.Debug("dump subprocess exited: %v", r.waitErr)
	}
	close(r.waitDone)
	send(StreamClosedMsg{})
}

// Shutdown requests graceful termination of the subprocess and escalates to
// a kill if it doesn't exit within the drain timeout. Idempotent: repeat
// calls and already-exited children are no-ops.
func (r *Runner) Shutdown() {
	r.shutdownOnce.Do(r.shutdown)
}

func (r *Runner) shutdown() {
	if r.cmd == nil || r.cmd.Process == nil {
		return
	}

	select {
	case <-r.waitDone:
		return
	default:
	}

	if err := r.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		r.log.Debug("terminate failed: %v", err)
	}

	select {
	case <-r.waitDone:
	case <-time.After(drainTimeout):
		r.log.Debug("dump subprocess unresponsive, killing")
		_ = r.cmd.Process.Kill()
		select {
		case <-r.waitDone:
		case <-time.After(drainTimeout):
		}
	}
}
