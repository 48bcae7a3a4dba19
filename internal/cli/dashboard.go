package cli

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/xpumon/internal/config"
	"github.com/rileyhilliard/xpumon/internal/errors"
	"github.com/rileyhilliard/xpumon/internal/logger"
	"github.com/rileyhilliard/xpumon/internal/monitor"
	"github.com/rileyhilliard/xpumon/internal/xpum"
)

// runDashboard resolves the metrics command, fetches device metadata, and
// runs the dashboard until the stream ends or a stop is requested.
func runDashboard(opts config.Options) error {
	log := logger.NewEnvLogger("[xpumon]")

	// Resolution failure is the only fatal error; nothing renders before it.
	cmdPath, err := xpum.ResolveCommand(opts.Command)
	if err != nil {
		return err
	}
	log.Debug("resolved metrics command: %s", cmdPath)

	// Best-effort: missing metadata degrades labels, never blocks streaming.
	metadata := xpum.FetchMetadata(cmdPath, log)
	log.Debug("discovered metadata for %d devices", len(metadata))

	runner := monitor.NewRunner(cmdPath, opts.Metrics, log)
	if err := runner.Start(); err != nil {
		return err
	}
	defer runner.Shutdown()

	model := monitor.NewModel(metadata, opts.BarWidth)

	// Alternate screen only on interactive terminals; plain frame output
	// otherwise, with styling downgraded to match.
	var progOpts []tea.ProgramOption
	if isatty.IsTerminal(os.Stdout.Fd()) {
		progOpts = append(progOpts, tea.WithAltScreen())
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		progOpts = append(progOpts, tea.WithInput(nil))
	}
	p := tea.NewProgram(model, progOpts...)

	// Termination signals become a graceful quit request. A repeat signal
	// during draining is harmless: Send on a finished program is a no-op and
	// Shutdown is idempotent.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			p.Send(monitor.QuitRequestMsg{})
		}
	}()

	go runner.Stream(p.Send)

	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "Dashboard terminated unexpectedly")
	}

	runner.Shutdown()
	return nil
}
