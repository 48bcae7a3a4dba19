package monitor

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/xpumon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script for use as a fake dump feed.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-xpum")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

// msgCollector gathers messages sent by the stream reader.
type msgCollector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *msgCollector) send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *msgCollector) all() []tea.Msg {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tea.Msg(nil), c.msgs...)
}

func TestRunnerStreamsSamples(t *testing.T) {
	script := writeScript(t,
		`echo "Timestamp,DeviceId,GPU Memory Used (MiB),GPU Memory Utilization (%),GPU Power (W),GPU Core Temperature (Celsius Degree)"
echo "13:42:01.000, 0, 2048, 25.0, 75.5, 61"
echo "garbage line that is not csv data"
`)

	r := NewRunner(script, "18,5,1,3", logger.Noop())
	require.NoError(t, r.Start())

	var c msgCollector
	r.Stream(c.send)

	msgs := c.all()
	require.Len(t, msgs, 2, "one sample plus the stream-closed notice")

	sample, ok := msgs[0].(SampleMsg)
	require.True(t, ok)
	assert.Equal(t, 0, sample.DeviceID)
	require.NotNil(t, sample.Sample.MemUsedMiB)
	assert.Equal(t, 2048.0, *sample.Sample.MemUsedMiB)

	assert.IsType(t, StreamClosedMsg{}, msgs[1])
}

func TestRunnerShutdownIdempotent(t *testing.T) {
	script := writeScript(t, "exit 0\n")

	r := NewRunner(script, "18,5,1,3", logger.Noop())
	require.NoError(t, r.Start())

	var c msgCollector
	r.Stream(c.send)

	// The child already exited; both calls must be harmless no-ops.
	r.Shutdown()
	r.Shutdown()
}

func TestRunnerShutdownTerminatesChild(t *testing.T) {
	script := writeScript(t, "exec sleep 30\n")

	r := NewRunner(script, "18,5,1,3", logger.Noop())
	require.NoError(t, r.Start())

	var c msgCollector
	done := make(chan struct{})
	go func() {
		r.Stream(c.send)
		close(done)
	}()

	start := time.Now()
	r.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not end after shutdown")
	}
	assert.Less(t, time.Since(start), 3*time.Second, "shutdown must not hang on a slow child")
}

func TestRunnerStartMissingBinary(t *testing.T) {
	r := NewRunner(filepath.Join(t.TempDir(), "nope"), "18,5,1,3", logger.Noop())
	assert.Error(t, r.Start())
}
