package monitor

import "github.com/rileyhilliard/xpumon/internal/xpum"

// SampleMsg carries one parsed device sample from the stream reader.
type SampleMsg struct {
	DeviceID int
	Sample   *xpum.DeviceSample
}

// StreamClosedMsg signals that the dump stream ended and the subprocess is
// no longer running.
type StreamClosedMsg struct{}

// QuitRequestMsg converts an external termination signal into a graceful
// stop of the dashboard.
type QuitRequestMsg struct{}
