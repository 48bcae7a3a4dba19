// Package monitor implements the real-time XPU metrics dashboard.
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Runner owns the `dump -m` subprocess: it spawns the resolved metrics
//     command with a piped stdout, and a reader goroutine scans the stream
//     line by line through the xpum parser, forwarding each parsed sample
//     into the program as a SampleMsg.
//   - Model holds the per-device sample store and discovery metadata. Update
//     applies sample messages, window resizes, and quit requests; each
//     applied sample triggers a full re-render of the next frame.
//   - View renders the whole dashboard: devices in ascending id order, a
//     memory gauge colored by utilization, and power/temperature readings
//     with N/A placeholders for absent values.
//
// Lifecycle: the stream runs until the subprocess closes stdout or a quit is
// requested (q, ctrl+c, SIGINT, SIGTERM). Runner.Shutdown then terminates
// the child with a bounded grace period before killing it; the call is
// idempotent, so a second signal arriving mid-drain is harmless. Bubble Tea
// restores the terminal (alt screen, cursor) on every exit path.
//
// Devices are never removed from the store once seen: a device that stops
// reporting keeps showing its last known sample.
package monitor
