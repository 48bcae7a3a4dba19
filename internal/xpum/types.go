// Package xpum locates the Intel XPU metrics CLI (xpumcli or xpu-smi),
// discovers per-device metadata, and parses its streaming dump output.
package xpum

// DeviceMetadata holds static per-device attributes discovered at startup.
// Fields stay at their zero value when discovery couldn't provide them.
type DeviceMetadata struct {
	Name           string
	MemoryTotalMiB *float64 // nil when unknown
}

// DeviceSample is one time-stamped set of readings for a single device.
// Each sample replaces the previous one for its device wholesale. Metric
// fields are nil when the feed didn't report a usable value; nil must render
// as "N/A", never as zero.
type DeviceSample struct {
	Timestamp      string // passed through verbatim from the feed
	MemUsedMiB     *float64
	MemUtilPercent *float64
	PowerWatts     *float64
	TempC          *float64
}
