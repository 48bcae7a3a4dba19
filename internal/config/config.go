// Package config resolves runtime options for the dashboard from flags and
// the environment. There are no config files: the tool is driven entirely by
// three flags and one environment variable.
package config

import (
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rileyhilliard/xpumon/internal/xpum"
)

// EnvCommand selects the default metrics executable.
const EnvCommand = "XPUM_MONITOR_CMD"

// DefaultMetrics covers memory used/util, power, and temperature metric ids.
const DefaultMetrics = "18,5,1,3"

// Bar sizing bounds. The headroom leaves room for labels to the left of the
// gauge on each device line.
const (
	minBarWidth       = 20
	maxBarWidth       = 60
	barHeadroom       = 50
	fallbackTermWidth = 120
)

// Options are the resolved runtime options for the dashboard.
type Options struct {
	Command  string // binary name, absolute path, or "auto"
	Metrics  string // metric ids passed verbatim to dump -m
	BarWidth int    // explicit gauge width; 0 means auto-size
}

// Load resolves options with precedence: explicit flag > XPUM_MONITOR_CMD >
// auto-detection. Empty flag values mean "not set".
func Load(flagCmd, flagMetrics string, flagBarWidth int) Options {
	v := viper.New()
	v.SetDefault("cmd", xpum.AutoCommand)
	v.SetDefault("metrics", DefaultMetrics)
	_ = v.BindEnv("cmd", EnvCommand)

	if flagCmd != "" {
		v.Set("cmd", flagCmd)
	}
	if flagMetrics != "" {
		v.Set("metrics", flagMetrics)
	}

	return Options{
		Command:  v.GetString("cmd"),
		Metrics:  v.GetString("metrics"),
		BarWidth: flagBarWidth,
	}
}

// ResolveBarWidth returns the gauge width for a terminal of the given column
// count: the explicit override when positive, otherwise the terminal width
// minus label headroom, clamped to [20, 60].
func ResolveBarWidth(override, termWidth int) int {
	if override > 0 {
		return override
	}
	if termWidth <= 0 {
		termWidth = fallbackTermWidth
	}
	w := termWidth - barHeadroom
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}

// TerminalWidth reports the current stdout column count, falling back to a
// 120-column assumption when stdout isn't a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackTermWidth
}
