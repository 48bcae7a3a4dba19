// Package cli implements the xpumon command-line interface.
//
// The root command runs the dashboard directly; the only subcommand is
// version. Global behavior is driven by three flags (--cmd, --metrics,
// --bar-width) plus the XPUM_MONITOR_CMD environment variable.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/xpumon/internal/config"
)

// Root command flags
var (
	cmdFlag      string
	metricsFlag  string
	barWidthFlag int
)

// rootCmd runs the metrics dashboard.
var rootCmd = &cobra.Command{
	Use:   "xpumon",
	Short: "Real-time terminal dashboard for Intel XPU metrics",
	Long: `Render a colorful terminal dashboard for Intel XPU metrics.

Requires xpumcli or xpu-smi to be available in PATH (or pointed at via
--cmd or the XPUM_MONITOR_CMD environment variable). The dashboard streams
the tool's dump output and shows per-device memory, power, and temperature
gauges until interrupted.

Examples:
  xpumon
  xpumon --cmd /opt/xpum/bin/xpu-smi
  xpumon --metrics 18,5 --bar-width 40`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.Load(cmdFlag, metricsFlag, barWidthFlag)
		return runDashboard(opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cmdFlag, "cmd", "",
		"metrics executable: name, path, or auto (default $XPUM_MONITOR_CMD, then auto-detect)")
	rootCmd.Flags().StringVar(&metricsFlag, "metrics", "",
		fmt.Sprintf("metric ids passed to dump -m (default %s: memory, power, temperature)", config.DefaultMetrics))
	rootCmd.Flags().IntVar(&barWidthFlag, "bar-width", 0,
		"override gauge width in characters (auto-sized from the terminal when 0)")
}

// Execute runs the root command. Errors print to stderr and exit 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
