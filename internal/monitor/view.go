package monitor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/xpumon/internal/ui"
	"github.com/rileyhilliard/xpumon/internal/xpum"
)

// naPlaceholder is the fixed-width stand-in for absent readings.
const naPlaceholder = "  N/A  "

// renderDashboard renders the complete dashboard frame from the current
// store and metadata. It holds no state between calls.
func renderDashboard(store *Store, metadata map[int]*xpum.DeviceMetadata, barWidth, termWidth int) string {
	latest := store.LatestTimestamp()
	if latest == "" {
		latest = "N/A"
	}

	lines := []string{
		titleStyle.Render("Intel XPU Monitor") + " — Last update: " + latest,
		hintStyle.Render("Press q or CTRL+C to exit. Source: xpumcli dump"),
		"",
	}

	if store.Len() == 0 {
		lines = append(lines, hintStyle.Render("Waiting for the first sample..."))
		return strings.Join(lines, "\n") + "\n"
	}

	divider := ui.DimStyle.Render(strings.Repeat("—", dividerWidth(termWidth)))

	ids := store.IDs()
	for i, id := range ids {
		sample := store.Get(id)
		meta := metadata[id]

		label := fmt.Sprintf("Device %d", id)
		if meta != nil && meta.Name != "" {
			label = meta.Name
		}

		lines = append(lines, deviceStyle.Render(label)+fmt.Sprintf(" (ID %d)", id))
		lines = append(lines, "  Mem "+renderMemLine(sample, meta, barWidth))
		lines = append(lines, "  Power "+renderReading(sample.PowerWatts, "%6.1f W")+
			" | Temp "+renderReading(sample.TempC, "%5.1f °C"))
		if i < len(ids)-1 {
			lines = append(lines, divider)
		}
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// renderMemLine formats the memory amounts and utilization gauge for one
// device. The reported utilization percent wins; when absent and the total
// capacity is known, the percent is derived from used/total. Only the gauge
// falls back to 0% when neither is available.
func renderMemLine(sample *xpum.DeviceSample, meta *xpum.DeviceMetadata, barWidth int) string {
	var b strings.Builder

	if sample.MemUsedMiB != nil {
		b.WriteString(fmt.Sprintf("%6.2f GiB", *sample.MemUsedMiB/1024.0))
	} else {
		b.WriteString("   N/A GiB")
	}

	percent := sample.MemUtilPercent
	if meta != nil && meta.MemoryTotalMiB != nil {
		b.WriteString(fmt.Sprintf(" / %6.2f GiB", *meta.MemoryTotalMiB/1024.0))
		if percent == nil && *meta.MemoryTotalMiB > 0 && sample.MemUsedMiB != nil {
			derived := *sample.MemUsedMiB / *meta.MemoryTotalMiB * 100.0
			percent = &derived
		}
	}

	barPercent := 0.0
	if percent != nil {
		barPercent = *percent
	}

	b.WriteString(" | ")
	b.WriteString(ui.RenderBar(barPercent, barWidth))
	return b.String()
}

// renderReading formats an optional reading with the given verb, or the
// fixed-width N/A placeholder when absent.
func renderReading(value *float64, format string) string {
	if value == nil {
		return naPlaceholder
	}
	return fmt.Sprintf(format, *value)
}

// dividerWidth tracks the terminal width within [20, 100] columns.
func dividerWidth(termWidth int) int {
	if termWidth < minDividerWidth {
		return minDividerWidth
	}
	if termWidth > maxDividerWidth {
		return maxDividerWidth
	}
	return termWidth
}
