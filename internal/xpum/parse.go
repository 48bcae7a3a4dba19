package xpum

import (
	"strconv"
	"strings"
)

// parseOptionalFloat parses a metric field into an optional float.
// Empty, whitespace-only, and non-numeric values yield nil.
func parseOptionalFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseDeviceID parses a device id field. Returns false for empty or
// non-integer values.
func parseDeviceID(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseMiB parses a memory size that may carry a "MiB" unit suffix,
// e.g. "16384 MiB" -> 16384.0.
func parseMiB(value string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "MiB", ""))
	return parseOptionalFloat(cleaned)
}
