package xpum

import (
	"encoding/csv"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/rileyhilliard/xpumon/internal/logger"
)

// discoveryDumpFields selects device id, device name, and physical memory
// size in the tabular discovery output.
const discoveryDumpFields = "1,2,16"

// Tabular discovery column names.
const (
	discColDeviceID = "Device ID"
	discColName     = "Device Name"
	discColMemory   = "Memory Physical Size"
)

// commandRunner runs a one-shot invocation and returns its stdout.
// Injected in tests to avoid spawning real processes.
type commandRunner func(path string, args ...string) ([]byte, error)

// runCommand is the production commandRunner backed by os/exec.
func runCommand(path string, args ...string) ([]byte, error) {
	return exec.Command(path, args...).Output()
}

// discoveryDocument is the shape of `discovery -j` output.
type discoveryDocument struct {
	DeviceList []discoveryDevice `json:"device_list"`
}

type discoveryDevice struct {
	DeviceID   *int   `json:"device_id"`
	DeviceName string `json:"device_name"`
}

// FetchMetadata returns a best-effort map of device id to metadata for the
// resolved metrics command. Both discovery invocations are independently
// non-fatal: any failure leaves the metadata incomplete rather than erroring.
func FetchMetadata(cmdPath string, log logger.Logger) map[int]*DeviceMetadata {
	return fetchMetadata(cmdPath, runCommand, log)
}

func fetchMetadata(cmdPath string, run commandRunner, log logger.Logger) map[int]*DeviceMetadata {
	if log == nil {
		log = logger.Noop()
	}
	metadata := make(map[int]*DeviceMetadata)

	// Tabular discovery for id, name, and memory size.
	if out, err := run(cmdPath, "discovery", "--dump", discoveryDumpFields); err != nil {
		log.Debug("discovery dump failed: %v", err)
	} else {
		parseDiscoveryDump(string(out), metadata)
	}

	// JSON discovery fills in names the tabular form omitted. It never
	// touches memory totals.
	if out, err := run(cmdPath, "discovery", "-j"); err != nil {
		log.Debug("discovery json failed: %v", err)
	} else if err := mergeDiscoveryJSON(out, metadata); err != nil {
		log.Debug("discovery json unparseable: %v", err)
	}

	return metadata
}

// parseDiscoveryDump parses tabular discovery output. The first non-empty
// line is a header row; rows with a mismatched column count are skipped.
func parseDiscoveryDump(output string, metadata map[int]*DeviceMetadata) {
	var header []string
	idIdx, nameIdx, memIdx := -1, -1, -1

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitCSVLine(line)
		if err != nil || len(fields) == 0 {
			continue
		}
		if header == nil {
			header = fields
			for i, name := range header {
				switch strings.TrimSpace(name) {
				case discColDeviceID:
					idIdx = i
				case discColName:
					nameIdx = i
				case discColMemory:
					memIdx = i
				}
			}
			continue
		}
		if len(fields) != len(header) || idIdx < 0 {
			continue
		}
		id, ok := parseDeviceID(fields[idIdx])
		if !ok {
			continue
		}
		info := metadata[id]
		if info == nil {
			info = &DeviceMetadata{}
			metadata[id] = info
		}
		if nameIdx >= 0 {
			if name := strings.Trim(fields[nameIdx], `" `); name != "" {
				info.Name = name
			}
		}
		if memIdx >= 0 {
			if total := parseMiB(fields[memIdx]); total != nil {
				info.MemoryTotalMiB = total
			}
		}
	}
}

// mergeDiscoveryJSON fills in device names from the structured discovery
// document for devices the tabular form missed.
func mergeDiscoveryJSON(output []byte, metadata map[int]*DeviceMetadata) error {
	var doc discoveryDocument
	if err := json.Unmarshal(output, &doc); err != nil {
		return err
	}
	for _, item := range doc.DeviceList {
		if item.DeviceID == nil {
			continue
		}
		info := metadata[*item.DeviceID]
		if info == nil {
			info = &DeviceMetadata{}
			metadata[*item.DeviceID] = info
		}
		if item.DeviceName != "" {
			info.Name = item.DeviceName
		}
	}
	return nil
}

// splitCSVLine parses a single CSV line with leading-whitespace trimming.
func splitCSVLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	return r.Read()
}
