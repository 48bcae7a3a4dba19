package xpum

import "strings"

// headerMarker is the first field of a dump header row.
const headerMarker = "Timestamp"

// Dump stream column names.
const (
	dumpColTimestamp = "Timestamp"
	dumpColDeviceID  = "DeviceId"
	dumpColMemUsed   = "GPU Memory Used (MiB)"
	dumpColMemUtil   = "GPU Memory Utilization (%)"
	dumpColPower     = "GPU Power (W)"
	dumpColTemp      = "GPU Core Temperature (Celsius Degree)"
)

// dumpSchema maps the active header's column positions to semantic fields.
// Resolved once when a header row arrives; -1 means the column is absent.
type dumpSchema struct {
	columns   int
	timestamp int
	deviceID  int
	memUsed   int
	memUtil   int
	power     int
	temp      int
}

func resolveDumpSchema(header []string) *dumpSchema {
	s := &dumpSchema{
		columns:   len(header),
		timestamp: -1,
		deviceID:  -1,
		memUsed:   -1,
		memUtil:   -1,
		power:     -1,
		temp:      -1,
	}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case dumpColTimestamp:
			s.timestamp = i
		case dumpColDeviceID:
			s.deviceID = i
		case dumpColMemUsed:
			s.memUsed = i
		case dumpColMemUtil:
			s.memUtil = i
		case dumpColPower:
			s.power = i
		case dumpColTemp:
			s.temp = i
		}
	}
	return s
}

// field returns the raw value at a schema index, or "" when absent.
func (s *dumpSchema) field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// StreamParser incrementally parses the live dump feed, one line at a time.
// A line is either a header row (captured as the active schema), a data row
// (yielding a device sample), or noise (dropped silently). Data rows seen
// before any header, and rows whose column count doesn't match the active
// header, are dropped. A bad field inside an otherwise valid row degrades
// that field to nil without invalidating the rest.
type StreamParser struct {
	schema *dumpSchema
}

// NewStreamParser returns a parser with no header captured yet.
func NewStreamParser() *StreamParser {
	return &StreamParser{}
}

// ParseLine consumes one line from the feed. The boolean result is true only
// when the line produced a sample; the device id is only meaningful then.
func (p *StreamParser) ParseLine(line string) (int, *DeviceSample, bool) {
	fields, err := splitCSVLine(line)
	if err != nil || len(fields) == 0 {
		return 0, nil, false
	}

	if fields[0] == headerMarker {
		p.schema = resolveDumpSchema(fields)
		return 0, nil, false
	}

	if p.schema == nil || len(fields) != p.schema.columns {
		return 0, nil, false
	}

	id, ok := parseDeviceID(p.schema.field(fields, p.schema.deviceID))
	if !ok {
		return 0, nil, false
	}

	sample := &DeviceSample{
		Timestamp:      p.schema.field(fields, p.schema.timestamp),
		MemUsedMiB:     parseOptionalFloat(p.schema.field(fields, p.schema.memUsed)),
		MemUtilPercent: parseOptionalFloat(p.schema.field(fields, p.schema.memUtil)),
		PowerWatts:     parseOptionalFloat(p.schema.field(fields, p.schema.power)),
		TempC:          parseOptionalFloat(p.schema.field(fields, p.schema.temp)),
	}
	return id, sample, true
}
