package xpum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rileyhilliard/xpumon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output per discovery subcommand.
func fakeRunner(dumpOut string, dumpErr error, jsonOut string, jsonErr error) commandRunner {
	return func(path string, args ...string) ([]byte, error) {
		if len(args) >= 2 && args[1] == "--dump" {
			return []byte(dumpOut), dumpErr
		}
		if len(args) >= 2 && args[1] == "-j" {
			return []byte(jsonOut), jsonErr
		}
		return nil, fmt.Errorf("unexpected invocation: %v", args)
	}
}

func TestFetchMetadataFromDump(t *testing.T) {
	dump := "Device ID, Device Name, Memory Physical Size\n" +
		`0, "Intel(R) Data Center GPU Max 1100", 16384 MiB` + "\n" +
		"1, Intel(R) Arc(TM) A770, 8192 MiB\n"

	meta := fetchMetadata("xpumcli", fakeRunner(dump, nil, "", errors.New("no json")), logger.Noop())

	require.Len(t, meta, 2)
	assert.Equal(t, "Intel(R) Data Center GPU Max 1100", meta[0].Name)
	require.NotNil(t, meta[0].MemoryTotalMiB)
	assert.Equal(t, 16384.0, *meta[0].MemoryTotalMiB)
	assert.Equal(t, "Intel(R) Arc(TM) A770", meta[1].Name)
	require.NotNil(t, meta[1].MemoryTotalMiB)
	assert.Equal(t, 8192.0, *meta[1].MemoryTotalMiB)
}

func TestFetchMetadataSkipsMalformedRows(t *testing.T) {
	dump := "Device ID, Device Name, Memory Physical Size\n" +
		"0, GPU Zero\n" + // column count mismatch
		"not-an-id, GPU Bad, 1024 MiB\n" +
		"2, GPU Two, 4096 MiB\n"

	meta := fetchMetadata("xpumcli", fakeRunner(dump, nil, "", errors.New("no json")), logger.Noop())

	require.Len(t, meta, 1)
	assert.Equal(t, "GPU Two", meta[2].Name)
}

func TestFetchMetadataJSONFillsInNames(t *testing.T) {
	dump := "Device ID, Device Name, Memory Physical Size\n" +
		"0, , 16384 MiB\n"
	jsonOut := `{"device_list":[{"device_id":0,"device_name":"Intel XPU"},{"device_id":1,"device_name":"Second XPU"}]}`

	meta := fetchMetadata("xpumcli", fakeRunner(dump, nil, jsonOut, nil), logger.Noop())

	require.Len(t, meta, 2)
	assert.Equal(t, "Intel XPU", meta[0].Name)
	require.NotNil(t, meta[0].MemoryTotalMiB, "json discovery must not touch memory totals")
	assert.Equal(t, 16384.0, *meta[0].MemoryTotalMiB)
	assert.Equal(t, "Second XPU", meta[1].Name)
	assert.Nil(t, meta[1].MemoryTotalMiB)
}

func TestFetchMetadataBothAttemptsFailing(t *testing.T) {
	log := logger.NewBufferLogger()
	meta := fetchMetadata("xpumcli",
		fakeRunner("", errors.New("exit status 1"), "", errors.New("exit status 1")), log)

	assert.Empty(t, meta)
	assert.True(t, log.HasLevel("debug"), "failures are logged, never raised")
}

func TestFetchMetadataUnparseableJSONSwallowed(t *testing.T) {
	meta := fetchMetadata("xpumcli", fakeRunner("", errors.New("exit status 1"), "{broken", nil), logger.Noop())
	assert.Empty(t, meta)
}

func TestParseMiB(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		expect *float64
	}{
		{name: "unit suffixed", value: "16384 MiB", expect: floatPtr(16384.0)},
		{name: "bare number", value: "8192", expect: floatPtr(8192.0)},
		{name: "empty", value: "", expect: nil},
		{name: "garbage", value: "lots", expect: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMiB(tt.value)
			if tt.expect == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expect, *got)
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
