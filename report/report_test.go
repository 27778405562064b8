package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskbench/benchmark"
)

func sampleReport() *benchmark.Report {
	return &benchmark.Report{
		Iterations:      2,
		WriteBufferSize: 1_000_000,
		ReadBufferSize:  1_000_000,
		TotalBufferSize: 4_000_000,
		Fill:            "random",
		AccessPattern:   benchmark.AccessSequential,
		Duration:        1500 * time.Millisecond,
		Write: benchmark.PhaseStats{
			Mean:     512_300_000,
			Min:      400_000_000,
			Max:      624_600_000,
			Measured: 2,
			Files: []benchmark.FileTiming{
				{Path: "a", Phase: benchmark.PhaseWrite, Throughput: 400_000_000},
				{Path: "b", Phase: benchmark.PhaseWrite, Throughput: 624_600_000},
			},
		},
		Read: benchmark.PhaseStats{
			Unmeasurable: true,
			Unmeasured:   2,
		},
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{512_300_000, "512.3 MB/s"},
		{1_500_000_000, "1.5 GB/s"},
		{2_000, "2 kB/s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRate(tt.in))
	}
}

func TestDisplayResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Average write speed: 512.3 MB/s")
	assert.Contains(t, out, "Min write speed: 400 MB/s")
	assert.Contains(t, out, "Max write speed: 624.6 MB/s")
	assert.Contains(t, out, "Average read speed: unmeasurable")
	assert.NotContains(t, out, "Min read speed")
	assert.Contains(t, out, "sequential reads")
}

func TestDisplayResultsPartiallyUnmeasurable(t *testing.T) {
	r := sampleReport()
	r.Write.Unmeasured = 1

	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, r))
	assert.Contains(t, buf.String(), "1 of 3 files unmeasurable")
}

func TestDisplayNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, DisplayResults(&buf, nil))
	assert.Error(t, DisplayJSON(&buf, nil))
}

func TestDisplayJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayJSON(&buf, sampleReport()))

	var parsed benchmark.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, 2, parsed.Iterations)
	assert.Len(t, parsed.Write.Files, 2)
	assert.True(t, parsed.Read.Unmeasurable)
	assert.Contains(t, buf.String(), `"mean_bytes_per_second"`)
}
