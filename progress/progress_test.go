package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"diskbench/benchmark"
)

func TestBarTicksPerFilePerPhase(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(3, &buf)

	assert.Equal(t, "Writing", b.bar.Get("prefix"))
	for i := 0; i < 3; i++ {
		b.WriteDone(benchmark.FileTiming{Phase: benchmark.PhaseWrite})
	}
	assert.Equal(t, int64(3), b.bar.Current())
	assert.Equal(t, "Reading", b.bar.Get("prefix"))

	for i := 0; i < 3; i++ {
		b.ReadDone(benchmark.FileTiming{Phase: benchmark.PhaseRead})
	}
	assert.Equal(t, int64(6), b.bar.Current())
	assert.Equal(t, int64(6), b.bar.Total())

	b.Finish()
	assert.True(t, b.bar.IsFinished())
}
