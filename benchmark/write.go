package benchmark

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"diskbench/config"
)

// TimedWrite creates or truncates path and writes payload to it cycles times,
// timing each write call. The file is synced after the last cycle; the sync
// is not part of the timing but has completed when TimedWrite returns.
func (r *Runner) TimedWrite(ctx context.Context, path string, payload []byte, cycles int) (FileTiming, error) {
	if cycles <= 0 {
		return FileTiming{}, fmt.Errorf("%w: write cycles must be positive, got %d", config.ErrInvalidConfig, cycles)
	}
	if len(payload) == 0 {
		return FileTiming{}, fmt.Errorf("%w: empty write payload", config.ErrInvalidConfig)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return FileTiming{}, opErr("create", path, err)
	}
	defer file.Close()

	var (
		elapsed time.Duration
		written int64
	)
	for i := 0; i < cycles; i++ {
		if err := ctx.Err(); err != nil {
			return FileTiming{}, fmt.Errorf("write %s: %w", path, err)
		}

		start := r.now()
		n, err := file.Write(payload)
		elapsed += r.now().Sub(start)

		written += int64(n)
		if err != nil {
			return FileTiming{}, opErr("write", path, err)
		}
		if n != len(payload) {
			return FileTiming{}, opErr("write", path, io.ErrShortWrite)
		}
	}

	if err := file.Sync(); err != nil {
		return FileTiming{}, opErr("sync", path, err)
	}
	if err := file.Close(); err != nil {
		return FileTiming{}, opErr("close", path, err)
	}

	return newFileTiming(path, PhaseWrite, int64(len(payload)), cycles, written, elapsed), nil
}

// newFileTiming derives the per-cycle average and throughput. A zero average
// cannot be turned into a rate and marks the timing unmeasurable.
func newFileTiming(path string, phase Phase, chunk int64, cycles int, n int64, elapsed time.Duration) FileTiming {
	ft := FileTiming{
		Path:      path,
		Phase:     phase,
		ChunkSize: chunk,
		Cycles:    cycles,
		Bytes:     n,
		Elapsed:   elapsed,
		AverageNs: float64(elapsed.Nanoseconds()) / float64(cycles),
	}
	if ft.AverageNs <= 0 {
		ft.Unmeasurable = true
		return ft
	}
	ft.Throughput = float64(chunk) * float64(time.Second) / ft.AverageNs
	return ft
}
