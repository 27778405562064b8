package benchmark

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"diskbench/config"
)

// TimedRead opens path read-only and issues cycles sequential read calls of
// up to bufferSize bytes each, timing every call. Reads that return fewer
// bytes than requested, including zero at end of file, still count as a cycle.
func (r *Runner) TimedRead(ctx context.Context, path string, bufferSize int, cycles int) (FileTiming, error) {
	if cycles <= 0 {
		return FileTiming{}, fmt.Errorf("%w: read cycles must be positive, got %d", config.ErrInvalidConfig, cycles)
	}
	if bufferSize <= 0 {
		return FileTiming{}, fmt.Errorf("%w: read buffer size must be positive, got %d", config.ErrInvalidConfig, bufferSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return FileTiming{}, opErr("open", path, err)
	}
	defer file.Close()

	if r.cfg.DropCache {
		if err := dropPageCache(file); err != nil {
			r.logger.Warn("could not drop page cache", "path", path, "error", err)
		}
	}

	reader := bufio.NewReader(file)
	buffer := make([]byte, bufferSize)

	var (
		elapsed time.Duration
		read    int64
	)
	for i := 0; i < cycles; i++ {
		if err := ctx.Err(); err != nil {
			return FileTiming{}, fmt.Errorf("read %s: %w", path, err)
		}

		start := r.now()
		n, err := reader.Read(buffer)
		elapsed += r.now().Sub(start)

		read += int64(n)
		if err != nil && !errors.Is(err, io.EOF) {
			return FileTiming{}, opErr("read", path, err)
		}
	}

	return newFileTiming(path, PhaseRead, int64(bufferSize), cycles, read, elapsed), nil
}
