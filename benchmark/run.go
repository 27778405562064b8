package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"diskbench/config"
)

// Runner executes one benchmark run. It is not safe for concurrent use; the
// measurement is strictly sequential.
type Runner struct {
	cfg      config.Config
	logger   *slog.Logger
	observer Observer
	now      func() time.Time
	created  []string
}

// NewRunner returns a Runner for cfg. A nil logger discards log output and a
// nil observer receives nothing.
func NewRunner(cfg config.Config, logger *slog.Logger, observer Observer) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if observer == nil {
		observer = NopObserver{}
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Fill == "" {
		cfg.Fill = config.FillRandom
	}
	return &Runner{
		cfg:      cfg,
		logger:   logger,
		observer: observer,
		now:      time.Now,
	}
}

// Run is shorthand for NewRunner(cfg, logger, observer).Run(ctx).
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, observer Observer) (*Report, error) {
	return NewRunner(cfg, logger, observer).Run(ctx)
}

// Run writes every file, then reads every file, then removes them all and
// returns the aggregated throughput. Files created before a failure are
// removed on a best-effort basis.
func (r *Runner) Run(ctx context.Context) (report *Report, err error) {
	cfg := r.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DropCache && !pageCacheDropSupported {
		r.logger.Warn("page cache drop is not supported on this platform, reads may be served from memory")
	}

	writeCycles := cfg.WriteCycles()
	readCycles := cfg.ReadCycles()

	r.logger.Info("starting disk benchmark",
		slog.String("dir", cfg.Dir),
		slog.Int("iterations", cfg.Iterations),
		slog.Int64("write_buffer_size", cfg.WriteBufferSize),
		slog.Int64("read_buffer_size", cfg.ReadBufferSize),
		slog.Int64("total_buffer_size", cfg.TotalBufferSize),
		slog.Int("write_cycles", writeCycles),
		slog.Int("read_cycles", readCycles),
		slog.String("fill", cfg.Fill),
	)

	defer func() {
		cerr := r.cleanup()
		if cerr == nil {
			return
		}
		if err == nil {
			report, err = nil, fmt.Errorf("cleanup: %w", cerr)
			return
		}
		r.logger.Warn("cleanup after failure incomplete", "error", cerr)
	}()

	payload := NewPayload(int(cfg.WriteBufferSize), cfg.Fill)

	if cfg.Warmup {
		if err := r.warmup(ctx, payload); err != nil {
			return nil, fmt.Errorf("warm-up: %w", err)
		}
	}

	start := r.now()

	paths := make([]string, 0, cfg.Iterations)
	writes := make([]FileTiming, 0, cfg.Iterations)
	for i := 0; i < cfg.Iterations; i++ {
		path, err := r.reserveFile(cfg.Dir, strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)

		ft, err := r.TimedWrite(ctx, path, payload, writeCycles)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("file written", timingAttrs(ft)...)
		writes = append(writes, ft)
		r.observer.WriteDone(ft)

		if err := r.settle(ctx); err != nil {
			return nil, err
		}
	}

	want := int64(writeCycles) * cfg.WriteBufferSize
	for _, path := range paths {
		if err := verifySize(path, want); err != nil {
			return nil, err
		}
	}

	reads := make([]FileTiming, 0, cfg.Iterations)
	for _, path := range paths {
		ft, err := r.TimedRead(ctx, path, int(cfg.ReadBufferSize), readCycles)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("file read", timingAttrs(ft)...)
		reads = append(reads, ft)
		r.observer.ReadDone(ft)

		if err := r.settle(ctx); err != nil {
			return nil, err
		}
	}

	report = &Report{
		Iterations:      cfg.Iterations,
		WriteBufferSize: cfg.WriteBufferSize,
		ReadBufferSize:  cfg.ReadBufferSize,
		TotalBufferSize: cfg.TotalBufferSize,
		Fill:            cfg.Fill,
		AccessPattern:   AccessSequential,
		Duration:        r.now().Sub(start),
		Write:           Aggregate(writes),
		Read:            Aggregate(reads),
	}

	r.logger.Info("disk benchmark complete",
		slog.Duration("duration", report.Duration),
		slog.Float64("write_mean_bps", report.Write.Mean),
		slog.Float64("read_mean_bps", report.Read.Mean),
	)
	return report, nil
}

// warmup writes the payload once to a scratch file and syncs it. Nothing it
// does is timed or reported.
func (r *Runner) warmup(ctx context.Context, payload []byte) error {
	path, err := r.reserveFile(r.cfg.Dir, "warmup")
	if err != nil {
		return err
	}
	if _, err := r.TimedWrite(ctx, path, payload, 1); err != nil {
		return err
	}
	r.logger.Debug("warm-up write done", "path", path)
	if err := os.Remove(path); err != nil {
		return opErr("remove", path, err)
	}
	return r.settle(ctx)
}

func (r *Runner) settle(ctx context.Context) error {
	if r.cfg.Settle <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("settle: %w", err)
		}
		return nil
	}
	t := time.NewTimer(r.cfg.Settle)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("settle: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}

func verifySize(path string, want int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return opErr("stat", path, err)
	}
	if info.Size() != want {
		return opErr("stat", path, fmt.Errorf("file holds %d bytes, expected %d", info.Size(), want))
	}
	return nil
}

func timingAttrs(ft FileTiming) []any {
	return []any{
		slog.String("path", ft.Path),
		slog.Int("cycles", ft.Cycles),
		slog.Int64("bytes", ft.Bytes),
		slog.Duration("elapsed", ft.Elapsed),
		slog.Float64("avg_ns", ft.AverageNs),
		slog.Float64("bytes_per_second", ft.Throughput),
		slog.Bool("unmeasurable", ft.Unmeasurable),
	}
}
