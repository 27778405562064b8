package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"diskbench/benchmark"
	"diskbench/config"
	"diskbench/progress"
	"diskbench/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "diskbench: %v\n", err)
		os.Exit(1)
	}
}

type runConfig struct {
	iterations      int
	writeBufferSize string
	readBufferSize  string
	totalBufferSize string
	dir             string
	settle          time.Duration
	warmup          bool
	fill            string
	dropCache       bool
	outputJSON      bool
	noProgress      bool
	verbose         bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var rc runConfig

	cmd := &cobra.Command{
		Use:   "diskbench [flags]",
		Short: "Measure sequential disk write and read throughput",
		Long: `Diskbench writes a number of files with fixed-size write calls, syncs
them, reads them back with fixed-size read calls and reports the mean, min and
max throughput per phase. All files are removed when the run ends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.Context(), stdout, stderr, rc)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&rc.iterations, "iterations", "i", config.DefaultIterations,
		"Number of files to write and read")
	flags.StringVarP(&rc.writeBufferSize, "write-buffer-size", "w", "16MB",
		"Bytes per write call")
	flags.StringVarP(&rc.readBufferSize, "read-buffer-size", "r", "16MB",
		"Bytes per read call")
	flags.StringVarP(&rc.totalBufferSize, "total-buffer-size", "t", "1024MB",
		"Bytes written to each file, a multiple of both buffer sizes")
	flags.StringVarP(&rc.dir, "dir", "d", ".",
		"Directory for the benchmark files")
	flags.DurationVar(&rc.settle, "settle", 0,
		"Untimed pause between file operations (e.g. 50ms)")
	flags.BoolVar(&rc.warmup, "warmup", false,
		"Write one untimed buffer before measuring")
	flags.StringVar(&rc.fill, "fill", config.FillRandom,
		"Write payload: random or pattern")
	flags.BoolVar(&rc.dropCache, "drop-cache", false,
		"Evict each file from the page cache before reading it (Linux)")
	flags.BoolVar(&rc.outputJSON, "json", false,
		"Output results as JSON")
	flags.BoolVar(&rc.noProgress, "no-progress", false,
		"Disable the progress bar")
	flags.BoolVarP(&rc.verbose, "verbose", "v", false,
		"Log every file operation")

	return cmd
}

func runBenchmark(ctx context.Context, stdout, stderr io.Writer, rc runConfig) error {
	level := slog.LevelWarn
	if rc.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := rc.toConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		observer benchmark.Observer = benchmark.NopObserver{}
		bar      *progress.Bar
	)
	if !rc.noProgress && !rc.verbose {
		bar = progress.NewBar(cfg.Iterations, stderr)
		observer = bar
	}

	result, err := benchmark.Run(ctx, cfg, logger, observer)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if rc.outputJSON {
		return report.DisplayJSON(stdout, result)
	}
	return report.DisplayResults(stdout, result)
}

func (rc runConfig) toConfig() (config.Config, error) {
	cfg := config.Default()
	cfg.Iterations = rc.iterations
	cfg.Dir = rc.dir
	cfg.Settle = rc.settle
	cfg.Warmup = rc.warmup
	cfg.Fill = rc.fill
	cfg.DropCache = rc.dropCache

	sizes := []struct {
		flag string
		in   string
		out  *int64
	}{
		{"write-buffer-size", rc.writeBufferSize, &cfg.WriteBufferSize},
		{"read-buffer-size", rc.readBufferSize, &cfg.ReadBufferSize},
		{"total-buffer-size", rc.totalBufferSize, &cfg.TotalBufferSize},
	}
	for _, s := range sizes {
		n, err := config.ParseSize(s.in)
		if err != nil {
			return cfg, fmt.Errorf("--%s: %w", s.flag, err)
		}
		*s.out = n
	}
	return cfg, nil
}
