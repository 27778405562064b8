package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"diskbench/benchmark"
)

// Unmeasurable is printed in place of a rate that could not be computed.
const Unmeasurable = "unmeasurable"

var header = color.New(color.FgCyan, color.Bold)

// FormatRate renders bytes per second with SI prefixes, e.g. "512.3 MB/s".
func FormatRate(bps float64) string {
	return humanize.SIWithDigits(bps, 1, "B/s")
}

// DisplayResults shows the summary of benchmark performance
func DisplayResults(w io.Writer, r *benchmark.Report) error {
	if r == nil {
		return errors.New("no report to display")
	}

	header.Fprintln(w, "\nDisk Benchmark Results:")
	fmt.Fprintf(w, "Files: %d x %s (write %s, read %s, %s reads, %s payload)\n",
		r.Iterations,
		humanize.Bytes(uint64(r.TotalBufferSize)),
		humanize.Bytes(uint64(r.WriteBufferSize)),
		humanize.Bytes(uint64(r.ReadBufferSize)),
		r.AccessPattern,
		r.Fill,
	)
	fmt.Fprintf(w, "Duration: %s\n", r.Duration)
	fmt.Fprintln(w)

	displayPhase(w, "write", r.Write)
	fmt.Fprintln(w)
	displayPhase(w, "read", r.Read)
	return nil
}

func displayPhase(w io.Writer, name string, s benchmark.PhaseStats) {
	if s.Unmeasurable {
		fmt.Fprintf(w, "Average %s speed: %s\n", name, Unmeasurable)
		return
	}
	fmt.Fprintf(w, "Average %s speed: %s\n", name, FormatRate(s.Mean))
	fmt.Fprintf(w, "    Min %s speed: %s\n", name, FormatRate(s.Min))
	fmt.Fprintf(w, "    Max %s speed: %s\n", name, FormatRate(s.Max))
	if s.Unmeasured > 0 {
		fmt.Fprintf(w, "    %d of %d files %s\n", s.Unmeasured, s.Measured+s.Unmeasured, Unmeasurable)
	}
}

// DisplayJSON writes the report as indented JSON.
func DisplayJSON(w io.Writer, r *benchmark.Report) error {
	if r == nil {
		return errors.New("no report to display")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
