package progress

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"

	"diskbench/benchmark"
)

// ProgressBar wrapper structure
type ProgressBar struct {
	*pb.ProgressBar
}

// NewProgressBar - instantiate a progress bar writing to w.
func NewProgressBar(total int64, w io.Writer) *ProgressBar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetWriter(w)
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{etime . }}`)
	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// SetCaption sets the caption of the progress bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption)
	return p
}

// Bar renders one tick per file per phase. It satisfies benchmark.Observer.
type Bar struct {
	bar    *ProgressBar
	files  int
	writes int
}

var _ benchmark.Observer = (*Bar)(nil)

// NewBar starts a bar sized for files written once and read once.
func NewBar(files int, w io.Writer) *Bar {
	b := &Bar{bar: NewProgressBar(int64(2*files), w), files: files}
	b.bar.SetCaption("Writing")
	return b
}

// WriteDone ticks the bar and switches the caption once every file is written.
func (b *Bar) WriteDone(benchmark.FileTiming) {
	b.bar.Increment()
	b.writes++
	if b.writes == b.files {
		b.bar.SetCaption("Reading")
	}
}

// ReadDone ticks the bar.
func (b *Bar) ReadDone(benchmark.FileTiming) {
	b.bar.Increment()
}

// Finish stops refreshing and leaves the final state on screen.
func (b *Bar) Finish() {
	b.bar.Finish()
}
