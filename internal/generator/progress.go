package generator

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressObserver draws a progress bar while statements are rendered
type ProgressObserver struct {
	out      io.Writer
	progress *mpb.Progress
	bar      *mpb.Bar
}

// NewProgressObserver creates an observer that draws to out
func NewProgressObserver(out io.Writer) *ProgressObserver {
	return &ProgressObserver{out: out}
}

// Start creates the bar for total statements
func (o *ProgressObserver) Start(total int) {
	o.progress = mpb.New(
		mpb.WithOutput(o.out),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
	)
	o.bar = o.progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Rendering: ", decor.WC{W: 11, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
		),
	)
}

// Rendered advances the bar by one statement
func (o *ProgressObserver) Rendered(Statement) {
	if o.bar != nil {
		o.bar.Increment()
	}
}

// Done waits for the bar to finish drawing
func (o *ProgressObserver) Done() {
	if o.progress == nil {
		return
	}
	if o.bar != nil && !o.bar.Completed() {
		// generation aborted before the last statement
		o.bar.Abort(false)
	}
	o.progress.Wait()
}
