package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressManager renders one bar per scan job.
type ProgressManager struct {
	p *mpb.Progress
}

func NewProgressManager(out io.Writer) *ProgressManager {
	p := mpb.New(
		mpb.WithWidth(40),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	return &ProgressManager{p: p}
}

func (pm *ProgressManager) Close() {
	pm.p.Wait()
}

// Register adds a bar for total pages labeled with prefix.
func (pm *ProgressManager) Register(prefix string, total int) *ProgressHandle {
	h := &ProgressHandle{start: time.Now()}

	h.bar = pm.p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(prefix+"  "),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d pages", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %d fics", h.fics.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(h.start).Seconds()))
			}),
		),
	)

	return h
}

type ProgressHandle struct {
	bar   *mpb.Bar
	start time.Time
	fics  atomic.Int64
	final atomic.Bool
}

// PageDone records one finished page and the fics it produced.
func (h *ProgressHandle) PageDone(fics int) {
	if h.final.Load() {
		return
	}
	h.fics.Add(int64(fics))
	h.bar.Increment()
}

// MarkDone completes the bar even if some pages never reported.
func (h *ProgressHandle) MarkDone() {
	if h.final.Swap(true) {
		return
	}
	h.bar.SetTotal(-1, true)
}
