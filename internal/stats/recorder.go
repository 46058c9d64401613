// Package stats measures frame times and reports the frame rate.
package stats

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/klauspost/cpuid/v2"

	"rasterizer/internal/config"
)

// Recorder times frames between Begin and End. Every Every frames it logs
// the frame rate and, when Output is set, appends the rate to it as one
// line, skipping repeats.
type Recorder struct {
	Every  int
	Output io.Writer

	logger *slog.Logger
	now    func() time.Time

	start time.Time
	delta time.Duration

	frames  uint64
	total   time.Duration
	fastest time.Duration
	slowest time.Duration

	written float64
}

// Summary aggregates every frame recorded so far.
type Summary struct {
	Frames uint64

	Total, Mean      time.Duration
	Fastest, Slowest time.Duration

	FPS float64
}

func NewRecorder(every int, logger *slog.Logger) *Recorder {
	return &Recorder{Every: max(every, 1), logger: config.LoggerOrNop(logger), now: time.Now}
}

// SetClock replaces the time source.
func (recorder *Recorder) SetClock(now func() time.Time) {
	recorder.now = now
}

func (recorder *Recorder) Begin() {
	recorder.start = recorder.now()
}

// End closes the frame opened by Begin. It reports whether this frame
// triggered a report.
func (recorder *Recorder) End() bool {
	recorder.delta = recorder.now().Sub(recorder.start)
	recorder.frames++
	recorder.total += recorder.delta

	if recorder.frames == 1 || recorder.delta < recorder.fastest {
		recorder.fastest = recorder.delta
	}
	if recorder.delta > recorder.slowest {
		recorder.slowest = recorder.delta
	}

	if recorder.frames%uint64(recorder.Every) != 0 {
		return false
	}

	recorder.report()

	return true
}

func (recorder *Recorder) report() {
	var fps float64 = recorder.FPS()

	recorder.logger.Info("frame rate",
		"fps", fps,
		"delta_ms", recorder.DeltaMilliseconds(),
		"frames", recorder.frames,
		"cpu", cpuid.CPU.BrandName,
	)

	if recorder.Output == nil || math.Floor(fps) <= 0 || fps == recorder.written {
		return
	}

	if _, err := fmt.Fprintln(recorder.Output, fps); err != nil {
		recorder.logger.Warn("write frame rate", "error", err)
		return
	}

	recorder.written = fps
}

func (recorder *Recorder) Frames() uint64 { return recorder.frames }

func (recorder *Recorder) Delta() time.Duration { return recorder.delta }

func (recorder *Recorder) DeltaMilliseconds() float64 {
	return float64(recorder.delta) / float64(time.Millisecond)
}

// FPS is the rate implied by the last frame time, or 1 before any frame
// took measurable time.
func (recorder *Recorder) FPS() float64 {
	if recorder.delta <= 0 {
		return 1
	}

	return 1000 / recorder.DeltaMilliseconds()
}

// Title formats the last frame for a window title.
func (recorder *Recorder) Title() string {
	return fmt.Sprintf("FPS: %f\tDelta Time: %f", recorder.FPS(), recorder.DeltaMilliseconds())
}

func (recorder *Recorder) Summary() Summary {
	var summary Summary = Summary{
		Frames:  recorder.frames,
		Total:   recorder.total,
		Fastest: recorder.fastest,
		Slowest: recorder.slowest,
	}

	if recorder.frames > 0 {
		summary.Mean = recorder.total / time.Duration(recorder.frames)
	}
	if recorder.total > 0 {
		summary.FPS = float64(recorder.frames) / recorder.total.Seconds()
	}

	return summary
}

// LogValue groups the summary fields when it is logged.
func (summary Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frames", summary.Frames),
		slog.Duration("total", summary.Total),
		slog.Duration("mean", summary.Mean),
		slog.Duration("fastest", summary.Fastest),
		slog.Duration("slowest", summary.Slowest),
		slog.Float64("fps", summary.FPS),
	)
}
