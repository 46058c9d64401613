package stats

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by the next step every time it is read after Begin.
type fakeClock struct {
	current time.Time
	steps   []time.Duration
	reads   int
}

func (clock *fakeClock) now() time.Time {
	// even reads open a frame, odd reads close it
	if clock.reads%2 == 1 && len(clock.steps) > 0 {
		clock.current = clock.current.Add(clock.steps[0])
		clock.steps = clock.steps[1:]
	}
	clock.reads++

	return clock.current
}

func createTestRecorder(every int, steps ...time.Duration) (*Recorder, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	recorder := NewRecorder(every, logger)
	recorder.SetClock((&fakeClock{current: time.Unix(0, 0), steps: steps}).now)

	return recorder, &logs
}

func record(recorder *Recorder, frames int) (reports int) {
	for i := 0; i < frames; i++ {
		recorder.Begin()
		if recorder.End() {
			reports++
		}
	}

	return
}

func TestRecorderBeforeFrames(t *testing.T) {
	recorder, _ := createTestRecorder(10)

	assert.Equal(t, float64(1), recorder.FPS())
	assert.Zero(t, recorder.Frames())
	assert.Equal(t, Summary{}, recorder.Summary())
	assert.Equal(t, "FPS: 1.000000\tDelta Time: 0.000000", recorder.Title())
}

func TestRecorderDelta(t *testing.T) {
	recorder, _ := createTestRecorder(10, 20*time.Millisecond)

	record(recorder, 1)

	assert.Equal(t, 20*time.Millisecond, recorder.Delta())
	assert.Equal(t, float64(20), recorder.DeltaMilliseconds())
	assert.Equal(t, float64(50), recorder.FPS())
	assert.Equal(t, "FPS: 50.000000\tDelta Time: 20.000000", recorder.Title())
}

func TestRecorderReportsEveryN(t *testing.T) {
	steps := make([]time.Duration, 7)
	for index := range steps {
		steps[index] = 10 * time.Millisecond
	}
	recorder, logs := createTestRecorder(3, steps...)

	assert.Equal(t, 2, record(recorder, 7))
	assert.Equal(t, 2, strings.Count(logs.String(), "msg=\"frame rate\""))
	assert.Contains(t, logs.String(), "fps=100")
	assert.Contains(t, logs.String(), "frames=6")
	assert.Contains(t, logs.String(), "cpu=")
}

func TestRecorderOutputSkipsRepeats(t *testing.T) {
	recorder, _ := createTestRecorder(1, 10*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, 0)

	var output bytes.Buffer
	recorder.Output = &output

	assert.Equal(t, 4, record(recorder, 4))

	// the zero length frame reports fps 1 and is written; repeats are not
	assert.Equal(t, "100\n50\n1\n", output.String())
}

func TestRecorderSummary(t *testing.T) {
	recorder, _ := createTestRecorder(100, 10*time.Millisecond, 30*time.Millisecond, 20*time.Millisecond, 20*time.Millisecond)

	record(recorder, 4)
	summary := recorder.Summary()

	assert.Equal(t, uint64(4), summary.Frames)
	assert.Equal(t, 80*time.Millisecond, summary.Total)
	assert.Equal(t, 20*time.Millisecond, summary.Mean)
	assert.Equal(t, 10*time.Millisecond, summary.Fastest)
	assert.Equal(t, 30*time.Millisecond, summary.Slowest)
	assert.InDelta(t, 50, summary.FPS, 1e-9)

	var logs bytes.Buffer
	slog.New(slog.NewTextHandler(&logs, nil)).Info("done", "summary", summary)
	assert.Contains(t, logs.String(), "summary.frames=4")
	assert.Contains(t, logs.String(), "summary.mean=20ms")
}

func TestNewRecorderClampsEvery(t *testing.T) {
	recorder := NewRecorder(0, nil)

	assert.Equal(t, 1, recorder.Every)
	assert.NotPanics(t, func() {
		recorder.Begin()
		recorder.End()
	})
}

func TestBenchmarkPath(t *testing.T) {
	path := BenchmarkPath("logs", "cube")

	assert.Equal(t, "logs", strings.Split(filepath.ToSlash(path), "/")[0])
	assert.Equal(t, "cube", filepath.Base(filepath.Dir(path)))
	assert.True(t, strings.HasSuffix(path, ".txt"))

	assert.Equal(t, "_", filepath.Base(filepath.Dir(BenchmarkPath("logs", ".."))))
	assert.Equal(t, "a_b", filepath.Base(filepath.Dir(BenchmarkPath("logs", "a/b"))))
}

func TestOpenBenchmark(t *testing.T) {
	directory := t.TempDir()

	file, err := OpenBenchmark(directory, "cube")
	require.NoError(t, err)

	recorder, _ := createTestRecorder(1, 25*time.Millisecond)
	recorder.Output = file
	record(recorder, 1)
	require.NoError(t, file.Close())

	data, err := os.ReadFile(BenchmarkPath(directory, "cube"))
	require.NoError(t, err)
	assert.Equal(t, "40\n", string(data))
}
