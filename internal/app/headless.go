package app

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"rasterizer/internal/config"
	"rasterizer/internal/stats"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Hz is the frame rate. Zero or less renders as fast as possible.
	Hz int
	// Frames stops the run after this many frames; zero runs until the
	// context is done.
	Frames uint64
	// Progress receives a progress bar when Frames is set.
	Progress io.Writer
	// Snapshot, when set, is the path the last frame is written to as PNG.
	Snapshot string
}

// RunHeadless renders scene without opening a window. A run stopped by ctx
// returns ctx.Err(). Statistics are logged when the run ends either way.
func RunHeadless(ctx context.Context, scene *Scene, recorder *stats.Recorder, cfg HeadlessConfig, logger *slog.Logger) error {
	logger = config.LoggerOrNop(logger)

	var tick <-chan time.Time
	if cfg.Hz > 0 {
		var ticker *time.Ticker = time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer ticker.Stop()

		tick = ticker.C
	}

	var bar *progressbar.ProgressBar
	if cfg.Frames > 0 && cfg.Progress != nil {
		bar = progressbar.NewOptions64(int64(cfg.Frames),
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
		defer bar.Close()
	}

	width, height := scene.Size()
	logger.Info("headless run started", "width", width, "height", height, "hz", cfg.Hz, "frames", cfg.Frames)

	err := runFrames(ctx, scene, recorder, cfg.Frames, tick, bar)

	logger.Info("headless run finished", "stats", recorder.Summary())

	if err != nil {
		return err
	}

	if cfg.Snapshot != "" {
		if err := WriteSnapshot(cfg.Snapshot, scene); err != nil {
			return err
		}

		logger.Info("snapshot written", "path", cfg.Snapshot)
	}

	return nil
}

func runFrames(ctx context.Context, scene *Scene, recorder *stats.Recorder, frames uint64, tick <-chan time.Time, bar *progressbar.ProgressBar) error {
	for rendered := uint64(0); frames == 0 || rendered < frames; rendered++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		recorder.Begin()
		scene.Step()
		scene.Render()
		recorder.End()

		if bar != nil {
			if err := bar.Add(1); err != nil {
				return fmt.Errorf("progress: %w", err)
			}
		}
	}

	return nil
}

// WriteSnapshot encodes the current surface of scene as a PNG file.
func WriteSnapshot(path string, scene *Scene) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	if err := png.Encode(file, scene.Surface().Image()); err != nil {
		file.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	return nil
}
