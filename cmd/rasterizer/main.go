package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"rasterizer/internal/app"
	"rasterizer/internal/config"
	"rasterizer/internal/stats"
	"rasterizer/internal/window"
)

type options struct {
	configPath string
	headless   bool
	frames     uint64
	hz         int
	mesh       string
	logLevel   string
	snapshot   string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "rasterizer.toml", "Path to the TOML settings file.")
	flag.BoolVar(&opts.headless, "headless", false, "Render without a window.")
	flag.Uint64Var(&opts.frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.IntVar(&opts.hz, "hz", 0, "Frame rate in headless mode (0 = window tps, negative = unthrottled).")
	flag.StringVar(&opts.mesh, "mesh", "", "OBJ file to draw instead of the configured mesh.")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error.")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	settings, loadErr := config.Load(opts.configPath)
	if loadErr != nil && !errors.Is(loadErr, config.ErrNotFound) {
		return loadErr
	}

	if opts.mesh != "" {
		settings.Scene.Mesh = opts.mesh
	}
	if opts.logLevel != "" {
		settings.Log.Level = opts.logLevel
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger, err := settings.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	if loadErr != nil {
		logger.Warn("using default settings", "error", loadErr)
	}

	base, err := app.LoadMesh(settings.Scene.Mesh)
	if err != nil {
		return err
	}

	logger.Info("mesh loaded", "mesh", sceneName(settings.Scene.Mesh), "triangles", base.Len())

	recorder := stats.NewRecorder(settings.Stats.Every, logger)

	if settings.Stats.BenchmarkDir != "" {
		benchmark, err := stats.OpenBenchmark(settings.Stats.BenchmarkDir, sceneName(settings.Scene.Mesh))
		if err != nil {
			return err
		}
		defer benchmark.Close()

		recorder.Output = benchmark
		logger.Info("recording frame rates", "path", benchmark.Name())
	}

	width, height := settings.Window.RasterSize(settings.Window.Width, settings.Window.Height)
	scene := app.NewScene(settings, base, width, height, logger)

	if !opts.headless {
		return window.Run(window.NewGame(scene, recorder, settings.Window, logger))
	}

	return runHeadless(opts, settings, scene, recorder, logger)
}

func runHeadless(opts options, settings config.Config, scene *app.Scene, recorder *stats.Recorder, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.HeadlessConfig{Hz: opts.hz, Frames: opts.frames, Snapshot: opts.snapshot}
	if cfg.Hz == 0 {
		cfg.Hz = settings.Window.TPS
	}
	if cfg.Frames > 0 {
		cfg.Progress = os.Stderr
	}

	if err := app.RunHeadless(ctx, scene, recorder, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return nil
}

// sceneName names a scene after its mesh file, or "cube" for the built-in
// mesh.
func sceneName(mesh string) string {
	if mesh == "" {
		return "cube"
	}

	return strings.TrimSuffix(filepath.Base(mesh), filepath.Ext(mesh))
}
