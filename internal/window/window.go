// Package window presents a scene in a desktop window with ebiten.
package window

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"rasterizer/internal/app"
	"rasterizer/internal/config"
	"rasterizer/internal/stats"
	"rasterizer/raster"
)

// Game adapts a Scene to ebiten.Game. Layout keeps the raster at the window
// size divided by ScaleDown, Update spins the model and Draw renders it.
type Game struct {
	scene    *app.Scene
	recorder *stats.Recorder
	settings config.Window
	logger   *slog.Logger
}

func NewGame(scene *app.Scene, recorder *stats.Recorder, settings config.Window, logger *slog.Logger) *Game {
	return &Game{scene: scene, recorder: recorder, settings: settings, logger: config.LoggerOrNop(logger)}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.scene.Step()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.recorder.Begin()
	g.scene.Render()

	var surface *raster.Surface = g.scene.Surface()
	var bounds = screen.Bounds()

	// WritePixels panics on a size mismatch; skip until Layout catches up.
	if len(surface.Pix) == bounds.Dx()*bounds.Dy()*raster.BytesPerPixel {
		screen.WritePixels(surface.Pix)
	}

	if g.settings.Overlay {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f", ebiten.ActualFPS()))
	}

	if g.recorder.End() {
		ebiten.SetWindowTitle(g.recorder.Title())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	screenWidth, screenHeight = g.settings.RasterSize(outsideWidth, outsideHeight)
	g.scene.Resize(screenWidth, screenHeight)

	return
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(game *Game) error {
	ebiten.SetWindowSize(game.settings.Width, game.settings.Height)
	ebiten.SetWindowTitle(game.settings.Title)
	ebiten.SetTPS(game.settings.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	width, height := game.scene.Size()
	game.logger.Info("window opened", "width", game.settings.Width, "height", game.settings.Height, "raster_width", width, "raster_height", height)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	game.logger.Info("window closed", "stats", game.recorder.Summary())

	return nil
}
