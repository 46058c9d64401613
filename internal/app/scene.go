// Package app drives the renderer: it owns the scene state between frames
// and runs it either in a window or headless.
package app

import (
	"fmt"
	"log/slog"

	"rasterizer/internal/config"
	"rasterizer/math3d"
	"rasterizer/mesh"
	"rasterizer/pipeline"
	"rasterizer/raster"
)

// Scene is everything one frame needs: the viewport, the pixel surface, the
// model and its per-frame spin.
type Scene struct {
	viewport *pipeline.Viewport
	surface  *raster.Surface

	model *pipeline.Model
	posed *mesh.Mesh
	spin  math3d.Mat4

	clear  raster.Color
	logger *slog.Logger
}

// LoadMesh returns the built-in cube for an empty path, or the OBJ file at
// path.
func LoadMesh(path string) (*mesh.Mesh, error) {
	if path == "" {
		return mesh.Cube(), nil
	}

	model, err := mesh.LoadOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}

	return model, nil
}

// NewScene places base at the configured position and sizes the raster for
// a window of width by height.
func NewScene(settings config.Config, base *mesh.Mesh, width, height int, logger *slog.Logger) *Scene {
	var placed *mesh.Mesh = base.Clone()
	placed.Position = math3d.Vec3{X: settings.Scene.Position[0], Y: settings.Scene.Position[1], Z: settings.Scene.Position[2]}

	var spin math3d.Vec3 = math3d.Vec3{
		X: math3d.DegToRad(settings.Scene.Spin[0]),
		Y: math3d.DegToRad(settings.Scene.Spin[1]),
		Z: math3d.DegToRad(settings.Scene.Spin[2]),
	}

	var lens pipeline.Lens = pipeline.Lens{Fov: settings.Camera.Fov, Near: settings.Camera.Near, Far: settings.Camera.Far}

	var scene *Scene = &Scene{
		viewport: pipeline.NewViewport(lens, width, height),
		surface:  raster.NewSurface(width, height),
		model:    pipeline.NewModel(placed),
		posed:    &mesh.Mesh{},
		spin:     math3d.EulerRotation(spin),
		clear:    raster.Color{R: settings.Scene.Clear[0], G: settings.Scene.Clear[1], B: settings.Scene.Clear[2], A: settings.Scene.Clear[3]},
		logger:   config.LoggerOrNop(logger),
	}

	return scene
}

// Resize reallocates the raster when the size changed and reports whether
// it did.
func (scene *Scene) Resize(width, height int) bool {
	if width == scene.viewport.Width() && height == scene.viewport.Height() {
		return false
	}

	scene.viewport.Resize(width, height)
	scene.surface.Resize(scene.viewport.Width(), scene.viewport.Height())

	scene.logger.Debug("viewport resized", "width", scene.viewport.Width(), "height", scene.viewport.Height(), "aspect", scene.viewport.Aspect())

	return true
}

// Step advances the model by one frame of spin.
func (scene *Scene) Step() {
	scene.model.Rotate(scene.spin)
}

// Render clears the surface and draws the model. It returns the number of
// pixels written.
func (scene *Scene) Render() int {
	scene.surface.Clear(scene.clear)

	var frame pipeline.Frame = scene.viewport.Begin(scene.surface)
	scene.model.PoseInto(scene.posed)

	return frame.RenderMesh(scene.posed)
}

func (scene *Scene) Surface() *raster.Surface { return scene.surface }

func (scene *Scene) Viewport() *pipeline.Viewport { return scene.viewport }

func (scene *Scene) Model() *pipeline.Model { return scene.model }

func (scene *Scene) Size() (int, int) {
	return scene.viewport.Width(), scene.viewport.Height()
}
