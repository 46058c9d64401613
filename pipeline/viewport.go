// Package pipeline carries meshes from model space to the raster: backface
// culling, translation, projection, the perspective divide and the viewport
// map, one triangle at a time.
package pipeline

import (
	"rasterizer/math3d"
	"rasterizer/raster"
)

// Lens holds the projection parameters. Fov is the vertical field of view in
// degrees.
type Lens struct {
	Fov, Near, Far float32
}

// Viewport owns the state that changes with the output size: the projection
// matrix and the depth buffer.
type Viewport struct {
	Lens Lens

	width, height int
	aspect        float32

	projection math3d.Mat4
	depth      *raster.DepthBuffer
}

// Frame is the context a single frame is rendered with. It is only valid
// until the next Resize of the Viewport that produced it.
type Frame struct {
	Width, Height int

	Projection math3d.Mat4
	Target     raster.Target
}

func NewViewport(lens Lens, width, height int) *Viewport {
	var viewport *Viewport = &Viewport{Lens: lens, depth: raster.NewDepthBuffer(0, 0)}
	viewport.Resize(width, height)

	return viewport
}

// Resize rebuilds the projection for the new aspect ratio (height over
// width) and reallocates the depth buffer. Previous depth values are lost.
func (viewport *Viewport) Resize(width, height int) {
	viewport.width, viewport.height = max(width, 0), max(height, 0)

	if viewport.width > 0 {
		viewport.aspect = float32(viewport.height) / float32(viewport.width)
	} else {
		viewport.aspect = 1
	}

	viewport.projection = math3d.Projection(viewport.Lens.Fov, viewport.aspect, viewport.Lens.Near, viewport.Lens.Far)
	viewport.depth.Resize(viewport.width, viewport.height)
}

func (viewport *Viewport) Width() int  { return viewport.width }
func (viewport *Viewport) Height() int { return viewport.height }

func (viewport *Viewport) Aspect() float32 { return viewport.aspect }

func (viewport *Viewport) Projection() math3d.Mat4 { return viewport.projection }

func (viewport *Viewport) Depth() *raster.DepthBuffer { return viewport.depth }

// Begin resets the depth buffer to positive infinity and returns the frame
// context that draws into sink.
func (viewport *Viewport) Begin(sink raster.PixelSink) Frame {
	viewport.depth.Clear()

	return Frame{
		Width:      viewport.width,
		Height:     viewport.height,
		Projection: viewport.projection,
		Target:     raster.Target{Depth: viewport.depth, Sink: sink},
	}
}
