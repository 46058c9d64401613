// Package raster fills screen-space triangles into a pixel sink, gated by a
// per-pixel depth buffer.
package raster

import "github.com/chewxy/math32"

// coordinateLimit bounds vertex coordinates before they are truncated to
// pixels so that edge products stay well inside int64.
const coordinateLimit = 1 << 24

// Vertex is a triangle corner in screen space: pixel coordinates, a depth
// that is interpolated for the depth test, and a color.
type Vertex struct {
	X, Y, Z float32

	Color Color
}

type Triangle struct {
	Vertices [3]Vertex
}

// Target is where triangles are drawn: the depth buffer holding the nearest
// depth per pixel and the sink receiving the pixels that win.
type Target struct {
	Depth *DepthBuffer
	Sink  PixelSink
}

type point struct {
	x, y int64
}

// edge is the signed parallelogram area spanned by (b-a) and (p-a). Its sign
// tells which side of a->b the point p lies on.
func edge(a, b, p point) int64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

func toPoint(vertex *Vertex) (point, bool) {
	if !finite(vertex.X) || !finite(vertex.Y) {
		return point{}, false
	}

	return point{int64(clampf(vertex.X)), int64(clampf(vertex.Y))}, true
}

func finite(value float32) bool {
	return !math32.IsNaN(value) && !math32.IsInf(value, 0)
}

func clampf(value float32) float32 {
	if value < -coordinateLimit {
		return -coordinateLimit
	} else if value > coordinateLimit {
		return coordinateLimit
	}

	return value
}

func clamp(value, min, max int64) int64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Rasterize writes every pixel of triangle whose interpolated depth is
// strictly less than the stored depth, and records the new depth there. It
// returns the number of pixels written.
//
// Vertices are truncated to whole pixels. The scan covers the half-open
// bounding box [minX, maxX) x [minY, maxY), clipped to the depth buffer, and
// a pixel is inside when all three edge values are non-negative. A triangle
// with negative signed area has its first two vertices swapped, together
// with their depths and colors, so the same test works for both windings.
func (target Target) Rasterize(triangle *Triangle) (written int) {
	if target.Depth == nil {
		return 0
	}

	var v0, v1, v2 Vertex = triangle.Vertices[0], triangle.Vertices[1], triangle.Vertices[2]

	p0, ok0 := toPoint(&v0)
	p1, ok1 := toPoint(&v1)
	p2, ok2 := toPoint(&v2)

	if !ok0 || !ok1 || !ok2 {
		return 0
	}

	if edge(p0, p1, p2) < 0 {
		p0, p1 = p1, p0
		v0, v1 = v1, v0
	}

	var area float32 = float32(edge(p0, p1, p2))

	var minX int64 = clamp(min(p0.x, p1.x, p2.x), 0, int64(target.Depth.Width()))
	var maxX int64 = clamp(max(p0.x, p1.x, p2.x), 0, int64(target.Depth.Width()))
	var minY int64 = clamp(min(p0.y, p1.y, p2.y), 0, int64(target.Depth.Height()))
	var maxY int64 = clamp(max(p0.y, p1.y, p2.y), 0, int64(target.Depth.Height()))

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			var p point = point{x, y}

			var w0 int64 = edge(p1, p2, p)
			var w1 int64 = edge(p2, p0, p)
			var w2 int64 = edge(p0, p1, p)

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			var alpha float32 = float32(w0) / area
			var beta float32 = float32(w1) / area
			var gamma float32 = float32(w2) / area

			var depth float32 = alpha*v0.Z + beta*v1.Z + gamma*v2.Z

			// NaN never passes.
			if !(depth < target.Depth.At(int(x), int(y))) {
				continue
			}

			if target.Sink != nil {
				target.Sink.SetPixel(int(x), int(y), Interpolate(v0.Color, v1.Color, v2.Color, alpha, beta, gamma))
			}

			target.Depth.Set(int(x), int(y), depth)
			written++
		}
	}

	return
}
