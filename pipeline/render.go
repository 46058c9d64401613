package pipeline

import (
	"rasterizer/math3d"
	"rasterizer/mesh"
	"rasterizer/raster"
)

// Culled reports whether triangle faces away from the camera, judged by the
// z component of its model space normal.
func Culled(triangle *mesh.Triangle) bool {
	return triangle.Normal().Z > 0
}

// Project takes a world space point through the projection, the perspective
// divide and the viewport map. The result holds pixel coordinates in X and
// Y and the post-divide depth in Z.
func (frame *Frame) Project(point math3d.Vec3) math3d.Vec3 {
	var clip math3d.Vec4 = frame.Projection.MulVec4(point.Vec4(1))
	var ndc math3d.Vec3 = clip.PerspectiveDivide().Vec3()

	return frame.ToScreen(ndc)
}

// ToScreen maps normalized device coordinates in [-1, 1] to [0, Width] and
// [0, Height]. Z is carried through unchanged.
func (frame *Frame) ToScreen(ndc math3d.Vec3) math3d.Vec3 {
	return math3d.Vec3{
		X: (ndc.X + 1) * 0.5 * float32(frame.Width),
		Y: (ndc.Y + 1) * 0.5 * float32(frame.Height),
		Z: ndc.Z,
	}
}

// RenderTriangle draws one model space triangle offset by translation. Back
// faces are skipped before any transform. It returns the number of pixels
// written.
func (frame *Frame) RenderTriangle(triangle *mesh.Triangle, colors *mesh.TriangleColors, translation math3d.Mat4) int {
	if Culled(triangle) {
		return 0
	}

	var world mesh.Triangle = triangle.Transform(translation)
	var screen raster.Triangle

	for index, vertex := range world.Vertices {
		var projected math3d.Vec3 = frame.Project(vertex)

		screen.Vertices[index] = raster.Vertex{X: projected.X, Y: projected.Y, Z: projected.Z, Color: colors[index]}
	}

	return frame.Target.Rasterize(&screen)
}

// RenderMesh draws the triangles of model in order at model.Position and
// returns the total number of pixels written. Occlusion is left entirely to
// the depth buffer.
func (frame *Frame) RenderMesh(model *mesh.Mesh) (written int) {
	var translation math3d.Mat4 = math3d.Translation(model.Position)

	for index := range model.Triangles {
		if index >= len(model.Colors) {
			break
		}

		written += frame.RenderTriangle(&model.Triangles[index], &model.Colors[index], translation)
	}

	return
}
