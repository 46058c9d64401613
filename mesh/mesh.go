// Package mesh describes colored triangle meshes: the positions, the colors
// paired with each corner, and the world position a mesh is drawn at.
package mesh

import (
	"errors"
	"fmt"

	"rasterizer/math3d"
	"rasterizer/raster"
)

var ErrMismatchedColors = errors.New("mesh: triangle and color counts differ")

// Triangle is three corners in model space. The order of the corners is the
// winding that decides which side faces the camera.
type Triangle struct {
	Vertices [3]math3d.Vec3
}

// TriangleColors pairs one color with each corner of a Triangle by index.
type TriangleColors [3]raster.Color

// Mesh is an ordered list of triangles with a parallel list of colors and a
// single offset applied to every triangle when it is drawn.
type Mesh struct {
	Triangles []Triangle
	Colors    []TriangleColors

	Position math3d.Vec3
}

// Normal returns the unit normal cross(v1-v0, v2-v0). Degenerate triangles
// produce NaN components.
func (triangle Triangle) Normal() math3d.Vec3 {
	var line1 math3d.Vec3 = triangle.Vertices[1].Sub(triangle.Vertices[0])
	var line2 math3d.Vec3 = triangle.Vertices[2].Sub(triangle.Vertices[0])

	return line1.Cross(line2).Normalize()
}

// Transform returns the triangle with every corner multiplied by matrix as a
// point (w = 1).
func (triangle Triangle) Transform(matrix math3d.Mat4) (result Triangle) {
	for index, vertex := range triangle.Vertices {
		result.Vertices[index] = matrix.MulVec4(vertex.Vec4(1)).Vec3()
	}

	return
}

func (mesh *Mesh) Len() int {
	return len(mesh.Triangles)
}

// Validate checks that every triangle has a color triple.
func (mesh *Mesh) Validate() error {
	if len(mesh.Triangles) != len(mesh.Colors) {
		return fmt.Errorf("%w: %d triangles, %d color triples", ErrMismatchedColors, len(mesh.Triangles), len(mesh.Colors))
	}

	return nil
}

// Clone returns a deep copy so the result can be modified without touching
// mesh.
func (mesh *Mesh) Clone() *Mesh {
	return &Mesh{
		Triangles: append([]Triangle(nil), mesh.Triangles...),
		Colors:    append([]TriangleColors(nil), mesh.Colors...),
		Position:  mesh.Position,
	}
}
