package mesh

import (
	"rasterizer/math3d"
	"rasterizer/raster"
)

var (
	Red   = raster.Color{R: 0xff, A: 0xff}
	Green = raster.Color{G: 0xff, A: 0xff}
	Blue  = raster.Color{B: 0xff, A: 0xff}
)

// CornerColors is the red, green, blue triple used when a source has no
// colors of its own.
var CornerColors = TriangleColors{Red, Green, Blue}

var cubeTriangles = []Triangle{
	{[3]math3d.Vec3{{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}}},
	{[3]math3d.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}}},
	{[3]math3d.Vec3{{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: -0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: -0.5}}},
	{[3]math3d.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}}},
	{[3]math3d.Vec3{{X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: -0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: 0.5}}},
	{[3]math3d.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}}},
}

// Cube returns a unit cube of twelve triangles, each shaded red, green and
// blue at its corners, placed 25 units in front of the camera.
func Cube() *Mesh {
	var cube *Mesh = &Mesh{
		Triangles: append([]Triangle(nil), cubeTriangles...),
		Colors:    make([]TriangleColors, len(cubeTriangles)),
		Position:  math3d.Vec3{Z: 25},
	}

	for index := range cube.Colors {
		cube.Colors[index] = CornerColors
	}

	return cube
}
