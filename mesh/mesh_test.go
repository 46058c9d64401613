package mesh

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasterizer/math3d"
	"rasterizer/raster"
)

func TestCube(t *testing.T) {
	cube := Cube()

	require.NoError(t, cube.Validate())
	assert.Equal(t, 12, cube.Len())
	assert.Equal(t, math3d.Vec3{Z: 25}, cube.Position)

	for index, colors := range cube.Colors {
		assert.Equal(t, CornerColors, colors, "triangle %d", index)
	}

	// every call hands out its own storage
	cube.Triangles[0].Vertices[0].X = 99
	assert.Equal(t, float32(0.5), Cube().Triangles[0].Vertices[0].X)
}

func TestCubeNormalsPointOutward(t *testing.T) {
	for index, triangle := range Cube().Triangles {
		var center math3d.Vec3
		for _, vertex := range triangle.Vertices {
			center = center.Add(vertex)
		}

		normal := triangle.Normal()
		assert.InDelta(t, 1, normal.Length(), 1e-6, "triangle %d", index)
		assert.Positive(t, normal.Dot(center), "triangle %d faces inward", index)
	}
}

func TestNormal(t *testing.T) {
	triangle := Triangle{[3]math3d.Vec3{{}, {X: 2}, {Y: 3}}}
	assert.Equal(t, math3d.Vec3{Z: 1}, triangle.Normal())

	degenerate := Triangle{[3]math3d.Vec3{{X: 1}, {X: 2}, {X: 3}}}
	assert.True(t, math32.IsNaN(degenerate.Normal().Z))
}

func TestTransform(t *testing.T) {
	triangle := Triangle{[3]math3d.Vec3{{X: 1}, {Y: 1}, {Z: 1}}}

	moved := triangle.Transform(math3d.Translation(math3d.Vec3{X: 1, Y: 2, Z: 3}))

	assert.Equal(t, Triangle{[3]math3d.Vec3{{X: 2, Y: 2, Z: 3}, {X: 1, Y: 3, Z: 3}, {X: 1, Y: 2, Z: 4}}}, moved)
	assert.Equal(t, math3d.Vec3{X: 1}, triangle.Vertices[0])
}

func TestValidate(t *testing.T) {
	model := &Mesh{Triangles: make([]Triangle, 2), Colors: make([]TriangleColors, 1)}

	err := model.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatchedColors))
}

func TestClone(t *testing.T) {
	original := Cube()
	clone := original.Clone()

	clone.Triangles[3].Vertices[1].Y = 7
	clone.Colors[3][1] = raster.Color{}

	assert.Equal(t, Cube().Triangles[3], original.Triangles[3])
	assert.Equal(t, CornerColors, original.Colors[3])
	assert.Equal(t, original.Position, clone.Position)
}

const quadOBJ = `# a quad and a colored triangle
mtllib scene.mtl
o quad
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1 4/1/1
v 0 0 1 1 0.5 0
v 1 0 1 0 0 1
v 0 1 1 0 1 0
f -3 -2 -1
`

func TestLoadOBJ(t *testing.T) {
	model, err := LoadOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)
	require.NoError(t, model.Validate())
	require.Equal(t, 3, model.Len())

	// the quad is split into a fan around its first corner
	assert.Equal(t, [3]math3d.Vec3{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}}, model.Triangles[0].Vertices)
	assert.Equal(t, [3]math3d.Vec3{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}, model.Triangles[1].Vertices)
	assert.Equal(t, CornerColors, model.Colors[0])
	assert.Equal(t, CornerColors, model.Colors[1])

	assert.Equal(t, math3d.Vec3{Z: 1}, model.Triangles[2].Vertices[0])
	assert.Equal(t, TriangleColors{
		{R: 255, G: 128, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
	}, model.Colors[2])
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad number", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"relative out of range", "v 0 0 0\nf -1 -2 -3\n"},
		{"bad index", "v 0 0 0\nf a b c\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadOBJ(strings.NewReader(tc.source))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedOBJ)
		})
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0o644))

	model, err := LoadOBJFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, model.Len())

	_, err = LoadOBJFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
