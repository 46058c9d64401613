package pipeline

import (
	"rasterizer/math3d"
	"rasterizer/mesh"
)

// Model pairs an immutable base mesh with the rotation accumulated so far.
// The base is never written; Posed derives the rotated mesh from it.
type Model struct {
	base     *mesh.Mesh
	rotation math3d.Mat4
}

// NewModel keeps a private copy of base.
func NewModel(base *mesh.Mesh) *Model {
	return &Model{base: base.Clone(), rotation: math3d.Identity()}
}

func (model *Model) Base() *mesh.Mesh { return model.base }

func (model *Model) Rotation() math3d.Mat4 { return model.rotation }

// Rotate applies step after the rotation accumulated so far.
func (model *Model) Rotate(step math3d.Mat4) {
	model.rotation = step.Mul(model.rotation)
}

// Reset drops the accumulated rotation.
func (model *Model) Reset() {
	model.rotation = math3d.Identity()
}

// Posed returns a new mesh holding the base triangles rotated by the current
// rotation. Colors and position are copied from the base.
func (model *Model) Posed() *mesh.Mesh {
	var posed *mesh.Mesh = model.base.Clone()

	for index := range posed.Triangles {
		posed.Triangles[index] = posed.Triangles[index].Transform(model.rotation)
	}

	return posed
}

// PoseInto writes the rotated base into target, reusing its storage when it
// is large enough.
func (model *Model) PoseInto(target *mesh.Mesh) {
	target.Triangles = append(target.Triangles[:0], model.base.Triangles...)
	target.Colors = append(target.Colors[:0], model.base.Colors...)
	target.Position = model.base.Position

	for index := range target.Triangles {
		target.Triangles[index] = target.Triangles[index].Transform(model.rotation)
	}
}
