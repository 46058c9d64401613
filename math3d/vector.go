// Package math3d holds the fixed-size vector and matrix types used by the
// rasterizer, together with the builders for projection, translation and
// rotation matrices.
//
// Every operation takes its operands by value and returns a new value.
// Nothing here fails: normalizing a zero-length vector yields NaN components.
package math3d

import "github.com/chewxy/math32"

type Vec2 struct {
	X, Y float32
}

type Vec3 struct {
	X, Y, Z float32
}

type Vec4 struct {
	X, Y, Z, W float32
}

// Dot returns the dot product of v1 and v2.
func (v1 Vec2) Dot(v2 Vec2) float32 {
	return v1.X*v2.X + v1.Y*v2.Y
}

// Cross returns the z component of the cross product of v1 and v2 lifted
// into 3D.
func (v1 Vec2) Cross(v2 Vec2) float32 {
	return v1.X*v2.Y - v1.Y*v2.X
}

func (v1 Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{v1.X + v2.X, v1.Y + v2.Y}
}

func (v1 Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{v1.X - v2.X, v1.Y - v2.Y}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vec2) Normalize() Vec2 {
	var length float32 = v.Length()

	return Vec2{v.X / length, v.Y / length}
}

// Dot returns the dot product of v1 and v2.
func (v1 Vec3) Dot(v2 Vec3) float32 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// Cross returns the cross product of v1 and v2.
func (v1 Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{
		v1.Y*v2.Z - v1.Z*v2.Y,
		v1.Z*v2.X - v1.X*v2.Z,
		v1.X*v2.Y - v1.Y*v2.X,
	}
}

func (v1 Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v1.X + v2.X, v1.Y + v2.Y, v1.Z + v2.Z}
}

// Sub is shorthand for v1.Add(v2.Negate()).
func (v1 Vec3) Sub(v2 Vec3) Vec3 {
	return v1.Add(v2.Negate())
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	var length float32 = v.Length()

	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Vec4 lifts v into homogeneous coordinates with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide divides x, y and z by w. A zero w leaves the vector
// unchanged.
func (v Vec4) PerspectiveDivide() Vec4 {
	if v.W == 0 {
		return v
	}

	return Vec4{v.X / v.W, v.Y / v.W, v.Z / v.W, v.W}
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * (math32.Pi / 180)
}
