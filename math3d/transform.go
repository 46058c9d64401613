package math3d

import "github.com/chewxy/math32"

// Projection builds the perspective projection matrix for a vertical field
// of view in degrees, an aspect ratio of height over width, and the near and
// far plane distances.
//
// The depth terms are far/(far-near) and -near*far/(far-near). The layout
// places the w carry at (2,3) and the depth offset at (3,2), so MulVec4
// yields z' = b*z + w and w' = -near*b*z. Renderers depend on this exact
// layout; do not replace it with an equivalent projection.
func Projection(fov, aspect, near, far float32) Mat4 {
	var scale float32 = 1 / math32.Tan(DegToRad(fov)/2)
	var depth float32 = far / (far - near)

	return Mat4{
		aspect * scale, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, depth, 1,
		0, 0, depth * -near, 0,
	}
}

// Translation builds a matrix that moves points by offset.
func Translation(offset Vec3) Mat4 {
	return Mat4{
		1, 0, 0, offset.X,
		0, 1, 0, offset.Y,
		0, 0, 1, offset.Z,
		0, 0, 0, 1,
	}
}

// EulerRotation builds a rotation matrix from the angles in radians. X is
// the angle about the axis of row/column 0, Y about row 1 and Z about row 2,
// combined in closed form rather than as three matrix products.
func EulerRotation(angles Vec3) Mat4 {
	var sinAlpha, cosAlpha float32 = math32.Sincos(angles.X)
	var sinBeta, cosBeta float32 = math32.Sincos(angles.Y)
	var sinGamma, cosGamma float32 = math32.Sincos(angles.Z)

	return Mat4{
		cosBeta * cosGamma,
		sinAlpha*sinBeta*cosGamma - cosAlpha*sinGamma,
		cosAlpha*sinBeta*cosGamma + sinAlpha*sinGamma,
		0,

		cosBeta * sinGamma,
		sinAlpha*sinBeta*sinGamma + cosAlpha*cosGamma,
		cosAlpha*sinBeta*sinGamma - sinAlpha*cosGamma,
		0,

		-sinBeta,
		sinAlpha * cosBeta,
		cosAlpha * cosBeta,
		0,

		0, 0, 0, 1,
	}
}
