package math3d

import "github.com/viterin/vek/vek32"

// Mat4 is a 4x4 matrix stored in row-major order: element (row, column)
// lives at index row*4+column. Vectors are columns, so MulVec4 computes
// m·v and a.Mul(b) applies b first when the product is used on a vector.
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m1 Mat4) At(row, column int) float32 {
	return m1[row*4+column]
}

// Mul returns the matrix product m1·m2.
func (m1 Mat4) Mul(m2 Mat4) (result Mat4) {
	copy(result[:], vek32.Mat4Mul(m1[:], m2[:]))

	return
}

// MulVec4 returns the matrix-vector product m1·v.
func (m1 Mat4) MulVec4(v Vec4) Vec4 {
	var product []float32 = vek32.MatMul(m1[:], []float32{v.X, v.Y, v.Z, v.W}, 4)

	return Vec4{product[0], product[1], product[2], product[3]}
}

// Transpose swaps rows and columns.
func (m1 Mat4) Transpose() (result Mat4) {
	for row := 0; row < 4; row++ {
		for column := 0; column < 4; column++ {
			result[column*4+row] = m1[row*4+column]
		}
	}

	return
}
