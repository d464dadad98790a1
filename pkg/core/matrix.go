package core

import "math"

// Matrix4 is a 4x4 matrix in row-major order. Matrices are treated as
// immutable once built: every operation returns a new matrix.
type Matrix4 [4][4]float64

// NewMatrix4 creates a matrix from rows.
func NewMatrix4(rows [4][4]float64) Matrix4 {
	return Matrix4(rows)
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other. Composition order matters:
// transforms apply right-to-left when the product multiplies a tuple.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return out
}

// MultiplyTuple returns the product m * t.
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col][row] = m[row][col]
		}
	}
	return out
}

// minor returns the determinant of the 3x3 submatrix obtained by removing
// the given row and column.
func (m Matrix4) minor(row, col int) float64 {
	var sub [3][3]float64
	sr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
}

// cofactor returns the signed minor for the given row and column.
func (m Matrix4) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix. It returns ErrNonInvertibleMatrix when
// the determinant is zero within Epsilon.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix4{}, ErrNonInvertibleMatrix
	}
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed on write: cofactor of [row][col] lands at [col][row].
			out[col][row] = m.cofactor(row, col) / det
		}
	}
	return out, nil
}

// MustInverse is like Inverse but panics on a singular matrix. It is for
// matrices that are invertible by construction.
func (m Matrix4) MustInverse() Matrix4 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// Equals reports whether two matrices are equal within Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !NearlyEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
