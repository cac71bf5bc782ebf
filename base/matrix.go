package base

import "github.com/viant/geomvec/internal/numeric"

// Matrix2 is a row-major 2x2 matrix; m[r][c] is row r, column c.
type Matrix2[N Scalar] [2][2]N

// Matrix3 is a row-major 3x3 matrix; m[r][c] is row r, column c.
type Matrix3[N Scalar] [3][3]N

// Identity2 returns the 2x2 identity.
func Identity2[N Scalar]() Matrix2[N] { return Matrix2[N]{{1, 0}, {0, 1}} }

// Identity3 returns the 3x3 identity.
func Identity3[N Scalar]() Matrix3[N] { return Matrix3[N]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Matrix3FromColumns builds a matrix whose columns are x, y and z.
func Matrix3FromColumns[N Scalar](x, y, z Vector3[N]) Matrix3[N] {
	return Matrix3[N]{
		{x.data[0], y.data[0], z.data[0]},
		{x.data[1], y.data[1], z.data[1]},
		{x.data[2], y.data[2], z.data[2]},
	}
}

// MulVector returns m·v.
func (m Matrix2[N]) MulVector(v Vector2[N]) Vector2[N] {
	x, y := v.data[0], v.data[1]
	return NewVector2(m[0][0]*x+m[0][1]*y, m[1][0]*x+m[1][1]*y)
}

// Mul returns m·o.
func (m Matrix2[N]) Mul(o Matrix2[N]) Matrix2[N] {
	var out Matrix2[N]
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c]
		}
	}
	return out
}

// Transpose returns mᵀ.
func (m Matrix2[N]) Transpose() Matrix2[N] {
	return Matrix2[N]{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// ApproxEqual reports whether every entry differs from o by at most eps.
func (m Matrix2[N]) ApproxEqual(o Matrix2[N], eps N) bool {
	for r := range m {
		for c := range m[r] {
			if numeric.Abs(m[r][c]-o[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

// MulVector returns m·v.
func (m Matrix3[N]) MulVector(v Vector3[N]) Vector3[N] {
	x, y, z := v.data[0], v.data[1], v.data[2]
	return NewVector3(
		m[0][0]*x+m[0][1]*y+m[0][2]*z,
		m[1][0]*x+m[1][1]*y+m[1][2]*z,
		m[2][0]*x+m[2][1]*y+m[2][2]*z,
	)
}

// Mul returns m·o.
func (m Matrix3[N]) Mul(o Matrix3[N]) Matrix3[N] {
	var out Matrix3[N]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c] + m[r][2]*o[2][c]
		}
	}
	return out
}

// Transpose returns mᵀ.
func (m Matrix3[N]) Transpose() Matrix3[N] {
	var out Matrix3[N]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Column returns column c.
func (m Matrix3[N]) Column(c int) Vector3[N] { return NewVector3(m[0][c], m[1][c], m[2][c]) }

// ApproxEqual reports whether every entry differs from o by at most eps.
func (m Matrix3[N]) ApproxEqual(o Matrix3[N], eps N) bool {
	for r := range m {
		for c := range m[r] {
			if numeric.Abs(m[r][c]-o[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

// CastMatrix2 converts every entry to To.
func CastMatrix2[To, N Scalar](m Matrix2[N]) Matrix2[To] {
	var out Matrix2[To]
	for r := range m {
		for c := range m[r] {
			out[r][c] = To(m[r][c])
		}
	}
	return out
}

// CastMatrix3 converts every entry to To.
func CastMatrix3[To, N Scalar](m Matrix3[N]) Matrix3[To] {
	var out Matrix3[To]
	for r := range m {
		for c := range m[r] {
			out[r][c] = To(m[r][c])
		}
	}
	return out
}
