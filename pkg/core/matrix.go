package core

import "math"

// Matrix is a 3x3 row-major matrix used for camera orientation
type Matrix struct {
	M [3][3]Real
}

// IdentityMatrix returns the identity matrix
func IdentityMatrix() Matrix {
	var m Matrix
	m.M[0][0] = 1
	m.M[1][1] = 1
	m.M[2][2] = 1
	return m
}

// NewMatrixRowMajor builds a matrix from nine values in row-major order
func NewMatrixRowMajor(values [9]Real) Matrix {
	var m Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.M[i][j] = values[i*3+j]
		}
	}
	return m
}

// RotationMatrix returns the matrix rotating by angle (radians) around axis
func RotationMatrix(angle Real, axis Vector) Matrix {
	axis = axis.Normalize()
	sin := Real(math.Sin(float64(angle)))
	cos := Real(math.Cos(float64(angle)))
	oneMinusCos := 1 - cos

	var m Matrix
	m.M[0][0] = cos + oneMinusCos*axis.X*axis.X
	m.M[0][1] = oneMinusCos*axis.X*axis.Y - sin*axis.Z
	m.M[0][2] = oneMinusCos*axis.X*axis.Z + sin*axis.Y

	m.M[1][0] = oneMinusCos*axis.X*axis.Y + sin*axis.Z
	m.M[1][1] = cos + oneMinusCos*axis.Y*axis.Y
	m.M[1][2] = oneMinusCos*axis.Y*axis.Z - sin*axis.X

	m.M[2][0] = oneMinusCos*axis.X*axis.Z - sin*axis.Y
	m.M[2][1] = oneMinusCos*axis.Y*axis.Z + sin*axis.X
	m.M[2][2] = cos + oneMinusCos*axis.Z*axis.Z
	return m
}

// Mul returns the matrix product m * other
func (m Matrix) Mul(other Matrix) Matrix {
	var result Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result.M[i][j] = m.M[i][0]*other.M[0][j] +
				m.M[i][1]*other.M[1][j] +
				m.M[i][2]*other.M[2][j]
		}
	}
	return result
}

// MulVec returns the matrix-vector product m * v
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}
