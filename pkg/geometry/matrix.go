package geometry

import "math"

// Matrix3 is a row-major 3x3 matrix
type Matrix3 [3][3]float64

// Radians converts an angle in degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RotationX returns the right-handed rotation about the X axis
func RotationX(degrees float64) Matrix3 {
	s, c := math.Sincos(Radians(degrees))
	return Matrix3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the right-handed rotation about the Y axis
func RotationY(degrees float64) Matrix3 {
	s, c := math.Sincos(Radians(degrees))
	return Matrix3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the right-handed rotation about the Z axis
func RotationZ(degrees float64) Matrix3 {
	s, c := math.Sincos(Radians(degrees))
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// MulVec multiplies the matrix by a column vector
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
