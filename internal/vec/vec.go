// Package vec provides the small fixed-size vector and rotation-matrix
// values used by the coordinate-frame chain. Everything is a pure value
// type; operations return new values and never mutate their receivers.
package vec

import "math"

// V3 is a Cartesian 3-vector.
type V3 struct {
	X, Y, Z float64
}

// Add returns a + b.
func (a V3) Add(b V3) V3 {
	return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a V3) Sub(b V3) V3 {
	return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a V3) Scale(s float64) V3 {
	return V3{s * a.X, s * a.Y, s * a.Z}
}

// Dot returns the scalar product a · b.
func (a V3) Dot(b V3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm returns the Euclidean length of a.
func (a V3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Unit returns a normalized to unit length. The zero vector is returned
// unchanged rather than producing NaN components.
func (a V3) Unit() V3 {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}

// M3 is a 3x3 matrix in row-major order, used for frame rotations.
type M3 [3][3]float64

// Identity returns the identity rotation.
func Identity() M3 {
	return M3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Apply returns m·v.
func (m M3) Apply(v V3) V3 {
	return V3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// ApplyTranspose returns mᵀ·v. For a rotation matrix this is the
// inverse rotation, so a mean→true matrix maps true→mean this way.
func (m M3) ApplyTranspose(v V3) V3 {
	return V3{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·n.
func (m M3) Mul(n M3) M3 {
	var out M3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Rx returns the rotation matrix about the X axis by angle a (radians).
// Positive a rotates the frame, not the vector (passive convention).
func Rx(a float64) M3 {
	s, c := math.Sincos(a)
	return M3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// Ry returns the rotation matrix about the Y axis by angle a (radians).
func Ry(a float64) M3 {
	s, c := math.Sincos(a)
	return M3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

// Rz returns the rotation matrix about the Z axis by angle a (radians).
func Rz(a float64) M3 {
	s, c := math.Sincos(a)
	return M3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}
