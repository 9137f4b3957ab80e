package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3Scale returns a uniform scale matrix.
func Mat3Scale(s float64) Mat3 {
	return Mat3{s, 0, 0, 0, s, 0, 0, 0, s}
}

// Mat3FromColumns builds a matrix whose columns are x, y and z.
func Mat3FromColumns(x, y, z Vec3) Mat3 {
	return Mat3{
		x[0], y[0], z[0],
		x[1], y[1], z[1],
		x[2], y[2], z[2],
	}
}

// Column returns column c (0..2).
func (m Mat3) Column(c int) Vec3 {
	return Vec3{m[c], m[3+c], m[6+c]}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
