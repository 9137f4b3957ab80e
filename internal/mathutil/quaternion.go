package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// EulerXYZToQuat converts intrinsic XYZ Euler angles (radians) to a quaternion.
// Its rotation matrix equals EulerXYZ(rx, ry, rz).
func EulerXYZToQuat(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz + cx*sy*sz, // x
		cx*sy*cz - sx*cy*sz, // y
		cx*cy*sz + sx*sy*cz, // z
		cx*cy*cz - sx*sy*sz, // w
	}
}

// Mat3ToQuat extracts a unit quaternion from a pure rotation matrix
// (Shepperd's method, branching on the largest diagonal term).
func Mat3ToQuat(m Mat3) Quat {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return Quat{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		return Quat{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		return Quat{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		return Quat{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
}
