package mathutil

// LookAt returns the rotation whose +Z column points from eye toward target,
// with +Y as close to up as the forward axis allows.
//
// When forward is parallel to up the forward axis is nudged slightly so a
// basis can still be built. A zero-length forward (eye == target) yields the
// identity.
func LookAt(eye, target, up Vec3) Mat3 {
	z := target.Sub(eye)
	if z.Len() < 1e-12 {
		return Mat3Identity()
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() < 1e-12 {
		if up[2] == 1 || up[2] == -1 {
			z[0] += 1e-4
		} else {
			z[2] += 1e-4
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return Mat3FromColumns(x, y, z)
}
