package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
)

func items(n int) []showreel.Item {
	out := make([]showreel.Item, n)
	for i := range out {
		out[i] = showreel.Item{ID: fmt.Sprintf("it-%d", i)}
	}
	return out
}

func TestSphereCardinality(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 50, 64, 500} {
		assert.Len(t, Sphere(n, DefaultRadius), n)
		assert.Len(t, Place(items(n), DefaultRadius), n)
	}
	assert.Empty(t, Sphere(-3, DefaultRadius))
}

func TestSphereDeterministic(t *testing.T) {
	a := Sphere(64, DefaultRadius)
	b := Sphere(64, DefaultRadius)
	assert.Equal(t, a, b)
}

func TestSphereOnSurface(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 64, 1000} {
		for i, p := range Sphere(n, 3.5) {
			assert.InDelta(t, 3.5*3.5, p.Dot(p), 1e-9, "n=%d i=%d", n, i)
		}
	}
}

func TestSphereFirstIndexIsSouthPole(t *testing.T) {
	// phi = acos(-1) = π for index 0, regardless of n.
	for _, n := range []int{1, 2, 64} {
		p := Sphere(n, DefaultRadius)[0]
		assert.InDeltaSlice(t, []float64{0, 0, -DefaultRadius}, p[:], 1e-9, "n=%d got %v", n, p)
	}
}

func TestSphereSpansPoles(t *testing.T) {
	pts := Sphere(64, DefaultRadius)
	// z increases monotonically from the -Z pole toward +Z.
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i][2], pts[i-1][2])
	}
	assert.Less(t, pts[len(pts)-1][2], DefaultRadius)
}

func TestPlaceScenario64(t *testing.T) {
	placed := Place(items(64), 7.0)
	require.Len(t, placed, 64)

	seen := map[[3]float64]bool{}
	for i, p := range placed {
		assert.Equal(t, fmt.Sprintf("it-%d", i), p.ID)
		assert.InDelta(t, 7.0, p.Position.Len(), 1e-9)
		key := [3]float64(p.Position)
		assert.False(t, seen[key], "duplicate position at %d", i)
		seen[key] = true
	}
}

func TestSphereEvenSpread(t *testing.T) {
	pts := Sphere(200, 1)
	// No two points closer than a small fraction of the mean spacing.
	minDist := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].Sub(pts[j]).Len(); d < minDist {
				minDist = d
			}
		}
	}
	mean := math.Sqrt(4 * math.Pi / 200)
	assert.Greater(t, minDist, 0.1*mean)
}

func TestFacingPointsAtOrigin(t *testing.T) {
	for _, p := range Sphere(64, DefaultRadius) {
		fwd := Facing(p).Column(2)
		assert.InDelta(t, 1.0, fwd.Dot(p.Scale(-1).Normalize()), 1e-6)

		q := mathutil.Mat3ToQuat(Facing(p))
		qlen := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
		assert.InDelta(t, 1.0, qlen, 1e-9)
	}
}

func TestPosesFollowGroupTransform(t *testing.T) {
	placed := Place(items(10), DefaultRadius)
	group := mathutil.Mat3Mul(mathutil.Mat3Scale(2), mathutil.EulerXYZ(0.3, 1.1, 0))

	poses := Poses(placed, group)
	require.Len(t, poses, len(placed))
	for i, pose := range poses {
		assert.InDelta(t, 2*DefaultRadius, pose.Center.Len(), 1e-9)
		fwd := pose.Basis.Column(2)
		assert.InDelta(t, 1.0, fwd.Dot(pose.Center.Scale(-1).Normalize()), 1e-6, "item %d", i)
	}
}
