package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestResamplePolyline(t *testing.T) {
	line := []Vector[float64]{{0, 0, 0}, {1, 0, 0}, {1, 2, 0}}
	out := ResamplePolyline(line, 0.5)
	test.That(t, len(out), test.ShouldEqual, 6)
	test.That(t, out[0], test.ShouldResemble, line[0])
	for i := 1; i < len(out); i++ {
		// consecutive samples are spacing apart along the curve
		arc := math.Abs(out[i][0]-out[i-1][0]) + math.Abs(out[i][1]-out[i-1][1])
		test.That(t, arc, test.ShouldAlmostEqual, 0.5, 1e-9)
	}
	test.That(t, VectorAlmostEqual(out[5], Vector[float64]{1, 1.5, 0}, 1e-9), test.ShouldBeTrue)

	t.Run("repeated points", func(t *testing.T) {
		out := ResamplePolyline([]Vector[float64]{{0, 0, 0}, {0, 0, 0}, {0, 0, 4}}, 1)
		test.That(t, len(out), test.ShouldEqual, 4)
		test.That(t, out[3], test.ShouldResemble, Vector[float64]{0, 0, 3})
	})

	t.Run("degenerate input", func(t *testing.T) {
		test.That(t, ResamplePolyline[float64](nil, 1), test.ShouldBeNil)
		single := []Vector[float64]{{1, 2, 3}}
		test.That(t, ResamplePolyline(single, 1), test.ShouldResemble, single)
		test.That(t, ResamplePolyline(line, 0), test.ShouldResemble, line)
	})
}

func TestParallelTransportPolyline(t *testing.T) {
	square := []Vector[float64]{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	binormals := ParallelTransportPolyline(square)
	test.That(t, len(binormals), test.ShouldEqual, len(square))
	for i, b := range binormals {
		test.That(t, b.Norm(), test.ShouldAlmostEqual, 1, 1e-9)
		// a planar loop keeps its frame perpendicular to the direction of travel
		next := square[(i+1)%len(square)].Sub(square[i])
		test.That(t, b.Dot(next), test.ShouldAlmostEqual, 0, 1e-9)
	}

	helix := make([]Vector[float64], 0, 50)
	for i := 0; i < 50; i++ {
		theta := 0.2 * float64(i)
		helix = append(helix, Vector[float64]{math.Cos(theta), math.Sin(theta), 0.1 * theta})
	}
	binormals = ParallelTransportPolyline(helix)
	for i := 0; i < len(helix)-1; i++ {
		test.That(t, binormals[i].Norm(), test.ShouldAlmostEqual, 1, 1e-9)
		test.That(t, binormals[i].Dot(helix[i+1].Sub(helix[i])), test.ShouldAlmostEqual, 0, 1e-9)
	}

	test.That(t, ParallelTransportPolyline(square[:1]), test.ShouldBeNil)
}

func TestMinimumRotationMatrix(t *testing.T) {
	cases := []struct {
		name   string
		v0, v1 Vector[float64]
	}{
		{"quarter turn", Vector[float64]{1, 0, 0}, Vector[float64]{0, 2, 0}},
		{"oblique", Vector[float64]{1, 2, 3}, Vector[float64]{-3, 0.5, 1}},
		{"same direction", Vector[float64]{0, 0, 1}, Vector[float64]{0, 0, 5}},
		{"opposite direction", Vector[float64]{1, 1, 0}, Vector[float64]{-2, -2, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rm := MinimumRotationMatrix(c.v0, c.v1)
			rotated := rm.MulVec(c.v0.Normalize())
			test.That(t, VectorAlmostEqual(rotated, c.v1.Normalize(), 1e-9), test.ShouldBeTrue)
			// orthonormal
			product := rm.Mul(rm.Transpose())
			identity := IdentityMatrix[float64]()
			for i := 0; i < 3; i++ {
				test.That(t, VectorAlmostEqual(product.Row(i), identity.Row(i), 1e-9), test.ShouldBeTrue)
			}
		})
	}

	// vectors perpendicular to the rotation plane are left alone
	rm := MinimumRotationMatrix(Vector[float64]{1, 0, 0}, Vector[float64]{0, 1, 0})
	test.That(t, VectorAlmostEqual(rm.MulVec(Vector[float64]{0, 0, 1}), Vector[float64]{0, 0, 1}, 1e-12), test.ShouldBeTrue)

	test.That(t, MinimumRotationMatrix(Vector[float64]{}, Vector[float64]{1, 0, 0}), test.ShouldResemble, IdentityMatrix[float64]())
}

func TestFrameFromZVector(t *testing.T) {
	for _, z := range []Vector[float64]{{0, 0, 1}, {0, 3, 0}, {1, -2, 0.5}} {
		x, y := FrameFromZVector(z)
		n := z.Normalize()
		test.That(t, x.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, y.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, x.Dot(n), test.ShouldAlmostEqual, 0)
		test.That(t, y.Dot(n), test.ShouldAlmostEqual, 0)
		test.That(t, VectorAlmostEqual(x.Cross(y), n, 1e-12), test.ShouldBeTrue)
	}
}

func TestTetrahedronVolume(t *testing.T) {
	o := Vector[float64]{}
	x := Vector[float64]{1, 0, 0}
	y := Vector[float64]{0, 1, 0}
	z := Vector[float64]{0, 0, 1}
	test.That(t, TetrahedronVolume(o, x, y, z), test.ShouldAlmostEqual, 1./6)
	test.That(t, TetrahedronVolume(o, y, x, z), test.ShouldAlmostEqual, -1./6)
	test.That(t, TetrahedronVolume(o, x, y, x.Add(y)), test.ShouldAlmostEqual, 0)

	// the five tetrahedra of a cube decomposition fill the cube
	corners := CornerPoints(unitCube(Vector[float64]{}))
	c := func(i int) Vector[float64] { return corners[i] }
	total := math.Abs(TetrahedronVolume(c(0), c(1), c(3), c(4))) +
		math.Abs(TetrahedronVolume(c(1), c(2), c(3), c(6))) +
		math.Abs(TetrahedronVolume(c(1), c(4), c(5), c(6))) +
		math.Abs(TetrahedronVolume(c(3), c(4), c(6), c(7))) +
		math.Abs(TetrahedronVolume(c(1), c(3), c(4), c(6)))
	test.That(t, total, test.ShouldAlmostEqual, 8, 1e-9)
}
