package spatialmath

// Range is a closed interval, typically the projection of a shape onto an axis.
type Range[T Float] struct {
	Min T
	Max T
}

// AxisSet selects which candidate axes a separating axis test scans.
type AxisSet int

const (
	// FaceAxes scans the 3 face normals of each box. Boxes separated only along an edge-edge direction are
	// reported as intersecting.
	FaceAxes AxisSet = iota
	// AllAxes scans the face normals plus the 9 pairwise cross products of the two boxes' axes.
	AllAxes
)

// String returns the name of the axis set.
func (s AxisSet) String() string {
	switch s {
	case FaceAxes:
		return "face"
	case AllAxes:
		return "all"
	default:
		return "unknown"
	}
}

// RangeAxis projects the box onto axis, which need not be unit length. The result is exact: the support of a box
// along any direction is the projected center plus the sum of the absolute projected edge vectors.
func RangeAxis[T Float](o OBB[T], axis Vector[T]) Range[T] {
	c := o.Center.Dot(axis)
	h := abs(o.U.Dot(axis)) + abs(o.V.Dot(axis)) + abs(o.W.Dot(axis))
	return Range[T]{Min: c - h, Max: c + h}
}

// DistanceBetweenRanges returns the gap between two intervals and true, or false if they overlap or touch.
func DistanceBetweenRanges[T Float](a, b Range[T]) (T, bool) {
	if a.Min > b.Max {
		return a.Min - b.Max, true
	}
	if b.Min > a.Max {
		return b.Min - a.Max, true
	}
	return 0, false
}

// crossAxes returns the pairwise cross products of two sets of unit axes, unnormalized, leaving out those of
// (near) parallel pairs. A skipped pair shares its direction with one of the face normals already scanned.
func crossAxes[T Float](axesI, axesJ [3]Vector[T]) []Vector[T] {
	eps := epsilon[T]()
	out := make([]Vector[T], 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := axesI[i].Cross(axesJ[j])
			if axis.Norm2() < eps*eps {
				continue
			}
			out = append(out, axis)
		}
	}
	return out
}

// IsIntersectToOBB3 tests two boxes for intersection against the 6 face normals only. It returns false as soon
// as one of them separates the boxes. Boxes whose only separating directions are edge-edge cross products are
// reported as intersecting; use IsIntersectToOBB3Axes with AllAxes for an exact answer.
func IsIntersectToOBB3[T Float](i, j OBB[T]) bool {
	return IsIntersectToOBB3Axes(i, j, FaceAxes)
}

// IsIntersectToOBB3Axes tests two boxes for intersection with the separating axis theorem over the given axis
// set. Touching boxes intersect.
func IsIntersectToOBB3Axes[T Float](i, j OBB[T], set AxisSet) bool {
	axesI, _ := UnitAxesAndHalfEdgeLengths(i)
	axesJ, _ := UnitAxesAndHalfEdgeLengths(j)
	for _, axis := range [6]Vector[T]{axesI[0], axesI[1], axesI[2], axesJ[0], axesJ[1], axesJ[2]} {
		if separatedAlong(i, j, axis) {
			return false
		}
	}
	if set != AllAxes {
		return true
	}
	for _, axis := range crossAxes(axesI, axesJ) {
		if separatedAlong(i, j, axis) {
			return false
		}
	}
	return true
}

func separatedAlong[T Float](i, j OBB[T], axis Vector[T]) bool {
	_, separated := DistanceBetweenRanges(RangeAxis(i, axis), RangeAxis(j, axis))
	return separated
}

// DistanceToOBB3 returns the largest gap between the projections of the two boxes over the 15 candidate
// separating axes, or 0 when none of them separates the boxes. Every gap is a lower bound on the Euclidean
// distance between the boxes; the bound is exact when the closest features are face-face or face-vertex.
//
// Face axes project the owning box as its projected center ± the matching half-edge length. Cross axes are left
// unnormalized, so their gaps are scaled by the sine of the angle between the two edges.
func DistanceToOBB3[T Float](i, j OBB[T]) T {
	axesI, halfI := UnitAxesAndHalfEdgeLengths(i)
	axesJ, halfJ := UnitAxesAndHalfEdgeLengths(j)
	var maxDist T

	consider := func(a, b Range[T]) {
		if dist, ok := DistanceBetweenRanges(a, b); ok && dist > maxDist {
			maxDist = dist
		}
	}

	for k := 0; k < 3; k++ {
		c := axesI[k].Dot(i.Center)
		consider(Range[T]{Min: c - halfI[k], Max: c + halfI[k]}, RangeAxis(j, axesI[k]))
	}
	for k := 0; k < 3; k++ {
		c := axesJ[k].Dot(j.Center)
		consider(RangeAxis(i, axesJ[k]), Range[T]{Min: c - halfJ[k], Max: c + halfJ[k]})
	}
	for _, axis := range crossAxes(axesI, axesJ) {
		consider(RangeAxis(i, axis), RangeAxis(j, axis))
	}
	return maxDist
}
