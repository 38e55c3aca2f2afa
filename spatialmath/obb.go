package spatialmath

import "fmt"

// OBB is an oriented bounding box given by its center and three edge vectors. Each edge vector points from the
// center to the midpoint of a face, so its length is the half-extent of the box along that direction.
//
// Nothing is validated at construction. The edge vectors must be non-zero and linearly independent, and
// mutually orthogonal for the separating axis and nearest point queries to be exact; boxes built by
// OBBFromRandom and NewOBBFromPose satisfy this. Degenerate boxes produce non-finite results rather than errors.
type OBB[T Float] struct {
	Center Vector[T]
	U      Vector[T]
	V      Vector[T]
	W      Vector[T]
}

// OBBFromArray builds an OBB from the flat layout [cx cy cz ux uy uz vx vy vz wx wy wz].
func OBBFromArray[T Float](a [12]T) OBB[T] {
	return OBB[T]{
		Center: Vector[T]{a[0], a[1], a[2]},
		U:      Vector[T]{a[3], a[4], a[5]},
		V:      Vector[T]{a[6], a[7], a[8]},
		W:      Vector[T]{a[9], a[10], a[11]},
	}
}

// Array returns the box in the flat layout accepted by OBBFromArray.
func (o OBB[T]) Array() [12]T {
	return [12]T{
		o.Center[0], o.Center[1], o.Center[2],
		o.U[0], o.U[1], o.U[2],
		o.V[0], o.V[1], o.V[2],
		o.W[0], o.W[1], o.W[2],
	}
}

// Edges returns the three edge vectors in U, V, W order.
func (o OBB[T]) Edges() [3]Vector[T] {
	return [3]Vector[T]{o.U, o.V, o.W}
}

// String returns a human readable string that represents the box.
func (o OBB[T]) String() string {
	return fmt.Sprintf("Type: OBB | Center: %v | U: %v | V: %v | W: %v", o.Center, o.U, o.V, o.W)
}

// Transform returns the box rotated by rm about the origin and then translated by t.
func (o OBB[T]) Transform(rm RotationMatrix[T], t Vector[T]) OBB[T] {
	return OBB[T]{
		Center: rm.MulVec(o.Center).Add(t),
		U:      rm.MulVec(o.U),
		V:      rm.MulVec(o.V),
		W:      rm.MulVec(o.W),
	}
}

// IsIncludePoint reports whether p lies inside the box. eps is a relative slack on each half-extent: 0 is the
// exact boundary, positive values grow the box and negative values shrink it.
//
// The test compares e·(p-c) against e·e for each raw edge vector e, which is |d| <= half-extent scaled by |e|
// and needs no square root.
func IsIncludePoint[T Float](o OBB[T], p Vector[T], eps T) bool {
	s := 1 + eps
	d := p.Sub(o.Center)
	for _, e := range o.Edges() {
		if abs(e.Dot(d)) > e.Norm2()*s {
			return false
		}
	}
	return true
}

// UnitAxesAndHalfEdgeLengths returns the normalized edge vectors and their lengths.
func UnitAxesAndHalfEdgeLengths[T Float](o OBB[T]) ([3]Vector[T], [3]T) {
	var axes [3]Vector[T]
	var lengths [3]T
	for i, e := range o.Edges() {
		l := e.Norm()
		axes[i] = e.Mul(1 / l)
		lengths[i] = l
	}
	return axes, lengths
}

// NearestToPoint3 returns the point of the box closest to p. Points already inside are returned unchanged.
// Reference: https://github.com/gszauer/GamePhysicsCookbook/blob/a0b8ee0c39fed6d4b90bb6d2195004dfcf5a1115/Code/Geometry3D.cpp#L165
func NearestToPoint3[T Float](o OBB[T], p Vector[T]) Vector[T] {
	if IsIncludePoint(o, p, 0) {
		return p
	}
	axes, halfLengths := UnitAxesAndHalfEdgeLengths(o)
	direction := p.Sub(o.Center)
	result := o.Center
	for i := 0; i < 3; i++ {
		t := clamp(axes[i].Dot(direction), -halfLengths[i], halfLengths[i])
		result = result.Add(axes[i].Mul(t))
	}
	return result
}

// Ordered signs of the box corners. The first four form the face on the -W side, the last four the face on the
// +W side, both wound the same way.
var cornerSigns = [8][3]float64{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

// CornerPoints returns the 8 corners center ± U ± V ± W.
func CornerPoints[T Float](o OBB[T]) [8]Vector[T] {
	var corners [8]Vector[T]
	for i, s := range cornerSigns {
		corners[i] = o.Center.Add(o.U.Mul(T(s[0]))).Add(o.V.Mul(T(s[1]))).Add(o.W.Mul(T(s[2])))
	}
	return corners
}
