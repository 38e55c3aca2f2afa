package spatialmath

import "math/rand"

// AABB is an axis aligned box given by its minimum and maximum corners.
type AABB[T Float] struct {
	Min Vector[T]
	Max Vector[T]
}

// NewAABB returns the axis aligned box around center with the given half extents.
func NewAABB[T Float](center, halfSize Vector[T]) AABB[T] {
	return AABB[T]{Min: center.Sub(halfSize), Max: center.Add(halfSize)}
}

// Center returns the midpoint of the box.
func (b AABB[T]) Center() Vector[T] {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside the box, boundary included.
func (b AABB[T]) Contains(p Vector[T]) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// OBB returns the box as an OBB with axis aligned edge vectors.
func (b AABB[T]) OBB() OBB[T] {
	h := b.Max.Sub(b.Min).Mul(0.5)
	return OBB[T]{
		Center: b.Center(),
		U:      Vector[T]{h[0], 0, 0},
		V:      Vector[T]{0, h[1], 0},
		W:      Vector[T]{0, 0, h[2]},
	}
}

// BoundingAABB returns the smallest axis aligned box containing o.
func (o OBB[T]) BoundingAABB() AABB[T] {
	var h Vector[T]
	for i := 0; i < 3; i++ {
		h[i] = abs(o.U[i]) + abs(o.V[i]) + abs(o.W[i])
	}
	return NewAABB(o.Center, h)
}

// SampleInBox returns a point drawn uniformly from b.
func SampleInBox[T Float](rng *rand.Rand, b AABB[T]) Vector[T] {
	var p Vector[T]
	for i := 0; i < 3; i++ {
		p[i] = b.Min[i] + T(rng.Float64())*(b.Max[i]-b.Min[i])
	}
	return p
}
