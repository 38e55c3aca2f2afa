package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vector is a point or direction in 3D space.
type Vector[T Float] [3]T

// NewVector returns the vector (x, y, z).
func NewVector[T Float](x, y, z T) Vector[T] {
	return Vector[T]{x, y, z}
}

// VectorFromR3 converts an r3.Vector to a Vector of the requested precision.
func VectorFromR3[T Float](v r3.Vector) Vector[T] {
	return Vector[T]{T(v.X), T(v.Y), T(v.Z)}
}

// R3 converts the vector to an r3.Vector.
func (v Vector[T]) R3() r3.Vector {
	return r3.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// String returns a human readable string that represents the vector.
func (v Vector[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", float64(v[0]), float64(v[1]), float64(v[2]))
}

// Add returns v + w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul returns v scaled by s.
func (v Vector[T]) Mul(s T) Vector[T] {
	return Vector[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v × w.
func (v Vector[T]) Cross(w Vector[T]) Vector[T] {
	return Vector[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm2 returns the squared length of v.
func (v Vector[T]) Norm2() T {
	return v.Dot(v)
}

// Norm returns the length of v.
func (v Vector[T]) Norm() T {
	return sqrt(v.Norm2())
}

// Normalize returns v scaled to unit length. A zero vector yields non-finite components.
func (v Vector[T]) Normalize() Vector[T] {
	return v.Mul(1 / v.Norm())
}

// Distance returns the Euclidean distance between the points v and w.
func (v Vector[T]) Distance(w Vector[T]) T {
	return v.Sub(w).Norm()
}

// IsFinite reports whether every component of v is finite.
func (v Vector[T]) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// Orthogonalize returns v with its component along u removed (one Gram-Schmidt step).
func Orthogonalize[T Float](u, v Vector[T]) Vector[T] {
	return v.Sub(u.Mul(u.Dot(v) / u.Dot(u)))
}

// VectorAlmostEqual reports whether every component of a and b differs by at most eps.
func VectorAlmostEqual[T Float](a, b Vector[T], eps T) bool {
	for i := 0; i < 3; i++ {
		if abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
