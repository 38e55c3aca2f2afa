// Package spatialmath defines the oriented bounding box kernel and the vector primitives it is built on.
package spatialmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types the kernel is parameterized over.
type Float interface {
	constraints.Float
}

// sqrt dispatches to math32 for single precision so float32 callers never round-trip through float64.
func sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Abs(v))
	}
	return T(math.Abs(float64(x)))
}

// clamp restricts x to [lo, hi]. lo must not exceed hi.
func clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// epsilon returns a tolerance suited to the precision of T.
func epsilon[T Float]() T {
	var one T = 1
	if one+T(1e-10) == one {
		// single precision
		return 1e-6
	}
	return 1e-10
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
