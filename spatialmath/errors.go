package spatialmath

import (
	"github.com/pkg/errors"
)

// ErrZeroRotationAxis is returned when an axis-angle rotation has no axis to rotate about.
var ErrZeroRotationAxis = errors.New("cannot normalize axis-angle rotation with a zero axis")

func newBadGeometryDimensionsError(dims Vector[float64]) error {
	return errors.Errorf("invalid box dimensions %v, dimensions must be positive", dims)
}

func newDegenerateEdgeError(name string) error {
	return errors.Errorf("edge vector %s has zero length", name)
}

func newNonFiniteEdgeError(name string) error {
	return errors.Errorf("edge vector %s is non-finite", name)
}

func newNonOrthogonalEdgesError(a, b string, cosine float64) error {
	return errors.Errorf("edge vectors %s and %s are not orthogonal (cosine %.3g)", a, b, cosine)
}
