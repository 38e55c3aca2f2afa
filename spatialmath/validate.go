package spatialmath

import "go.uber.org/multierr"

var edgeNames = [3]string{"u", "v", "w"}

// ValidateOBB checks the invariants the kernel relies on but never enforces itself: every edge vector has a
// finite non-zero length, and every pair of edges has a cosine no larger than orthogonalityTol in magnitude.
// All violations are reported together.
func ValidateOBB[T Float](o OBB[T], orthogonalityTol T) error {
	edges := o.Edges()
	var lengths [3]T
	var errs error
	degenerate := false
	for i, e := range edges {
		lengths[i] = e.Norm()
		switch {
		case !e.IsFinite() || !IsFinite(lengths[i]):
			errs = multierr.Append(errs, newNonFiniteEdgeError(edgeNames[i]))
			degenerate = true
		case !(lengths[i] > 0):
			errs = multierr.Append(errs, newDegenerateEdgeError(edgeNames[i]))
			degenerate = true
		}
	}
	if degenerate {
		return errs
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			cosine := edges[i].Dot(edges[j]) / (lengths[i] * lengths[j])
			if abs(cosine) > orthogonalityTol {
				errs = multierr.Append(errs, newNonOrthogonalEdgesError(edgeNames[i], edgeNames[j], float64(cosine)))
			}
		}
	}
	return errs
}
