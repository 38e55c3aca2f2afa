package spatialmath

import "math/rand"

// OBBFromRandom returns a box whose center and edge vectors are drawn uniformly from [-1,1]^3. The second edge is
// orthogonalized against the first and the third against both, so the result satisfies the OBB invariants.
func OBBFromRandom[T Float](rng *rand.Rand) OBB[T] {
	unit := NewAABB(Vector[T]{}, Vector[T]{1, 1, 1})
	center := SampleInBox(rng, unit)
	u := SampleInBox(rng, unit)
	v := Orthogonalize(u, SampleInBox(rng, unit))
	w := SampleInBox(rng, unit)
	w = Orthogonalize(u, w)
	w = Orthogonalize(v, w)
	return OBB[T]{Center: center, U: u, V: v, W: w}
}
