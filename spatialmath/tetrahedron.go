package spatialmath

// TetrahedronVolume returns the signed volume of the tetrahedron (v1, v2, v3, v4). It is positive when v4 lies on
// the side of the triangle (v1, v2, v3) that its counter-clockwise winding faces.
func TetrahedronVolume[T Float](v1, v2, v3, v4 Vector[T]) T {
	a := v2.Sub(v1)
	b := v3.Sub(v1)
	c := v4.Sub(v1)
	return a.Dot(b.Cross(c)) / 6
}
