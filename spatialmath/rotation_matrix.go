package spatialmath

// RotationMatrix is a 3x3 matrix stored row-major. It is used for rotations but nothing enforces orthonormality.
type RotationMatrix[T Float] struct {
	mat [9]T
}

// IdentityMatrix returns the 3x3 identity.
func IdentityMatrix[T Float]() RotationMatrix[T] {
	return RotationMatrix[T]{mat: [9]T{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewRotationMatrixFromColumns builds the matrix whose columns are c0, c1 and c2.
func NewRotationMatrixFromColumns[T Float](c0, c1, c2 Vector[T]) RotationMatrix[T] {
	return RotationMatrix[T]{mat: [9]T{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	}}
}

// At returns the entry at row i, column j.
func (rm RotationMatrix[T]) At(i, j int) T {
	return rm.mat[3*i+j]
}

// Row returns the i-th row.
func (rm RotationMatrix[T]) Row(i int) Vector[T] {
	return Vector[T]{rm.mat[3*i], rm.mat[3*i+1], rm.mat[3*i+2]}
}

// Col returns the j-th column.
func (rm RotationMatrix[T]) Col(j int) Vector[T] {
	return Vector[T]{rm.mat[j], rm.mat[3+j], rm.mat[6+j]}
}

// MulVec returns rm * v.
func (rm RotationMatrix[T]) MulVec(v Vector[T]) Vector[T] {
	return Vector[T]{rm.Row(0).Dot(v), rm.Row(1).Dot(v), rm.Row(2).Dot(v)}
}

// Mul returns rm * other.
func (rm RotationMatrix[T]) Mul(other RotationMatrix[T]) RotationMatrix[T] {
	var out RotationMatrix[T]
	for i := 0; i < 3; i++ {
		row := rm.Row(i)
		for j := 0; j < 3; j++ {
			out.mat[3*i+j] = row.Dot(other.Col(j))
		}
	}
	return out
}

// Transpose returns the transpose of rm.
func (rm RotationMatrix[T]) Transpose() RotationMatrix[T] {
	return NewRotationMatrixFromColumns(rm.Row(0), rm.Row(1), rm.Row(2))
}

// skew returns the cross-product matrix [v]x such that [v]x * w == v × w.
func skew[T Float](v Vector[T]) RotationMatrix[T] {
	return RotationMatrix[T]{mat: [9]T{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	}}
}

func (rm RotationMatrix[T]) add(other RotationMatrix[T]) RotationMatrix[T] {
	for i := range rm.mat {
		rm.mat[i] += other.mat[i]
	}
	return rm
}

func (rm RotationMatrix[T]) scale(s T) RotationMatrix[T] {
	for i := range rm.mat {
		rm.mat[i] *= s
	}
	return rm
}

// FrameFromZVector returns two unit vectors x and y such that (x, y, z/|z|) is a right-handed orthonormal frame.
func FrameFromZVector[T Float](z Vector[T]) (Vector[T], Vector[T]) {
	n := z.Normalize()
	x := Vector[T]{0, 1, 0}.Cross(n)
	if x.Norm() < epsilon[T]() {
		// z is parallel to the y axis
		x = Vector[T]{1, 0, 0}.Cross(n)
	}
	x = x.Normalize()
	return x, n.Cross(x)
}

// MinimumRotationMatrix returns the rotation with the smallest angle that takes the direction of v0 onto the
// direction of v1. Zero-length inputs yield the identity.
func MinimumRotationMatrix[T Float](v0, v1 Vector[T]) RotationMatrix[T] {
	eps := epsilon[T]()
	if v0.Norm() < eps || v1.Norm() < eps {
		return IdentityMatrix[T]()
	}
	a := v0.Normalize()
	b := v1.Normalize()
	c := a.Dot(b)
	axis := a.Cross(b)
	if 1+c < eps {
		// antiparallel: half turn about any axis perpendicular to a
		p, _ := FrameFromZVector(a)
		outer := NewRotationMatrixFromColumns(p.Mul(p[0]), p.Mul(p[1]), p.Mul(p[2]))
		return outer.scale(2).add(IdentityMatrix[T]().scale(-1))
	}
	k := skew(axis)
	// Rodrigues with sin folded into |axis|: I + K + K^2 / (1 + c)
	return IdentityMatrix[T]().add(k).add(k.Mul(k).scale(1 / (1 + c)))
}
