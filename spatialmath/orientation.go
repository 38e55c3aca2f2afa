package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// R4AA represents an R4 axis angle: a rotation of Theta radians about the axis (RX, RY, RZ).
type R4AA struct {
	Theta float64 `json:"th" yaml:"th" mapstructure:"th"`
	RX    float64 `json:"x" yaml:"x" mapstructure:"x"`
	RY    float64 `json:"y" yaml:"y" mapstructure:"y"`
	RZ    float64 `json:"z" yaml:"z" mapstructure:"z"`
}

// NewR4AA creates the zero rotation about the z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Quaternion converts the axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) Quaternion() (quat.Number, error) {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0 {
		return quat.Number{}, ErrZeroRotationAxis
	}
	sinA := math.Sin(r4.Theta / 2)
	return quat.Number{
		Real: math.Cos(r4.Theta / 2),
		Imag: r4.RX / norm * sinA,
		Jmag: r4.RY / norm * sinA,
		Kmag: r4.RZ / norm * sinA,
	}, nil
}

// RotationMatrix returns the rotation as a matrix acting on column vectors.
func (r4 *R4AA) RotationMatrix() (RotationMatrix[float64], error) {
	q, err := r4.Quaternion()
	if err != nil {
		return RotationMatrix[float64]{}, err
	}
	return QuatToRotationMatrix(q), nil
}

// QuatToRotationMatrix returns the matrix whose columns are the images of the basis vectors under the rotation q.
func QuatToRotationMatrix(q quat.Number) RotationMatrix[float64] {
	return NewRotationMatrixFromColumns(
		rotateByQuat(q, r3.Vector{X: 1}),
		rotateByQuat(q, r3.Vector{Y: 1}),
		rotateByQuat(q, r3.Vector{Z: 1}),
	)
}

// rotateByQuat computes q * v * q^-1 for a unit quaternion q.
func rotateByQuat(q quat.Number, v r3.Vector) Vector[float64] {
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return Vector[float64]{p.Imag, p.Jmag, p.Kmag}
}

// NewOBBFromPose builds a box centered at center with the given full dimensions, rotated by orientation. A nil
// orientation means no rotation. Zero dimensions are rejected since they make the box degenerate.
func NewOBBFromPose(center, dims r3.Vector, orientation *R4AA) (OBB[float64], error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return OBB[float64]{}, newBadGeometryDimensionsError(VectorFromR3[float64](dims))
	}
	rm := IdentityMatrix[float64]()
	if orientation != nil {
		var err error
		if rm, err = orientation.RotationMatrix(); err != nil {
			return OBB[float64]{}, err
		}
	}
	half := dims.Mul(0.5)
	return OBB[float64]{
		Center: VectorFromR3[float64](center),
		U:      rm.Col(0).Mul(half.X),
		V:      rm.Col(1).Mul(half.Y),
		W:      rm.Col(2).Mul(half.Z),
	}, nil
}
