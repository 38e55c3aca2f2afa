package config

import (
	"github.com/pkg/errors"

	"go.viam.com/obb/spatialmath"
	"go.viam.com/obb/utils"
)

// BoxConfig describes one labeled box of a scene. A box is given either by its raw edge vectors
// (U, V and W, the half extents along each local axis) or by full dimensions and an optional
// axis-angle orientation.
type BoxConfig struct {
	Label  string                      `yaml:"label" json:"label" mapstructure:"label"`
	Center spatialmath.Vector[float64] `yaml:"center" json:"center" mapstructure:"center"`

	U *spatialmath.Vector[float64] `yaml:"u,omitempty" json:"u,omitempty" mapstructure:"u"`
	V *spatialmath.Vector[float64] `yaml:"v,omitempty" json:"v,omitempty" mapstructure:"v"`
	W *spatialmath.Vector[float64] `yaml:"w,omitempty" json:"w,omitempty" mapstructure:"w"`

	Dims      *spatialmath.Vector[float64] `yaml:"dims,omitempty" json:"dims,omitempty" mapstructure:"dims"`
	AxisAngle *spatialmath.R4AA            `yaml:"axis_angle,omitempty" json:"axis_angle,omitempty" mapstructure:"axis_angle"`
	// Degrees marks AxisAngle.Theta as given in degrees.
	Degrees bool `yaml:"degrees,omitempty" json:"degrees,omitempty" mapstructure:"degrees"`
}

// NewBoxConfigFromOBB returns the raw edge vector form of o.
func NewBoxConfigFromOBB(label string, o spatialmath.OBB[float64]) BoxConfig {
	u, v, w := o.U, o.V, o.W
	return BoxConfig{Label: label, Center: o.Center, U: &u, V: &v, W: &w}
}

func (bc *BoxConfig) hasEdges() bool {
	return bc.U != nil || bc.V != nil || bc.W != nil
}

// OBB converts the config into a box. It fails if the config mixes both forms, gives only some of
// the edge vectors, or has non-positive dimensions.
func (bc *BoxConfig) OBB() (spatialmath.OBB[float64], error) {
	switch {
	case bc.hasEdges() && (bc.Dims != nil || bc.AxisAngle != nil):
		return spatialmath.OBB[float64]{}, errors.New("give either edge vectors or dims with axis_angle, not both")
	case bc.hasEdges():
		if bc.U == nil || bc.V == nil || bc.W == nil {
			return spatialmath.OBB[float64]{}, errors.New("edge vectors u, v and w must be given together")
		}
		return spatialmath.OBB[float64]{Center: bc.Center, U: *bc.U, V: *bc.V, W: *bc.W}, nil
	case bc.Dims != nil:
		orientation := bc.AxisAngle
		if orientation != nil && bc.Degrees {
			inRadians := *orientation
			inRadians.Theta = utils.DegToRad(orientation.Theta)
			orientation = &inRadians
		}
		return spatialmath.NewOBBFromPose(bc.Center.R3(), bc.Dims.R3(), orientation)
	default:
		return spatialmath.OBB[float64]{}, errors.New("box needs either edge vectors u, v, w or dims")
	}
}
