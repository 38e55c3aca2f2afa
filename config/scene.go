// Package config defines scene files: a set of labeled boxes plus the logging setup of the tools
// that read them.
package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/obb/logging"
	"go.viam.com/obb/spatialmath"
	"go.viam.com/obb/utils"
)

// DefaultOrthogonalityTolerance is the largest edge pair cosine a scene accepts by default.
const DefaultOrthogonalityTolerance = 1e-6

// LoggingConfig configures the logger of a tool reading the scene. An empty log_file logs to the tool output only.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`

	logging.FileAppenderConfig `yaml:",inline" mapstructure:",squash"`
}

// Scene is a set of labeled boxes.
type Scene struct {
	Logging                LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
	OrthogonalityTolerance float64       `yaml:"orthogonality_tolerance" json:"orthogonality_tolerance" mapstructure:"orthogonality_tolerance"`
	Boxes                  []BoxConfig   `yaml:"boxes" json:"boxes" mapstructure:"boxes"`

	// ConfigFilePath is the path the scene was read from, if any.
	ConfigFilePath string `yaml:"-" json:"-" mapstructure:"-"`
}

// NewScene returns an empty scene holding the defaults.
func NewScene() *Scene {
	return &Scene{
		Logging:                LoggingConfig{Level: "info"},
		OrthogonalityTolerance: DefaultOrthogonalityTolerance,
	}
}

// LabeledOBB is a box together with its label.
type LabeledOBB struct {
	Label string
	OBB   spatialmath.OBB[float64]
}

// Validate checks the logging level and every box, reporting all problems at once. Boxes must
// have a unique non-empty label and satisfy the box invariants within the orthogonality tolerance.
func (s *Scene) Validate() error {
	var errs error
	if _, err := logging.LevelFromString(s.Logging.Level); err != nil {
		errs = multierr.Append(errs, NewConfigValidationError("logging.level", err))
	}
	if s.OrthogonalityTolerance < 0 {
		errs = multierr.Append(errs, NewConfigValidationError(
			"orthogonality_tolerance", errors.Errorf("must not be negative, got %g", s.OrthogonalityTolerance)))
	}

	seen := make(map[string]int, len(s.Boxes))
	for idx := range s.Boxes {
		box := &s.Boxes[idx]
		path := fmt.Sprintf("%s.%d", "boxes", idx)
		if box.Label == "" {
			errs = multierr.Append(errs, NewConfigValidationFieldRequiredError(path, "label"))
		} else if first, ok := seen[box.Label]; ok {
			errs = multierr.Append(errs, NewConfigValidationError(
				path, errors.Errorf("duplicate label %q, first used by boxes.%d", box.Label, first)))
		} else {
			seen[box.Label] = idx
		}

		o, err := box.OBB()
		if err != nil {
			errs = multierr.Append(errs, NewConfigValidationError(path, err))
			continue
		}
		if err := spatialmath.ValidateOBB(o, s.OrthogonalityTolerance); err != nil {
			errs = multierr.Append(errs, NewConfigValidationError(path, err))
		}
	}
	return errs
}

// OBBs converts every box of the scene, in file order.
func (s *Scene) OBBs() ([]LabeledOBB, error) {
	out := make([]LabeledOBB, 0, len(s.Boxes))
	for idx := range s.Boxes {
		o, err := s.Boxes[idx].OBB()
		if err != nil {
			return nil, NewConfigValidationError(fmt.Sprintf("%s.%d", "boxes", idx), err)
		}
		out = append(out, LabeledOBB{Label: s.Boxes[idx].Label, OBB: o})
	}
	return out, nil
}

// Labels returns the box labels in file order.
func (s *Scene) Labels() []string {
	return lo.Map(s.Boxes, func(box BoxConfig, _ int) string { return box.Label })
}

// Lookup returns the box with the given label.
func (s *Scene) Lookup(label string) (spatialmath.OBB[float64], error) {
	box, ok := lo.Find(s.Boxes, func(box BoxConfig) bool { return box.Label == label })
	if !ok {
		return spatialmath.OBB[float64]{}, utils.NewNotFoundError("box", label)
	}
	o, err := box.OBB()
	if err != nil {
		return spatialmath.OBB[float64]{}, errors.Wrapf(err, "box %q", label)
	}
	return o, nil
}

// NewLogger builds a logger writing to out following the logging section. The returned function
// releases the log file, if one was opened, and must be called once the logger is no longer used.
func (lc LoggingConfig) NewLogger(name string, out io.Writer) (logging.Logger, func() error, error) {
	level, err := logging.LevelFromString(lc.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewBlankLogger(name)
	logger.SetLevel(level)
	logger.AddAppender(logging.NewWriterAppender(out))
	if lc.Filename == "" {
		return logger, func() error { return nil }, nil
	}
	appender := logging.NewFileAppender(lc.FileAppenderConfig)
	logger.AddAppender(appender)
	return logger, func() error {
		return multierr.Combine(logger.Sync(), appender.Close())
	}, nil
}
