package config

import (
	"github.com/pkg/errors"
)

// NewConfigValidationError returns an error specifying that there was an error validating the
// config at the given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "Error validating. Path: %q", path)
}

// NewConfigValidationFieldRequiredError returns an error specifying that the given field is
// required.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}
