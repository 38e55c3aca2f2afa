package utils

import (
	"github.com/pkg/errors"
)

// NewNotFoundError is used when a labeled item is missing from a collection.
func NewNotFoundError(kind, label string) error {
	return errors.Errorf("%s %q not found", kind, label)
}
