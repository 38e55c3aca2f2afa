package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/obb/logging"
)

// Read reads a scene from the given file. Environment variables referenced as ${VAR} are expanded
// before decoding. Files ending in .json are decoded as JSON, everything else as YAML.
func Read(filePath string, logger logging.Logger) (*Scene, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scene %q", filePath)
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a scene from the given reader and specifies
// where, if applicable, the file the reader originated from.
// Values missing from the input keep their defaults.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Scene, error) {
	scene := NewScene()
	scene.ConfigFilePath = originalPath

	if strings.EqualFold(filepath.Ext(originalPath), ".json") {
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(scene); err != nil {
			return nil, errors.Wrapf(err, "failed to decode scene from json")
		}
	} else {
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(scene); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "failed to decode scene from yaml")
		}
	}

	logger.Debugw("read scene", "path", originalPath, "boxes", len(scene.Boxes))
	return scene, nil
}

// FromMap decodes a scene from a generic map, e.g. one built from flags or embedded in another
// document. Values missing from the map keep their defaults.
func FromMap(attributes map[string]interface{}) (*Scene, error) {
	scene := NewScene()
	if err := scene.ApplyOverrides(attributes); err != nil {
		return nil, err
	}
	return scene, nil
}

// ApplyOverrides decodes the given attributes on top of the scene. Only keys present in the map
// change the scene, so this layers flag values over a scene read from a file.
func (s *Scene) ApplyOverrides(attributes map[string]interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           s,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create scene decoder")
	}
	if err := decoder.Decode(attributes); err != nil {
		return errors.Wrap(err, "failed to decode scene attributes")
	}
	return nil
}

// WriteYAML encodes the scene as YAML.
func (s *Scene) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "failed to encode scene")
	}
	return encoder.Close()
}
