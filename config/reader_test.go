package config

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/obb/logging"
	"go.viam.com/obb/spatialmath"
	"go.viam.com/obb/testutils"
)

const sceneYAML = `
logging:
  level: debug
  log_file: /tmp/obb3.log
  max_backups: 2
orthogonality_tolerance: 1e-9
boxes:
  - label: floor
    center: [0, 0, -0.5]
    dims: [10, 10, 1]
  - label: crate
    center: [1, 2, 0.5]
    dims: [1, 1, 1]
    axis_angle: {th: 45, x: 0, y: 0, z: 1}
    degrees: true
  - label: raw
    center: [3, 3, 3]
    u: [1, 0, 0]
    v: [0, 2, 0]
    w: [0, 0, 3]
`

func TestFromReaderYAML(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	scene, err := FromReader("scene.yaml", strings.NewReader(sceneYAML), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Validate(), test.ShouldBeNil)
	test.That(t, scene.ConfigFilePath, test.ShouldEqual, "scene.yaml")
	test.That(t, scene.Logging.Level, test.ShouldEqual, "debug")
	test.That(t, scene.Logging.Filename, test.ShouldEqual, "/tmp/obb3.log")
	test.That(t, scene.Logging.MaxBackups, test.ShouldEqual, 2)
	test.That(t, scene.OrthogonalityTolerance, test.ShouldEqual, 1e-9)
	test.That(t, scene.Labels(), test.ShouldResemble, []string{"floor", "crate", "raw"})
	test.That(t, logs.FilterMessage("read scene").Len(), test.ShouldEqual, 1)

	crate, err := scene.Lookup("crate")
	test.That(t, err, test.ShouldBeNil)
	expected := spatialmath.Vector[float64]{math.Sqrt2 / 4, math.Sqrt2 / 4, 0}
	test.That(t, spatialmath.VectorAlmostEqual(crate.U, expected, 1e-12), test.ShouldBeTrue)

	raw, err := scene.Lookup("raw")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, raw.V, test.ShouldResemble, spatialmath.Vector[float64]{0, 2, 0})

	_, err = scene.Lookup("missing")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `box "missing" not found`)
}

func TestFromReaderDefaults(t *testing.T) {
	logger := logging.NewTestLogger(t)
	scene, err := FromReader("empty.yaml", strings.NewReader(""), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Logging.Level, test.ShouldEqual, "info")
	test.That(t, scene.OrthogonalityTolerance, test.ShouldEqual, DefaultOrthogonalityTolerance)
	test.That(t, scene.Boxes, test.ShouldBeEmpty)

	_, err = FromReader("bad.yaml", strings.NewReader("boxez: []"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode scene from yaml")
}

func TestFromReaderJSON(t *testing.T) {
	logger := logging.NewTestLogger(t)
	in := `{"boxes": [{"label": "a", "center": [0, 0, 0], "dims": [2, 2, 2]}]}`
	scene, err := FromReader("scene.JSON", strings.NewReader(in), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Validate(), test.ShouldBeNil)
	boxes, err := scene.OBBs()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(boxes), test.ShouldEqual, 1)
	test.That(t, boxes[0].Label, test.ShouldEqual, "a")
	test.That(t, boxes[0].OBB.W, test.ShouldResemble, spatialmath.Vector[float64]{0, 0, 1})

	_, err = FromReader("scene.json", strings.NewReader("{"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode scene from json")

	// unknown keys are rejected like in yaml
	_, err = FromReader("scene.json", strings.NewReader(`{"boxez": []}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode scene from json")
	test.That(t, err.Error(), test.ShouldContainSubstring, "boxez")
}

func TestReadExpandsEnvironment(t *testing.T) {
	t.Setenv("OBB_CRATE_X", "7")
	contents := "boxes:\n  - label: crate\n    center: [${OBB_CRATE_X}, 0, 0]\n    dims: [1, 1, 1]\n"
	path := testutils.WriteTempFile(t, "scene.yaml", contents)

	scene, err := Read(path, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Boxes[0].Center, test.ShouldResemble, spatialmath.Vector[float64]{7, 0, 0})

	_, err = Read(filepath.Join(t.TempDir(), "nope.yaml"), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFromMapAndOverrides(t *testing.T) {
	scene, err := FromMap(map[string]interface{}{
		"orthogonality_tolerance": "0.01",
		"boxes": []interface{}{
			map[string]interface{}{
				"label":  "a",
				"center": []interface{}{1, 2, 3},
				"u":      []interface{}{1, 0, 0},
				"v":      []interface{}{0, 1, 0},
				"w":      []interface{}{0, 0, 1},
			},
		},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.OrthogonalityTolerance, test.ShouldEqual, 0.01)
	test.That(t, scene.Logging.Level, test.ShouldEqual, "info")
	test.That(t, scene.Validate(), test.ShouldBeNil)
	a, err := scene.Lookup("a")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, a.Center, test.ShouldResemble, spatialmath.Vector[float64]{1, 2, 3})

	// flags win over the file, untouched keys keep their values
	err = scene.ApplyOverrides(map[string]interface{}{
		"logging": map[string]interface{}{"level": "warn", "log_file": "out.log"},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Logging.Level, test.ShouldEqual, "warn")
	test.That(t, scene.Logging.Filename, test.ShouldEqual, "out.log")
	test.That(t, scene.OrthogonalityTolerance, test.ShouldEqual, 0.01)
	test.That(t, len(scene.Boxes), test.ShouldEqual, 1)

	err = scene.ApplyOverrides(map[string]interface{}{"colour": "red"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode scene attributes")
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	scene := NewScene()
	o := spatialmath.OBB[float64]{
		Center: spatialmath.Vector[float64]{1, 2, 3},
		U:      spatialmath.Vector[float64]{0.5, 0, 0},
		V:      spatialmath.Vector[float64]{0, 0.25, 0},
		W:      spatialmath.Vector[float64]{0, 0, 2},
	}
	scene.Boxes = append(scene.Boxes, NewBoxConfigFromOBB("box0", o))

	var buf bytes.Buffer
	test.That(t, scene.WriteYAML(&buf), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldNotContainSubstring, "dims")

	back, err := FromReader("scene.yaml", &buf, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.Validate(), test.ShouldBeNil)
	got, err := back.Lookup("box0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldResemble, o)
}
