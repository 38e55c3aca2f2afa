package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"go.viam.com/obb/config"
	"go.viam.com/obb/spatialmath"
)

// printf prints a message with a newline.
func printf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format+"\n", a...)
}

func pointArg(c *cli.Context) (spatialmath.Vector[float64], error) {
	coords := c.Float64Slice(flagPoint)
	if len(coords) != 3 {
		return spatialmath.Vector[float64]{}, errors.Errorf("--%s needs 3 coordinates, got %d", flagPoint, len(coords))
	}
	p := spatialmath.NewVector(coords[0], coords[1], coords[2])
	if !p.IsFinite() {
		return spatialmath.Vector[float64]{}, errors.Errorf("--%s must be finite, got %v", flagPoint, p)
	}
	return p, nil
}

func axisSetArg(c *cli.Context) spatialmath.AxisSet {
	if c.Bool(flagFull) {
		return spatialmath.AllAxes
	}
	return spatialmath.FaceAxes
}

func (a *obbApp) lookupPair(c *cli.Context) (spatialmath.OBB[float64], spatialmath.OBB[float64], error) {
	obbA, err := a.scene.Lookup(c.String(flagA))
	if err != nil {
		return spatialmath.OBB[float64]{}, spatialmath.OBB[float64]{}, err
	}
	obbB, err := a.scene.Lookup(c.String(flagB))
	if err != nil {
		return spatialmath.OBB[float64]{}, spatialmath.OBB[float64]{}, err
	}
	return obbA, obbB, nil
}

func (a *obbApp) containsAction(c *cli.Context) error {
	o, err := a.scene.Lookup(c.String(flagBox))
	if err != nil {
		return err
	}
	p, err := pointArg(c)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%t", spatialmath.IsIncludePoint(o, p, c.Float64(flagEps)))
	return nil
}

func (a *obbApp) nearestAction(c *cli.Context) error {
	o, err := a.scene.Lookup(c.String(flagBox))
	if err != nil {
		return err
	}
	p, err := pointArg(c)
	if err != nil {
		return err
	}
	nearest := spatialmath.NearestToPoint3(o, p)
	printf(c.App.Writer, "%v\t%g", nearest, nearest.Distance(p))
	return nil
}

func (a *obbApp) intersectAction(c *cli.Context) error {
	obbA, obbB, err := a.lookupPair(c)
	if err != nil {
		return err
	}
	axes := axisSetArg(c)
	a.logger.Debugw("testing intersection", "a", c.String(flagA), "b", c.String(flagB), "axes", axes)
	printf(c.App.Writer, "%t", spatialmath.IsIntersectToOBB3Axes(obbA, obbB, axes))
	return nil
}

func (a *obbApp) distanceAction(c *cli.Context) error {
	obbA, obbB, err := a.lookupPair(c)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%g", spatialmath.DistanceToOBB3(obbA, obbB))
	return nil
}

func (a *obbApp) cornersAction(c *cli.Context) error {
	o, err := a.scene.Lookup(c.String(flagBox))
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "X", "Y", "Z"})
	for i, corner := range spatialmath.CornerPoints(o) {
		t.AppendRow(table.Row{i, corner[0], corner[1], corner[2]})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

func (a *obbApp) randomAction(c *cli.Context) error {
	count := c.Int(flagCount)
	if count < 0 {
		return errors.Errorf("--%s must not be negative, got %d", flagCount, count)
	}
	rng := rand.New(rand.NewSource(c.Int64(flagSeed)))
	scene := config.NewScene()
	scene.Boxes = lo.Times(count, func(i int) config.BoxConfig {
		return config.NewBoxConfigFromOBB(fmt.Sprintf("box%d", i), spatialmath.OBBFromRandom[float64](rng))
	})

	out := c.App.Writer
	if path := c.String(flagOut); path != "" {
		//nolint:gosec
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to create %q", path)
		}
		defer func() {
			if err := f.Close(); err != nil {
				a.logger.Errorw("failed to close scene file", "path", path, "error", err)
			}
		}()
		out = f
	}
	if err := scene.WriteYAML(out); err != nil {
		return err
	}
	a.logger.Debugw("wrote random scene", "boxes", count, "seed", c.Int64(flagSeed))
	return nil
}
