// Package cli contains the obb3 command line tool: queries against the boxes of a scene file.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/obb/config"
	"go.viam.com/obb/logging"
)

const (
	// Global flags.
	flagConfig  = "config"
	flagDebug   = "debug"
	flagLogFile = "log-file"

	// Command flags.
	flagBox   = "box"
	flagPoint = "point"
	flagEps   = "eps"
	flagA     = "a"
	flagB     = "b"
	flagFull  = "full"
	flagCount = "count"
	flagSeed  = "seed"
	flagOut   = "out"
)

// obbApp holds the state shared by the commands of one invocation.
type obbApp struct {
	scene       *config.Scene
	logger      logging.Logger
	closeLogger func() error
	prevGlobal  logging.Logger
}

// before loads the scene, layering flag values over the file over the defaults.
func (a *obbApp) before(c *cli.Context) error {
	a.prevGlobal = logging.Global()
	// the scene may name its own log outputs, until then log to errOut at the flag level
	startup := logging.NewBlankLogger("obb3")
	startup.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if !c.Bool(flagDebug) {
		startup.SetLevel(logging.INFO)
	}
	logging.ReplaceGlobal(startup)

	scene := config.NewScene()
	if path := c.String(flagConfig); path != "" {
		var err error
		if scene, err = config.Read(path, logging.Global().Sublogger("config")); err != nil {
			return err
		}
	}

	overrides := map[string]interface{}{}
	loggingOverrides := map[string]interface{}{}
	if c.Bool(flagDebug) {
		loggingOverrides["level"] = "debug"
	}
	if c.IsSet(flagLogFile) {
		loggingOverrides["log_file"] = c.String(flagLogFile)
	}
	if len(loggingOverrides) > 0 {
		overrides["logging"] = loggingOverrides
	}
	if err := scene.ApplyOverrides(overrides); err != nil {
		return err
	}
	if err := scene.Validate(); err != nil {
		return errors.Wrap(err, "invalid scene")
	}

	logger, closeLogger, err := scene.Logging.NewLogger("obb3", c.App.ErrWriter)
	if err != nil {
		return err
	}
	a.scene = scene
	a.logger = logger
	a.closeLogger = closeLogger
	logging.ReplaceGlobal(logger)
	logger.Debugw("scene loaded", "path", scene.ConfigFilePath, "boxes", len(scene.Boxes))
	return nil
}

func (a *obbApp) after(c *cli.Context) error {
	if a.prevGlobal != nil {
		logging.ReplaceGlobal(a.prevGlobal)
	}
	if a.closeLogger == nil {
		return nil
	}
	return a.closeLogger()
}

// NewApp returns the obb3 app writing its results to out and its errors to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	a := &obbApp{}
	return &cli.App{
		Name:            "obb3",
		Usage:           "query oriented bounding boxes",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load the scene from `FILE`",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Usage: "also write logs to `FILE`",
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			{
				Name:      "contains",
				Usage:     "report whether a point lies inside a box",
				UsageText: "obb3 contains --box <label> --point <x,y,z> [--eps <slack>]",
				Flags: []cli.Flag{
					boxFlag(flagBox),
					pointFlag(),
					&cli.Float64Flag{
						Name:  flagEps,
						Usage: "relative slack on each half extent, negative values shrink the box",
					},
				},
				Action: a.containsAction,
			},
			{
				Name:      "nearest",
				Usage:     "find the point of a box nearest to a point",
				UsageText: "obb3 nearest --box <label> --point <x,y,z>",
				Flags:     []cli.Flag{boxFlag(flagBox), pointFlag()},
				Action:    a.nearestAction,
			},
			{
				Name:      "intersect",
				Usage:     "report whether two boxes intersect",
				UsageText: "obb3 intersect --a <label> --b <label> [--full]",
				Flags:     []cli.Flag{boxFlag(flagA), boxFlag(flagB), fullFlag()},
				Action:    a.intersectAction,
			},
			{
				Name:      "distance",
				Usage:     "print a lower bound on the distance between two boxes",
				UsageText: "obb3 distance --a <label> --b <label>",
				Flags:     []cli.Flag{boxFlag(flagA), boxFlag(flagB)},
				Action:    a.distanceAction,
			},
			{
				Name:      "corners",
				Usage:     "print the eight corners of a box",
				UsageText: "obb3 corners --box <label>",
				Flags:     []cli.Flag{boxFlag(flagBox)},
				Action:    a.cornersAction,
			},
			{
				Name:      "pairs",
				Usage:     "check every pair of boxes of the scene",
				UsageText: "obb3 pairs [--full]",
				Flags:     []cli.Flag{fullFlag()},
				Action:    a.pairsAction,
			},
			{
				Name:      "random",
				Usage:     "write a scene of random boxes",
				UsageText: "obb3 random [--count <n>] [--seed <s>] [--out <file>]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  flagCount,
						Value: 10,
						Usage: "number of boxes",
					},
					&cli.Int64Flag{
						Name:  flagSeed,
						Value: 0,
						Usage: "random seed",
					},
					&cli.StringFlag{
						Name:  flagOut,
						Usage: "write the scene to `FILE` instead of stdout",
					},
				},
				Action: a.randomAction,
			},
		},
	}
}

func boxFlag(name string) cli.Flag {
	return &cli.StringFlag{
		Name:     name,
		Required: true,
		Usage:    "box `LABEL` from the scene",
	}
}

func pointFlag() cli.Flag {
	return &cli.Float64SliceFlag{
		Name:     flagPoint,
		Required: true,
		Usage:    "point as comma separated `X,Y,Z`",
	}
}

func fullFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  flagFull,
		Usage: "also test the nine edge cross product axes",
	}
}
