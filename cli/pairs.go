package cli

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/obb/config"
	"go.viam.com/obb/spatialmath"
	"go.viam.com/obb/utils"
)

// pairResult is the outcome of checking one unordered pair of boxes.
type pairResult struct {
	i, j      int
	intersect bool
	distance  float64
}

// boxPairs lists the unordered index pairs of n boxes in row major order.
func boxPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// checkPairs evaluates every pair of boxes concurrently. Results are in boxPairs order.
func (a *obbApp) checkPairs(c *cli.Context, boxes []config.LabeledOBB, axes spatialmath.AxisSet) ([]pairResult, error) {
	pairs := boxPairs(len(boxes))
	results := make([]pairResult, len(pairs))
	logger := a.logger.Sublogger("pairs")
	err := utils.GroupWorkParallel(
		c.Context,
		len(pairs),
		func(numGroups int) {
			logger.Debugw("checking pairs", "pairs", len(pairs), "groups", numGroups, "axes", axes)
		},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
					i, j := pairs[workNum][0], pairs[workNum][1]
					results[workNum] = pairResult{
						i:         i,
						j:         j,
						intersect: spatialmath.IsIntersectToOBB3Axes(boxes[i].OBB, boxes[j].OBB, axes),
						distance:  spatialmath.DistanceToOBB3(boxes[i].OBB, boxes[j].OBB),
					}
				}, func() {
					logger.Debugw("group done", "group", groupNum, "from", from, "to", to)
				}
		},
	)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (a *obbApp) pairsAction(c *cli.Context) error {
	boxes, err := a.scene.OBBs()
	if err != nil {
		return err
	}
	if len(boxes) < 2 {
		return errors.Errorf("need at least 2 boxes to check pairs, scene has %d", len(boxes))
	}

	results, err := a.checkPairs(c, boxes, axisSetArg(c))
	if err != nil {
		return err
	}

	highlight := color.New(color.FgRed, color.Bold).SprintFunc()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "A", "B", "Intersect", "Distance"})
	distances := make([]float64, 0, len(results))
	intersecting := 0
	for k, r := range results {
		row := table.Row{k, boxes[r.i].Label, boxes[r.j].Label, r.intersect, r.distance}
		if r.intersect {
			intersecting++
			row = table.Row{k, highlight(boxes[r.i].Label), highlight(boxes[r.j].Label), highlight(r.intersect), r.distance}
		}
		t.AppendRow(row)
		distances = append(distances, r.distance)
	}
	printf(c.App.Writer, "%s", t.Render())

	summary, err := summarize(distances)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%d of %d pairs intersect", intersecting, len(results))
	printf(c.App.Writer, "distance min %g, mean %g, median %g, max %g",
		summary.min, summary.mean, summary.median, summary.max)
	a.logger.Infow("checked pairs", "pairs", len(results), "intersecting", intersecting)
	return nil
}

type distanceSummary struct {
	min, mean, median, max float64
}

func summarize(distances []float64) (distanceSummary, error) {
	var summary distanceSummary
	var err error
	if summary.min, err = stats.Min(distances); err != nil {
		return distanceSummary{}, errors.Wrap(err, "failed to summarize distances")
	}
	if summary.mean, err = stats.Mean(distances); err != nil {
		return distanceSummary{}, errors.Wrap(err, "failed to summarize distances")
	}
	if summary.median, err = stats.Median(distances); err != nil {
		return distanceSummary{}, errors.Wrap(err, "failed to summarize distances")
	}
	if summary.max, err = stats.Max(distances); err != nil {
		return distanceSummary{}, errors.Wrap(err, "failed to summarize distances")
	}
	return summary, nil
}
