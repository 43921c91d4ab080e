package visitors

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the overlap-length distributions the visitor collected
// (found overlaps vs. potentially missing candidates, summed over all
// difference counts) as a line plot and saves it as a PNG.
func (es *EdgeStatsVisitor) SavePlot(fileName string) error {
	lengthPlot, err := plot.New()
	if err != nil {
		return err
	}
	lengthPlot.Title.Text = "overlap length distribution"
	lengthPlot.X.Label.Text = "overlap length"
	lengthPlot.Y.Label.Text = "number of overlaps"

	if err := plotutil.AddLinePoints(lengthPlot,
		"found", es.lengthXYs(es.foundCounts),
		"missing", es.lengthXYs(es.missingCounts)); err != nil {
		return err
	}
	return lengthPlot.Save(8*vg.Inch, 8*vg.Inch, fileName)
}

// lengthXYs collapses a (overlap length -> num differences -> count)
// matrix to per-length totals for plotting.
func (es *EdgeStatsVisitor) lengthXYs(m map[int]map[int]int) plotter.XYs {
	xys := make(plotter.XYs, 0, es.maxOverlap-es.minOverlap+1)
	for i := es.minOverlap; i <= es.maxOverlap; i++ {
		sum := 0
		for _, c := range m[i] {
			sum += c
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: float64(sum)})
	}
	return xys
}
