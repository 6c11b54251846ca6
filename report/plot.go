package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvquad/converge"
)

// Chart size shared by both plots.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// minLogError replaces zero errors on the log axis.
const minLogError = 1e-17

// PlotConvergence saves estimate vs N with a dashed line at reference.
// The image format follows the extension of path (.png, .svg, .pdf).
func PlotConvergence(trace converge.Trace, reference float64, path string) error {
	if trace.Len() == 0 {
		return ErrEmptyTrace
	}

	pts := make(plotter.XYs, trace.Len())
	for i, r := range trace {
		pts[i] = plotter.XY{X: float64(r.Order), Y: r.Estimate}
	}
	first, last := trace[0].Order, trace[trace.Len()-1].Order
	if last == first {
		last++
	}
	ref := plotter.XYs{{X: float64(first), Y: reference}, {X: float64(last), Y: reference}}

	p := plot.New()
	p.Title.Text = "Gauss–Legendre estimate by number of points"
	p.X.Label.Text = "N"
	p.Y.Label.Text = "integral"

	est, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: plot convergence: %w", err)
	}
	exact, err := plotter.NewLine(ref)
	if err != nil {
		return fmt.Errorf("report: plot convergence: %w", err)
	}
	exact.Dashes = plotutil.Dashes(1)
	exact.Color = plotutil.Color(1)

	p.Add(est, exact)
	p.Legend.Add("estimate", est)
	p.Legend.Add("exact", exact)
	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: plot convergence: %w", err)
	}

	return nil
}

// PlotError saves the error vs N on a log scale. Zero errors are drawn at
// minLogError; NaN records are skipped.
func PlotError(trace converge.Trace, path string) error {
	if trace.Len() == 0 {
		return ErrEmptyTrace
	}

	pts := make(plotter.XYs, 0, trace.Len())
	for _, r := range trace {
		if math.IsNaN(r.Error) || math.IsInf(r.Error, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(r.Order), Y: math.Max(r.Error, minLogError)})
	}
	if len(pts) == 0 {
		return ErrEmptyTrace
	}

	p := plot.New()
	p.Title.Text = "Relative error by number of points"
	p.X.Label.Text = "N"
	p.Y.Label.Text = "error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := plotutil.AddLinePoints(p, "error", pts); err != nil {
		return fmt.Errorf("report: plot error: %w", err)
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: plot error: %w", err)
	}

	return nil
}
