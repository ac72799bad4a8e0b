package timing

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoStats is returned when a chart is requested for no measurements.
var ErrNoStats = errors.New("timing: no stats to chart")

// Chart sizes used by SaveChart.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Chart builds a bar chart of the mean time per algorithm, one bar per
// entry of stats in order.
func Chart(stats []Stats, title string) (*plot.Plot, error) {
	if len(stats) == 0 {
		return nil, ErrNoStats
	}

	values := make(plotter.Values, len(stats))
	names := make([]string, len(stats))
	for i, s := range stats {
		values[i] = float64(s.Mean.Nanoseconds())
		names[i] = s.Algorithm.String()
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "mean time, ns"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("timing: bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// SaveChart writes the chart of stats to path. The image format follows
// the file extension (png, svg, pdf, ...).
func SaveChart(stats []Stats, title, path string) error {
	p, err := Chart(stats, title)
	if err != nil {
		return err
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("timing: save chart: %w", err)
	}
	return nil
}
