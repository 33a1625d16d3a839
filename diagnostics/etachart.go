package diagnostics

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// EtaDepthChart renders a line chart of eta-stack depth against call
// index, the same "watch a counter climb and reset" shape as the
// teacher's own node-voltage/current line charts in mna/debug, with
// PushEta standing in for the teacher's simulation time step.
type EtaDepthChart struct {
	Title string
	// Depths holds len(Etas()) sampled after every PushEta call,
	// including the drops back to zero that auto-refactorization
	// produces.
	Depths []int
}

// Render writes the chart as a PNG to w.
func (c *EtaDepthChart) Render(w io.Writer) error {
	if len(c.Depths) == 0 {
		return fmt.Errorf("diagnostics.EtaDepthChart.Render: no samples to plot")
	}

	p := plot.New()
	title := c.Title
	if title == "" {
		title = "eta stack depth"
	}
	p.Title.Text = title
	p.X.Label.Text = "PushEta call"
	p.Y.Label.Text = "len(etas)"

	pts := make(plotter.XYs, len(c.Depths))
	for i, d := range c.Depths {
		pts[i].X = float64(i)
		pts[i].Y = float64(d)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("diagnostics.EtaDepthChart.Render: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	writerTo, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("diagnostics.EtaDepthChart.Render: %w", err)
	}
	_, err = writerTo.WriteTo(w)
	return err
}
