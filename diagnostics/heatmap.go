package diagnostics

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	gonummat "gonum.org/v1/gonum/mat"

	"basisfact/mat"
)

// b0Grid adapts |B0| into the GridXYZ shape plotter.HeatMap expects,
// row r of the matrix running top to bottom the same way the teacher's
// own node-voltage table is indexed row by row in mna/debug.
type b0Grid struct{ b0 *mat.Matrix }

func (g b0Grid) Dims() (c, r int) { return g.b0.Cols(), g.b0.Rows() }
func (g b0Grid) Z(c, r int) float64 {
	return math.Abs(g.b0.Get(g.b0.Rows()-1-r, c))
}
func (g b0Grid) X(c int) float64 { return float64(c) }
func (g b0Grid) Y(r int) float64 { return float64(r) }

// B0Heatmap renders |B0|'s cell magnitudes, the same kind of "which
// cells dominate" picture as the teacher's Draw.go renders for circuit
// layout, repointed at a basis matrix instead of a schematic.
type B0Heatmap struct {
	Title string
	B0    *mat.Matrix
}

// Render writes the heatmap as a PNG to w.
func (h *B0Heatmap) Render(w io.Writer) error {
	if h.B0 == nil {
		return fmt.Errorf("diagnostics.B0Heatmap.Render: B0 is nil")
	}

	p := plot.New()
	title := h.Title
	if title == "" {
		title = "|B0|"
	}
	p.Title.Text = title

	cmap := moreland.SmoothBlueRed()
	hm := plotter.NewHeatMap(b0Grid{b0: h.B0}, cmap.Palette(64))
	p.Add(hm)

	if hm.Max > hm.Min {
		cmap.SetMin(hm.Min)
		cmap.SetMax(hm.Max)
		p.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	}

	writerTo, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("diagnostics.B0Heatmap.Render: %w", err)
	}
	_, err = writerTo.WriteTo(w)
	return err
}

// ConditionNumber estimates B0's 2-norm condition number, reusing
// gonum/mat's dense solver internals the way the teacher reuses
// gonum/mat's *mat.VecDense for a dense numeric snapshot of internal
// state (types/element.go's per-pin current storage) rather than
// rolling a bespoke SVD.
func ConditionNumber(b0 *mat.Matrix) float64 {
	n := b0.Rows()
	dense := gonummat.NewDense(n, b0.Cols(), nil)
	for r := 0; r < n; r++ {
		for c := 0; c < b0.Cols(); c++ {
			dense.Set(r, c, b0.Get(r, c))
		}
	}
	return gonummat.Cond(dense, 2)
}
