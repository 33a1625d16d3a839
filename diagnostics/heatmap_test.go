package diagnostics

import (
	"bytes"
	"math"
	"testing"

	"basisfact/mat"
)

func TestConditionNumberOfIdentityIsOne(t *testing.T) {
	id := mat.NewIdentity(4)
	got := ConditionNumber(id)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("ConditionNumber(I) = %v, want 1", got)
	}
}

func TestConditionNumberGrowsWithNearSingularMatrix(t *testing.T) {
	m := mat.NewMatrix(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 1.0001)

	got := ConditionNumber(m)
	if got < 1000 {
		t.Errorf("ConditionNumber(near-singular) = %v, want a large value", got)
	}
}

func TestB0HeatmapRenderProducesOutput(t *testing.T) {
	m := mat.NewIdentity(3)
	hm := &B0Heatmap{B0: m}
	var buf bytes.Buffer
	if err := hm.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("Render wrote no bytes")
	}
}

func TestEtaDepthChartRequiresSamples(t *testing.T) {
	c := &EtaDepthChart{}
	var buf bytes.Buffer
	if err := c.Render(&buf); err == nil {
		t.Fatalf("expected error rendering an empty chart")
	}
}

func TestEtaDepthChartRenderProducesOutput(t *testing.T) {
	c := &EtaDepthChart{Depths: []int{0, 1, 2, 0, 1}}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("Render wrote no bytes")
	}
}
