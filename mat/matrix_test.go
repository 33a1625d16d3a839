package mat

import "testing"

func TestMatrixGetSet(t *testing.T) {
	m := NewMatrix(3, 3)
	m.Set(1, 2, 5.0)
	if got := m.Get(1, 2); got != 5.0 {
		t.Errorf("Get(1,2) = %v, want 5.0", got)
	}
	if got := m.Get(0, 0); got != 0.0 {
		t.Errorf("Get(0,0) = %v, want 0.0 (untouched)", got)
	}
}

func TestMatrixSwapRows(t *testing.T) {
	m := NewMatrix(2, 2)
	m.CopyFromFlat([]float64{1, 2, 3, 4})
	m.SwapRows(0, 1)
	want := []float64{3, 4, 1, 2}
	for i, v := range want {
		got := m.data[i]
		if got != v {
			t.Errorf("after swap, data[%d] = %v, want %v", i, got, v)
		}
	}
}

func TestMatrixIdentity(t *testing.T) {
	id := NewIdentity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := id.Get(i, j); got != want {
				t.Errorf("identity(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestMatrixOutOfRangePanics(t *testing.T) {
	m := NewMatrix(2, 2)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on out-of-range Get")
		}
	}()
	m.Get(5, 0)
}

func TestMatrixCopyFromDimensionMismatchPanics(t *testing.T) {
	m := NewMatrix(2, 2)
	other := NewMatrix(3, 3)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on dimension mismatch")
		}
	}()
	m.CopyFrom(other)
}
