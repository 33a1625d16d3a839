package mat

import "fmt"

// CheckLen panics if v does not have the expected length. It exists
// so every engine entry point reports the same kind of message for a
// caller's dimension mistake, the way maths.denseVector.BuildFromDense
// panics on a length mismatch in the teacher package.
func CheckLen(name string, v []float64, want int) {
	if len(v) != want {
		panic(fmt.Sprintf("mat: %s has length %d, want %d", name, len(v), want))
	}
}

// DotRow computes the dot product of matrix row `row` with vector v.
func (m *Matrix) DotRow(row int, v []float64) float64 {
	CheckLen("v", v, m.cols)
	sum := 0.0
	r := m.Row(row)
	for j := 0; j < m.cols; j++ {
		sum += r[j] * v[j]
	}
	return sum
}
