package basisfact

import (
	"math"

	"basisfact/mat"
)

// factorize computes an LP list and U such that applying the LP list
// front-to-back as left-multiplications to M yields U, upper
// triangular with unit diagonal. It fails with ErrNoPivot when some
// column, at its stage, has every candidate entry numerically zero.
//
// The loop shape (per-column pivot search, conditional row swap,
// elimination, pivot row updated last) follows maths.luDense.Decompose
// in the teacher package; the arithmetic inside each step follows
// BasisFactorization::factorizeMatrix / LFactorizationMultiply in the
// original C++, because this engine's L has the arbitrary diagonal
// (1/pivot) and U has the unit diagonal -- the opposite of the
// teacher's own convention (see DESIGN.md).
func (bf *BasisFactorization) factorize(m *mat.Matrix) error {
	bf.clearLPU()
	bf.u.CopyFrom(m)

	n := bf.m
	for i := 0; i < n; i++ {
		// 1. Pivot selection: largest absolute value in U[i..n-1][i],
		// strict greater-than under tolerance, ties keep the earlier row.
		bestRow := i
		bestAbs := math.Abs(bf.u.Get(i, i))
		for r := i + 1; r < n; r++ {
			candidate := math.Abs(bf.u.Get(r, i))
			if gt(candidate, bestAbs) {
				bestAbs = candidate
				bestRow = r
			}
		}
		if isZero(bestAbs) {
			return ErrNoPivot
		}

		// 2. Permutation.
		if bestRow != i {
			bf.u.SwapRows(i, bestRow)
			bf.lp = append([]LPElement{{IsPerm: true, I: i, J: bestRow}}, bf.lp...)
		}

		// 3. L column: c[j]=0 for j<i, c[i]=1/p, c[j]=-U[j][i]/p for j>i.
		p := bf.u.Get(i, i)
		for j := 0; j < i; j++ {
			bf.scratchL[j] = 0
		}
		bf.scratchL[i] = 1 / p
		for j := i + 1; j < n; j++ {
			bf.scratchL[j] = -bf.u.Get(j, i) / p
		}
		c := make([]float64, n)
		copy(c, bf.scratchL)
		bf.lp = append([]LPElement{{IsPerm: false, Eta: Eta{K: i, V: c}}}, bf.lp...)

		// 4. Apply L to U in place. Every row but the pivot row first,
		// the pivot row last because every other row's update reads it.
		for r := i + 1; r < n; r++ {
			bf.u.Set(r, i, 0)
			for col := i + 1; col < n; col++ {
				bf.u.Set(r, col, snap(bf.u.Get(r, col)+c[r]*bf.u.Get(i, col)))
			}
		}
		for col := i + 1; col < n; col++ {
			bf.u.Set(i, col, snap(bf.u.Get(i, col)*c[i]))
		}
		bf.u.Set(i, i, 1)
	}
	return nil
}
