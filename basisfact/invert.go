package basisfact

import "basisfact/mat"

// InvertB0 computes the inverse of B0 into result, an m x m matrix.
// It requires an empty eta stack; otherwise it returns ErrEtasPresent.
//
// Mirrors BasisFactorization::invertB0 in the original C++: start
// from the identity, apply the LP list in reverse (the same
// left-multiplication operators step 1 of Forward uses), then apply
// U's back-substitution across every column.
//
// Resolves spec.md §9's Open Question: an empty LP list is the sole
// oracle for "B0 is identity". U is never read in that branch, even
// though by construction it would be harmless to do so here.
func (bf *BasisFactorization) InvertB0(result *mat.Matrix) error {
	if len(bf.etas) != 0 {
		return ErrEtasPresent
	}

	result.CopyFrom(mat.NewIdentity(bf.m))

	if len(bf.lp) == 0 {
		return nil
	}

	for idx := len(bf.lp) - 1; idx >= 0; idx-- {
		el := bf.lp[idx]
		if el.IsPerm {
			result.SwapRows(el.I, el.J)
			continue
		}
		lMultiplyLeftRows(el.Eta, result)
	}

	n := bf.m
	for col := n - 1; col >= 1; col-- {
		for row := col - 1; row >= 0; row-- {
			uVal := bf.u.Get(row, col)
			if isZero(uVal) {
				continue
			}
			for k := 0; k < n; k++ {
				result.Set(row, k, snap(result.Get(row, k)-uVal*result.Get(col, k)))
			}
		}
	}
	return nil
}

// lMultiplyLeftRows applies an eta's left-multiplication to every
// column of a matrix at once, the matrix form of lMultiplyLeft used
// when accumulating B0's inverse row by row.
func lMultiplyLeftRows(l Eta, result *mat.Matrix) {
	k := l.K
	n := result.Cols()
	xk := make([]float64, n)
	copy(xk, result.Row(k))
	for r := 0; r < result.Rows(); r++ {
		row := result.Row(r)
		if r == k {
			for c := 0; c < n; c++ {
				row[c] = snap(row[c] * l.V[k])
			}
		} else {
			for c := 0; c < n; c++ {
				row[c] = snap(row[c] + xk[c]*l.V[r])
			}
		}
	}
}
