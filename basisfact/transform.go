package basisfact

import "basisfact/mat"

// Forward solves B*x = y for x, where B = B0 * E1 * ... * En. y and x
// must have length m; callers should pass distinct slices.
//
// Mirrors BasisFactorization::forwardTransformation in the original
// C++: cancel the LP prefix (applying LP in storage order reversed,
// i.e. oldest first), back-substitute through U, then eliminate the
// eta stack oldest-first.
func (bf *BasisFactorization) Forward(y, x []float64) {
	mat.CheckLen("y", y, bf.m)
	mat.CheckLen("x", x, bf.m)

	if len(bf.etas) == 0 && len(bf.lp) == 0 {
		copy(x, y)
		return
	}

	t := bf.scratchT
	copy(t, y)

	// 1. Cancel the LP prefix: visit back to front (oldest first) so
	// that L1 P1 acts first, undoing (Ln Pn ... L1 P1) one step at a time.
	for idx := len(bf.lp) - 1; idx >= 0; idx-- {
		el := bf.lp[idx]
		if el.IsPerm {
			t[el.I], t[el.J] = t[el.J], t[el.I]
			continue
		}
		lMultiplyLeft(el.Eta, t)
	}

	// 2. Eliminate U via back-substitution, skipped when LP is empty
	// (U is meaningless with no factorization).
	if len(bf.lp) > 0 {
		n := bf.m
		x[n-1] = t[n-1]
		for i := n - 2; i >= 0; i-- {
			sum := 0.0
			for j := n - 1; j > i; j-- {
				sum += bf.u.Get(i, j) * x[j]
			}
			x[i] = snap(t[i] - sum)
		}
		copy(t, x)
	}

	// 3. Eliminate etas, oldest first.
	for _, e := range bf.etas {
		x[e.K] = snap(t[e.K] / e.V[e.K])
		for i := 0; i < bf.m; i++ {
			if i == e.K {
				continue
			}
			x[i] = snap(t[i] - x[e.K]*e.V[i])
		}
		copy(t, x)
	}
}

// Backward solves x*B = y for x, where B = B0 * E1 * ... * En. y and
// x must have length m; callers should pass distinct slices.
//
// Mirrors BasisFactorization::backwardTransformation in the original
// C++: eliminate the eta stack newest-first, forward-substitute
// through U with transpose indexing, then apply the LP list in
// storage order as a right-multiplication.
func (bf *BasisFactorization) Backward(y, x []float64) {
	mat.CheckLen("y", y, bf.m)
	mat.CheckLen("x", x, bf.m)

	if len(bf.etas) == 0 && len(bf.lp) == 0 {
		copy(x, y)
		return
	}

	t := bf.scratchT
	copy(t, y)

	// 1. Eliminate etas, newest first. x equals t everywhere except at
	// column K, which is solved from the "column K" equation.
	for idx := len(bf.etas) - 1; idx >= 0; idx-- {
		e := bf.etas[idx]
		copy(x, t)
		sum := t[e.K]
		for i := 0; i < bf.m; i++ {
			if i != e.K {
				sum -= x[i] * e.V[i]
			}
		}
		x[e.K] = snap(sum / e.V[e.K])
		copy(t, x)
	}

	// 2. Eliminate U via forward substitution with transpose indexing
	// (x[i] uses column i's entries above the diagonal, U[j][i] for
	// j < i), skipped when LP is empty.
	if len(bf.lp) > 0 {
		x[0] = t[0]
		for i := 1; i < bf.m; i++ {
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += bf.u.Get(j, i) * x[j]
			}
			x[i] = snap(t[i] - sum)
		}
	}

	// 3. Apply the LP list as a right-multiplication, storage order
	// (front to back, i.e. newest first).
	for _, el := range bf.lp {
		if el.IsPerm {
			x[el.I], x[el.J] = x[el.J], x[el.I]
			continue
		}
		lMultiplyRight(el.Eta, x)
	}
}

// lMultiplyLeft applies an eta L = E(k, c) as a left-multiplication to
// x in place: for each row r, if r == k then x[r] *= c[k], otherwise
// x[r] += x[k] * c[r]. x[k] is read once up front, before it is
// overwritten by the r == k branch.
func lMultiplyLeft(l Eta, x []float64) {
	k := l.K
	xk := x[k]
	for r := range x {
		if r == k {
			x[r] = snap(x[r] * l.V[k])
		} else {
			x[r] = snap(x[r] + xk*l.V[r])
		}
	}
}

// lMultiplyRight applies an eta L = E(k, c) as a right-multiplication
// to x in place: x[k] <- sum_i c[i] * x[i], a weighted accumulation
// that collapses x into column k.
func lMultiplyRight(l Eta, x []float64) {
	sum := 0.0
	for i, xi := range x {
		sum += l.V[i] * xi
	}
	x[l.K] = snap(sum)
}
