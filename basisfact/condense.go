package basisfact

import "basisfact/config"

// condenseEtas folds the eta stack into B0, leaving the eta stack
// empty and LP/U cleared. After this call the implicit basis is
// exactly the new B0.
//
// Multiplying B0 on the right by E(k, v) only changes column k of B0,
// replacing it with B0*v: a linear combination of B0's columns
// weighted by v. This mirrors BasisFactorization::condenseEtas in the
// original C++ exactly, including per-scalar zero-snapping.
func (bf *BasisFactorization) condenseEtas() {
	for _, e := range bf.etas {
		for row := 0; row < bf.m; row++ {
			sum := bf.b0.DotRow(row, e.V)
			bf.b0.Set(row, e.K, snap(sum))
		}
	}
	bf.etas = nil
	bf.clearLPU()
}

// clearLPU drops the LP list and zeroes U. Go has no destructors, so
// where the original explicitly deletes each LP element, this simply
// lets go of the slice so its backing array becomes eligible for GC
// (see SPEC_FULL.md §4, "Destructor-style cleanup").
func (bf *BasisFactorization) clearLPU() {
	bf.lp = nil
	bf.u.Zero()
}

// snap rounds values with magnitude below config.Tolerance to exact
// zero. Every floating-point write downstream of a subtraction or a
// sum of products passes through this helper, and every comparison
// that needs "is this numerically zero" uses the same tolerance,
// per spec.md §9's zero-snapping contract.
func snap(x float64) float64 {
	if x < 0 {
		if -x < config.Tolerance {
			return 0
		}
		return x
	}
	if x < config.Tolerance {
		return 0
	}
	return x
}

// isZero reports whether x is numerically zero under the shared
// tolerance.
func isZero(x float64) bool {
	return snap(x) == 0
}

// gt reports whether a is strictly greater than b under the shared
// tolerance, the same "greater than" comparison spec.md §4.3 uses for
// pivot selection.
func gt(a, b float64) bool {
	return a-b > config.Tolerance
}
