package basisfact

import (
	"fmt"
	"log"

	"basisfact/config"
	"basisfact/mat"
)

// Eta is an m x m matrix equal to the identity except that column K
// is replaced by V. It is immutable once constructed; V[K] must be
// non-zero, since it is the divisor in every solve that applies this
// eta.
type Eta struct {
	K int
	V []float64
}

// LPElement is the tagged sum spec.md §9 requires: exactly one of a
// permutation pair or a lower-triangular eta, never a struct with two
// nullable fields.
type LPElement struct {
	IsPerm bool
	I, J   int // permutation pair, I < J; valid when IsPerm
	Eta    Eta // lower-triangular eta; valid when !IsPerm
}

// BasisFactorization maintains an m x m invertible basis matrix as a
// product B0 * E1 * ... * En and the LP*U factorization of B0. See
// the package doc comment for the overall contract.
type BasisFactorization struct {
	m int

	b0 *mat.Matrix // reference basis, initially identity
	u  *mat.Matrix // upper-triangular, unit diagonal; valid iff lp is non-empty

	lp   []LPElement // newest-first (prepended)
	etas []Eta       // oldest-first (appended)

	factorizationEnabled bool

	scratchT []float64 // shared scratch for Forward/Backward, length m
	scratchL []float64 // L-column scratch during Factorize, length m
}

// New constructs a BasisFactorization of dimension m with B0 = I, an
// empty eta stack, and factorization enabled. m must be positive.
func New(m int) (*BasisFactorization, error) {
	if m <= 0 {
		return nil, fmt.Errorf("basisfact.New: dimension must be positive, got %d", m)
	}

	bf := &BasisFactorization{}
	if err := bf.allocate(m); err != nil {
		return nil, err
	}
	return bf, nil
}

// allocate reserves all of the engine's buffers up front, the same
// way maths.NewDataManager and mna/mat.NewSimplifiedLU pre-size their
// backing storage at construction. A failure deep in make() (for an
// absurd m) is reported as ErrAllocationFailed rather than left to
// propagate as a runtime panic, matching spec.md §5's "Allocation
// failure is a fatal error (AllocationFailed)".
func (bf *BasisFactorization) allocate(m int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAllocationFailed, r)
		}
	}()

	bf.m = m
	bf.b0 = mat.NewIdentity(m)
	bf.u = mat.NewMatrix(m, m)
	bf.lp = nil
	bf.etas = nil
	bf.factorizationEnabled = true
	bf.scratchT = make([]float64, m)
	bf.scratchL = make([]float64, m)
	return nil
}

// PushEta appends E(k, v) to the eta stack. k must be in [0, m) and
// v[k] must be non-zero; both are caller invariants enforced here as
// preconditions, not recoverable errors. If factorization is enabled
// and the stack now exceeds config.RefactorizationThreshold, the
// engine immediately condenses the stack into B0 and refactorizes.
func (bf *BasisFactorization) PushEta(k int, v []float64) {
	if k < 0 || k >= bf.m {
		panic(fmt.Sprintf("basisfact.PushEta: k=%d out of range [0, %d)", k, bf.m))
	}
	mat.CheckLen("v", v, bf.m)
	if v[k] == 0 {
		panic(fmt.Sprintf("basisfact.PushEta: v[%d] must be non-zero", k))
	}

	vCopy := make([]float64, bf.m)
	copy(vCopy, v)
	bf.etas = append(bf.etas, Eta{K: k, V: vCopy})

	if len(bf.etas) > config.RefactorizationThreshold && bf.factorizationEnabled {
		if config.LoggingEnabled {
			log.Printf("basisfact: number of etas exceeds threshold, condensing and refactoring")
		}
		bf.condenseEtas()
		// condenseEtas leaves B0 fully formed; a singular B0 here
		// would mean the caller fed the engine an invalid sequence of
		// pivots, which is a precondition violation, not a normal
		// runtime outcome, so this is enforced as a panic.
		if err := bf.factorize(bf.b0); err != nil {
			panic(fmt.Sprintf("basisfact.PushEta: auto-refactorization failed: %v", err))
		}
	}
}

// SetB0 copies M into B0 and immediately factorizes it. The eta stack
// must be empty; that is the caller's responsibility, per spec.md §4.1.
func (bf *BasisFactorization) SetB0(mVals [][]float64) error {
	if len(mVals) != bf.m {
		panic(fmt.Sprintf("basisfact.SetB0: M has %d rows, want %d", len(mVals), bf.m))
	}
	flat := make([]float64, bf.m*bf.m)
	for r, row := range mVals {
		mat.CheckLen(fmt.Sprintf("M row %d", r), row, bf.m)
		copy(flat[r*bf.m:(r+1)*bf.m], row)
	}
	bf.b0.CopyFromFlat(flat)
	return bf.factorize(bf.b0)
}

// setB0Matrix copies src into B0 and factorizes it. Used internally
// by RestoreFactorization, where the source is already a *mat.Matrix
// rather than a caller-supplied [][]float64.
func (bf *BasisFactorization) setB0Matrix(src *mat.Matrix) error {
	bf.b0.CopyFrom(src)
	return bf.factorize(bf.b0)
}

// ToggleFactorization enables or disables automatic refactorization
// inside PushEta. Disabling it lets the caller run the engine as a
// pure product (solves still work against whatever LP/U happen to be
// cached) for deterministic benchmarking or phases where the caller
// will explicitly snapshot.
func (bf *BasisFactorization) ToggleFactorization(enabled bool) {
	bf.factorizationEnabled = enabled
}

// FactorizationEnabled reports whether PushEta will auto-refactor.
func (bf *BasisFactorization) FactorizationEnabled() bool {
	return bf.factorizationEnabled
}

// Dim returns the engine's fixed dimension m.
func (bf *BasisFactorization) Dim() int {
	return bf.m
}

// U returns the current upper-triangular factor. Its contents are
// only meaningful when LP() is non-empty.
func (bf *BasisFactorization) U() *mat.Matrix {
	return bf.u
}

// B0 returns the current reference basis matrix.
func (bf *BasisFactorization) B0() *mat.Matrix {
	return bf.b0
}

// LP returns the current LP list, newest element first.
func (bf *BasisFactorization) LP() []LPElement {
	return bf.lp
}

// Etas returns the current eta stack, oldest element first.
func (bf *BasisFactorization) Etas() []Eta {
	return bf.etas
}
