package basisfact

import "errors"

// ErrAllocationFailed is returned by New when the engine's backing
// storage cannot be allocated.
var ErrAllocationFailed = errors.New("basisfact: allocation failed")

// ErrNoPivot is returned by factorization when some column has no
// numerically non-zero candidate entry at its stage: the matrix is
// singular at the engine's tolerance.
var ErrNoPivot = errors.New("basisfact: no pivot available, matrix is singular")

// ErrEtasPresent is returned by operations that require a clean base
// state (InvertB0, StoreFactorization's target, RestoreFactorization's
// source) when the eta stack is non-empty.
var ErrEtasPresent = errors.New("basisfact: operation requires an empty eta stack")
