// Package diagnostics renders optional visualizations of a
// BasisFactorization engine's internal state. None of it sits on the
// solve path; a Simplex driver wires it up only when it wants to watch
// pivoting behavior or eta-stack growth while debugging convergence.
package diagnostics
