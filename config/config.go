// Package config holds the process-wide tunables the factorization
// engine shares across all of its pieces: the same tolerance must be
// used for pivot selection, zero-snapping, and solve-result checks,
// or the invariants in spec.md §8 stop holding.
package config

// RefactorizationThreshold is the number of etas PushEta will allow
// to accumulate before automatically condensing and refactorizing,
// when factorization is enabled. Mirrors the original's
// GlobalConfiguration::REFACTORIZATION_THRESHOLD.
const RefactorizationThreshold = 20

// Tolerance is the shared floating-point epsilon: values with
// magnitude below it snap to exact zero, and "greater than"
// comparisons (pivot selection) use it too.
const Tolerance = 1e-9

// LoggingEnabled gates the engine's diagnostic log line emitted when
// PushEta triggers an automatic refactorization. Off by default, the
// same as the original's BASIS_FACTORIZATION_LOGGING flag.
var LoggingEnabled = false
