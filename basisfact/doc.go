// Package basisfact maintains the LP basis matrix of a revised
// Simplex method as a product B = B0 * E1 * E2 * ... * En, where B0
// is a factored reference matrix and each Ei is an eta matrix
// recording one pivot's column update. It solves Bx = y (forward,
// FTRAN) and xB = y (backward, BTRAN) against that product without
// ever re-solving from scratch, periodically refactorizes B0 into an
// LP*U decomposition via partial-pivot Gaussian elimination, and
// supports checkpoint/restore of B0 for snapshotting.
//
// A BasisFactorization is not safe for concurrent use: Forward,
// Backward and InvertB0 write to shared scratch buffers, and must not
// be called concurrently with themselves or with any mutating
// operation on the same instance. Two separate instances are fully
// independent.
package basisfact
