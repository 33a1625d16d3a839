package basisfact

import "fmt"

// StoreFactorization condenses this engine's etas, refactorizes its
// B0, then copies that B0 into dest. dest must have the same
// dimension -- a precondition enforced as a panic, the same as the
// original's ASSERT in BasisFactorization::storeFactorization. If
// dest's eta stack is non-empty, it returns ErrEtasPresent and
// changes nothing.
func (bf *BasisFactorization) StoreFactorization(dest *BasisFactorization) error {
	if bf.m != dest.m {
		panic(fmt.Sprintf("basisfact.StoreFactorization: dimension mismatch: %d vs %d", bf.m, dest.m))
	}
	if len(dest.etas) != 0 {
		return ErrEtasPresent
	}

	bf.condenseEtas()
	if err := bf.factorize(bf.b0); err != nil {
		return err
	}
	return dest.setB0Matrix(bf.b0)
}

// RestoreFactorization drops this engine's etas and LP/U, then
// overwrites B0 with src's and refactorizes. src must have the same
// dimension (enforced as a panic). If src's eta stack is non-empty,
// it returns ErrEtasPresent and changes nothing.
func (bf *BasisFactorization) RestoreFactorization(src *BasisFactorization) error {
	if bf.m != src.m {
		panic(fmt.Sprintf("basisfact.RestoreFactorization: dimension mismatch: %d vs %d", bf.m, src.m))
	}
	if len(src.etas) != 0 {
		return ErrEtasPresent
	}

	bf.etas = nil
	bf.clearLPU()
	return bf.setB0Matrix(src.b0)
}
