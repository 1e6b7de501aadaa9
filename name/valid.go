package name

// IsValid reports whether the variant-specific invariants of the
// node hold:
//
//   - Polygon: at least 4 sides if irregular, at least 5 if regular
//     (2 sides exempt);
//   - Simplex, Hyperblock, Orthoplex: rank at least 3;
//   - multi-operations: at least two bases, none of the parent's kind;
//   - Generic: at least 2 facets, rank between 3 and 20.
//
// All other kinds are trivially valid. Smart constructors produce
// valid nodes by construction; IsValid is a debug and test oracle,
// not a guard, and is never invoked automatically.
func IsValid[T NameType](n Name[T]) bool {
	switch b := n.(type) {
	case Polygon[T]:
		if b.N == 2 {
			return true
		}
		if b.Regular.Satisfies(Regular.IsYes) {
			return b.N >= 5
		}

		return b.N >= 4

	// Petrials must always be of rank 3, but the name alone cannot
	// check this.

	// Rank-bearing literals below rank 3 have other names.
	case Simplex[T]:
		return b.Rank >= 3
	case Hyperblock[T]:
		return b.Rank >= 3
	case Orthoplex[T]:
		return b.Rank >= 3

	// Multi-operations need two bases and no same-kind nesting.
	case Multipyramid[T]:
		return validMulti(kindMultipyramid, b.Bases)
	case Multiprism[T]:
		return validMulti(kindMultiprism, b.Bases)
	case Multitegum[T]:
		return validMulti(kindMultitegum, b.Bases)
	case Multicomb[T]:
		return validMulti(kindMulticomb, b.Bases)

	case Generic[T]:
		return b.FacetCount >= 2 && b.Rank >= 3 && b.Rank <= 20

	default:
		return true
	}
}

func validMulti[T NameType](parent kind, bases []Name[T]) bool {
	if len(bases) < 2 {
		return false
	}
	for _, base := range bases {
		if kindOf(base) == parent {
			return false
		}
	}

	return true
}
