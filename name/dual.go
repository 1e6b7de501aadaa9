package name

import "github.com/H-A-M-G-E-R/miratope/geom"

// dualRegular decides the regularity capsule of the dual of a regular
// shape. If the shape's recorded center matches the dual's center of
// construction (within geom.Eps), the dual inherits the record;
// otherwise the dual is marked irregular.
func dualRegular[T NameType](regular Data[T, Regular], center Data[T, geom.Point]) Data[T, Regular] {
	matched := regular.Satisfies(func(r Regular) bool {
		if !r.IsYes() {
			return true
		}

		return center.Satisfies(func(c geom.Point) bool {
			return c.Sub(r.Center()).Norm() < geom.Eps
		})
	})

	if matched {
		return regular
	}

	return Data[T, Regular]{}
}

// dualModifier dualizes a pyramid, prism or tegum. Abstract names
// have no center-dependent geometry, so the dual distributes over the
// modifier: the base is dualized and re-wrapped in the modifier's
// dual kind. Concrete names defer the dualization as an explicit Dual
// node instead.
func dualModifier[T NameType](
	base Name[T],
	wrap, dualWrap func(Name[T]) Name[T],
	center Data[T, geom.Point],
	facetCount int,
	rank Rank,
) Name[T] {
	if isAbstract[T]() {
		return dualWrap(NewDual(base, center, facetCount, rank))
	}

	return Dual[T]{Base: wrap(base), Center: center}
}

// dualMulti is dualModifier for the multi-operations: when
// distributing, each base is dualized independently with the same
// center and ambient facet count and rank, preserving order.
func dualMulti[T NameType](
	bases []Name[T],
	wrap, dualWrap func([]Name[T]) Name[T],
	center Data[T, geom.Point],
	facetCount int,
	rank Rank,
) Name[T] {
	if isAbstract[T]() {
		duals := make([]Name[T], len(bases))
		for i, base := range bases {
			duals[i] = NewDual(base, center, facetCount, rank)
		}

		return dualWrap(duals)
	}

	return Dual[T]{Base: wrap(bases), Center: center}
}

// NewDual builds the name of the dual of base, taken about center.
// The facet count and rank of the original polytope are needed only
// for the Generic fallback when a dual of a dual about a different
// center cannot be resolved symbolically.
func NewDual[T NameType](base Name[T], center Data[T, geom.Point], facetCount int, rank Rank) Name[T] {
	switch b := base.(type) {
	// Self-dual polytopes.
	case Nullitope[T], Point[T], Dyad[T]:
		return base

	// Other hardcoded cases.
	case Triangle[T]:
		return Triangle[T]{Regular: dualRegular(b.Regular, center)}
	case Square[T]:
		return NewOrthodiagonal[T]()
	case Rectangle[T]:
		return NewOrthodiagonal[T]()
	case Orthodiagonal[T]:
		return NewPolygon[T](Data[T, Regular]{}, 4)

	// A dual of a dual about the same center cancels. About a
	// different center the combinatorial identity is not tracked, so
	// we fall back to a generic name.
	case Dual[T]:
		if center.Equal(b.Center) {
			return b.Base
		}

		return Generic[T]{FacetCount: facetCount, Rank: rank}

	// Regular duals.
	case Polygon[T]:
		return Polygon[T]{Regular: dualRegular(b.Regular, center), N: b.N}
	case Simplex[T]:
		return Simplex[T]{Regular: dualRegular(b.Regular, center), Rank: b.Rank}
	case Hyperblock[T]:
		return Orthoplex[T]{Regular: dualRegular(b.Regular, center), Rank: b.Rank}
	case Orthoplex[T]:
		return Hyperblock[T]{Regular: dualRegular(b.Regular, center), Rank: b.Rank}

	// Duals of modifiers.
	case Pyramid[T]:
		return dualModifier(b.Base,
			func(n Name[T]) Name[T] { return Pyramid[T]{Base: n} },
			func(n Name[T]) Name[T] { return Pyramid[T]{Base: n} },
			center, facetCount, rank)
	case Prism[T]:
		return dualModifier(b.Base,
			func(n Name[T]) Name[T] { return Prism[T]{Base: n} },
			func(n Name[T]) Name[T] { return Tegum[T]{Base: n} },
			center, facetCount, rank)
	case Tegum[T]:
		return dualModifier(b.Base,
			func(n Name[T]) Name[T] { return Tegum[T]{Base: n} },
			func(n Name[T]) Name[T] { return Prism[T]{Base: n} },
			center, facetCount, rank)

	case Antiprism[T]:
		return Antitegum[T]{Base: b.Base, Center: center}
	case Antitegum[T]:
		if center.Equal(b.Center) {
			return Antiprism[T]{Base: b.Base}
		}

		return Dual[T]{Base: base, Center: center}

	// Duals of multi-modifiers.
	case Multipyramid[T]:
		return dualMulti(b.Bases,
			func(ns []Name[T]) Name[T] { return Multipyramid[T]{Bases: ns} },
			func(ns []Name[T]) Name[T] { return Multipyramid[T]{Bases: ns} },
			center, facetCount, rank)
	case Multiprism[T]:
		return dualMulti(b.Bases,
			func(ns []Name[T]) Name[T] { return Multiprism[T]{Bases: ns} },
			func(ns []Name[T]) Name[T] { return Multitegum[T]{Bases: ns} },
			center, facetCount, rank)
	case Multitegum[T]:
		return dualMulti(b.Bases,
			func(ns []Name[T]) Name[T] { return Multitegum[T]{Bases: ns} },
			func(ns []Name[T]) Name[T] { return Multiprism[T]{Bases: ns} },
			center, facetCount, rank)
	case Multicomb[T]:
		return dualMulti(b.Bases,
			func(ns []Name[T]) Name[T] { return Multicomb[T]{Bases: ns} },
			func(ns []Name[T]) Name[T] { return Multicomb[T]{Bases: ns} },
			center, facetCount, rank)

	// Defaults to just wrapping the name in a dual.
	default:
		return Dual[T]{Base: base, Center: center}
	}
}

// NewPetrial builds the name of the Petrial of base. The Petrial is
// an involution, so a Petrial of a Petrial unwraps.
func NewPetrial[T NameType](base Name[T]) Name[T] {
	if b, ok := base.(Petrial[T]); ok {
		return b.Base
	}

	return Petrial[T]{Base: base}
}
