package name

// This file holds the smart constructors for literal families and the
// unary modifiers. Each constructor returns an already-normalized
// name: combinations with a strictly simpler canonical form (a
// pyramid of an irregular simplex is just a higher simplex, a pyramid
// of a pyramid is a multipyramid, and so on) are collapsed at
// construction time. There is no later simplification pass.

// NewGeneric names a polytope with the given facet count and rank.
// Ranks −1, 0 and 1 map to their hardcoded names; rank 2 is named as
// an irregular polygon with n sides. Inputs are assumed pre-validated
// by the caller.
func NewGeneric[T NameType](n int, rank Rank) Name[T] {
	switch rank {
	case -1:
		return Nullitope[T]{}
	case 0:
		return Point[T]{}
	case 1:
		return Dyad[T]{}
	case 2:
		return NewPolygon[T](Data[T, Regular]{}, n)
	default:
		return Generic[T]{FacetCount: n, Rank: rank}
	}
}

// NewPolygon names a polygon of n sides. Three sides make a Triangle;
// four regular sides make a Square.
func NewPolygon[T NameType](regular Data[T, Regular], n int) Name[T] {
	switch n {
	case 3:
		return Triangle[T]{Regular: regular}
	case 4:
		if regular.Satisfies(Regular.IsYes) {
			return Square[T]{}
		}

		return Polygon[T]{Regular: regular, N: n}
	default:
		return Polygon[T]{Regular: regular, N: n}
	}
}

// NewRectangle names a rectangle. Abstract polytopes cannot tell a
// rectangle from a square, so the Abs instantiation collapses it.
func NewRectangle[T NameType]() Name[T] {
	if isAbstract[T]() {
		return Square[T]{}
	}

	return Rectangle[T]{}
}

// NewOrthodiagonal names an orthodiagonal quadrilateral, collapsing
// to Square for abstract polytopes.
func NewOrthodiagonal[T NameType]() Name[T] {
	if isAbstract[T]() {
		return Square[T]{}
	}

	return Orthodiagonal[T]{}
}

// NewSimplex names the simplex of a given rank, regular or not.
func NewSimplex[T NameType](regular Data[T, Regular], rank Rank) Name[T] {
	switch rank {
	case -1:
		return Nullitope[T]{}
	case 0:
		return Point[T]{}
	case 1:
		return Dyad[T]{}
	case 2:
		return Triangle[T]{Regular: regular}
	default:
		return Simplex[T]{Regular: regular, Rank: rank}
	}
}

// NewHyperblock names the block of a given rank, regular or not.
func NewHyperblock[T NameType](regular Data[T, Regular], rank Rank) Name[T] {
	switch rank {
	case -1:
		return Nullitope[T]{}
	case 0:
		return Point[T]{}
	case 1:
		return Dyad[T]{}
	case 2:
		return NewRectangle[T]()
	default:
		return Hyperblock[T]{Regular: regular, Rank: rank}
	}
}

// NewOrthoplex names the orthoplex of a given rank, regular or not.
func NewOrthoplex[T NameType](regular Data[T, Regular], rank Rank) Name[T] {
	switch rank {
	case -1:
		return Nullitope[T]{}
	case 0:
		return Point[T]{}
	case 1:
		return Dyad[T]{}
	case 2:
		return NewOrthodiagonal[T]()
	default:
		return Orthoplex[T]{Regular: regular, Rank: rank}
	}
}

// NewPyramid builds the name of a pyramid over base.
//
// Irregular triangles and simplices grow into higher irregular
// simplices; regular ones keep an explicit Pyramid wrapper, since a
// regular pyramid is not isomorphic to an irregular simplex.
// Successive pyramids merge into a single multipyramid.
func NewPyramid[T NameType](base Name[T]) Name[T] {
	switch b := base.(type) {
	// Hardcoded low-rank results.
	case Nullitope[T]:
		return Point[T]{}
	case Point[T]:
		return Dyad[T]{}
	case Dyad[T]:
		return Triangle[T]{}

	case Triangle[T]:
		if b.Regular.Contains(Regular{}) {
			return Simplex[T]{Regular: b.Regular, Rank: 3}
		}

		return Pyramid[T]{Base: base}

	case Simplex[T]:
		if b.Regular.Contains(Regular{}) {
			return Simplex[T]{Regular: b.Regular, Rank: b.Rank + 1}
		}

		return Pyramid[T]{Base: base}

	// Two successive pyramids become one multipyramid.
	case Pyramid[T]:
		return NewMultipyramid([]Name[T]{Dyad[T]{}, b.Base})

	case Multipyramid[T]:
		return NewMultipyramid(append(b.Bases, Point[T]{}))

	default:
		return Pyramid[T]{Base: base}
	}
}

// NewPrism builds the name of a prism over base. Mirrors NewPyramid
// with rectangles and hyperblocks.
func NewPrism[T NameType](base Name[T]) Name[T] {
	switch b := base.(type) {
	// Hardcoded low-rank results.
	case Nullitope[T]:
		return Nullitope[T]{}
	case Point[T]:
		return Dyad[T]{}
	case Dyad[T]:
		return NewRectangle[T]()
	case Rectangle[T]:
		return Hyperblock[T]{Rank: 3}

	case Hyperblock[T]:
		if b.Regular.Contains(Regular{}) {
			return Hyperblock[T]{Regular: b.Regular, Rank: b.Rank + 1}
		}

		return Prism[T]{Base: base}

	// Two successive prisms become one multiprism.
	case Prism[T]:
		return NewMultiprism([]Name[T]{NewRectangle[T](), b.Base})

	case Multiprism[T]:
		return NewMultiprism(append(b.Bases, Dyad[T]{}))

	default:
		return Prism[T]{Base: base}
	}
}

// NewTegum builds the name of a tegum over base. Mirrors NewPyramid
// with orthodiagonals and orthoplices.
func NewTegum[T NameType](base Name[T]) Name[T] {
	switch b := base.(type) {
	// Hardcoded low-rank results.
	case Nullitope[T]:
		return Nullitope[T]{}
	case Point[T]:
		return Dyad[T]{}
	case Dyad[T]:
		return NewOrthodiagonal[T]()
	case Orthodiagonal[T]:
		return Orthoplex[T]{Rank: 3}

	case Orthoplex[T]:
		if b.Regular.Contains(Regular{}) {
			return Orthoplex[T]{Regular: b.Regular, Rank: b.Rank + 1}
		}

		return Tegum[T]{Base: base}

	// Two successive tegums become one multitegum.
	case Tegum[T]:
		return NewMultitegum([]Name[T]{NewOrthodiagonal[T](), b.Base})

	case Multitegum[T]:
		return NewMultitegum(append(b.Bases, Dyad[T]{}))

	default:
		return Tegum[T]{Base: base}
	}
}

// NewAntiprism builds the name of an antiprism over base. The
// antiprism of a simplex is an irregular orthoplex of the next rank.
func NewAntiprism[T NameType](base Name[T]) Name[T] {
	switch b := base.(type) {
	// Hardcoded low-rank results.
	case Nullitope[T]:
		return Point[T]{}
	case Point[T]:
		return Dyad[T]{}
	case Dyad[T]:
		return Orthodiagonal[T]{}

	case Simplex[T]:
		return Orthoplex[T]{Rank: b.Rank + 1}

	default:
		return Antiprism[T]{Base: base}
	}
}

// NewSmall wraps a name in its smaller variant.
func NewSmall[T NameType](base Name[T]) Name[T] {
	return Small[T]{Base: base}
}

// NewGreat wraps a name in its greater variant.
func NewGreat[T NameType](base Name[T]) Name[T] {
	return Great[T]{Base: base}
}

// NewStellated wraps a name in its stellation.
func NewStellated[T NameType](base Name[T]) Name[T] {
	return Stellated[T]{Base: base}
}
