package name

import "github.com/H-A-M-G-E-R/miratope/geom"

// Name is a symbolic polytope name: a recursive tagged union over the
// variant structs below, generic over the Abs/Con capability marker.
//
// Several variants carry invariants (see IsValid). Raw composite
// literals do not enforce them; the New* smart constructors do, and
// additionally reduce every result to normal form, so there is no
// separate simplification pass.
//
// Every child Name is exclusively owned by its parent: names form
// trees, never graphs, and are treated as immutable once built.
type Name[T NameType] interface {
	isName(T)
}

// Nullitope is the unique polytope of rank −1.
type Nullitope[T NameType] struct{}

// Point is the unique polytope of rank 0.
type Point[T NameType] struct{}

// Dyad is the unique polytope of rank 1.
type Dyad[T NameType] struct{}

// Triangle is a polygon with three sides.
type Triangle[T NameType] struct {
	// Regular stores whether the triangle is regular, and its center
	// if it is.
	Regular Data[T, Regular]
}

// Square is a regular quadrilateral.
type Square[T NameType] struct{}

// Rectangle is a 2-cuboid. Only concrete names distinguish it from a
// square; see NewRectangle.
type Rectangle[T NameType] struct{}

// Orthodiagonal is a dyadic duotegum, a quadrilateral with orthogonal
// diagonals. Only concrete names distinguish it from a square.
type Orthodiagonal[T NameType] struct{}

// Polygon has at least 4 sides if irregular, at least 5 if regular
// (smaller counts have their own variants). A 2-sided polygon is
// exempt from the bound.
type Polygon[T NameType] struct {
	Regular Data[T, Regular]

	// N is the side count.
	N int
}

// Pyramid is a pyramid over a base polytope.
type Pyramid[T NameType] struct{ Base Name[T] }

// Prism is a prism over a base polytope.
type Prism[T NameType] struct{ Base Name[T] }

// Tegum is a tegum over a base polytope.
type Tegum[T NameType] struct{ Base Name[T] }

// Multipyramid is a pyramid product of at least two bases, none of
// which is itself a Multipyramid.
type Multipyramid[T NameType] struct{ Bases []Name[T] }

// Multiprism is a prism product of at least two bases, none of which
// is itself a Multiprism.
type Multiprism[T NameType] struct{ Bases []Name[T] }

// Multitegum is a tegum product of at least two bases, none of which
// is itself a Multitegum.
type Multitegum[T NameType] struct{ Bases []Name[T] }

// Multicomb is a comb product of at least two bases, none of which is
// itself a Multicomb.
type Multicomb[T NameType] struct{ Bases []Name[T] }

// Antiprism is an antiprism over a base polytope.
type Antiprism[T NameType] struct{ Base Name[T] }

// Antitegum is an antitegum over a base polytope, constructed about a
// center.
type Antitegum[T NameType] struct {
	Base   Name[T]
	Center Data[T, geom.Point]
}

// Petrial replaces a polyhedron's faces with its Petrie polygons.
// It is an involution.
type Petrial[T NameType] struct{ Base Name[T] }

// Dual is the dual of a base polytope about a center.
type Dual[T NameType] struct {
	Base   Name[T]
	Center Data[T, geom.Point]
}

// Simplex of a given rank, at least 3 (lower ranks have their own
// variants).
type Simplex[T NameType] struct {
	Regular Data[T, Regular]
	Rank    Rank
}

// Hyperblock of a given rank, at least 3.
type Hyperblock[T NameType] struct {
	Regular Data[T, Regular]
	Rank    Rank
}

// Orthoplex of a given rank, at least 3. Its opposite vertices form
// an orthogonal basis.
type Orthoplex[T NameType] struct {
	Regular Data[T, Regular]
	Rank    Rank
}

// Generic names a polytope only by facet count (at least 2) and rank
// (between 3 and 20).
type Generic[T NameType] struct {
	// FacetCount is the number of facets.
	FacetCount int

	Rank Rank
}

// Small is the smaller variant of a polytope.
type Small[T NameType] struct{ Base Name[T] }

// Great is the greater variant of a polytope.
type Great[T NameType] struct{ Base Name[T] }

// Stellated is a stellation of a polytope.
type Stellated[T NameType] struct{ Base Name[T] }

func (Nullitope[T]) isName(T)     {}
func (Point[T]) isName(T)         {}
func (Dyad[T]) isName(T)          {}
func (Triangle[T]) isName(T)      {}
func (Square[T]) isName(T)        {}
func (Rectangle[T]) isName(T)     {}
func (Orthodiagonal[T]) isName(T) {}
func (Polygon[T]) isName(T)       {}
func (Pyramid[T]) isName(T)       {}
func (Prism[T]) isName(T)         {}
func (Tegum[T]) isName(T)         {}
func (Multipyramid[T]) isName(T)  {}
func (Multiprism[T]) isName(T)    {}
func (Multitegum[T]) isName(T)    {}
func (Multicomb[T]) isName(T)     {}
func (Antiprism[T]) isName(T)     {}
func (Antitegum[T]) isName(T)     {}
func (Petrial[T]) isName(T)       {}
func (Dual[T]) isName(T)          {}
func (Simplex[T]) isName(T)       {}
func (Hyperblock[T]) isName(T)    {}
func (Orthoplex[T]) isName(T)     {}
func (Generic[T]) isName(T)       {}
func (Small[T]) isName(T)         {}
func (Great[T]) isName(T)         {}
func (Stellated[T]) isName(T)     {}

// kind identifies a variant, for nesting checks and serialization.
type kind string

const (
	kindNullitope     kind = "nullitope"
	kindPoint         kind = "point"
	kindDyad          kind = "dyad"
	kindTriangle      kind = "triangle"
	kindSquare        kind = "square"
	kindRectangle     kind = "rectangle"
	kindOrthodiagonal kind = "orthodiagonal"
	kindPolygon       kind = "polygon"
	kindPyramid       kind = "pyramid"
	kindPrism         kind = "prism"
	kindTegum         kind = "tegum"
	kindMultipyramid  kind = "multipyramid"
	kindMultiprism    kind = "multiprism"
	kindMultitegum    kind = "multitegum"
	kindMulticomb     kind = "multicomb"
	kindAntiprism     kind = "antiprism"
	kindAntitegum     kind = "antitegum"
	kindPetrial       kind = "petrial"
	kindDual          kind = "dual"
	kindSimplex       kind = "simplex"
	kindHyperblock    kind = "hyperblock"
	kindOrthoplex     kind = "orthoplex"
	kindGeneric       kind = "generic"
	kindSmall         kind = "small"
	kindGreat         kind = "great"
	kindStellated     kind = "stellated"
)

// kindOf maps a node to its variant tag.
func kindOf[T NameType](n Name[T]) kind {
	switch n.(type) {
	case Nullitope[T]:
		return kindNullitope
	case Point[T]:
		return kindPoint
	case Dyad[T]:
		return kindDyad
	case Triangle[T]:
		return kindTriangle
	case Square[T]:
		return kindSquare
	case Rectangle[T]:
		return kindRectangle
	case Orthodiagonal[T]:
		return kindOrthodiagonal
	case Polygon[T]:
		return kindPolygon
	case Pyramid[T]:
		return kindPyramid
	case Prism[T]:
		return kindPrism
	case Tegum[T]:
		return kindTegum
	case Multipyramid[T]:
		return kindMultipyramid
	case Multiprism[T]:
		return kindMultiprism
	case Multitegum[T]:
		return kindMultitegum
	case Multicomb[T]:
		return kindMulticomb
	case Antiprism[T]:
		return kindAntiprism
	case Antitegum[T]:
		return kindAntitegum
	case Petrial[T]:
		return kindPetrial
	case Dual[T]:
		return kindDual
	case Simplex[T]:
		return kindSimplex
	case Hyperblock[T]:
		return kindHyperblock
	case Orthoplex[T]:
		return kindOrthoplex
	case Generic[T]:
		return kindGeneric
	case Small[T]:
		return kindSmall
	case Great[T]:
		return kindGreat
	case Stellated[T]:
		return kindStellated
	}

	return ""
}

// Equal reports structural equality of two names. Capsule payloads
// compare per their instantiation: vacuously for Abs, by value (with
// geom.Eps tolerance on centers) for Con.
func Equal[T NameType](a, b Name[T]) bool {
	if kindOf(a) != kindOf(b) {
		return false
	}

	switch x := a.(type) {
	case Triangle[T]:
		return x.Regular.Equal(b.(Triangle[T]).Regular)
	case Polygon[T]:
		y := b.(Polygon[T])

		return x.N == y.N && x.Regular.Equal(y.Regular)
	case Pyramid[T]:
		return Equal(x.Base, b.(Pyramid[T]).Base)
	case Prism[T]:
		return Equal(x.Base, b.(Prism[T]).Base)
	case Tegum[T]:
		return Equal(x.Base, b.(Tegum[T]).Base)
	case Multipyramid[T]:
		return equalBases(x.Bases, b.(Multipyramid[T]).Bases)
	case Multiprism[T]:
		return equalBases(x.Bases, b.(Multiprism[T]).Bases)
	case Multitegum[T]:
		return equalBases(x.Bases, b.(Multitegum[T]).Bases)
	case Multicomb[T]:
		return equalBases(x.Bases, b.(Multicomb[T]).Bases)
	case Antiprism[T]:
		return Equal(x.Base, b.(Antiprism[T]).Base)
	case Antitegum[T]:
		y := b.(Antitegum[T])

		return x.Center.Equal(y.Center) && Equal(x.Base, y.Base)
	case Petrial[T]:
		return Equal(x.Base, b.(Petrial[T]).Base)
	case Dual[T]:
		y := b.(Dual[T])

		return x.Center.Equal(y.Center) && Equal(x.Base, y.Base)
	case Simplex[T]:
		y := b.(Simplex[T])

		return x.Rank == y.Rank && x.Regular.Equal(y.Regular)
	case Hyperblock[T]:
		y := b.(Hyperblock[T])

		return x.Rank == y.Rank && x.Regular.Equal(y.Regular)
	case Orthoplex[T]:
		y := b.(Orthoplex[T])

		return x.Rank == y.Rank && x.Regular.Equal(y.Regular)
	case Generic[T]:
		y := b.(Generic[T])

		return x.FacetCount == y.FacetCount && x.Rank == y.Rank
	case Small[T]:
		return Equal(x.Base, b.(Small[T]).Base)
	case Great[T]:
		return Equal(x.Base, b.(Great[T]).Base)
	case Stellated[T]:
		return Equal(x.Base, b.(Stellated[T]).Base)
	}

	// Payload-free variants are equal by kind alone.
	return true
}

func equalBases[T NameType](a, b []Name[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
