package name_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H-A-M-G-E-R/miratope/geom"
	"github.com/H-A-M-G-E-R/miratope/name"
)

type (
	abs = name.Abs
	con = name.Con
)

// origin3 is the usual center of construction in these tests.
var origin3 = geom.Origin(3)

// TestNewGeneric_LowRanks verifies the hardcoded low-rank names and
// the rank-2 polygon delegation.
func TestNewGeneric_LowRanks(t *testing.T) {
	assert.True(t, name.Equal[con](name.NewGeneric[con](0, -1), name.Nullitope[con]{}))
	assert.True(t, name.Equal[con](name.NewGeneric[con](1, 0), name.Point[con]{}))
	assert.True(t, name.Equal[con](name.NewGeneric[con](2, 1), name.Dyad[con]{}))
	assert.True(t, name.Equal[con](name.NewGeneric[con](6, 2), name.Polygon[con]{N: 6}),
		"rank 2 delegates to an irregular polygon")
	assert.True(t, name.Equal[con](name.NewGeneric[con](3, 2), name.Triangle[con]{}),
		"three facets at rank 2 make a triangle")
	assert.True(t, name.Equal[con](name.NewGeneric[con](12, 4), name.Generic[con]{FacetCount: 12, Rank: 4}))
}

// TestNewPolygon verifies the triangle and square collapses.
func TestNewPolygon(t *testing.T) {
	assert.True(t, name.Equal[con](name.NewPolygon(name.Irregular[con](), 3), name.Triangle[con]{}))

	regular := name.RegularAt[con](geom.Origin(2))
	assert.True(t, name.Equal[con](name.NewPolygon(regular, 4), name.Square[con]{}),
		"a regular quadrilateral is a square")
	assert.True(t, name.Equal[con](name.NewPolygon(name.Irregular[con](), 4),
		name.Polygon[con]{N: 4}), "an irregular quadrilateral stays a polygon")

	// The abstract capsule cannot rule regularity out, so abstract
	// quadrilaterals collapse to squares.
	assert.True(t, name.Equal[abs](name.NewPolygon(name.Irregular[abs](), 4), name.Square[abs]{}))

	assert.True(t, name.Equal[con](name.NewPolygon(regular, 5),
		name.Polygon[con]{Regular: regular, N: 5}))
}

// TestNewRectangle_AbstractCollapse verifies that abstract polytopes
// cannot tell rectangles or orthodiagonals from squares.
func TestNewRectangle_AbstractCollapse(t *testing.T) {
	assert.True(t, name.Equal[abs](name.NewRectangle[abs](), name.Square[abs]{}))
	assert.True(t, name.Equal[abs](name.NewOrthodiagonal[abs](), name.Square[abs]{}))
	assert.True(t, name.Equal[con](name.NewRectangle[con](), name.Rectangle[con]{}))
	assert.True(t, name.Equal[con](name.NewOrthodiagonal[con](), name.Orthodiagonal[con]{}))
}

// TestNewSimplexFamily_LowRanks verifies the shared low-rank special
// cases of the simplex, hyperblock and orthoplex constructors.
func TestNewSimplexFamily_LowRanks(t *testing.T) {
	irr := name.Irregular[con]()

	assert.True(t, name.Equal[con](name.NewSimplex(irr, -1), name.Nullitope[con]{}))
	assert.True(t, name.Equal[con](name.NewSimplex(irr, 0), name.Point[con]{}))
	assert.True(t, name.Equal[con](name.NewSimplex(irr, 1), name.Dyad[con]{}))
	assert.True(t, name.Equal[con](name.NewSimplex(irr, 2), name.Triangle[con]{}))
	assert.True(t, name.Equal[con](name.NewSimplex(irr, 5), name.Simplex[con]{Rank: 5}))

	assert.True(t, name.Equal[con](name.NewHyperblock(irr, 2), name.Rectangle[con]{}))
	assert.True(t, name.Equal[con](name.NewHyperblock(irr, 3), name.Hyperblock[con]{Rank: 3}))

	assert.True(t, name.Equal[con](name.NewOrthoplex(irr, 2), name.Orthodiagonal[con]{}))
	assert.True(t, name.Equal[con](name.NewOrthoplex(irr, 3), name.Orthoplex[con]{Rank: 3}))
}

// TestNewPyramid_Hardcoded verifies the low-rank pyramid ladder.
func TestNewPyramid_Hardcoded(t *testing.T) {
	assert.True(t, name.Equal[con](name.NewPyramid[con](name.Nullitope[con]{}), name.Point[con]{}))
	assert.True(t, name.Equal[con](name.NewPyramid[con](name.Point[con]{}), name.Dyad[con]{}))
	assert.True(t, name.Equal[con](name.NewPyramid[con](name.Dyad[con]{}), name.Triangle[con]{}))
}

// TestNewPyramid_SimplexGrowth verifies that irregular triangles and
// simplices grow into higher irregular simplices, while regular ones
// keep an explicit pyramid wrapper.
func TestNewPyramid_SimplexGrowth(t *testing.T) {
	// Irregular: collapse.
	got := name.NewPyramid[con](name.Triangle[con]{})
	assert.True(t, name.Equal[con](got, name.Simplex[con]{Rank: 3}))

	got = name.NewPyramid[con](name.Simplex[con]{Rank: 3})
	assert.True(t, name.Equal[con](got, name.Simplex[con]{Rank: 4}))

	// Regular: wrap.
	regTri := name.Triangle[con]{Regular: name.RegularAt[con](origin3)}
	assert.True(t, name.Equal[con](name.NewPyramid[con](regTri),
		name.Pyramid[con]{Base: regTri}))

	regSim := name.Simplex[con]{Regular: name.RegularAt[con](origin3), Rank: 3}
	assert.True(t, name.Equal[con](name.NewPyramid[con](regSim),
		name.Pyramid[con]{Base: regSim}))

	// Abstract capsules cannot rule irregularity out: always collapse.
	assert.True(t, name.Equal[abs](name.NewPyramid[abs](name.Triangle[abs]{}),
		name.Simplex[abs]{Rank: 3}))
}

// TestNewPyramid_MergesPyramids verifies that successive pyramids
// merge into one multipyramid instead of nesting.
func TestNewPyramid_MergesPyramids(t *testing.T) {
	g := name.Generic[con]{FacetCount: 9, Rank: 4}

	got := name.NewPyramid[con](name.Pyramid[con]{Base: g})
	want := name.Multipyramid[con]{Bases: []name.Name[con]{g, name.Dyad[con]{}}}
	assert.True(t, name.Equal[con](got, want),
		"pyramid of a pyramid is a multipyramid with a dyad unit")

	multi := name.Multipyramid[con]{Bases: []name.Name[con]{g, g}}
	got = name.NewPyramid[con](multi)
	assert.True(t, name.Equal[con](got, name.Pyramid[con]{Base: multi}),
		"one extra point unit manifests as a single pyramid over the product")
}

// TestNewPrism_Ladder verifies the prism rules.
func TestNewPrism_Ladder(t *testing.T) {
	assert.True(t, name.Equal[con](name.NewPrism[con](name.Nullitope[con]{}), name.Nullitope[con]{}))
	assert.True(t, name.Equal[con](name.NewPrism[con](name.Point[con]{}), name.Dyad[con]{}))
	assert.True(t, name.Equal[con](name.NewPrism[con](name.Dyad[con]{}), name.Rectangle[con]{}))
	assert.True(t, name.Equal[abs](name.NewPrism[abs](name.Dyad[abs]{}), name.Square[abs]{}))
	assert.True(t, name.Equal[con](name.NewPrism[con](name.Rectangle[con]{}),
		name.Hyperblock[con]{Rank: 3}))

	// Irregular hyperblocks grow, regular ones wrap.
	assert.True(t, name.Equal[con](name.NewPrism[con](name.Hyperblock[con]{Rank: 3}),
		name.Hyperblock[con]{Rank: 4}))
	regBlock := name.Hyperblock[con]{Regular: name.RegularAt[con](origin3), Rank: 3}
	assert.True(t, name.Equal[con](name.NewPrism[con](regBlock),
		name.Prism[con]{Base: regBlock}))

	// Successive prisms merge.
	g := name.Generic[con]{FacetCount: 9, Rank: 4}
	got := name.NewPrism[con](name.Prism[con]{Base: g})
	want := name.Multiprism[con]{Bases: []name.Name[con]{g, name.Rectangle[con]{}}}
	assert.True(t, name.Equal[con](got, want))
}

// TestNewTegum_Ladder verifies the tegum rules.
func TestNewTegum_Ladder(t *testing.T) {
	assert.True(t, name.Equal[con](name.NewTegum[con](name.Nullitope[con]{}), name.Nullitope[con]{}))
	assert.True(t, name.Equal[con](name.NewTegum[con](name.Point[con]{}), name.Dyad[con]{}))
	assert.True(t, name.Equal[con](name.NewTegum[con](name.Dyad[con]{}), name.Orthodiagonal[con]{}))
	assert.True(t, name.Equal[con](name.NewTegum[con](name.Orthodiagonal[con]{}),
		name.Orthoplex[con]{Rank: 3}))

	assert.True(t, name.Equal[con](name.NewTegum[con](name.Orthoplex[con]{Rank: 3}),
		name.Orthoplex[con]{Rank: 4}))
	regPlex := name.Orthoplex[con]{Regular: name.RegularAt[con](origin3), Rank: 3}
	assert.True(t, name.Equal[con](name.NewTegum[con](regPlex),
		name.Tegum[con]{Base: regPlex}))

	g := name.Generic[con]{FacetCount: 9, Rank: 4}
	got := name.NewTegum[con](name.Tegum[con]{Base: g})
	want := name.Multitegum[con]{Bases: []name.Name[con]{g, name.Orthodiagonal[con]{}}}
	assert.True(t, name.Equal[con](got, want))
}

// TestNewAntiprism verifies the antiprism rules.
func TestNewAntiprism(t *testing.T) {
	assert.True(t, name.Equal[con](name.NewAntiprism[con](name.Nullitope[con]{}), name.Point[con]{}))
	assert.True(t, name.Equal[con](name.NewAntiprism[con](name.Point[con]{}), name.Dyad[con]{}))
	assert.True(t, name.Equal[con](name.NewAntiprism[con](name.Dyad[con]{}),
		name.Orthodiagonal[con]{}))

	got := name.NewAntiprism[con](name.Simplex[con]{Rank: 4})
	assert.True(t, name.Equal[con](got, name.Orthoplex[con]{Rank: 5}),
		"a simplex antiprism is the next irregular orthoplex")

	g := name.Generic[con]{FacetCount: 9, Rank: 4}
	assert.True(t, name.Equal[con](name.NewAntiprism[con](g), name.Antiprism[con]{Base: g}))
}

// TestVariantWrappers verifies the small/great/stellated wrappers.
func TestVariantWrappers(t *testing.T) {
	g := name.Generic[con]{FacetCount: 12, Rank: 3}

	assert.True(t, name.Equal[con](name.NewSmall[con](g), name.Small[con]{Base: g}))
	assert.True(t, name.Equal[con](name.NewGreat[con](g), name.Great[con]{Base: g}))
	assert.True(t, name.Equal[con](name.NewStellated[con](g), name.Stellated[con]{Base: g}))
}
