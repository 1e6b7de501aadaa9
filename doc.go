// Package miratope is a symbolic naming engine for polytopes — it
// builds, canonicalizes, compares, validates, and serializes the
// structural names of polytopes of arbitrary rank.
//
// 🚀 What is miratope?
//
//	A small, pure library that brings together:
//		• Name trees: a recursive tagged union of literals, modifiers and products
//		• Smart constructors: pyramid, prism, tegum, antiprism, dual, Petrial
//		• Mergers: multipyramid, multiprism, multitegum, multicomb with unit absorption
//		• Two instantiations: abstract names and concrete (geometry-aware) names
//		• An OFF bridge: read and write the #-marked name line of OFF files
//
// ✨ Why choose miratope?
//
//   - Canonical by construction – constructors collapse to literals eagerly
//   - One engine, two semantics – a type parameter picks abstract or concrete
//   - Structural guarantees – equality, validity and round-trip encoding
//   - Pure Go – no cgo, no global state
//
// Everything is organized under two library packages and one command:
//
//	geom/         — arbitrary-rank points, norms and the tolerance constant
//	name/         — the name tree, constructors, equality, validity, OFF bridge
//	cmd/namecalc/ — an interactive stack calculator over the engine
//
// Quick ASCII example:
//
//	    pyramid(pyramid(Dyad))
//	        = pyramid(Triangle)
//	        = Simplex(rank 3)
//
//	three applications of one rule family, each collapsing to a literal.
//
// Dive into the per-package doc.go files for the full rule tables, and
// into examples/ for runnable scenarios.
//
//	go get github.com/H-A-M-G-E-R/miratope
package miratope
