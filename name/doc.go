// Package name assigns and canonicalizes symbolic names for
// polytopes, independently of how their coordinates or incidence
// structures are computed.
//
// 🚀 What is a polytope name?
//
//	A recursive symbolic term recording how a polytope was built:
//	  • literals: nullitope, point, dyad, polygons, simplices,
//	    hyperblocks, orthoplices, generic n-facet polytopes
//	  • unary constructions: pyramid, prism, tegum, antiprism
//	  • multi-products: multipyramid, multiprism, multitegum, multicomb
//	  • involutions & duals: Petrial, dual, antitegum
//	  • variant grading: small, great, stellated
//
// ✨ Key properties:
//   - Every New* constructor returns a name already in normal form:
//     a pyramid of an irregular simplex is the next simplex, nested
//     products flatten, double Petrials and matching-center double
//     duals cancel. There is no separate simplification pass.
//   - One algorithm serves abstract and concrete polytopes via the
//     Abs/Con capability marker: capsules of auxiliary data (centers,
//     regularity) are phantom for Abs and real for Con.
//   - Names round-trip through a single '#'-marked header line at the
//     top of an OFF geometry file (Header / FromHeader / FromOFF).
//
// ⚙️ Usage:
//
//	// The name of a pentagonal-pyramid prism, built bottom-up.
//	n := name.NewPrism(
//	    name.NewPyramid(
//	        name.NewPolygon(name.Irregular[name.Con](), 5)))
//
//	line := name.Header(n)          // "# {...}"
//	back, ok := name.FromHeader[name.Con](line)
//
// All operations are total, purely functional over immutable trees,
// and run in time proportional to tree size. IsValid is available as
// a debug oracle for hand-built nodes.
package name
