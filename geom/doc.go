// Package geom provides the minimal coordinate support the naming
// engine needs: an arbitrary-dimension point type, vector difference,
// Euclidean norm, and tolerance-based comparison.
//
// Points here are rank-dimensional, so no fixed-size vector type fits;
// a Point is a plain float64 slice. All comparisons use the absolute
// tolerance Eps, which is also the tolerance the dual-construction
// rules use when matching centers of regular polytopes.
package geom
