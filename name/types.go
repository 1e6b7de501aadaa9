// Package name canonicalizes symbolic polytope names.
//
// This file declares the Abs/Con capability markers, the Data capsule
// shared by both instantiations, the Regular record, and the Rank
// grading used throughout the package.
package name

import "github.com/H-A-M-G-E-R/miratope/geom"

// NameType is the capability marker distinguishing names of abstract
// polytopes from names of concrete ones. It has exactly two
// instantiations, Abs and Con, selected at compile time; the marker
// decides how Data capsules treat their payload.
type NameType interface {
	Abs | Con

	// IsAbstract reports whether this is the abstract instantiation.
	IsAbstract() bool
}

// Abs marks the name of an abstract polytope. Capsules instantiated
// with Abs are phantom: they store nothing and answer every query
// vacuously, since points and regularity are meaningless without an
// embedding.
type Abs struct{}

// IsAbstract always returns true for Abs.
func (Abs) IsAbstract() bool { return true }

// Con marks the name of a concrete polytope. Capsules instantiated
// with Con store and compare their payload for real.
type Con struct{}

// IsAbstract always returns false for Con.
func (Con) IsAbstract() bool { return false }

// isAbstract resolves the marker's flag without needing a value.
func isAbstract[T NameType]() bool {
	var t T

	return t.IsAbstract()
}

// equatable constrains capsule payloads to types carrying their own
// equality (tolerance-aware for points).
type equatable[V any] interface {
	Equal(V) bool
}

// Rank is the dimension-like grading of a polytope: −1 for the
// nullitope, 0 for a point, 1 for a dyad, and so on.
type Rank int

// Regular records whether a concrete polytope is regular, and its
// center of symmetry when it is. The zero value means "not regular".
type Regular struct {
	yes    bool
	center geom.Point
}

// RegularYes returns a Regular record with the given center.
func RegularYes(center geom.Point) Regular {
	return Regular{yes: true, center: center}
}

// IsYes reports whether the record marks the polytope as regular.
func (r Regular) IsYes() bool { return r.yes }

// Center returns the recorded center of symmetry. Only meaningful
// when IsYes is true.
func (r Regular) Center() geom.Point { return r.center }

// Equal compares two records; centers are matched within geom.Eps.
func (r Regular) Equal(o Regular) bool {
	if r.yes != o.yes {
		return false
	}
	if !r.yes {
		return true
	}

	return r.center.Equal(o.center)
}

// Data is the auxiliary-value capsule attached to name nodes. For the
// Con instantiation it stores one value of type V and compares it for
// real; for Abs it is phantom — it stores nothing, and Contains,
// Satisfies and Equal all hold vacuously. The zero value is the
// default capsule (for Regular, "not regular").
type Data[T NameType, V equatable[V]] struct {
	value V
}

// NewData wraps a value in a capsule. The abstract instantiation
// discards the value.
func NewData[T NameType, V equatable[V]](v V) Data[T, V] {
	if isAbstract[T]() {
		return Data[T, V]{}
	}

	return Data[T, V]{value: v}
}

// Contains reports whether the capsule holds v. Phantom capsules
// pretend to hold everything.
func (d Data[T, V]) Contains(v V) bool {
	if isAbstract[T]() {
		return true
	}

	return d.value.Equal(v)
}

// Satisfies reports whether the stored value satisfies pred. Phantom
// capsules satisfy every predicate.
func (d Data[T, V]) Satisfies(pred func(V) bool) bool {
	if isAbstract[T]() {
		return true
	}

	return pred(d.value)
}

// Equal compares two capsules. Any two phantom capsules are equal.
func (d Data[T, V]) Equal(o Data[T, V]) bool {
	if isAbstract[T]() {
		return true
	}

	return d.value.Equal(o.value)
}

// Value returns the stored value. For the abstract instantiation this
// is always the zero value of V.
func (d Data[T, V]) Value() V { return d.value }

// Irregular is the default regularity capsule: "not regular" for
// concrete names, vacuous for abstract ones.
func Irregular[T NameType]() Data[T, Regular] {
	return Data[T, Regular]{}
}

// RegularAt wraps a "regular about center" record in a capsule.
func RegularAt[T NameType](center geom.Point) Data[T, Regular] {
	return NewData[T](RegularYes(center))
}
