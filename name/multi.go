package name

// This file holds the multi-operation mergers. Each walks its base
// list once, absorbing unit literals into a running rank count,
// splicing same-kind nested lists in place, and keeping every other
// base in order. The absorbed units reappear at the end as a single
// combined-rank literal (or, for exactly one unit, as one explicit
// modifier applied last).

// NewMultipyramid merges bases into a single multipyramid, keeping
// the bases in roughly the given order. Unit pyramids (points, dyads,
// triangles, simplices) are absorbed and recombined into one simplex.
func NewMultipyramid[T NameType](bases []Name[T]) Name[T] {
	var out []Name[T]
	var pyramids Rank

	for _, base := range bases {
		switch b := base.(type) {
		case Nullitope[T]:
		case Point[T]:
			pyramids++
		case Dyad[T]:
			pyramids += 2
		case Triangle[T]:
			pyramids += 3
		case Simplex[T]:
			pyramids += b.Rank + 1
		case Multipyramid[T]:
			out = append(out, b.Bases...)
		default:
			out = append(out, base)
		}
	}

	// More than one absorbed pyramid combines into a single simplex.
	if pyramids >= 2 {
		out = append(out, NewSimplex[T](Data[T, Regular]{}, pyramids-1))
	}

	var merged Name[T]
	switch len(out) {
	case 0:
		merged = Nullitope[T]{}
	case 1:
		merged = out[0]
	default:
		merged = Multipyramid[T]{Bases: out}
	}

	// Exactly one absorbed pyramid is applied at the end. Wrapping a
	// multipyramid re-enters this merger, so that case stays raw.
	if pyramids == 1 {
		if _, nested := merged.(Multipyramid[T]); nested {
			return Pyramid[T]{Base: merged}
		}

		return NewPyramid(merged)
	}

	return merged
}

// NewMultiprism merges bases into a single multiprism. A nullitope
// base absorbs the whole product; unit prisms (dyads, rectangles,
// hyperblocks) recombine into one hyperblock.
func NewMultiprism[T NameType](bases []Name[T]) Name[T] {
	var out []Name[T]
	var prisms Rank

	for _, base := range bases {
		switch b := base.(type) {
		case Nullitope[T]:
			return Nullitope[T]{}
		case Point[T]:
		case Dyad[T]:
			prisms++
		case Square[T]:
			prisms += 2
		case Rectangle[T]:
			prisms += 2
		case Hyperblock[T]:
			prisms += b.Rank
		case Multiprism[T]:
			out = append(out, b.Bases...)
		default:
			out = append(out, base)
		}
	}

	// More than one absorbed prism combines into a single hyperblock.
	if prisms >= 2 {
		out = append(out, NewHyperblock[T](Data[T, Regular]{}, prisms))
	}

	var merged Name[T]
	switch len(out) {
	case 0:
		merged = Point[T]{}
	case 1:
		merged = out[0]
	default:
		merged = Multiprism[T]{Bases: out}
	}

	// Exactly one absorbed prism is applied at the end. Wrapping a
	// multiprism re-enters this merger, so that case stays raw.
	if prisms == 1 {
		if _, nested := merged.(Multiprism[T]); nested {
			return Prism[T]{Base: merged}
		}

		return NewPrism(merged)
	}

	return merged
}

// NewMultitegum merges bases into a single multitegum. A nullitope
// base absorbs the whole product; unit tegums (dyads, orthodiagonals,
// orthoplices) recombine into one orthoplex.
func NewMultitegum[T NameType](bases []Name[T]) Name[T] {
	var out []Name[T]
	var tegums Rank

	for _, base := range bases {
		switch b := base.(type) {
		case Nullitope[T]:
			return Nullitope[T]{}
		case Point[T]:
		case Dyad[T]:
			tegums++
		case Square[T]:
			tegums += 2
		case Orthodiagonal[T]:
			tegums += 2
		case Orthoplex[T]:
			tegums += b.Rank
		case Multitegum[T]:
			out = append(out, b.Bases...)
		default:
			out = append(out, base)
		}
	}

	// More than one absorbed tegum combines into a single orthoplex.
	if tegums >= 2 {
		out = append(out, NewOrthoplex[T](Data[T, Regular]{}, tegums))
	}

	var merged Name[T]
	switch len(out) {
	case 0:
		merged = Point[T]{}
	case 1:
		merged = out[0]
	default:
		merged = Multitegum[T]{Bases: out}
	}

	// Exactly one absorbed tegum is applied at the end. Wrapping a
	// multitegum re-enters this merger, so that case stays raw.
	if tegums == 1 {
		if _, nested := merged.(Multitegum[T]); nested {
			return Tegum[T]{Base: merged}
		}

		return NewTegum(merged)
	}

	return merged
}

// NewMulticomb merges bases into a single multicomb. Combs have no
// unit literal, so only nested multicombs are flattened.
func NewMulticomb[T NameType](bases []Name[T]) Name[T] {
	var out []Name[T]

	for _, base := range bases {
		if b, ok := base.(Multicomb[T]); ok {
			out = append(out, b.Bases...)
		} else {
			out = append(out, base)
		}
	}

	switch len(out) {
	case 0:
		return Point[T]{}
	case 1:
		return out[0]
	default:
		return Multicomb[T]{Bases: out}
	}
}
