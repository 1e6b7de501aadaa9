package name

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/H-A-M-G-E-R/miratope/geom"
)

// This file is the serialization bridge: a Name is carried as a
// single '#'-marked line at the top of an OFF geometry file, with a
// JSON payload after the marker. The read path never fails hard —
// a missing marker, an unreadable line or a malformed payload all
// yield "no name available", and the caller falls back to computing
// a name from the geometry.

// wireName is the serialized shape of a name node. Fields beyond Kind
// are populated per variant; phantom capsules serialize as absent.
type wireName struct {
	Kind    string       `json:"kind"`
	Base    *wireName    `json:"base,omitempty"`
	Bases   []wireName   `json:"bases,omitempty"`
	Regular *wireRegular `json:"regular,omitempty"`
	Center  []float64    `json:"center,omitempty"`
	N       int          `json:"n,omitempty"`
	Facets  int          `json:"facets,omitempty"`
	Rank    *int         `json:"rank,omitempty"`
}

// wireRegular is present only for concrete regular shapes.
type wireRegular struct {
	Center []float64 `json:"center,omitempty"`
}

// Header encodes n as the marker-prefixed line embedded at the top of
// an OFF file. FromHeader decodes it back to an equal name.
func Header[T NameType](n Name[T]) string {
	payload, _ := json.Marshal(toWire(n))

	return "# " + string(payload)
}

// FromHeader extracts a name from the first line of an OFF file.
// The second result is false when no name is available: missing '#'
// marker, or a payload that does not decode.
func FromHeader[T NameType](line string) (Name[T], bool) {
	if !strings.HasPrefix(line, "#") {
		return nil, false
	}

	var w wireName
	if err := json.Unmarshal([]byte(strings.TrimSpace(line[1:])), &w); err != nil {
		return nil, false
	}

	return fromWire[T](&w)
}

// FromOFF reads a name from the first line of the OFF file at path.
// Files ending in ".gz" are decompressed transparently. Any I/O or
// decode failure yields "no name available".
func FromOFF[T NameType](path string) (Name[T], bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, false
		}
		defer zr.Close()
		r = zr
	}

	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, false
	}

	return FromHeader[T](sc.Text())
}

func toWire[T NameType](n Name[T]) *wireName {
	w := &wireName{Kind: string(kindOf(n))}

	switch b := n.(type) {
	case Triangle[T]:
		w.Regular = wireReg(b.Regular)
	case Polygon[T]:
		w.Regular = wireReg(b.Regular)
		w.N = b.N
	case Pyramid[T]:
		w.Base = toWire(b.Base)
	case Prism[T]:
		w.Base = toWire(b.Base)
	case Tegum[T]:
		w.Base = toWire(b.Base)
	case Multipyramid[T]:
		w.Bases = wireBases(b.Bases)
	case Multiprism[T]:
		w.Bases = wireBases(b.Bases)
	case Multitegum[T]:
		w.Bases = wireBases(b.Bases)
	case Multicomb[T]:
		w.Bases = wireBases(b.Bases)
	case Antiprism[T]:
		w.Base = toWire(b.Base)
	case Antitegum[T]:
		w.Base = toWire(b.Base)
		w.Center = wirePoint(b.Center)
	case Petrial[T]:
		w.Base = toWire(b.Base)
	case Dual[T]:
		w.Base = toWire(b.Base)
		w.Center = wirePoint(b.Center)
	case Simplex[T]:
		w.Regular = wireReg(b.Regular)
		w.Rank = wireRank(b.Rank)
	case Hyperblock[T]:
		w.Regular = wireReg(b.Regular)
		w.Rank = wireRank(b.Rank)
	case Orthoplex[T]:
		w.Regular = wireReg(b.Regular)
		w.Rank = wireRank(b.Rank)
	case Generic[T]:
		w.Facets = b.FacetCount
		w.Rank = wireRank(b.Rank)
	case Small[T]:
		w.Base = toWire(b.Base)
	case Great[T]:
		w.Base = toWire(b.Base)
	case Stellated[T]:
		w.Base = toWire(b.Base)
	}

	return w
}

func wireBases[T NameType](bases []Name[T]) []wireName {
	out := make([]wireName, len(bases))
	for i, base := range bases {
		out[i] = *toWire(base)
	}

	return out
}

func wireReg[T NameType](d Data[T, Regular]) *wireRegular {
	if isAbstract[T]() {
		return nil
	}
	r := d.Value()
	if !r.IsYes() {
		return nil
	}

	return &wireRegular{Center: r.Center()}
}

func wirePoint[T NameType](d Data[T, geom.Point]) []float64 {
	if isAbstract[T]() {
		return nil
	}

	return d.Value()
}

func wireRank(r Rank) *int {
	i := int(r)

	return &i
}

func fromWire[T NameType](w *wireName) (Name[T], bool) {
	switch kind(w.Kind) {
	case kindNullitope:
		return Nullitope[T]{}, true
	case kindPoint:
		return Point[T]{}, true
	case kindDyad:
		return Dyad[T]{}, true
	case kindTriangle:
		return Triangle[T]{Regular: regFromWire[T](w.Regular)}, true
	case kindSquare:
		return Square[T]{}, true
	case kindRectangle:
		return Rectangle[T]{}, true
	case kindOrthodiagonal:
		return Orthodiagonal[T]{}, true
	case kindPolygon:
		return Polygon[T]{Regular: regFromWire[T](w.Regular), N: w.N}, true

	case kindPyramid:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Pyramid[T]{Base: base}, true
	case kindPrism:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Prism[T]{Base: base}, true
	case kindTegum:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Tegum[T]{Base: base}, true

	case kindMultipyramid:
		bases, ok := basesFromWire[T](w.Bases)
		if !ok {
			return nil, false
		}

		return Multipyramid[T]{Bases: bases}, true
	case kindMultiprism:
		bases, ok := basesFromWire[T](w.Bases)
		if !ok {
			return nil, false
		}

		return Multiprism[T]{Bases: bases}, true
	case kindMultitegum:
		bases, ok := basesFromWire[T](w.Bases)
		if !ok {
			return nil, false
		}

		return Multitegum[T]{Bases: bases}, true
	case kindMulticomb:
		bases, ok := basesFromWire[T](w.Bases)
		if !ok {
			return nil, false
		}

		return Multicomb[T]{Bases: bases}, true

	case kindAntiprism:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Antiprism[T]{Base: base}, true
	case kindAntitegum:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Antitegum[T]{Base: base, Center: pointFromWire[T](w.Center)}, true
	case kindPetrial:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Petrial[T]{Base: base}, true
	case kindDual:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Dual[T]{Base: base, Center: pointFromWire[T](w.Center)}, true

	case kindSimplex:
		if w.Rank == nil {
			return nil, false
		}

		return Simplex[T]{Regular: regFromWire[T](w.Regular), Rank: Rank(*w.Rank)}, true
	case kindHyperblock:
		if w.Rank == nil {
			return nil, false
		}

		return Hyperblock[T]{Regular: regFromWire[T](w.Regular), Rank: Rank(*w.Rank)}, true
	case kindOrthoplex:
		if w.Rank == nil {
			return nil, false
		}

		return Orthoplex[T]{Regular: regFromWire[T](w.Regular), Rank: Rank(*w.Rank)}, true
	case kindGeneric:
		if w.Rank == nil {
			return nil, false
		}

		return Generic[T]{FacetCount: w.Facets, Rank: Rank(*w.Rank)}, true

	case kindSmall:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Small[T]{Base: base}, true
	case kindGreat:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Great[T]{Base: base}, true
	case kindStellated:
		base, ok := baseFromWire[T](w.Base)
		if !ok {
			return nil, false
		}

		return Stellated[T]{Base: base}, true
	}

	return nil, false
}

func baseFromWire[T NameType](w *wireName) (Name[T], bool) {
	if w == nil {
		return nil, false
	}

	return fromWire[T](w)
}

func basesFromWire[T NameType](ws []wireName) ([]Name[T], bool) {
	if len(ws) < 2 {
		return nil, false
	}

	out := make([]Name[T], len(ws))
	for i := range ws {
		base, ok := fromWire[T](&ws[i])
		if !ok {
			return nil, false
		}
		out[i] = base
	}

	return out, true
}

func regFromWire[T NameType](w *wireRegular) Data[T, Regular] {
	if w == nil {
		return Data[T, Regular]{}
	}

	return NewData[T](RegularYes(geom.Point(w.Center)))
}

func pointFromWire[T NameType](center []float64) Data[T, geom.Point] {
	return NewData[T](geom.Point(center))
}
