package adjacency

// Color is an 8-bit RGBA pixel value.
//
// Equality is exact channel-wise equality. The total order used for
// sorting is lexicographic over the (R, G, B, A) channel bytes.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Compare returns -1, 0, or +1 ordering colors lexicographically by
// their (R, G, B, A) channel bytes.
func (c Color) Compare(other Color) int {
	if v := compareUint8(c.R, other.R); v != 0 {
		return v
	}
	if v := compareUint8(c.G, other.G); v != 0 {
		return v
	}
	if v := compareUint8(c.B, other.B); v != 0 {
		return v
	}
	return compareUint8(c.A, other.A)
}

func compareUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Pair records that two differing colors were found spatially adjacent,
// directed from Origin to Neighbor. A Pair with Origin == Neighbor is
// never recorded.
type Pair struct {
	Origin   Color
	Neighbor Color
}

// Swap returns the pair with its direction reversed.
func (p Pair) Swap() Pair {
	return Pair{Origin: p.Neighbor, Neighbor: p.Origin}
}

// Compare orders pairs lexicographically by Origin then Neighbor.
func (p Pair) Compare(other Pair) int {
	if v := p.Origin.Compare(other.Origin); v != 0 {
		return v
	}
	return p.Neighbor.Compare(other.Neighbor)
}

// Set is a deduplicated collection of Pairs. The zero value is not
// usable; construct with NewSet. A Set is not safe for concurrent
// mutation; Aggregate gives each worker its own.
type Set struct {
	pairs map[Pair]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{pairs: make(map[Pair]struct{})}
}

// Add inserts the pair. Re-inserting an equal pair is a no-op.
func (s *Set) Add(p Pair) {
	s.pairs[p] = struct{}{}
}

// Has reports whether the pair is in the set.
func (s *Set) Has(p Pair) bool {
	_, ok := s.pairs[p]
	return ok
}

// Len returns the number of distinct pairs.
func (s *Set) Len() int {
	return len(s.pairs)
}

// Pairs returns a snapshot of the members in unspecified order.
func (s *Set) Pairs() []Pair {
	out := make([]Pair, 0, len(s.pairs))
	for p := range s.pairs {
		out = append(out, p)
	}
	return out
}

// Merge unions two sets and returns the combined set. The smaller set
// is folded into the larger to reduce rehashing; either input may be
// returned, so callers must not reuse the arguments afterwards.
func Merge(a, b *Set) *Set {
	if len(a.pairs) < len(b.pairs) {
		a, b = b, a
	}
	for p := range b.pairs {
		a.pairs[p] = struct{}{}
	}
	return a
}
