package adjacency

// extractPairs visits every differing-color neighbor of the pixel at
// index and calls emit once per discovered pair.
//
// Offsets are applied in slice order. Neighbors that fall outside the
// grid are skipped, as are neighbors whose color equals the origin
// pixel's color. The buffer is read-only here, so concurrent extraction
// from multiple goroutines is safe.
func extractPairs(buf []Color, dims Dimensions, offsets []Offset, index int, emit func(Pair)) {
	origin := buf[index]
	loc := LocationAt(index, dims)

	for _, off := range offsets {
		neighborLoc := loc.Add(off)
		if !InBounds(neighborLoc, dims) {
			continue
		}
		neighbor := buf[Index(neighborLoc, dims)]
		if neighbor == origin {
			continue
		}
		emit(Pair{Origin: origin, Neighbor: neighbor})
	}
}
