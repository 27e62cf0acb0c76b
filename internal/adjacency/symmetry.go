package adjacency

// CloseSymmetric adds the swapped pair for every member so the set
// describes an undirected relation. It iterates a frozen snapshot of
// the members, never the map being extended, and is idempotent.
func CloseSymmetric(set *Set) {
	for _, p := range set.Pairs() {
		set.Add(p.Swap())
	}
}
