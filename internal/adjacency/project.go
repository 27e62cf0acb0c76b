package adjacency

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SortedPairs returns the set's members in the pair total order:
// lexicographic by origin color bytes, then neighbor color bytes. The
// order is independent of insertion and merge order, so rendering the
// result is byte-for-byte reproducible across runs.
func SortedPairs(set *Set) []Pair {
	pairs := set.Pairs()
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Compare(pairs[j]) < 0
	})
	return pairs
}

// WriteTable renders the pairs as tab-separated values: a header line
// followed by one row per pair with eight 0-255 integer fields.
func WriteTable(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "r\tg\tb\ta\tadj_r\tadj_g\tadj_b\tadj_a"); err != nil {
		return err
	}
	for _, p := range pairs {
		_, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			p.Origin.R, p.Origin.G, p.Origin.B, p.Origin.A,
			p.Neighbor.R, p.Neighbor.G, p.Neighbor.B, p.Neighbor.A)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCount renders the single human-readable count line.
func WriteCount(w io.Writer, set *Set) error {
	_, err := fmt.Fprintf(w, "Found %d unique adjacencies\n", set.Len())
	return err
}

// GraphNode describes one distinct color and the colors adjacent to it.
type GraphNode struct {
	Hex       string   `json:"hex"` // "#rrggbb" (alpha excluded)
	R         uint8    `json:"r"`
	G         uint8    `json:"g"`
	B         uint8    `json:"b"`
	A         uint8    `json:"a"`
	Neighbors []string `json:"neighbors"` // Neighbor hexes, sorted
}

// Graph is the JSON projection of a symmetry-closed adjacency set.
//
// Nodes are sorted by color so the document is reproducible. The list
// is wrapped in an object because some JSON consumers reject a bare
// top-level array.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
}

// BuildGraph groups a symmetry-closed pair sequence into one node per
// distinct origin color, each listing its neighbors as hex strings.
func BuildGraph(pairs []Pair) *Graph {
	byOrigin := make(map[Color][]Color)
	for _, p := range pairs {
		byOrigin[p.Origin] = append(byOrigin[p.Origin], p.Neighbor)
	}

	origins := make([]Color, 0, len(byOrigin))
	for c := range byOrigin {
		origins = append(origins, c)
	}
	sort.Slice(origins, func(i, j int) bool {
		return origins[i].Compare(origins[j]) < 0
	})

	g := &Graph{Nodes: make([]GraphNode, 0, len(origins))}
	for _, c := range origins {
		neighbors := byOrigin[c]
		sort.Slice(neighbors, func(i, j int) bool {
			return neighbors[i].Compare(neighbors[j]) < 0
		})
		hexes := make([]string, len(neighbors))
		for i, n := range neighbors {
			hexes[i] = hexString(n)
		}
		g.Nodes = append(g.Nodes, GraphNode{
			Hex:       hexString(c),
			R:         c.R,
			G:         c.G,
			B:         c.B,
			A:         c.A,
			Neighbors: hexes,
		})
	}
	return g
}

// WriteGraph renders the pairs as an indented JSON adjacency graph.
func WriteGraph(w io.Writer, pairs []Pair) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildGraph(pairs))
}

func hexString(c Color) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}
