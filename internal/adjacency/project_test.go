package adjacency

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedPairsOrder(t *testing.T) {
	set := NewSet()
	set.Add(Pair{Origin: white, Neighbor: red})
	set.Add(Pair{Origin: red, Neighbor: white})
	set.Add(Pair{Origin: red, Neighbor: blue})
	set.Add(Pair{Origin: blue, Neighbor: red})

	got := SortedPairs(set)
	want := []Pair{
		{Origin: blue, Neighbor: red},
		{Origin: red, Neighbor: blue},
		{Origin: red, Neighbor: white},
		{Origin: white, Neighbor: red},
	}
	assert.Equal(t, want, got)
}

func TestWriteTableRedBlue(t *testing.T) {
	// The exact bytes for a 1x2 [Red, Blue] image after closure: blue
	// sorts before red, so the blue-origin row comes first.
	buf := []Color{red, blue}
	set, err := Aggregate(buf, Dimensions{Rows: 1, Cols: 2}, Conn4, 1)
	require.NoError(t, err)
	CloseSymmetric(set)

	var out bytes.Buffer
	require.NoError(t, WriteTable(&out, SortedPairs(set)))

	want := "r\tg\tb\ta\tadj_r\tadj_g\tadj_b\tadj_a\n" +
		"0\t0\t255\t255\t255\t0\t0\t255\n" +
		"255\t0\t0\t255\t0\t0\t255\t255\n"
	assert.Equal(t, want, out.String())
}

func TestWriteTableRowCountMatchesSet(t *testing.T) {
	buf := checkerboard(8, 8)
	set, err := Aggregate(buf, Dimensions{Rows: 8, Cols: 8}, Conn8, 4)
	require.NoError(t, err)
	CloseSymmetric(set)

	var out bytes.Buffer
	require.NoError(t, WriteTable(&out, SortedPairs(set)))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, set.Len()+1, len(lines), "header plus one row per pair")
}

func TestWriteCount(t *testing.T) {
	set := NewSet()
	set.Add(Pair{Origin: red, Neighbor: blue})
	set.Add(Pair{Origin: blue, Neighbor: red})

	var out bytes.Buffer
	require.NoError(t, WriteCount(&out, set))
	assert.Equal(t, "Found 2 unique adjacencies\n", out.String())
}

func TestBuildGraph(t *testing.T) {
	pairs := []Pair{
		{Origin: red, Neighbor: blue},
		{Origin: red, Neighbor: green},
		{Origin: blue, Neighbor: red},
		{Origin: green, Neighbor: red},
	}

	g := BuildGraph(pairs)
	require.Len(t, g.Nodes, 3)

	// Nodes sorted by color: blue < green < red.
	assert.Equal(t, "#0000ff", g.Nodes[0].Hex)
	assert.Equal(t, "#00ff00", g.Nodes[1].Hex)
	assert.Equal(t, "#ff0000", g.Nodes[2].Hex)

	redNode := g.Nodes[2]
	assert.Equal(t, uint8(255), redNode.R)
	assert.Equal(t, uint8(255), redNode.A)
	assert.Equal(t, []string{"#0000ff", "#00ff00"}, redNode.Neighbors)
}

func TestWriteGraphRoundTrips(t *testing.T) {
	buf := []Color{red, blue}
	set, err := Aggregate(buf, Dimensions{Rows: 1, Cols: 2}, Conn4, 1)
	require.NoError(t, err)
	CloseSymmetric(set)

	var out bytes.Buffer
	require.NoError(t, WriteGraph(&out, SortedPairs(set)))

	var decoded Graph
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Nodes, 2)
	assert.Equal(t, []string{"#ff0000"}, decoded.Nodes[0].Neighbors)
	assert.Equal(t, []string{"#0000ff"}, decoded.Nodes[1].Neighbors)
}
