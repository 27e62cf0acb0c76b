package adjacency

// Dimensions describes a rectangular pixel grid.
//
// A buffer addressed by Dimensions must hold exactly Rows*Cols pixels
// in row-major order.
type Dimensions struct {
	Rows int // Number of rows (image height in pixels)
	Cols int // Number of columns (image width in pixels)
}

// Area returns the total number of pixels the grid holds.
func (d Dimensions) Area() int {
	return d.Rows * d.Cols
}

// Location is a 0-based (row, column) grid coordinate.
type Location struct {
	Row int
	Col int
}

// Offset is a displacement applied to a Location coordinate-wise.
type Offset struct {
	DRow int
	DCol int
}

// Add returns the location displaced by the offset.
func (l Location) Add(o Offset) Location {
	return Location{Row: l.Row + o.DRow, Col: l.Col + o.DCol}
}

// Index converts an in-bounds location to its row-major buffer index.
// The caller must check bounds first; out-of-bounds locations produce
// meaningless indices.
func Index(loc Location, dims Dimensions) int {
	return loc.Row*dims.Cols + loc.Col
}

// LocationAt is the inverse of Index for 0 <= index < dims.Area().
func LocationAt(index int, dims Dimensions) Location {
	return Location{Row: index / dims.Cols, Col: index % dims.Cols}
}

// InBounds reports whether loc lies within the grid.
func InBounds(loc Location, dims Dimensions) bool {
	return loc.Row >= 0 && loc.Row < dims.Rows && loc.Col >= 0 && loc.Col < dims.Cols
}

// Connectivity selects which neighbor directions are examined per pixel.
type Connectivity int

const (
	// Conn4 checks the Down and Right neighbors only. The Up and Left
	// directions are recovered by symmetry closure after aggregation,
	// so each adjacent pair is still discovered exactly.
	Conn4 Connectivity = iota
	// Conn8 adds the two downward diagonals (Down+Left, Down+Right) to
	// Conn4. The upward diagonals are likewise recovered by closure.
	Conn8
)

// Offsets returns the neighbor offsets for the connectivity in a fixed
// order. The returned slice is a fresh copy on every call.
func (c Connectivity) Offsets() []Offset {
	if c == Conn8 {
		return []Offset{
			{DRow: 1, DCol: 0},
			{DRow: 0, DCol: 1},
			{DRow: 1, DCol: -1},
			{DRow: 1, DCol: 1},
		}
	}
	return []Offset{
		{DRow: 1, DCol: 0},
		{DRow: 0, DCol: 1},
	}
}

// String returns "4-connected" or "8-connected".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8-connected"
	}
	return "4-connected"
}
