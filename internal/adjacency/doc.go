// Package adjacency discovers which colors touch which colors in a
// raster image.
//
// The input is a flat, row-major buffer of RGBA pixels plus its grid
// dimensions. For every pixel the package examines a small set of
// neighbor offsets, records each (origin, neighbor) pair of differing
// colors, and deduplicates the pairs into a set. Only the southward and
// eastward offsets are checked per pixel; the reverse directions are
// recovered afterwards by symmetry closure, which halves the neighbor
// lookups without changing the final relation.
//
// # Coordinate System
//
// Locations are 0-based with origin at the top-left: Row increases
// downward, Col increases rightward. A Location maps to a buffer index
// as Row*Cols + Col.
//
// # Concurrency
//
// Aggregate fans the pixel indices out over a configurable number of
// worker goroutines. The pixel buffer is shared read-only; each worker
// folds into a private set, and finished sets are merged pairwise into
// the result. The merge order does not affect the final set, so the
// output is deterministic for a given buffer, dimensions, and
// connectivity.
//
// # Output
//
// The closed set can be projected as a count, as a sorted tab-separated
// table, or as a JSON adjacency graph keyed by color. Sorting uses the
// total order over pairs (origin color bytes, then neighbor color
// bytes), so table output is byte-for-byte reproducible across runs.
package adjacency
