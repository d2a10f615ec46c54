// Package maze turns a rectangular character grid into a core.Graph
// ready for bfs and dfs.
//
// Grid format, one string per row:
//
//	'#' — wall; not a node.
//	'S' — the single start cell.
//	'E' — the single end cell.
//	any other byte — an open cell.
//
// Every open cell becomes a node indexed row-major
// (index = row*Cols + col); orthogonally adjacent open cells are
// connected by undirected unit edges. Edges are inserted in the same
// scan order the classic maze solvers use — row-major over the cells,
// neighbors probed up, down, left, right — so traversal output is
// reproducible. Each undirected edge surfaces twice (once from either
// endpoint's scan); the graph tolerates the duplicates.
//
// Beyond graph construction the package offers Regions, which groups
// open cells into connected areas (useful to report that S and E lie
// in separate areas before even searching), and Render, which overlays
// a found path on the original grid for display.
//
// Errors:
//
//	ErrEmptyMaze      — no rows or no columns.
//	ErrNonRectangular — rows of differing lengths.
//	ErrMissingStart / ErrMissingEnd — required marker absent.
//	ErrDuplicateStart / ErrDuplicateEnd — marker present twice.
package maze
