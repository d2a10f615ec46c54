package maze

import (
	"fmt"
	"strings"

	"github.com/trajeto/trajeto/core"
)

// neighbor probe order: up, down, left, right. This order, combined
// with the graph's most-recently-added-first adjacency, fixes the
// visitation order of BFS and DFS over the maze.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Parse validates the grid and locates the unique start and end
// markers. The input is copied, so later mutation of lines does not
// affect the Maze.
// Complexity: O(Rows×Cols).
func Parse(lines []string) (*Maze, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	cols := len(lines[0])
	for i, row := range lines {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), cols)
		}
	}

	m := &Maze{
		Rows:  len(lines),
		Cols:  cols,
		cells: append([]string(nil), lines...),
		start: Cell{Row: -1, Col: -1},
		end:   Cell{Row: -1, Col: -1},
	}
	for r, row := range m.cells {
		for c := 0; c < cols; c++ {
			switch row[c] {
			case Start:
				if m.start.Row != -1 {
					return nil, fmt.Errorf("%w: at (%d, %d)", ErrDuplicateStart, r, c)
				}
				m.start = Cell{Row: r, Col: c}
			case End:
				if m.end.Row != -1 {
					return nil, fmt.Errorf("%w: at (%d, %d)", ErrDuplicateEnd, r, c)
				}
				m.end = Cell{Row: r, Col: c}
			}
		}
	}
	if m.start.Row == -1 {
		return nil, ErrMissingStart
	}
	if m.end.Row == -1 {
		return nil, ErrMissingEnd
	}

	return m, nil
}

// Index maps (row, col) to the flat node index row*Cols + col.
func (m *Maze) Index(row, col int) int {
	return row*m.Cols + col
}

// Coordinate converts a flat node index back to its cell.
func (m *Maze) Coordinate(idx int) Cell {
	return Cell{Row: idx / m.Cols, Col: idx % m.Cols}
}

// InBounds reports whether (row, col) lies inside the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// IsOpen reports whether (row, col) is a walkable cell.
func (m *Maze) IsOpen(row, col int) bool {
	return m.InBounds(row, col) && m.cells[row][col] != Wall
}

// Start returns the node index of the 'S' cell.
func (m *Maze) Start() int { return m.Index(m.start.Row, m.start.Col) }

// End returns the node index of the 'E' cell.
func (m *Maze) End() int { return m.Index(m.end.Row, m.end.Col) }

// Graph builds the unweighted, undirected core.Graph of the maze.
// Walls keep their indices but end up with empty adjacency. Edges are
// inserted in deterministic scan order; see the package doc for why
// duplicates are left in.
// Complexity: O(Rows×Cols).
func (m *Maze) Graph() *core.Graph {
	g, err := core.NewGraph(m.Rows * m.Cols)
	if err != nil {
		// Parse guarantees non-negative dimensions.
		panic(err)
	}
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if !m.IsOpen(r, c) {
				continue
			}
			u := m.Index(r, c)
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if !m.IsOpen(nr, nc) {
					continue
				}
				if err := g.AddEdge(u, m.Index(nr, nc), 0); err != nil {
					panic(err) // indices come from InBounds-checked cells
				}
			}
		}
	}

	return g
}

// Render returns the maze with the given node-index path overlaid as
// '*', leaving the S and E markers intact. Indices outside the grid
// are ignored.
func (m *Maze) Render(path []int) string {
	rows := make([][]byte, m.Rows)
	for r := range rows {
		rows[r] = []byte(m.cells[r])
	}
	for _, idx := range path {
		cell := m.Coordinate(idx)
		if !m.InBounds(cell.Row, cell.Col) {
			continue
		}
		if b := rows[cell.Row][cell.Col]; b == Start || b == End {
			continue
		}
		rows[cell.Row][cell.Col] = '*'
	}

	var sb strings.Builder
	for r, row := range rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}

	return sb.String()
}

// FormatPath renders a node-index path as "(r, c) -> (r, c) -> …".
func (m *Maze) FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		cell := m.Coordinate(idx)
		parts[i] = fmt.Sprintf("(%d, %d)", cell.Row, cell.Col)
	}

	return strings.Join(parts, " -> ")
}
