package maze

// Regions groups the maze's open cells into connected areas. Each
// region is a slice of node indices in discovery order; regions appear
// in row-major order of their first cell.
//
// A maze whose start and end fall into different regions has no
// solution, which callers can report without running a search.
//
// Time: O(Rows×Cols), Memory: O(Rows×Cols).
func (m *Maze) Regions() [][]int {
	total := m.Rows * m.Cols
	seen := make([]bool, total)
	var regions [][]int

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if !m.IsOpen(r, c) || seen[m.Index(r, c)] {
				continue
			}
			// Flood the region breadth-first.
			queue := []int{m.Index(r, c)}
			seen[queue[0]] = true
			var region []int
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				cell := m.Coordinate(u)
				for _, d := range offsets {
					nr, nc := cell.Row+d[0], cell.Col+d[1]
					if !m.IsOpen(nr, nc) {
						continue
					}
					v := m.Index(nr, nc)
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}

// SameRegion reports whether the start and end cells share a region,
// i.e. whether any path can exist at all.
func (m *Maze) SameRegion() bool {
	start, end := m.Start(), m.End()
	for _, region := range m.Regions() {
		var hasStart, hasEnd bool
		for _, idx := range region {
			if idx == start {
				hasStart = true
			}
			if idx == end {
				hasEnd = true
			}
		}
		if hasStart {
			return hasEnd
		}
	}

	return false
}
