package grid

// New constructs a Grid from a non-empty, rectangular 2D slice of runes.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrRaggedRows if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New(rows [][]rune) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedRows
		}
	}

	return Grid(rows).Clone(), nil
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the widest row.
// For grids built by Parse or New this equals len(g[0]).
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// RowExists reports whether row lies within [0, Height).
// Complexity: O(1).
func (g Grid) RowExists(row int) bool {
	return row >= 0 && row < len(g)
}

// ColExists reports whether col lies within the first row.
// An empty grid reports false for every column.
// Complexity: O(1).
func (g Grid) ColExists(col int) bool {
	return len(g) > 0 && col >= 0 && col < len(g[0])
}

// InBounds reports whether p is addressable by both RowExists and ColExists.
func (g Grid) InBounds(p Position) bool {
	return g.RowExists(p.Row) && g.ColExists(p.Col)
}

// At returns the cell at p, or Blank when p falls outside the grid or
// past the end of a short row.
func (g Grid) At(p Position) rune {
	if !g.RowExists(p.Row) || p.Col < 0 || p.Col >= len(g[p.Row]) {
		return Blank
	}
	return g[p.Row][p.Col]
}

// Set overwrites the cell at p. Positions outside the grid are ignored.
func (g Grid) Set(p Position, r rune) {
	if !g.RowExists(p.Row) || p.Col < 0 || p.Col >= len(g[p.Row]) {
		return
	}
	g[p.Row][p.Col] = r
}

// Scan walks the grid row-major and counts cells equal to r.
// last is the position of the final match in scan order; it stays
// at (0,0) when count is zero.
// Complexity: O(W×H).
func (g Grid) Scan(r rune) (count int, last Position) {
	for i, row := range g {
		for j, c := range row {
			if c == r {
				count++
				last = Position{Row: i, Col: j}
			}
		}
	}
	return count, last
}

// Clone returns a deep copy of g. A nil grid clones to nil.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]rune, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether g and other have identical shape and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}
