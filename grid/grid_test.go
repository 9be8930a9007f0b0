package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/grid"
)

// sixCells is the 3×2 grid used by the bounds tests.
func sixCells() grid.Grid {
	return grid.Grid{
		{'a', 'b'},
		{'c', 'd'},
		{'e', 'f'},
	}
}

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]rune
		err  error
	}{
		{"EmptyRows", [][]rune{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]rune{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]rune{{'-', '-'}, {'-'}}, grid.ErrRaggedRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures the constructed grid does not alias its input.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]rune{{'@', '-', 'x'}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][1] = '.'
	assert.Equal(t, '-', g.At(grid.Position{Row: 0, Col: 1}))
}

//----------------------------------------------------------------------------//
// RowExists / ColExists / InBounds
//----------------------------------------------------------------------------//

// TestRowExists covers in-range, negative, boundary and empty cases.
func TestRowExists(t *testing.T) {
	g := sixCells()
	for _, row := range []int{0, 1, 2} {
		assert.True(t, g.RowExists(row), "row %d", row)
	}
	for _, row := range []int{-1, 3, 4} {
		assert.False(t, g.RowExists(row), "row %d", row)
	}
	assert.False(t, grid.Grid{}.RowExists(0), "empty grid")
}

// TestColExists checks columns against the first row's width.
func TestColExists(t *testing.T) {
	g := sixCells()
	for _, col := range []int{0, 1} {
		assert.True(t, g.ColExists(col), "col %d", col)
	}
	for _, col := range []int{-1, 2, 3} {
		assert.False(t, g.ColExists(col), "col %d", col)
	}
	assert.False(t, grid.Grid{}.ColExists(0), "empty grid")
	assert.False(t, grid.Grid{{}}.ColExists(0), "empty first row")
}

// TestColExists_UsesFirstRow shows that a wider later row does not
// extend the column range.
func TestColExists_UsesFirstRow(t *testing.T) {
	g := grid.Grid{
		{'@'},
		{'|', '-', '-'},
	}
	assert.True(t, g.ColExists(0))
	assert.False(t, g.ColExists(1))
	assert.False(t, g.InBounds(grid.Position{Row: 1, Col: 2}))
}

//----------------------------------------------------------------------------//
// At / Set / Scan
//----------------------------------------------------------------------------//

// TestAt_OutsideIsBlank confirms At never panics and reports Blank off-grid.
func TestAt_OutsideIsBlank(t *testing.T) {
	g := grid.Grid{
		{'@', '-', 'x'},
		{'|'},
	}
	assert.Equal(t, '@', g.At(grid.Position{Row: 0, Col: 0}))
	for _, p := range []grid.Position{
		{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 3}, {Row: 2, Col: 0}, {Row: 1, Col: 1},
	} {
		assert.Equal(t, grid.Blank, g.At(p), "At%v", p)
	}
}

// TestSet writes in range and silently ignores out-of-range positions.
func TestSet(t *testing.T) {
	g := sixCells()
	g.Set(grid.Position{Row: 1, Col: 1}, grid.Blank)
	g.Set(grid.Position{Row: 9, Col: 9}, 'Z')
	assert.Equal(t, grid.Blank, g[1][1])
	assert.Equal(t, "ab\nc \nef", g.String())
}

// TestScan reports the count and the last occurrence in row-major order.
func TestScan(t *testing.T) {
	cases := []struct {
		name  string
		g     grid.Grid
		count int
		last  grid.Position
	}{
		{
			name:  "Single",
			g:     grid.Grid{{'a', 'b', 'c'}, {'d', '@', 'f'}, {'g', 'h', 'i'}},
			count: 1,
			last:  grid.Position{Row: 1, Col: 1},
		},
		{
			name:  "Missing",
			g:     grid.Grid{{'a', 'b', 'c'}, {'d', 'e', 'f'}, {'g', 'h', 'i'}},
			count: 0,
			last:  grid.Position{},
		},
		{
			name:  "Repeated",
			g:     grid.Grid{{'a', 'b', 'c'}, {'d', '@', '@'}, {'g', 'h', 'i'}},
			count: 2,
			last:  grid.Position{Row: 1, Col: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			count, last := tc.g.Scan(grid.Start)
			assert.Equal(t, tc.count, count)
			assert.Equal(t, tc.last, last)
		})
	}
}

//----------------------------------------------------------------------------//
// Clone / Equal
//----------------------------------------------------------------------------//

// TestClone_Independent verifies that writes to a clone stay in the clone.
func TestClone_Independent(t *testing.T) {
	g := sixCells()
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(grid.Position{Row: 0, Col: 0}, grid.Blank)
	assert.False(t, g.Equal(c))
	assert.Equal(t, 'a', g[0][0])
	assert.Nil(t, grid.Grid(nil).Clone())
}

// TestEqual_Shape distinguishes grids that differ only in shape.
func TestEqual_Shape(t *testing.T) {
	a := grid.Grid{{'-', '-'}}
	b := grid.Grid{{'-'}, {'-'}}
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(grid.Grid{{'-', '-', '-'}}))
	assert.True(t, grid.Grid{}.Equal(grid.Grid{}))
}

//----------------------------------------------------------------------------//
// Alphabet
//----------------------------------------------------------------------------//

// TestIsAllowed mirrors the diagram alphabet: segments, markers and A..Z.
func TestIsAllowed(t *testing.T) {
	for _, r := range "-|+x@ABZ" {
		assert.True(t, grid.IsAllowed(r), "%q", r)
	}
	for _, r := range " abz019!$%.\t" {
		assert.False(t, grid.IsAllowed(r), "%q", r)
	}
	assert.True(t, grid.IsLetter('X'))
	assert.False(t, grid.IsLetter('x'))
}

// TestPosition_Add shifts by deltas and renders as (row,col).
func TestPosition_Add(t *testing.T) {
	p := grid.Position{Row: 2, Col: 3}.Add(-1, 1)
	assert.Equal(t, grid.Position{Row: 1, Col: 4}, p)
	assert.Equal(t, "(1,4)", p.String())
}
