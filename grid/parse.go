package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from a multi-line diagram. Lines are split on "\n"
// (a trailing "\r" is dropped), trailing empty lines are discarded, and
// every row is padded with Blank to the widest line.
// Returns ErrEmptyGrid when no non-empty line remains.
func Parse(text string) (Grid, error) {
	return FromRows(strings.Split(text, "\n"))
}

// FromRows builds a Grid from pre-split lines with the same trimming and
// padding rules as Parse.
func FromRows(lines []string) (Grid, error) {
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(strings.TrimSuffix(line, "\r")))
	}
	// Trailing empty lines carry no cells.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	w := Grid(rows).Width()
	for i, row := range rows {
		for len(row) < w {
			row = append(row, Blank)
		}
		rows[i] = row
	}
	return New(rows)
}

// Read consumes r line by line and parses the result with FromRows.
func Read(r io.Reader) (Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read diagram: %w", err)
	}
	return FromRows(lines)
}

// String renders g one row per line, without a trailing newline.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
