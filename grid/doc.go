// Package grid models an ASCII path diagram as a rectangular matrix of runes
// and provides the bounds predicates the path tracer relies on.
//
// What:
//
//   - Grid wraps [][]rune; each cell is one character of the diagram.
//   - RowExists / ColExists / InBounds answer bounds questions in O(1).
//     Column checks use the width of the first row.
//   - At reads a cell and yields Blank for anything outside the matrix.
//   - Scan counts a marker and remembers its last occurrence (row-major).
//   - Parse / FromRows / Read build a Grid from text, padding every row
//     with Blank up to the widest row; New copies a rectangular [][]rune.
//
// Why:
//
//   - The tracer never indexes raw slices; all reads go through At,
//     so short or empty rows can never panic.
//   - Clone gives each trace an exclusively owned working copy.
//
// Complexity:
//
//   - RowExists, ColExists, InBounds, At, Set: O(1).
//   - Scan, Clone, Equal, String: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input text or rows contain no cells.
//   - ErrRaggedRows: New was given rows of differing lengths.
package grid
