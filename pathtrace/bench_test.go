package pathtrace_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathtrace"
)

// staircase builds an n-step diagram descending to the right, each step w
// cells wide:
//
//	@---+
//	    |
//	    +---+
//	        |
//	        +---x
func staircase(n, w int) grid.Grid {
	lines := make([]string, 0, 2*n)
	for k := 0; k < n; k++ {
		first, last := "+", "+"
		if k == 0 {
			first = "@"
		}
		if k == n-1 {
			last = "x"
		}
		lines = append(lines, strings.Repeat(" ", k*w)+first+strings.Repeat("-", w-1)+last)
		if k < n-1 {
			lines = append(lines, strings.Repeat(" ", (k+1)*w)+"|")
		}
	}
	g, _ := grid.FromRows(lines)
	return g
}

// TestStaircase pins the benchmark fixture to a known route.
func TestStaircase(t *testing.T) {
	res := pathtrace.Trace(staircase(3, 4))
	if res.Path != "@---+|+---+|+---x" {
		t.Fatalf("staircase path = %q", res.Path)
	}
}

// BenchmarkTrace measures a full trace over a 100-step staircase
// (199 rows × 1001 columns).
// Complexity: O(W×H) for the working copy plus O(path) steps.
func BenchmarkTrace(b *testing.B) {
	g := staircase(100, 10)
	if pathtrace.Trace(g).Empty() {
		b.Fatal("setup: staircase must trace")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pathtrace.Trace(g)
	}
}

// BenchmarkResolveNextDirection measures a single resolution step.
func BenchmarkResolveNextDirection(b *testing.B) {
	g := staircase(4, 20)
	at := grid.Position{Row: 0, Col: 5}
	for i := 0; i < b.N; i++ {
		_ = pathtrace.ResolveNextDirection(g, at, pathtrace.Right)
	}
}
