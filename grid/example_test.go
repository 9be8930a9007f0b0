// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/grid"
)

// ExampleParse shows how a ragged diagram is padded into a rectangle and
// how markers are located.
func ExampleParse() {
	g, err := grid.Parse("@-A-+\n    |\nx---+")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	starts, at := g.Scan(grid.Start)
	ends, end := g.Scan(grid.End)
	fmt.Printf("size: %dx%d\n", g.Height(), g.Width())
	fmt.Println("start:", starts, at)
	fmt.Println("end:", ends, end)
	fmt.Println("col 4 exists:", g.ColExists(4))

	// Output:
	// size: 3x5
	// start: 1 (0,0)
	// end: 1 (2,0)
	// col 4 exists: true
}
