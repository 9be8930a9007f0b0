// Package pathtrace is the module root for following paths through ASCII
// diagrams: start at '@', walk the '-', '|' and '+' segments, collect the
// uppercase letters on the way, and stop at 'x'.
//
// 🚀 What is in the module?
//
//	grid/           rectangular rune grids, parsing, bounds, marker scans
//	pathtrace/      direction resolution, crossing policies and the tracer
//	samples/        an embedded YAML catalog of named diagrams and results
//	cmd/pathtrace/  the CLI: trace a file or stdin, run the samples
//
// ✨ Why this layout?
//
//   - Small API: grid.Parse, then pathtrace.Trace or pathtrace.Walk
//   - Input grids are never mutated; traces are safe to run concurrently
//   - Functional options (WithCrossingPolicy, WithMaxSteps, WithOnStep…)
//   - Every failure is a sentinel error usable with errors.Is
//
// Quick example:
//
//	g, _ := grid.Parse("@-A-+\n    |\nx-B-+")
//	res := pathtrace.Trace(g)
//	fmt.Println(res.Path, res.Letters) // @-A-+|+-B-x AB
package pathtrace
