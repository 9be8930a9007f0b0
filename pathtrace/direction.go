package pathtrace

import "github.com/katalvlaran/pathtrace/grid"

// RotateClockwise maps Right→Down→Left→Up→Right.
// Any other value, None included, is returned unchanged.
func RotateClockwise(d Direction) Direction {
	switch d {
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	case Up:
		return Right
	default:
		return d
	}
}

// EvaluateCandidate decides whether stepping from current toward candidate
// (which lies in direction dir) is acceptable, and which heading it implies.
// It returns None when candidate is off the grid or holds a character that
// may not appear on a route.
//
// Rules, first match wins:
//  1. current is '+' and candidate is '|' while last is horizontal (or None):
//     turn clockwise relative to last.
//  2. current is '|': keep last, whichever neighbor was tested.
//  3. otherwise: dir.
func EvaluateCandidate(g grid.Grid, candidate grid.Position, dir Direction, current grid.Position, last Direction) Direction {
	if !g.InBounds(candidate) {
		return None
	}
	next, here := g.At(candidate), g.At(current)
	if !grid.IsAllowed(next) {
		return None
	}

	switch {
	case here == grid.Junction && next == grid.Vertical && !last.Vertical():
		return RotateClockwise(last)
	case here == grid.Vertical:
		return last
	default:
		return dir
	}
}

// ResolveNextDirection tries Right, Down, Left and Up from current, in that
// order, and stops at the first accepted candidate. The next position
// follows the chosen direction, or last when nothing was accepted.
// It has no side effects.
// Complexity: O(1).
func ResolveNextDirection(g grid.Grid, current grid.Position, last Direction) Resolution {
	chosen := None
	for _, dir := range candidateOrder {
		dRow, dCol := dir.Offset()
		if d := EvaluateCandidate(g, current.Add(dRow, dCol), dir, current, last); d != None {
			chosen = d
			break
		}
	}

	res := Resolution{
		Chosen:   chosen,
		FakeTurn: g.At(current) == grid.Junction && chosen == last,
	}
	heading := chosen
	if heading == None {
		heading = last
	}
	if heading != None {
		dRow, dCol := heading.Offset()
		res.Next = current.Add(dRow, dCol)
		res.HasNext = true
	}
	return res
}
