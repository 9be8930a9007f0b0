package pathtrace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtrace/grid"
)

// tracer encapsulates the state of a single trace.
type tracer struct {
	working grid.Grid            // exclusively owned copy, blanked as cells are consumed
	opts    Options              // trace options
	pos     grid.Position        // cell being consumed
	last    Direction            // heading carried between steps
	visited *IntersectionTracker // letter positions already collected (dedup branch)
	path    strings.Builder      // every character visited
	letters strings.Builder      // collected waypoint letters
}

// Trace follows the path from '@' to 'x' through g and returns the visited
// characters and collected letters. Any malformed diagram yields the empty
// Result; use Walk to learn why. g is never modified.
func Trace(g grid.Grid, opts ...Option) Result {
	res, _ := Walk(g, opts...)
	return res
}

// Walk performs the same traversal as Trace and additionally reports the
// failure cause. The Result is empty whenever err is non-nil.
//
// Errors:
//   - ErrMissingStart, ErrDuplicateStart, ErrMissingEnd, ErrDuplicateEnd
//   - ErrFakeTurn, ErrBrokenPath, ErrIllegalCharacter, ErrStepLimit
//   - ctx.Err() when the context is done
//   - any error returned by OnStep, wrapped
func Walk(g grid.Grid, opts ...Option) (Result, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Locate markers; the last occurrence of '@' is where tracing starts
	starts, start := g.Scan(grid.Start)
	ends, _ := g.Scan(grid.End)
	if err := checkMarkers(starts, ends); err != nil {
		return Result{}, err
	}

	// 3. Trace on a private copy
	t := &tracer{
		working: g.Clone(),
		opts:    o,
		pos:     start,
		visited: NewIntersectionTracker(),
	}
	limit := o.MaxSteps
	if limit <= 0 {
		limit = 4 * g.Height() * g.Width()
	}
	if err := t.run(limit); err != nil {
		return Result{}, err
	}

	return Result{Path: t.path.String(), Letters: t.letters.String()}, nil
}

// checkMarkers enforces exactly one start and one end marker.
func checkMarkers(starts, ends int) error {
	switch {
	case starts == 0:
		return ErrMissingStart
	case starts > 1:
		return fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	case ends == 0:
		return ErrMissingEnd
	case ends > 1:
		return fmt.Errorf("%w: found %d", ErrDuplicateEnd, ends)
	}
	return nil
}

// run consumes one cell per iteration until 'x' is reached or a failure
// condition trips.
func (t *tracer) run(limit int) error {
	for step := 0; ; step++ {
		// 1. Cancellation and step bound
		select {
		case <-t.opts.Ctx.Done():
			return t.opts.Ctx.Err()
		default:
		}
		if step >= limit {
			return fmt.Errorf("%w: %d steps", ErrStepLimit, limit)
		}

		// 2. Read the cell and resolve where to go next
		current := t.working.At(t.pos)
		res := ResolveNextDirection(t.working, t.pos, t.last)
		if res.Chosen != None {
			t.last = res.Chosen
		}
		t.path.WriteRune(current)

		if t.opts.OnStep != nil {
			err := t.opts.OnStep(Step{Index: step, Position: t.pos, Char: current, Direction: t.last})
			if err != nil {
				return fmt.Errorf("pathtrace: step hook at %v: %w", t.pos, err)
			}
		}

		// 3. Terminal conditions
		if current == grid.End {
			return nil
		}
		switch {
		case res.FakeTurn:
			return fmt.Errorf("%w at %v", ErrFakeTurn, t.pos)
		case !res.HasNext, current == grid.Blank:
			return fmt.Errorf("%w at %v", ErrBrokenPath, t.pos)
		case !grid.IsAllowed(current):
			return fmt.Errorf("%w %q at %v", ErrIllegalCharacter, current, t.pos)
		}

		// 4. Bookkeeping, then advance
		t.consume(current)
		t.pos = res.Next
	}
}

// consume records current as visited according to the crossing policy.
func (t *tracer) consume(current rune) {
	isLetter := grid.IsLetter(current)
	if t.dedup() {
		// Letters stay on the grid so a crossing can pass them again.
		if isLetter {
			if !t.visited.IsDuplicate(t.pos) {
				t.letters.WriteRune(current)
			}
			return
		}
		t.working.Set(t.pos, grid.Blank)
		return
	}

	if isLetter {
		t.letters.WriteRune(current)
	}
	t.working.Set(t.pos, grid.Blank)
}

// dedup reports whether the current step uses the position-deduplicating branch.
func (t *tracer) dedup() bool {
	switch t.opts.Crossing {
	case CrossingDedup:
		return true
	case CrossingInferred:
		return strings.HasPrefix(t.path.String(), inferredPrefix)
	default:
		return false
	}
}
