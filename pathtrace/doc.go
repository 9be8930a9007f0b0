// Package pathtrace follows a single path through an ASCII diagram and
// collects the letters found along the way.
//
// What:
//
//	@---A---+
//	        |
//	x-B-+   C
//	    |   |
//	    +---+
//
//   - The path starts at the unique '@' and ends at the unique 'x'.
//   - '-' and '|' are segments, '+' is a junction where the path turns,
//     and uppercase letters are waypoints collected in order.
//   - For the diagram above Trace returns
//     Path "@---A---+|C|+---+|+-B-x" and Letters "ACB".
//
// How:
//
//   - ResolveNextDirection tries Right, Down, Left, Up from the current
//     cell and keeps the first neighbor EvaluateCandidate accepts.
//     Standing on '|' keeps the incoming heading; standing on '+' in
//     front of '|' turns clockwise.
//   - Each consumed cell is blanked on a private working copy so the
//     path cannot walk backwards. The caller's grid is never touched.
//   - A junction that does not change direction is a fake turn.
//
// Failures:
//
//	Trace reports every failure as the empty Result. Walk returns the
//	same Result together with one of ErrMissingStart, ErrDuplicateStart,
//	ErrMissingEnd, ErrDuplicateEnd, ErrFakeTurn, ErrBrokenPath,
//	ErrIllegalCharacter or ErrStepLimit.
//
// Options:
//
//   - WithCrossingPolicy(p)  CrossingNone (default), CrossingDedup, CrossingInferred.
//   - WithMaxSteps(n)        step bound; default 4 × rows × width.
//   - WithContext(ctx)       cancellation, checked once per step.
//   - WithOnStep(fn)         per-step hook; an error aborts the trace.
//
// Complexity:
//
//   - Time:   O(W×H) per trace, bounded by the step limit.
//   - Memory: O(W×H) for the working copy.
package pathtrace
