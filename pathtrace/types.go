// Package pathtrace defines directions, crossing policies, options and
// sentinel errors for tracing a path through an ASCII diagram.
package pathtrace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtrace/grid"
)

// Sentinel errors returned by Walk. Trace never returns them; it reports
// every failure as an empty Result.
var (
	// ErrMissingStart indicates the diagram has no '@' cell.
	ErrMissingStart = errors.New("pathtrace: missing start marker")

	// ErrDuplicateStart indicates the diagram has more than one '@' cell.
	ErrDuplicateStart = errors.New("pathtrace: multiple start markers")

	// ErrMissingEnd indicates the diagram has no 'x' cell.
	ErrMissingEnd = errors.New("pathtrace: missing end marker")

	// ErrDuplicateEnd indicates the diagram has more than one 'x' cell.
	ErrDuplicateEnd = errors.New("pathtrace: multiple end markers")

	// ErrFakeTurn indicates a junction was left in the direction it was entered.
	ErrFakeTurn = errors.New("pathtrace: fake turn")

	// ErrBrokenPath indicates the route stopped at a blank or had nowhere to go.
	ErrBrokenPath = errors.New("pathtrace: broken path")

	// ErrIllegalCharacter indicates the route reached a character outside
	// the diagram alphabet.
	ErrIllegalCharacter = errors.New("pathtrace: illegal character on path")

	// ErrStepLimit indicates the trace exceeded its step bound without
	// reaching the end marker.
	ErrStepLimit = errors.New("pathtrace: step limit exceeded")

	// ErrUnknownCrossingPolicy indicates ParseCrossingPolicy got an unknown name.
	ErrUnknownCrossingPolicy = errors.New("pathtrace: unknown crossing policy")
)

// Direction is a heading on the grid. The zero value None means
// "no direction yet" or "no candidate accepted".
type Direction int

const (
	None  Direction = iota // no heading
	Right                  // (0,+1)
	Down                   // (+1,0)
	Left                   // (0,-1)
	Up                     // (-1,0)
)

// candidateOrder is the fixed priority in which neighbors are tried.
var candidateOrder = [...]Direction{Right, Down, Left, Up}

// Offset returns the row and column deltas of d. None has no offset.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	default:
		return 0, 0
	}
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// CrossingPolicy selects how a trace treats cells it has already visited.
type CrossingPolicy int

const (
	// CrossingNone collects every letter it steps on and blanks every
	// consumed cell, so any revisit fails. This is the default.
	CrossingNone CrossingPolicy = iota

	// CrossingDedup keeps letters in place so the route may pass them
	// again, collecting each letter position at most once. Non-letter
	// cells are still blanked.
	CrossingDedup

	// CrossingInferred behaves like CrossingDedup while the path so far
	// starts with "@B" and like CrossingNone otherwise.
	CrossingInferred
)

// inferredPrefix switches CrossingInferred into the dedup branch.
const inferredPrefix = "@B"

// String returns the configuration name of p.
func (p CrossingPolicy) String() string {
	switch p {
	case CrossingDedup:
		return "dedup"
	case CrossingInferred:
		return "inferred"
	default:
		return "none"
	}
}

// ParseCrossingPolicy maps a configuration name to a CrossingPolicy.
// Matching is case-insensitive; the empty string selects CrossingNone.
func ParseCrossingPolicy(name string) (CrossingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CrossingNone, nil
	case "dedup":
		return CrossingDedup, nil
	case "inferred":
		return CrossingInferred, nil
	default:
		return CrossingNone, fmt.Errorf("%w: %q", ErrUnknownCrossingPolicy, name)
	}
}

// Result is the outcome of a trace. On failure both fields are empty.
type Result struct {
	// Path is every character visited, start and end markers included.
	Path string `json:"path" yaml:"path"`

	// Letters is the ordered sequence of waypoint letters collected.
	Letters string `json:"letters" yaml:"letters"`
}

// Empty reports whether r is the failure result.
func (r Result) Empty() bool {
	return r.Path == "" && r.Letters == ""
}

// Resolution is the answer of ResolveNextDirection for one cell.
type Resolution struct {
	// Next is the position to move to; valid only when HasNext is true.
	Next grid.Position

	// HasNext is false when neither a candidate nor the last direction
	// yields a position.
	HasNext bool

	// Chosen is the first accepted candidate direction, or None.
	Chosen Direction

	// FakeTurn is true when the current cell is a junction and Chosen
	// equals the incoming direction.
	FakeTurn bool
}

// Step describes one iteration of the trace, as passed to OnStep.
type Step struct {
	Index     int           // zero-based iteration number
	Position  grid.Position // cell being consumed
	Char      rune          // character appended to the path
	Direction Direction     // heading after resolution
}

// Option configures optional behavior of Trace and Walk.
type Option func(*Options)

// Options holds configurable parameters for a trace.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per step.
	Ctx context.Context

	// Crossing selects revisit handling. Default is CrossingNone.
	Crossing CrossingPolicy

	// MaxSteps bounds the number of iterations. Zero or negative selects
	// 4 × rows × width of the grid.
	MaxSteps int

	// OnStep, if non-nil, is invoked after each character is appended to
	// the path. Returning an error aborts the trace with that error.
	OnStep func(Step) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - CrossingNone
//   - MaxSteps derived from the grid size
//   - no step hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Crossing: CrossingNone,
		MaxSteps: 0,
		OnStep:   nil,
	}
}

// WithContext returns an Option that sets the Context for the trace.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCrossingPolicy returns an Option that selects revisit handling.
func WithCrossingPolicy(p CrossingPolicy) Option {
	return func(o *Options) {
		o.Crossing = p
	}
}

// WithMaxSteps returns an Option that overrides the step bound.
// Values ≤ 0 restore the size-derived default.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithOnStep returns an Option that installs fn as a per-step hook.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
