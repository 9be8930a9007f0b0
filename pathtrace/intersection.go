package pathtrace

import "github.com/katalvlaran/pathtrace/grid"

// IntersectionTracker remembers positions whose letter has already been
// collected on a self-crossing route.
type IntersectionTracker struct {
	seen map[grid.Position]struct{}
}

// NewIntersectionTracker returns an empty tracker.
func NewIntersectionTracker() *IntersectionTracker {
	return &IntersectionTracker{seen: make(map[grid.Position]struct{})}
}

// IsDuplicate reports whether p was recorded before, then records it.
func (it *IntersectionTracker) IsDuplicate(p grid.Position) bool {
	_, dup := it.seen[p]
	it.seen[p] = struct{}{}
	return dup
}
