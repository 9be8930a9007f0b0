package pathtrace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathtrace/pathtrace"
)

// TestIntersectionTracker_IsDuplicate records on every call and reports
// only repeated positions.
func TestIntersectionTracker_IsDuplicate(t *testing.T) {
	it := pathtrace.NewIntersectionTracker()

	assert.False(t, it.IsDuplicate(at(1, 1)), "first visit")
	assert.False(t, it.IsDuplicate(at(2, 2)), "different position")
	assert.True(t, it.IsDuplicate(at(1, 1)), "second visit")
	assert.True(t, it.IsDuplicate(at(2, 2)), "second visit")
	assert.False(t, it.IsDuplicate(at(3, 3)), "new after duplicates")
	assert.True(t, it.IsDuplicate(at(3, 3)), "third position kept")
}
