package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlinkTimerTransitions(t *testing.T) {
	b := NewBlinkTimer(0.2)

	assert.True(t, b.Update(0.3, at(0)))
	assert.False(t, b.Closed())
	assert.Zero(t, b.ClosedFor(at(0)))

	assert.False(t, b.Update(0.1, at(1)))
	assert.True(t, b.Closed())

	// The closure keeps its original start while the eye stays shut.
	assert.False(t, b.Update(0.05, at(5)))
	since, ok := b.ClosedSince()
	assert.True(t, ok)
	assert.Equal(t, at(1), since)
	assert.Equal(t, 40*time.Millisecond, b.ClosedFor(at(5)))

	// One reading at the threshold counts as open and resets fully.
	assert.True(t, b.Update(0.2, at(6)))
	assert.False(t, b.Closed())
	_, ok = b.ClosedSince()
	assert.False(t, ok)

	assert.False(t, b.Update(0.1, at(7)))
	assert.Equal(t, 30*time.Millisecond, b.ClosedFor(at(10)))
}
