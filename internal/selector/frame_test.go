package selector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameCoalescer(t *testing.T) {
	f := NewFrameCoalescer(16 * time.Millisecond)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	process, schedule := f.Offer(now, 1)
	assert.True(t, process)
	assert.False(t, schedule)

	// within the same frame: held, one flush scheduled
	process, schedule = f.Offer(now.Add(2*time.Millisecond), 2)
	assert.False(t, process)
	assert.True(t, schedule)

	process, schedule = f.Offer(now.Add(4*time.Millisecond), 3)
	assert.False(t, process)
	assert.False(t, schedule, "only one flush per frame")
	assert.True(t, f.Pending())

	x, ok := f.Flush(now.Add(16 * time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, 3.0, x, "latest coordinate wins")
	assert.False(t, f.Pending())

	_, ok = f.Flush(now.Add(32 * time.Millisecond))
	assert.False(t, ok)
}

func TestFrameCoalescerDrop(t *testing.T) {
	f := NewFrameCoalescer(time.Second)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f.Offer(now, 1)
	f.Offer(now, 2)
	f.Drop()

	_, ok := f.Flush(now.Add(time.Second))
	assert.False(t, ok)
}

func TestFrameCoalescerDisabled(t *testing.T) {
	f := NewFrameCoalescer(0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		process, schedule := f.Offer(now, float64(i))
		assert.True(t, process)
		assert.False(t, schedule)
	}
}
