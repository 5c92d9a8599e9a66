package selector

import (
	"time"

	"golang.org/x/time/rate"
)

// FrameCoalescer limits pointer-move processing to one computation per
// frame interval. Moves that arrive early are held and only the most
// recent coordinate survives until the next frame.
type FrameCoalescer struct {
	limiter *rate.Limiter
	pending bool
	x       float64
}

// NewFrameCoalescer returns a coalescer for the given frame interval. A
// non-positive interval disables coalescing.
func NewFrameCoalescer(interval time.Duration) *FrameCoalescer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &FrameCoalescer{limiter: rate.NewLimiter(limit, 1)}
}

// Offer records a move to x at now. process is true when the move should
// be handled immediately; schedule is true when the caller must arrange a
// Flush at the next frame.
func (f *FrameCoalescer) Offer(now time.Time, x float64) (process, schedule bool) {
	if !f.pending && f.limiter.AllowN(now, 1) {
		return true, false
	}
	schedule = !f.pending
	f.pending = true
	f.x = x
	return false, schedule
}

// Flush returns the held coordinate, if any, and spends the frame on it.
func (f *FrameCoalescer) Flush(now time.Time) (float64, bool) {
	if !f.pending {
		return 0, false
	}
	f.pending = false
	f.limiter.AllowN(now, 1)
	return f.x, true
}

// Pending reports whether a coordinate is waiting for the next frame.
func (f *FrameCoalescer) Pending() bool { return f.pending }

// Drop discards any held coordinate. Used when a release supersedes it.
func (f *FrameCoalescer) Drop() {
	f.pending = false
}
