package tracking

import "time"

// BlinkTimer tracks how long one eye has been continuously closed.
// It is either open, or closing since a recorded instant.
type BlinkTimer struct {
	threshold float64
	closing   bool
	since     time.Time
}

// NewBlinkTimer returns an open timer. An eye counts as closed while its EAR
// is strictly below threshold.
func NewBlinkTimer(threshold float64) *BlinkTimer {
	return &BlinkTimer{threshold: threshold}
}

// Update feeds the eye's EAR for the tick at now. It reports whether the eye
// is open after the update. A single reading at or above the threshold fully
// resets the timer.
func (b *BlinkTimer) Update(ear float64, now time.Time) (open bool) {
	if ear < b.threshold {
		if !b.closing {
			b.closing = true
			b.since = now
		}
		return false
	}
	b.closing = false
	b.since = time.Time{}
	return true
}

// Closed reports whether the eye is currently considered closed.
func (b *BlinkTimer) Closed() bool {
	return b.closing
}

// ClosedFor returns how long the eye has been closed at now, or 0 when open.
func (b *BlinkTimer) ClosedFor(now time.Time) time.Duration {
	if !b.closing {
		return 0
	}
	return now.Sub(b.since)
}

// ClosedSince returns the instant the current closure started.
func (b *BlinkTimer) ClosedSince() (time.Time, bool) {
	return b.since, b.closing
}
