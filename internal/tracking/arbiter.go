package tracking

import "time"

// ArbiterParams holds the thresholds the click arbiter works with.
type ArbiterParams struct {
	// BlinkThreshold is the EAR below which an eye counts as closed.
	BlinkThreshold float64
	// RightClickMargin is added to BlinkThreshold; the left eye must be
	// strictly above the sum before a right wink may fire.
	RightClickMargin float64
	// Hold is how long eyes must stay closed before a click fires.
	Hold time.Duration
	// DoubleClickInterval merges a both-eyes click into a double click when
	// it follows the previous click by less than this.
	DoubleClickInterval time.Duration
}

// ClickArbiter decides which click, if any, the current eye state stands for.
// Each click type is latched after firing and only re-arms once the eye that
// owns it reopens.
type ClickArbiter struct {
	params       ArbiterParams
	leftLatched  bool
	rightLatched bool
	lastClick    time.Time
	clicked      bool
}

func NewClickArbiter(params ArbiterParams) *ClickArbiter {
	return &ClickArbiter{params: params}
}

// Release clears the latches of the eyes that are open this tick.
func (a *ClickArbiter) Release(leftOpen, rightOpen bool) {
	if leftOpen {
		a.leftLatched = false
	}
	if rightOpen {
		a.rightLatched = false
	}
}

// Decide evaluates both timers at now. Both-eyes closure is checked first so a
// full blink never also reads as a wink.
func (a *ClickArbiter) Decide(left, right *BlinkTimer, leftEAR float64, now time.Time) Click {
	switch {
	case left.Closed() && right.Closed() && !a.leftLatched:
		held := min(left.ClosedFor(now), right.ClosedFor(now))
		if held < a.params.Hold {
			return ClickNone
		}
		click := ClickLeft
		if a.clicked && now.Sub(a.lastClick) < a.params.DoubleClickInterval {
			click = ClickDouble
		}
		a.lastClick = now
		a.clicked = true
		a.leftLatched = true
		return click

	case right.Closed() && !left.Closed() && !a.rightLatched:
		if leftEAR <= a.params.BlinkThreshold+a.params.RightClickMargin {
			return ClickNone
		}
		if right.ClosedFor(now) < a.params.Hold {
			return ClickNone
		}
		a.rightLatched = true
		return ClickRight
	}
	return ClickNone
}

// Latched reports the left and right click latches.
func (a *ClickArbiter) Latched() (left, right bool) {
	return a.leftLatched, a.rightLatched
}

// LastClick returns the time of the last left or double click.
func (a *ClickArbiter) LastClick() (time.Time, bool) {
	return a.lastClick, a.clicked
}
