package tracking

import "time"

// PauseToggle flips between paused and active on each press of the pause key.
// Holding the key does nothing further; it has to be released before the next
// press counts, and presses inside the cooldown after a toggle are ignored.
type PauseToggle struct {
	cooldown   time.Duration
	paused     bool
	keyDown    bool
	lastToggle time.Time
	toggled    bool
}

func NewPauseToggle(cooldown time.Duration) *PauseToggle {
	return &PauseToggle{cooldown: cooldown}
}

// Update feeds the key state observed at now and reports whether this call
// changed the paused state.
func (p *PauseToggle) Update(held bool, now time.Time) bool {
	if !held {
		p.keyDown = false
		return false
	}
	if p.keyDown {
		return false
	}
	p.keyDown = true
	if p.toggled && now.Sub(p.lastToggle) < p.cooldown {
		return false
	}
	p.paused = !p.paused
	p.lastToggle = now
	p.toggled = true
	return true
}

func (p *PauseToggle) Paused() bool {
	return p.paused
}
