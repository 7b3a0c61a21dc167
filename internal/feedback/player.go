package feedback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// Player sends cues to the default audio output.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *slog.Logger
}

func NewPlayer(volume float64, logger *slog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker. Cues are dropped until it succeeds.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Click plays the cue for c.
func (p *Player) Click(c tracking.Click) {
	if cue, ok := CueForClick(c); ok {
		p.play(cue)
	}
}

// Paused plays the pause or resume cue.
func (p *Player) Paused(paused bool) {
	if paused {
		p.play(CuePaused)
	} else {
		p.play(CueResumed)
	}
}

func (p *Player) play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Stream(cue, p.volume)
	if err != nil {
		p.logger.Warn("audio cue failed", "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
