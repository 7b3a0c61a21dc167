package tracking

import (
	"time"

	"github.com/vedantwpatil/gaze-cursor/internal/config"
)

// Tick is the outcome of one engine step.
type Tick struct {
	// Cursor is the smoothed pointer position, inside [1, W-1] x [1, H-1].
	Cursor   Point
	Click    Click
	LeftEAR  float64
	RightEAR float64
}

// Engine owns all per-session tracking state: the gaze mapper and smoothing
// filter for pointer motion, one blink timer per eye, and the click arbiter.
// It is not safe for concurrent use; the session loop is its only caller.
type Engine struct {
	mapper   Mapper
	smoother *Smoother
	left     *BlinkTimer
	right    *BlinkTimer
	arbiter  *ClickArbiter
}

// NewEngine builds an engine for a screen of the given size.
func NewEngine(cfg *config.Config, screenW, screenH int) *Engine {
	return &Engine{
		mapper: Mapper{
			Horizontal: Window(cfg.HorizontalSensitivity),
			Vertical:   Window(cfg.VerticalSensitivity),
			Width:      float64(screenW),
			Height:     float64(screenH),
		},
		smoother: NewSmoother(cfg.SmoothingFactor),
		left:     NewBlinkTimer(cfg.BlinkEARThreshold),
		right:    NewBlinkTimer(cfg.BlinkEARThreshold),
		arbiter: NewClickArbiter(ArbiterParams{
			BlinkThreshold:      cfg.BlinkEARThreshold,
			RightClickMargin:    cfg.RightClickEARMargin,
			Hold:                cfg.ClickDuration(),
			DoubleClickInterval: cfg.DoubleClickInterval(),
		}),
	}
}

// Step advances every component by one tick using the face seen at now.
func (e *Engine) Step(f Face, now time.Time) Tick {
	raw := e.mapper.Map(f.LeftPupil, f.RightPupil)
	smoothed := e.smoother.Update(raw)

	leftEAR := EyeAspectRatio(f.LeftEye)
	rightEAR := EyeAspectRatio(f.RightEye)

	leftOpen := e.left.Update(leftEAR, now)
	rightOpen := e.right.Update(rightEAR, now)
	e.arbiter.Release(leftOpen, rightOpen)

	return Tick{
		// The filter starts at the origin, so early output can sit below the
		// pointer bounds even though its input never does.
		Cursor: Point{
			X: clamp(smoothed.X, 1, e.mapper.Width-1),
			Y: clamp(smoothed.Y, 1, e.mapper.Height-1),
		},
		Click:    e.arbiter.Decide(e.left, e.right, leftEAR, now),
		LeftEAR:  leftEAR,
		RightEAR: rightEAR,
	}
}

// Eyes exposes the blink timers for status reporting.
func (e *Engine) Eyes() (left, right *BlinkTimer) {
	return e.left, e.right
}

// Arbiter exposes the click arbiter for status reporting.
func (e *Engine) Arbiter() *ClickArbiter {
	return e.arbiter
}
