// Package session runs the per-frame polling loop: keys, pause gate, frame
// source, tracking engine, then pointer and click output.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vedantwpatil/gaze-cursor/internal/capture"
	"github.com/vedantwpatil/gaze-cursor/internal/config"
	"github.com/vedantwpatil/gaze-cursor/internal/input"
	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// FrameSource yields one detected face per call. capture.ErrNoFace and
// capture.ErrFrameUnavailable skip the tick, io.EOF ends the session.
type FrameSource interface {
	Next(ctx context.Context) (tracking.Face, error)
}

// KeySource reports the control keys once per loop iteration.
type KeySource interface {
	Poll() input.Keys
}

// Pointer receives cursor positions and clicks.
type Pointer interface {
	Move(p tracking.Point)
	Click(c tracking.Click)
}

// Cues gives audible confirmation of clicks and pause changes.
type Cues interface {
	Click(c tracking.Click)
	Paused(paused bool)
}

// Stats counts what happened during a session.
type Stats struct {
	Frames  int
	Skipped int
	Clicks  map[tracking.Click]int
}

// Loop owns the engine and pause state for one session. It is driven from a
// single goroutine by Run.
type Loop struct {
	engine  *tracking.Engine
	pause   *tracking.PauseToggle
	idle    time.Duration
	frames  FrameSource
	keys    KeySource
	pointer Pointer
	cues    Cues
	logger  *slog.Logger
	stats   Stats

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

func NewLoop(cfg *config.Config, screenW, screenH int, frames FrameSource, keys KeySource, pointer Pointer, logger *slog.Logger) *Loop {
	return &Loop{
		engine:  tracking.NewEngine(cfg, screenW, screenH),
		pause:   tracking.NewPauseToggle(cfg.PauseCooldown()),
		idle:    cfg.PausedIdle(),
		frames:  frames,
		keys:    keys,
		pointer: pointer,
		logger:  logger,
		stats:   Stats{Clicks: make(map[tracking.Click]int)},
		now:     time.Now,
		sleep:   sleepContext,
	}
}

// SetCues enables audio confirmation.
func (l *Loop) SetCues(c Cues) {
	l.cues = c
}

// Run loops until the quit key is seen, ctx is cancelled or the frame source
// is exhausted. Only unrecoverable frame source failures are returned.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		keys := l.keys.Poll()
		if l.pause.Update(keys.Pause, l.now()) {
			l.announcePause()
		}

		if l.pause.Paused() {
			l.sleep(ctx, l.idle)
		} else if err := l.tick(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Info("frame source exhausted")
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("frame source: %w", err)
		}

		if keys.Quit {
			l.logger.Info("quit key pressed")
			return nil
		}
	}
}

func (l *Loop) tick(ctx context.Context) error {
	face, err := l.frames.Next(ctx)
	switch {
	case errors.Is(err, capture.ErrNoFace), errors.Is(err, capture.ErrFrameUnavailable):
		l.stats.Skipped++
		l.logger.Debug("tick skipped", "reason", err)
		return nil
	case err != nil:
		return err
	}

	t := l.engine.Step(face, l.now())
	l.stats.Frames++
	l.pointer.Move(t.Cursor)

	if t.Click == tracking.ClickNone {
		return nil
	}
	l.stats.Clicks[t.Click]++
	l.logger.Info("click", "kind", t.Click.String(), "left_ear", t.LeftEAR, "right_ear", t.RightEAR)
	l.pointer.Click(t.Click)
	if l.cues != nil {
		l.cues.Click(t.Click)
	}
	return nil
}

func (l *Loop) announcePause() {
	status := "ACTIVE"
	if l.pause.Paused() {
		status = "PAUSED"
	}
	l.logger.Info("cursor control is now " + status)
	if l.cues != nil {
		l.cues.Paused(l.pause.Paused())
	}
}

// Paused reports whether the loop is currently paused.
func (l *Loop) Paused() bool {
	return l.pause.Paused()
}

// Stats returns the session counters.
func (l *Loop) Stats() Stats {
	return l.stats
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
