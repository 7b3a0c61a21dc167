// Package feedback plays short audio cues so clicks can be confirmed while
// the eyes are closed.
package feedback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies one sound.
type Cue int

const (
	CueLeft Cue = iota
	CueRight
	CueDouble
	CuePaused
	CueResumed
)

// CueForClick maps a click to its cue.
func CueForClick(c tracking.Click) (Cue, bool) {
	switch c {
	case tracking.ClickLeft:
		return CueLeft, true
	case tracking.ClickRight:
		return CueRight, true
	case tracking.ClickDouble:
		return CueDouble, true
	default:
		return 0, false
	}
}

type note struct {
	freq float64
	dur  time.Duration
}

// rest is a silent gap.
func rest(d time.Duration) note { return note{dur: d} }

var cueNotes = map[Cue][]note{
	CueLeft:    {{880, 60 * time.Millisecond}},
	CueRight:   {{440, 90 * time.Millisecond}},
	CueDouble:  {{880, 50 * time.Millisecond}, rest(40 * time.Millisecond), {880, 50 * time.Millisecond}},
	CuePaused:  {{660, 70 * time.Millisecond}, {330, 110 * time.Millisecond}},
	CueResumed: {{330, 70 * time.Millisecond}, {660, 110 * time.Millisecond}},
}

// Stream builds a finite streamer for cue at the given volume (0..1].
func Stream(cue Cue, volume float64) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, n := range cueNotes[cue] {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// Duration is how long cue plays.
func Duration(cue Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[cue] {
		total += n.dur
	}
	return total
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
