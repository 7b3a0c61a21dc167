package capture

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// Replay serves faces from a file of MeshFrame JSON lines instead of a camera,
// paced at a fixed frame interval. It returns io.EOF after the last line.
type Replay struct {
	file    *os.File
	lines   *bufio.Scanner
	ticker  *time.Ticker
	lineNum int
}

// OpenReplay opens path for playback at fps frames per second. An fps of 0
// or less plays back as fast as the loop asks.
func OpenReplay(path string, fps float64) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	r := NewReplay(f, fps)
	r.file = f
	return r, nil
}

// NewReplay plays back frames read from src.
func NewReplay(src io.Reader, fps float64) *Replay {
	lines := bufio.NewScanner(src)
	lines.Buffer(make([]byte, 0, 64*1024), 1<<20)
	r := &Replay{lines: lines}
	if fps > 0 {
		r.ticker = time.NewTicker(time.Duration(float64(time.Second) / fps))
	}
	return r
}

func (r *Replay) Next(ctx context.Context) (tracking.Face, error) {
	if r.ticker != nil {
		select {
		case <-ctx.Done():
			return tracking.Face{}, ctx.Err()
		case <-r.ticker.C:
		}
	} else if err := ctx.Err(); err != nil {
		return tracking.Face{}, err
	}

	for r.lines.Scan() {
		r.lineNum++
		line := r.lines.Bytes()
		if len(line) == 0 {
			continue
		}
		var mesh MeshFrame
		if err := json.Unmarshal(line, &mesh); err != nil {
			return tracking.Face{}, fmt.Errorf("%w: replay line %d: %v", ErrFrameUnavailable, r.lineNum, err)
		}
		return mesh.Face()
	}
	if err := r.lines.Err(); err != nil {
		return tracking.Face{}, fmt.Errorf("read replay: %w", err)
	}
	return tracking.Face{}, io.EOF
}

func (r *Replay) Close() error {
	if r.ticker != nil {
		r.ticker.Stop()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
