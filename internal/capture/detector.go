package capture

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// Detector runs an external face landmark detector. Raw RGB24 frames are
// written to its stdin, one MeshFrame JSON document is read back per frame
// from its stdout. The frame geometry is passed in the FRAME_WIDTH,
// FRAME_HEIGHT and FRAME_FORMAT environment variables.
type Detector struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	replies   *bufio.Scanner
	frameSize int
	logger    *slog.Logger
}

// StartDetector launches argv for frames of the given size.
func StartDetector(argv []string, width, height int, logger *slog.Logger) (*Detector, error) {
	if len(argv) == 0 {
		return nil, errors.New("detector command is empty")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(),
		"FRAME_WIDTH="+strconv.Itoa(width),
		"FRAME_HEIGHT="+strconv.Itoa(height),
		"FRAME_FORMAT=rgb24",
	)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("detector stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("detector stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start detector %q: %w", argv[0], err)
	}
	logger.Info("detector started", "command", argv[0], "pid", cmd.Process.Pid)

	replies := bufio.NewScanner(stdout)
	replies.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &Detector{
		cmd:       cmd,
		stdin:     stdin,
		replies:   replies,
		frameSize: width * height * 3,
		logger:    logger,
	}, nil
}

// Detect sends one frame and waits for its landmarks. ErrNoFace is returned
// when the detector found nobody.
func (d *Detector) Detect(frame []byte) (tracking.Face, error) {
	if len(frame) != d.frameSize {
		return tracking.Face{}, fmt.Errorf("%w: frame is %d bytes, want %d", ErrFrameUnavailable, len(frame), d.frameSize)
	}
	if _, err := d.stdin.Write(frame); err != nil {
		return tracking.Face{}, fmt.Errorf("write frame to detector: %w", err)
	}

	if !d.replies.Scan() {
		if err := d.replies.Err(); err != nil {
			return tracking.Face{}, fmt.Errorf("read detector reply: %w", err)
		}
		return tracking.Face{}, fmt.Errorf("detector exited: %w", io.ErrUnexpectedEOF)
	}

	var mesh MeshFrame
	if err := json.Unmarshal(d.replies.Bytes(), &mesh); err != nil {
		return tracking.Face{}, fmt.Errorf("%w: decode detector reply: %v", ErrFrameUnavailable, err)
	}
	return mesh.Face()
}

// Close ends the detector's input and waits for it to exit.
func (d *Detector) Close() error {
	d.stdin.Close()
	if err := d.cmd.Wait(); err != nil {
		d.logger.Warn("detector finished", "status", err)
		return err
	}
	return nil
}
