package capture

import (
	"fmt"
	"log/slog"

	vidio "github.com/AlexEidt/Vidio"
)

// Camera is an open webcam stream delivering RGB24 frames.
type Camera struct {
	stream *vidio.Camera
	device int
}

// OpenCamera tries each device index in order and returns the first one that
// opens. ErrCameraUnavailable is returned when none do.
func OpenCamera(devices []int, logger *slog.Logger) (*Camera, error) {
	var lastErr error
	for _, dev := range devices {
		stream, err := vidio.NewCamera(dev)
		if err != nil {
			logger.Warn("camera device unavailable", "device", dev, "error", err)
			lastErr = err
			continue
		}
		logger.Info("camera opened", "device", dev, "width", stream.Width(), "height", stream.Height(), "fps", stream.FPS())
		return &Camera{stream: stream, device: dev}, nil
	}
	if lastErr == nil {
		return nil, fmt.Errorf("%w: no devices configured", ErrCameraUnavailable)
	}
	return nil, fmt.Errorf("%w: tried devices %v: %v", ErrCameraUnavailable, devices, lastErr)
}

// Read grabs the next frame. The returned buffer is reused by the next call.
func (c *Camera) Read() ([]byte, error) {
	if !c.stream.Read() {
		return nil, ErrFrameUnavailable
	}
	return c.stream.FrameBuffer(), nil
}

func (c *Camera) Width() int  { return c.stream.Width() }
func (c *Camera) Height() int { return c.stream.Height() }
func (c *Camera) Device() int { return c.device }

func (c *Camera) Close() {
	c.stream.Close()
}
