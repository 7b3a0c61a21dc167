package capture

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// CameraSource reads webcam frames and runs them through the detector.
type CameraSource struct {
	camera   *Camera
	detector *Detector
}

// OpenCameraSource opens the first usable camera and starts the detector for
// its frame size.
func OpenCameraSource(devices []int, detectorCmd []string, logger *slog.Logger) (*CameraSource, error) {
	camera, err := OpenCamera(devices, logger)
	if err != nil {
		return nil, err
	}
	detector, err := StartDetector(detectorCmd, camera.Width(), camera.Height(), logger)
	if err != nil {
		camera.Close()
		return nil, err
	}
	return &CameraSource{camera: camera, detector: detector}, nil
}

// Next returns the face in the next camera frame.
func (s *CameraSource) Next(ctx context.Context) (tracking.Face, error) {
	if err := ctx.Err(); err != nil {
		return tracking.Face{}, err
	}
	frame, err := s.camera.Read()
	if err != nil {
		return tracking.Face{}, err
	}
	return s.detector.Detect(frame)
}

// Close releases the detector and the camera.
func (s *CameraSource) Close() error {
	err := s.detector.Close()
	s.camera.Close()
	var exit interface{ ExitCode() int }
	if errors.As(err, &exit) {
		// The detector sees EOF on stdin and may exit non-zero; that is a
		// normal shutdown.
		return nil
	}
	return err
}
