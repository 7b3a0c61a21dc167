package capture

import "errors"

var (
	// ErrNoFace means the frame was read but no face was found in it.
	ErrNoFace = errors.New("no face detected")
	// ErrFrameUnavailable means no usable frame or detector reply was produced
	// this tick.
	ErrFrameUnavailable = errors.New("frame unavailable")
	// ErrCameraUnavailable means none of the configured devices could be opened.
	ErrCameraUnavailable = errors.New("camera unavailable")
)
