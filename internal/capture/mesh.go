// Package capture turns camera frames into face landmarks for the tracking
// engine. Landmark detection itself runs in an external process.
package capture

import (
	"fmt"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// Face mesh landmark indices (478 point mesh with refined irises).
// Eye outlines are ordered outer corner, upper-outer, upper-inner,
// inner corner, lower-inner, lower-outer.
var (
	LeftEyeIndices  = [6]int{362, 385, 387, 263, 373, 380}
	RightEyeIndices = [6]int{33, 160, 158, 133, 153, 144}
)

const (
	LeftPupilIndex  = 473
	RightPupilIndex = 468
	MeshSize        = 478
)

// MeshFrame is one detector result. An empty Landmarks slice means no face.
// Each landmark is [x, y] or [x, y, z] in normalized image coordinates.
type MeshFrame struct {
	Landmarks [][]float64 `json:"landmarks"`
}

// Face extracts the eye and pupil landmarks from the mesh.
func (m MeshFrame) Face() (tracking.Face, error) {
	if len(m.Landmarks) == 0 {
		return tracking.Face{}, ErrNoFace
	}
	if len(m.Landmarks) < MeshSize {
		return tracking.Face{}, fmt.Errorf("%w: mesh has %d landmarks, need %d", ErrFrameUnavailable, len(m.Landmarks), MeshSize)
	}

	point := func(i int) (tracking.Point, error) {
		lm := m.Landmarks[i]
		if len(lm) < 2 {
			return tracking.Point{}, fmt.Errorf("%w: landmark %d has %d coordinates", ErrFrameUnavailable, i, len(lm))
		}
		return tracking.Point{X: lm[0], Y: lm[1]}, nil
	}
	eye := func(idx [6]int) (tracking.Eye, error) {
		var e tracking.Eye
		for k, i := range idx {
			p, err := point(i)
			if err != nil {
				return e, err
			}
			e[k] = p
		}
		return e, nil
	}

	var (
		f   tracking.Face
		err error
	)
	if f.LeftEye, err = eye(LeftEyeIndices); err != nil {
		return f, err
	}
	if f.RightEye, err = eye(RightEyeIndices); err != nil {
		return f, err
	}
	if f.LeftPupil, err = point(LeftPupilIndex); err != nil {
		return f, err
	}
	if f.RightPupil, err = point(RightPupilIndex); err != nil {
		return f, err
	}
	return f, nil
}
