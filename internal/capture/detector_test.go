package capture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/gaze-cursor/internal/logging"
)

// TestHelperDetector is not a real test. It is re-executed as the detector
// subprocess: frames whose first byte is zero have no face, any other frame
// gets the synthetic mesh.
func TestHelperDetector(t *testing.T) {
	if os.Getenv("GAZE_HELPER_DETECTOR") != "1" {
		t.Skip("helper process")
	}
	w, _ := strconv.Atoi(os.Getenv("FRAME_WIDTH"))
	h, _ := strconv.Atoi(os.Getenv("FRAME_HEIGHT"))
	frame := make([]byte, w*h*3)

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	for {
		if _, err := io.ReadFull(in, frame); err != nil {
			os.Exit(0)
		}
		reply := MeshFrame{}
		if frame[0] != 0 {
			reply = syntheticMesh()
		}
		b, _ := json.Marshal(reply)
		fmt.Fprintf(out, "%s\n", b)
		out.Flush()
	}
}

func startHelperDetector(t *testing.T, width, height int) *Detector {
	t.Helper()
	t.Setenv("GAZE_HELPER_DETECTOR", "1")
	argv := []string{os.Args[0], "-test.run=^TestHelperDetector$"}
	d, err := StartDetector(argv, width, height, logging.Discard())
	require.NoError(t, err)
	return d
}

func TestDetectorRoundTrip(t *testing.T) {
	d := startHelperDetector(t, 4, 3)

	frame := make([]byte, 4*3*3)
	frame[0] = 1
	f, err := d.Detect(frame)
	require.NoError(t, err)
	assert.InDelta(t, 0.468, f.RightPupil.X, 1e-12)

	frame[0] = 0
	_, err = d.Detect(frame)
	assert.ErrorIs(t, err, ErrNoFace)

	_, err = d.Detect(frame[:5])
	assert.ErrorIs(t, err, ErrFrameUnavailable)

	assert.NoError(t, d.Close())
}

func TestStartDetectorEmptyCommand(t *testing.T) {
	_, err := StartDetector(nil, 4, 3, logging.Discard())
	assert.Error(t, err)
}

func TestOpenCameraNoDevices(t *testing.T) {
	_, err := OpenCamera(nil, logging.Discard())
	assert.ErrorIs(t, err, ErrCameraUnavailable)
}
