package tracking

// Window is a [Low, High] sub-range of normalized pupil position that is
// stretched over a whole screen dimension.
type Window [2]float64

// Mapper turns averaged pupil positions into raw screen coordinates.
type Mapper struct {
	Horizontal Window
	Vertical   Window
	Width      float64
	Height     float64
}

// Map averages both pupils and projects them onto the screen. The horizontal
// axis is inverted because the camera image is mirrored. The result is clamped
// to [1, dim-1] on both axes so the pointer never lands exactly on an edge.
func (m Mapper) Map(left, right Point) Point {
	avgX := (left.X + right.X) / 2
	avgY := (left.Y + right.Y) / 2

	x := m.Width - interpolate(avgX, m.Horizontal, m.Width)
	y := interpolate(avgY, m.Vertical, m.Height)

	return Point{
		X: clamp(x, 1, m.Width-1),
		Y: clamp(y, 1, m.Height-1),
	}
}

// interpolate maps v linearly from w onto [0, span]. Values outside w are
// extrapolated.
func interpolate(v float64, w Window, span float64) float64 {
	width := w[1] - w[0]
	if width == 0 {
		return 0
	}
	return (v - w[0]) / width * span
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
