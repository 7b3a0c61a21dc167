package tracking

import "math"

// Point is a 2D position. Landmarks use normalized image coordinates,
// cursor positions use screen pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Eye holds the six landmarks of one eye in this order:
// outer corner, upper-outer, upper-inner, inner corner, lower-inner, lower-outer.
type Eye [6]Point

// Face is everything the engine needs from one detected face for a single tick.
type Face struct {
	LeftEye    Eye
	RightEye   Eye
	LeftPupil  Point
	RightPupil Point
}

// Click is a discrete click intent produced by the arbiter.
type Click int

const (
	ClickNone Click = iota
	ClickLeft
	ClickRight
	ClickDouble
)

func (c Click) String() string {
	switch c {
	case ClickLeft:
		return "left"
	case ClickRight:
		return "right"
	case ClickDouble:
		return "double"
	default:
		return "none"
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
