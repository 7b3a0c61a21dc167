// Package pointer moves the system cursor and injects clicks.
package pointer

import (
	"log/slog"
	"math"

	"github.com/go-vgo/robotgo"

	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// ScreenSize returns the main display size in pixels.
func ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}

// Robot drives the OS pointer through robotgo.
type Robot struct {
	logger *slog.Logger
}

func NewRobot(logger *slog.Logger) *Robot {
	return &Robot{logger: logger}
}

// Move places the cursor at p, rounded to whole pixels.
func (r *Robot) Move(p tracking.Point) {
	x, y := pixel(p)
	robotgo.Move(x, y)
}

// Click injects the button press for c. ClickNone is ignored.
func (r *Robot) Click(c tracking.Click) {
	button, double, ok := buttonFor(c)
	if !ok {
		return
	}
	robotgo.Click(button, double)
	r.logger.Info("click injected", "kind", c.String())
}

// Location reports where the cursor currently is.
func (r *Robot) Location() tracking.Point {
	x, y := robotgo.Location()
	return tracking.Point{X: float64(x), Y: float64(y)}
}

func pixel(p tracking.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func buttonFor(c tracking.Click) (button string, double, ok bool) {
	switch c {
	case tracking.ClickLeft:
		return "left", false, true
	case tracking.ClickDouble:
		return "left", true, true
	case tracking.ClickRight:
		return "right", false, true
	default:
		return "", false, false
	}
}
