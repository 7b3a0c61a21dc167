package tracking

// Smoother is an exponential low-pass filter over screen coordinates.
//
// The filter starts from the origin, so the first few positions after start-up
// are pulled toward (0, 0) until the filter catches up with the gaze.
type Smoother struct {
	factor float64
	state  Point
}

// NewSmoother returns a filter with the given smoothing factor in [0, 1).
// Values near 1 damp heavily, 0 passes input straight through.
func NewSmoother(factor float64) *Smoother {
	return &Smoother{factor: factor}
}

// Update folds raw into the filter state and returns the new smoothed point.
func (s *Smoother) Update(raw Point) Point {
	a := s.factor
	s.state.X = s.state.X*a + raw.X*(1-a)
	s.state.Y = s.state.Y*a + raw.Y*(1-a)
	return s.state
}

// Position returns the current smoothed point without updating it.
func (s *Smoother) Position() Point {
	return s.state
}

// Reset puts the filter back into its cold state.
func (s *Smoother) Reset() {
	s.state = Point{}
}
