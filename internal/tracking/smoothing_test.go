package tracking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmootherColdStart(t *testing.T) {
	s := NewSmoother(0.7)
	p := s.Update(Point{X: 1000, Y: 500})
	assert.InDelta(t, 300, p.X, 1e-9)
	assert.InDelta(t, 150, p.Y, 1e-9)
}

func TestSmootherPassThrough(t *testing.T) {
	s := NewSmoother(0)
	assert.Equal(t, Point{X: 12, Y: 34}, s.Update(Point{X: 12, Y: 34}))
	assert.Equal(t, Point{X: 56, Y: 78}, s.Update(Point{X: 56, Y: 78}))
}

func TestSmootherConvergesMonotonically(t *testing.T) {
	target := Point{X: 1500, Y: 800}
	for _, alpha := range []float64{0, 0.3, 0.7, 0.9, 0.99} {
		s := NewSmoother(alpha)
		prevGap := math.Inf(1)
		for i := 0; i < 5000; i++ {
			p := s.Update(target)
			gap := math.Abs(target.X-p.X) + math.Abs(target.Y-p.Y)
			assert.LessOrEqual(t, gap, prevGap+1e-9, "alpha %g tick %d", alpha, i)
			prevGap = gap
		}
		assert.Less(t, prevGap, 1e-6, "alpha %g", alpha)
	}
}

func TestSmootherReset(t *testing.T) {
	s := NewSmoother(0.5)
	s.Update(Point{X: 100, Y: 100})
	s.Reset()
	assert.Equal(t, Point{}, s.Position())
}
