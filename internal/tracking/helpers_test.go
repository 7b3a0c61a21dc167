package tracking

import "time"

var epoch = time.Unix(1_700_000_000, 0)

// at returns the instant n ticks of 10ms after epoch.
func at(n int) time.Time {
	return epoch.Add(time.Duration(n) * 10 * time.Millisecond)
}

// eyeWithEAR builds a unit-width eye whose aspect ratio is ear.
func eyeWithEAR(ear float64) Eye {
	h := ear / 2
	return Eye{
		{X: 0, Y: 0},
		{X: 1.0 / 3, Y: -h},
		{X: 2.0 / 3, Y: -h},
		{X: 1, Y: 0},
		{X: 2.0 / 3, Y: h},
		{X: 1.0 / 3, Y: h},
	}
}

func faceWithEAR(left, right float64) Face {
	return Face{
		LeftEye:    eyeWithEAR(left),
		RightEye:   eyeWithEAR(right),
		LeftPupil:  Point{X: 0.5, Y: 0.4},
		RightPupil: Point{X: 0.5, Y: 0.4},
	}
}
