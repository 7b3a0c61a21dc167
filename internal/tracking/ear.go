package tracking

// EyeAspectRatio returns the eye aspect ratio of a six point eye outline.
// Lower values mean a more closed eye. When the two corners coincide the
// ratio is undefined and 0 is returned.
func EyeAspectRatio(e Eye) float64 {
	vertical := Distance(e[1], e[5]) + Distance(e[2], e[4])
	horizontal := Distance(e[0], e[3])
	if horizontal == 0 {
		return 0
	}
	return vertical / (2 * horizontal)
}
