package core

// Lerp linearly interpolates from a to b by t, unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Saturate clamps x to [0,1]
func Saturate(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
