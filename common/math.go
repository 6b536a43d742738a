package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec interpolates between a and b; t outside [0,1] is clamped so phase
// boundaries land exactly on the endpoints.
func LerpVec(a, b cp.Vector, t float64) cp.Vector {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.Lerp(b, t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
