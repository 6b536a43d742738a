package common

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestLerpVecBoundaries(t *testing.T) {
	a := cp.Vector{X: 10, Y: -4}
	b := cp.Vector{X: 74, Y: 380}

	tests := []struct {
		name string
		t    float64
		want cp.Vector
	}{
		{"start", 0, a},
		{"before_start", -0.5, a},
		{"end", 1, b},
		{"past_end", 1.7, b},
		{"middle", 0.5, cp.Vector{X: 42, Y: 188}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LerpVec(a, b, tc.t)
			if got.Distance(tc.want) > 1e-9 {
				t.Fatalf("LerpVec(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}
