package rasterlab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pts builds a point slice from flat x, y pairs.
func pts(xy ...int) []GridPoint {
	out := make([]GridPoint, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, GridPoint{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func reversed(points []GridPoint) []GridPoint {
	out := make([]GridPoint, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// sweep calls fn for every segment with endpoints in [-n, n]².
func sweep(n int, fn func(x1, y1, x2, y2 int)) {
	for x1 := -n; x1 <= n; x1++ {
		for y1 := -n; y1 <= n; y1++ {
			for x2 := -n; x2 <= n; x2++ {
				for y2 := -n; y2 <= n; y2++ {
					fn(x1, y1, x2, y2)
				}
			}
		}
	}
}
