package rasterlab

import (
	"math"
	"testing"
)

func TestBresenhamCircleZeroRadius(t *testing.T) {
	got := BresenhamCircle(0, 0, 0)
	want := pts(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	diff(t, want, got)
}

func TestBresenhamCircleUnitRadius(t *testing.T) {
	got := BresenhamCircle(4, -1, 1)
	want := pts(
		4, 0, 4, 0, 4, -2, 4, -2,
		5, -1, 3, -1, 5, -1, 3, -1,
	)
	diff(t, want, got)
}

func TestBresenhamCircleNegativeRadius(t *testing.T) {
	got := BresenhamCircle(1, 1, -3)
	if got == nil || len(got) != 0 {
		t.Errorf("BresenhamCircle(1, 1, -3) = %v, want empty non-nil slice", got)
	}
}

func TestBresenhamCircleOctant(t *testing.T) {
	const cx, cy = 2, -3
	got := BresenhamCircle(cx, cy, 10)
	if len(got)%8 != 0 {
		t.Fatalf("len(BresenhamCircle) = %d, want a multiple of 8", len(got))
	}

	// The first point of every group of eight is (cx+x, cy+y) for the
	// octant step being reflected.
	var octant []GridPoint
	for i := 0; i < len(got); i += 8 {
		octant = append(octant, got[i].Sub(Pt(cx, cy)))
	}
	diff(t, pts(0, 10, 1, 10, 2, 10, 3, 9, 4, 9, 5, 8, 6, 7), octant)
}

func TestBresenhamCircleReflectionOrder(t *testing.T) {
	got := BresenhamCircle(0, 0, 10)
	// Second step of the octant is (1, 10).
	want := pts(1, 10, -1, 10, 1, -10, -1, -10, 10, 1, -10, 1, 10, -1, -10, -1)
	diff(t, want, got[8:16])
}

func TestBresenhamCircleRadius(t *testing.T) {
	// The decision update runs after x is advanced, which lets cells near
	// the diagonal drift outwards by up to about 1.35 cells.
	const tolerance = 1.5
	for _, c := range []struct{ cx, cy int }{{0, 0}, {-7, 12}, {300, -450}} {
		for r := 0; r <= 200; r++ {
			for _, p := range BresenhamCircle(c.cx, c.cy, r) {
				d := math.Hypot(float64(p.X-c.cx), float64(p.Y-c.cy))
				if math.Abs(d-float64(r)) >= tolerance {
					t.Fatalf("BresenhamCircle(%d,%d,%d) emitted %v at distance %.3f",
						c.cx, c.cy, r, p, d)
				}
			}
		}
	}
}

func TestBresenhamCircleSymmetry(t *testing.T) {
	for _, r := range []int{0, 1, 2, 5, 10, 17, 64} {
		const cx, cy = 3, -5
		got := BresenhamCircle(cx, cy, r)
		set := make(map[GridPoint]bool, len(got))
		for _, p := range got {
			set[p.Sub(Pt(cx, cy))] = true
		}
		for p := range set {
			reflections := []GridPoint{
				{p.X, p.Y}, {-p.X, p.Y}, {p.X, -p.Y}, {-p.X, -p.Y},
				{p.Y, p.X}, {-p.Y, p.X}, {p.Y, -p.X}, {-p.Y, -p.X},
			}
			for _, q := range reflections {
				if !set[q] {
					t.Errorf("r=%d: %v emitted but its reflection %v is missing", r, p, q)
				}
			}
		}
	}
}

func TestBresenhamCircleKeepsDuplicates(t *testing.T) {
	got := BresenhamCircle(0, 0, 3)
	unique := Dedup(got)
	if len(unique) >= len(got) {
		t.Errorf("BresenhamCircle(0,0,3) has %d points and %d unique, want duplicates kept",
			len(got), len(unique))
	}
	// Axis points are reflected onto themselves by x -> -x.
	count := 0
	for _, p := range got {
		if p == Pt(0, 3) {
			count++
		}
	}
	if count != 2 {
		t.Errorf("(0,3) emitted %d times, want 2", count)
	}
}

func BenchmarkBresenhamCircle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BresenhamCircle(0, 0, 1000)
	}
}
