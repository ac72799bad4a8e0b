package rasterlab

// BresenhamCircle rasterizes the circle of radius r centred at (cx, cy)
// with the midpoint decision variable d = 3 - 2r.
//
// Only the octant from (0, r) to the diagonal is computed; every step emits
// its eight reflections, so the result length is always a multiple of 8.
// Reflections that land on the same cell (on the axes, on the diagonal, or
// everywhere when r == 0) are emitted more than once. Use [Dedup] to
// collapse them.
//
// A negative radius yields an empty result.
func BresenhamCircle(cx, cy, r int) []GridPoint {
	if r < 0 {
		return []GridPoint{}
	}

	// An octant spans roughly r/sqrt(2) steps.
	points := make([]GridPoint, 0, 8*(r*707/1000+2))

	x, y := 0, r
	d := 3 - 2*r
	for y >= x {
		points = append(points,
			GridPoint{X: cx + x, Y: cy + y},
			GridPoint{X: cx - x, Y: cy + y},
			GridPoint{X: cx + x, Y: cy - y},
			GridPoint{X: cx - x, Y: cy - y},
			GridPoint{X: cx + y, Y: cy + x},
			GridPoint{X: cx - y, Y: cy + x},
			GridPoint{X: cx + y, Y: cy - x},
			GridPoint{X: cx - y, Y: cy - x},
		)
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
	return points
}
