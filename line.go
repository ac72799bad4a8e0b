package rasterlab

import "math"

// StepByStep rasterizes the segment (x1,y1)-(x2,y2) by evaluating the line
// equation y = k*x + b at every integer x between the endpoints.
//
// Points are emitted in increasing x order regardless of endpoint order.
// A vertical segment is emitted in increasing y order. The algorithm always
// steps along x, so lines steeper than 45 degrees come out with gaps; this
// is the behavior being demonstrated, compare with [DDA] and [BresenhamLine].
func StepByStep(x1, y1, x2, y2 int) []GridPoint {
	if x1 == x2 {
		start, end := min(y1, y2), max(y1, y2)
		points := make([]GridPoint, 0, end-start+1)
		for y := start; y <= end; y++ {
			points = append(points, GridPoint{X: x1, Y: y})
		}
		return points
	}

	k := float64(y2-y1) / float64(x2-x1)
	b := float64(y1) - k*float64(x1)

	start, end := min(x1, x2), max(x1, x2)
	points := make([]GridPoint, 0, end-start+1)
	for x := start; x <= end; x++ {
		y := int(math.Round(k*float64(x) + b))
		points = append(points, GridPoint{X: x, Y: y})
	}
	return points
}

// DDA rasterizes the segment (x1,y1)-(x2,y2) with the digital differential
// analyzer: it takes max(|dx|, |dy|) equal steps from the first endpoint and
// rounds the accumulated position at each step.
//
// The result always has max(|dx|, |dy|)+1 points. Coincident endpoints
// yield the single point (x1, y1).
func DDA(x1, y1, x2, y2 int) []GridPoint {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(absInt(dx), absInt(dy))
	if steps == 0 {
		return []GridPoint{{X: x1, Y: y1}}
	}

	// Single precision accumulators, as in the classic formulation.
	xInc := float32(dx) / float32(steps)
	yInc := float32(dy) / float32(steps)
	x := float32(x1)
	y := float32(y1)

	points := make([]GridPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, GridPoint{X: round32(x), Y: round32(y)})
		x += xInc
		y += yInc
	}
	return points
}

// BresenhamLine rasterizes the segment (x1,y1)-(x2,y2) using only integer
// arithmetic. Consecutive points are 8-connected, the first point is
// (x1, y1), the last is (x2, y2) and the result has max(|dx|, |dy|)+1
// points.
func BresenhamLine(x1, y1, x2, y2 int) []GridPoint {
	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	points := make([]GridPoint, 0, max(dx, dy)+1)
	for {
		points = append(points, GridPoint{X: x1, Y: y1})
		if x1 == x2 && y1 == y2 {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// round32 rounds half away from zero.
func round32(v float32) int {
	return int(math.Round(float64(v)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
