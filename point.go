package rasterlab

import (
	"image"
	"strconv"
)

// GridPoint is one rasterized cell in logical grid coordinates.
// Y grows upwards; conversion to screen space is the canvas's job.
type GridPoint struct {
	X, Y int
}

// Pt is a convenience function to create a GridPoint.
func Pt(x, y int) GridPoint {
	return GridPoint{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p GridPoint) Add(q GridPoint) GridPoint {
	return GridPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p GridPoint) Sub(q GridPoint) GridPoint {
	return GridPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Image converts the point to an image.Point with the same coordinates.
func (p GridPoint) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// String returns the point formatted as "(x,y)".
func (p GridPoint) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}
