// Package rasterlab implements four classic rasterization algorithms that
// turn a line segment or a circle into integer grid cells.
//
// # Overview
//
// Each algorithm is a pure function from integer parameters to an ordered
// slice of [GridPoint]:
//
//   - [StepByStep] evaluates y = k*x + b at every integer x
//   - [DDA] takes equal floating point steps along the major axis
//   - [BresenhamLine] walks the segment with an integer error term
//   - [BresenhamCircle] computes one octant and reflects it eight times
//
// The functions share no state and are safe for concurrent use. Every call
// returns a freshly allocated slice owned by the caller.
//
// # Quick Start
//
//	import "github.com/gogpu/rasterlab"
//
//	points := rasterlab.BresenhamLine(0, 0, 10, 5)
//	for _, p := range points {
//	    fmt.Println(p)
//	}
//
// [Rasterize] dispatches on an [Algorithm] value with [Params], which is
// what the commands and the grid canvas use.
//
// # Coordinate System
//
// Grid coordinates are logical: the origin is the centre of the grid, X
// increases right and Y increases up. The grid package maps them to image
// pixels.
//
// # Rounding
//
// [StepByStep] and [DDA] round half away from zero ([math.Round]).
//
// # Duplicates
//
// Output is never deduplicated. [BresenhamCircle] repeats cells where
// octant reflections coincide. [Dedup] removes repeats as a separate step.
//
// # Architecture
//
// The module is organized into:
//   - rasterlab: algorithms, algorithm selection, parameter validation, logging
//   - grid: pixmap and grid canvas rendering cells, axes and labels
//   - internal/timing: wall-clock measurement, statistics and charts
//   - internal/locale: English and Russian UI strings
//   - internal/viewer: interactive viewer state and key actions
//   - cmd/rasterdemo, cmd/rasterview: command line and window front ends
package rasterlab
