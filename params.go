package rasterlab

import (
	"errors"
	"fmt"
	"log/slog"
)

// Input bounds accepted from users. The rasterizers themselves accept any
// int; these keep intermediate products far from overflow and the output
// small enough to display.
const (
	MinCoordinate = -1000
	MaxCoordinate = 1000
	MinRadius     = 1
	MaxRadius     = 1000
)

// Validation errors reported by Params.Validate.
var (
	ErrCoordinateRange = errors.New("rasterlab: coordinate out of range")
	ErrRadiusRange     = errors.New("rasterlab: radius out of range")
)

// Params holds the geometric input of one rasterization. Line algorithms
// read both endpoints, the circle algorithm reads (X1, Y1) as the centre
// and R as the radius.
type Params struct {
	X1, Y1 int
	X2, Y2 int
	R      int
}

// DefaultParams returns the segment (0,0)-(10,5) and radius 10.
func DefaultParams() Params {
	return Params{X1: 0, Y1: 0, X2: 10, Y2: 5, R: 10}
}

// Validate reports every parameter that algorithm a reads and that lies
// outside the accepted bounds. All violations are joined into one error;
// each wraps ErrCoordinateRange or ErrRadiusRange.
func (p Params) Validate(a Algorithm) error {
	var errs []error
	checkCoord := func(name string, v int) {
		if v < MinCoordinate || v > MaxCoordinate {
			errs = append(errs, fmt.Errorf("%w: %s=%d not in [%d, %d]",
				ErrCoordinateRange, name, v, MinCoordinate, MaxCoordinate))
		}
	}

	checkCoord("x1", p.X1)
	checkCoord("y1", p.Y1)
	if a.IsCircle() {
		if p.R < MinRadius || p.R > MaxRadius {
			errs = append(errs, fmt.Errorf("%w: r=%d not in [%d, %d]",
				ErrRadiusRange, p.R, MinRadius, MaxRadius))
		}
	} else {
		checkCoord("x2", p.X2)
		checkCoord("y2", p.Y2)
	}
	return errors.Join(errs...)
}

// Clamp returns a copy of p with every field forced into the accepted
// bounds.
func (p Params) Clamp() Params {
	return Params{
		X1: clampInt(p.X1, MinCoordinate, MaxCoordinate),
		Y1: clampInt(p.Y1, MinCoordinate, MaxCoordinate),
		X2: clampInt(p.X2, MinCoordinate, MaxCoordinate),
		Y2: clampInt(p.Y2, MinCoordinate, MaxCoordinate),
		R:  clampInt(p.R, MinRadius, MaxRadius),
	}
}

// String formats the parameters for diagnostics.
func (p Params) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d) r=%d", p.X1, p.Y1, p.X2, p.Y2, p.R)
}

// LogValue implements slog.LogValuer.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("x1", p.X1),
		slog.Int("y1", p.Y1),
		slog.Int("x2", p.X2),
		slog.Int("y2", p.Y2),
		slog.Int("r", p.R),
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
