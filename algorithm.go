package rasterlab

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("rasterlab: unknown algorithm")

// Algorithm selects one of the rasterization algorithms.
//
// The zero value is AlgorithmStepByStep. Values are ordered the way they
// are presented to users: the three line algorithms from the naive one to
// the integer one, then the circle.
type Algorithm int

const (
	// AlgorithmStepByStep evaluates the line equation at every integer x.
	// See [StepByStep].
	AlgorithmStepByStep Algorithm = iota

	// AlgorithmDDA steps evenly along the major axis.
	// See [DDA].
	AlgorithmDDA

	// AlgorithmBresenhamLine uses an integer error term.
	// See [BresenhamLine].
	AlgorithmBresenhamLine

	// AlgorithmBresenhamCircle draws a circle by octant symmetry.
	// See [BresenhamCircle].
	AlgorithmBresenhamCircle
)

// Algorithms returns every algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmStepByStep,
		AlgorithmDDA,
		AlgorithmBresenhamLine,
		AlgorithmBresenhamCircle,
	}
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmStepByStep:
		return "StepByStep"
	case AlgorithmDDA:
		return "DDA"
	case AlgorithmBresenhamLine:
		return "BresenhamLine"
	case AlgorithmBresenhamCircle:
		return "BresenhamCircle"
	default:
		return "Unknown"
	}
}

// IsCircle reports whether the algorithm takes a centre and a radius
// rather than two endpoints.
func (a Algorithm) IsCircle() bool {
	return a == AlgorithmBresenhamCircle
}

// Valid reports whether a is one of the defined algorithms.
func (a Algorithm) Valid() bool {
	return a >= AlgorithmStepByStep && a <= AlgorithmBresenhamCircle
}

// ParseAlgorithm resolves a user-supplied name. It accepts the short names
// "step", "dda", "bresenham" and "circle" as well as the String forms,
// ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "step", "stepbystep", "step-by-step":
		return AlgorithmStepByStep, nil
	case "dda":
		return AlgorithmDDA, nil
	case "bresenham", "bresenhamline", "line":
		return AlgorithmBresenhamLine, nil
	case "circle", "bresenhamcircle":
		return AlgorithmBresenhamCircle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Rasterize runs the selected algorithm on p. Circle algorithms use
// (p.X1, p.Y1) as the centre and p.R as the radius; line algorithms use the
// two endpoints. An invalid algorithm yields nil.
//
// Rasterize does not validate p; call [Params.Validate] or [Params.Clamp]
// first when the values come from user input.
func Rasterize(a Algorithm, p Params) []GridPoint {
	var points []GridPoint
	switch a {
	case AlgorithmStepByStep:
		points = StepByStep(p.X1, p.Y1, p.X2, p.Y2)
	case AlgorithmDDA:
		points = DDA(p.X1, p.Y1, p.X2, p.Y2)
	case AlgorithmBresenhamLine:
		points = BresenhamLine(p.X1, p.Y1, p.X2, p.Y2)
	case AlgorithmBresenhamCircle:
		points = BresenhamCircle(p.X1, p.Y1, p.R)
	default:
		Logger().Warn("rasterize: unknown algorithm", "algorithm", int(a))
		return nil
	}
	Logger().Debug("rasterize", "algorithm", a.String(), "params", p, "points", len(points))
	return points
}
