// Package viewer holds the interactive state of the rasterlab window: the
// selected algorithm, its parameters, the grid scale and the last timed
// result. It has no dependency on a UI toolkit; cmd/rasterview translates
// key presses into Actions.
package viewer

import (
	"strconv"
	"strings"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/grid"
	"github.com/gogpu/rasterlab/internal/locale"
	"github.com/gogpu/rasterlab/internal/timing"
)

// Action is one user command.
type Action int

const (
	ActionNone Action = iota
	ActionStepByStep
	ActionDDA
	ActionBresenhamLine
	ActionBresenhamCircle
	ActionNextAlgorithm
	ActionPrevAlgorithm
	ActionZoomIn
	ActionZoomOut
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionToggleHandle
	ActionToggleDedup
)

// State is the viewer model. The zero value is not usable; call NewState.
type State struct {
	algorithm rasterlab.Algorithm
	params    rasterlab.Params
	cellSize  int
	endpoint  bool // arrows move the second handle (end point or radius)
	dedup     bool

	printer *locale.Printer
	last    timing.Result
}

// NewState returns the default view: the step-by-step algorithm on
// DefaultParams at the default scale, already rasterized.
func NewState(p *locale.Printer) *State {
	if p == nil {
		p = locale.New("en")
	}
	s := &State{
		algorithm: rasterlab.AlgorithmStepByStep,
		params:    rasterlab.DefaultParams(),
		cellSize:  grid.DefaultCellSize,
		endpoint:  true,
		printer:   p,
	}
	s.Redraw()
	return s
}

// Algorithm returns the selected algorithm.
func (s *State) Algorithm() rasterlab.Algorithm { return s.algorithm }

// Params returns the current parameters.
func (s *State) Params() rasterlab.Params { return s.params }

// CellSize returns the grid scale in pixels per cell.
func (s *State) CellSize() int { return s.cellSize }

// Dedup reports whether duplicate cells are removed before display.
func (s *State) Dedup() bool { return s.dedup }

// Last returns the most recent timed rasterization.
func (s *State) Last() timing.Result { return s.last }

// Points returns the cells to display.
func (s *State) Points() []rasterlab.GridPoint { return s.last.Points }

// SetParams replaces the parameters, clamped to the accepted bounds, and
// rasterizes again.
func (s *State) SetParams(p rasterlab.Params) {
	s.params = p.Clamp()
	s.Redraw()
}

// Select switches to algorithm a. Invalid algorithms are ignored.
func (s *State) Select(a rasterlab.Algorithm) bool {
	if !a.Valid() || a == s.algorithm {
		return false
	}
	s.algorithm = a
	s.Redraw()
	return true
}

// Next selects the following algorithm, wrapping around.
func (s *State) Next() {
	all := rasterlab.Algorithms()
	s.Select(all[(int(s.algorithm)+1)%len(all)])
}

// Prev selects the preceding algorithm, wrapping around.
func (s *State) Prev() {
	all := rasterlab.Algorithms()
	s.Select(all[(int(s.algorithm)+len(all)-1)%len(all)])
}

// Zoom changes the cell size by delta pixels within the grid bounds.
// It reports whether the size changed.
func (s *State) Zoom(delta int) bool {
	size := min(max(s.cellSize+delta, grid.MinCellSize), grid.MaxCellSize)
	if size == s.cellSize {
		return false
	}
	s.cellSize = size
	return true
}

// Nudge moves the active handle. For lines that is the end point or the
// start point. For circles it is the radius (changed by dx+dy) or the
// centre. The result is clamped to the accepted bounds.
func (s *State) Nudge(dx, dy int) bool {
	p := s.params
	switch {
	case s.algorithm.IsCircle() && s.endpoint:
		p.R += dx + dy
	case s.endpoint:
		p.X2 += dx
		p.Y2 += dy
	default:
		p.X1 += dx
		p.Y1 += dy
	}
	p = p.Clamp()
	if p == s.params {
		return false
	}
	s.params = p
	s.Redraw()
	return true
}

// ToggleHandle switches which handle Nudge moves.
func (s *State) ToggleHandle() {
	s.endpoint = !s.endpoint
}

// ToggleDedup switches duplicate removal and rasterizes again.
func (s *State) ToggleDedup() {
	s.dedup = !s.dedup
	s.Redraw()
}

// Redraw rasterizes the current parameters and stores the timed result.
// Deduplication, when enabled, runs after timing.
func (s *State) Redraw() {
	r := timing.Measure(s.algorithm, s.params)
	if s.dedup {
		r.Points = rasterlab.Dedup(r.Points)
	}
	s.last = r
	rasterlab.Logger().Debug("viewer: redraw",
		"algorithm", s.algorithm.String(), "points", len(r.Points), "elapsed", r.Elapsed)
}

// Apply performs one action and reports whether the view needs repainting.
func (s *State) Apply(a Action) bool {
	switch a {
	case ActionStepByStep:
		return s.Select(rasterlab.AlgorithmStepByStep)
	case ActionDDA:
		return s.Select(rasterlab.AlgorithmDDA)
	case ActionBresenhamLine:
		return s.Select(rasterlab.AlgorithmBresenhamLine)
	case ActionBresenhamCircle:
		return s.Select(rasterlab.AlgorithmBresenhamCircle)
	case ActionNextAlgorithm:
		s.Next()
		return true
	case ActionPrevAlgorithm:
		s.Prev()
		return true
	case ActionZoomIn:
		return s.Zoom(1)
	case ActionZoomOut:
		return s.Zoom(-1)
	case ActionLeft:
		return s.Nudge(-1, 0)
	case ActionRight:
		return s.Nudge(1, 0)
	case ActionUp:
		return s.Nudge(0, 1)
	case ActionDown:
		return s.Nudge(0, -1)
	case ActionToggleHandle:
		s.ToggleHandle()
		return true
	case ActionToggleDedup:
		s.ToggleDedup()
		return true
	default:
		return false
	}
}

// Caption returns the text overlay: algorithm, parameters, time and point
// count, then scale and active handle, then the key reference.
func (s *State) Caption() string {
	p := s.printer
	var b strings.Builder
	b.WriteString(p.Algorithm(s.algorithm))
	b.WriteString("  ")
	b.WriteString(s.paramsText())
	b.WriteString("  ")
	b.WriteString(p.Elapsed(s.last.Elapsed))
	b.WriteString("  ")
	b.WriteString(p.Points(len(s.last.Points)))
	b.WriteByte('\n')
	b.WriteString(p.Scale(s.cellSize))
	b.WriteString("  ")
	b.WriteString(p.Editing(s.algorithm, s.endpoint))
	b.WriteByte('\n')
	b.WriteString(p.Help())
	return b.String()
}

func (s *State) paramsText() string {
	q := s.params
	if s.algorithm.IsCircle() {
		return rasterlab.Pt(q.X1, q.Y1).String() + " r=" + strconv.Itoa(q.R)
	}
	return rasterlab.Pt(q.X1, q.Y1).String() + "-" + rasterlab.Pt(q.X2, q.Y2).String()
}
