package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/rasterlab/grid"
	"github.com/gogpu/rasterlab/internal/viewer"
)

// binding maps a key press to a viewer action.
type binding struct {
	key    ebiten.Key
	action viewer.Action
}

var bindings = []binding{
	{ebiten.KeyDigit1, viewer.ActionStepByStep},
	{ebiten.KeyDigit2, viewer.ActionDDA},
	{ebiten.KeyDigit3, viewer.ActionBresenhamLine},
	{ebiten.KeyDigit4, viewer.ActionBresenhamCircle},
	{ebiten.KeyEqual, viewer.ActionZoomIn},
	{ebiten.KeyKPAdd, viewer.ActionZoomIn},
	{ebiten.KeyMinus, viewer.ActionZoomOut},
	{ebiten.KeyKPSubtract, viewer.ActionZoomOut},
	{ebiten.KeyArrowLeft, viewer.ActionLeft},
	{ebiten.KeyArrowRight, viewer.ActionRight},
	{ebiten.KeyArrowUp, viewer.ActionUp},
	{ebiten.KeyArrowDown, viewer.ActionDown},
	{ebiten.KeySpace, viewer.ActionToggleHandle},
	{ebiten.KeyD, viewer.ActionToggleDedup},
}

// Game adapts viewer.State to ebiten. The grid is rendered on the CPU into
// a grid.Canvas and uploaded only when the state changes.
type Game struct {
	state  *viewer.State
	canvas *grid.Canvas
	frame  *ebiten.Image
	dirty  bool
}

func newGame(state *viewer.State, width, height int) *Game {
	return &Game{
		state:  state,
		canvas: grid.New(width, height, grid.WithCellSize(state.CellSize())),
		dirty:  true,
	}
}

// Update polls the keyboard once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a := viewer.ActionNextAlgorithm
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			a = viewer.ActionPrevAlgorithm
		}
		g.apply(a)
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.apply(b.action)
		}
	}
	return nil
}

func (g *Game) apply(a viewer.Action) {
	if g.state.Apply(a) {
		g.dirty = true
	}
}

// Draw uploads the canvas after a change and blits it.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		g.repaint()
	}
	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.0f", ebiten.ActualTPS()),
		g.canvas.Width()-60, g.canvas.Height()-16)
}

// repaint renders the grid and copies it into the frame image. The canvas
// background is opaque, so its straight-alpha bytes are already
// premultiplied.
func (g *Game) repaint() {
	g.canvas.SetCellSize(g.state.CellSize())
	g.canvas.SetCaption(g.state.Caption())
	g.canvas.SetPoints(g.state.Points())
	pm := g.canvas.Render()

	w, h := pm.Width(), pm.Height()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(pm.Data())
	g.dirty = false
}

// Layout keeps one canvas pixel per window pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.canvas.Width() || h != g.canvas.Height() {
		g.canvas.Resize(w, h)
		g.dirty = true
	}
	return w, h
}
