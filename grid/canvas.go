// Package grid draws rasterized cells onto a pixel grid.
//
// A Canvas keeps the logical origin at the centre of its pixmap. Every
// logical cell is a square of CellSize pixels; X grows right and Y grows up,
// so cell (x, y) covers the pixels whose top-left corner is
//
//	(cx + x*size, cy - y*size - size)
//
// where (cx, cy) is the pixmap centre. Cells that fall outside the pixmap are
// clipped when drawn; the point list itself is never altered.
//
// Example:
//
//	c := grid.New(600, 600, grid.WithCellSize(20))
//	c.SetPoints(rasterlab.BresenhamLine(0, 0, 10, 5))
//	if err := c.Render().SavePNG("line.png"); err != nil {
//	    log.Fatal(err)
//	}
package grid

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"

	"github.com/gogpu/rasterlab"
)

// Canvas renders a point sequence with grid lines, axes and labels.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	opts   canvasOptions
	pm     *Pixmap
	points []rasterlab.GridPoint

	face     font.Face
	faceDone bool
}

// New creates a canvas of the given pixel size.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		opts: o,
		pm:   NewPixmap(width, height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pm.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pm.Height() }

// Resize replaces the backing pixmap when the size changes.
func (c *Canvas) Resize(width, height int) {
	if width == c.pm.Width() && height == c.pm.Height() {
		return
	}
	c.pm = NewPixmap(width, height)
}

// CellSize returns the size of one cell in pixels.
func (c *Canvas) CellSize() int { return c.opts.cellSize }

// SetCellSize changes the cell size, clamped to [MinCellSize, MaxCellSize].
func (c *Canvas) SetCellSize(px int) {
	c.opts.cellSize = clampCellSize(px)
}

// SetCaption changes the text drawn in the top-left corner. Newlines
// start additional lines.
func (c *Canvas) SetCaption(s string) {
	c.opts.caption = s
}

// SetPoints replaces the cells to draw. The slice is copied.
func (c *Canvas) SetPoints(points []rasterlab.GridPoint) {
	c.points = append(c.points[:0:0], points...)
}

// Points returns a copy of the cells to draw.
func (c *Canvas) Points() []rasterlab.GridPoint {
	return append([]rasterlab.GridPoint(nil), c.points...)
}

// center returns the pixel position of the logical origin.
func (c *Canvas) center() image.Point {
	return image.Pt(c.pm.Width()/2, c.pm.Height()/2)
}

// ToScreen returns the top-left pixel of the cell at p.
func (c *Canvas) ToScreen(p rasterlab.GridPoint) image.Point {
	o := c.center()
	g := c.opts.cellSize
	return image.Pt(o.X+p.X*g, o.Y-p.Y*g-g)
}

// CellRect returns the pixel rectangle covered by the cell at p.
func (c *Canvas) CellRect(p rasterlab.GridPoint) image.Rectangle {
	s := c.ToScreen(p)
	g := c.opts.cellSize
	return image.Rect(s.X, s.Y, s.X+g, s.Y+g)
}

// Visible reports how many of the current points land at least partly
// inside the canvas.
func (c *Canvas) Visible() int {
	bounds := c.pm.Bounds()
	n := 0
	for _, p := range c.points {
		if c.CellRect(p).Overlaps(bounds) {
			n++
		}
	}
	return n
}

// Render redraws the whole canvas and returns its pixmap. The pixmap is
// reused by the next Render call.
func (c *Canvas) Render() *Pixmap {
	pal := c.opts.palette
	c.pm.Clear(pal.Background)
	c.drawGrid()
	c.drawAxes()
	c.drawCells()
	c.drawLabels()

	rasterlab.Logger().Debug("grid: render",
		"width", c.pm.Width(), "height", c.pm.Height(),
		"cell", c.opts.cellSize, "points", len(c.points))
	return c.pm
}

// drawGrid draws dotted lines every cell, starting at the centre and
// stepping outwards.
func (c *Canvas) drawGrid() {
	w, h := c.pm.Width(), c.pm.Height()
	o := c.center()
	g := c.opts.cellSize
	col := c.opts.palette.Grid

	for x := o.X; x < w; x += g {
		c.dottedV(x, h, col)
	}
	for x := o.X; x > 0; x -= g {
		c.dottedV(x, h, col)
	}
	for y := o.Y; y < h; y += g {
		c.dottedH(y, w, col)
	}
	for y := o.Y; y > 0; y -= g {
		c.dottedH(y, w, col)
	}
}

// dotted reports whether position i along a grid line is inked:
// one pixel on, two off.
func dotted(i int) bool { return i%3 == 0 }

func (c *Canvas) dottedV(x, h int, col color.Color) {
	for y := 0; y < h; y++ {
		if dotted(y) {
			c.pm.SetPixel(x, y, col)
		}
	}
}

func (c *Canvas) dottedH(y, w int, col color.Color) {
	for x := 0; x < w; x++ {
		if dotted(x) {
			c.pm.SetPixel(x, y, col)
		}
	}
}

// drawAxes draws 2px axes through the centre.
func (c *Canvas) drawAxes() {
	w, h := c.pm.Width(), c.pm.Height()
	o := c.center()
	col := c.opts.palette.Axis
	c.pm.FillRect(image.Rect(0, o.Y-1, w, o.Y+1), col)
	c.pm.FillRect(image.Rect(o.X-1, 0, o.X+1, h), col)
}

func (c *Canvas) drawCells() {
	col := c.opts.palette.Cell
	for _, p := range c.points {
		c.pm.FillRect(c.CellRect(p), col)
	}
}

// drawLabels draws the axis letters, the origin mark and the caption.
func (c *Canvas) drawLabels() {
	if !c.opts.labels && c.opts.caption == "" {
		return
	}
	face := c.labelFace()
	if face == nil {
		return
	}
	col := c.opts.palette.Text
	w := c.pm.Width()
	o := c.center()

	if c.opts.labels {
		drawText(c.pm, face, col, w-textWidth(face, "X")-10, o.Y-5, "X")
		drawText(c.pm, face, col, o.X+5, 15, "Y")
		drawText(c.pm, face, col, o.X+5, o.Y+15, "0")
	}
	if c.opts.caption != "" {
		for i, line := range strings.Split(c.opts.caption, "\n") {
			drawText(c.pm, face, col, 10, labelSize+8+i*(labelSize+4), line)
		}
	}
}

// labelFace returns the canvas face, creating it on first use. A failure
// is logged once and labels are skipped from then on.
func (c *Canvas) labelFace() font.Face {
	if !c.faceDone {
		c.faceDone = true
		face, err := newLabelFace()
		if err != nil {
			rasterlab.Logger().Warn("grid: labels disabled", "err", err)
		}
		c.face = face
	}
	return c.face
}
