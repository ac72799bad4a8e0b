package grid

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/rasterlab"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey  = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func TestNewDefaults(t *testing.T) {
	c := New(600, 400)
	if c.Width() != 600 || c.Height() != 400 {
		t.Errorf("size = %dx%d, want 600x400", c.Width(), c.Height())
	}
	if c.CellSize() != DefaultCellSize {
		t.Errorf("CellSize() = %d, want %d", c.CellSize(), DefaultCellSize)
	}
}

func TestCellSizeClamped(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, MinCellSize},
		{5, 5},
		{33, 33},
		{50, 50},
		{80, MaxCellSize},
	}
	for _, tt := range tests {
		if got := New(10, 10, WithCellSize(tt.in)).CellSize(); got != tt.want {
			t.Errorf("WithCellSize(%d): CellSize() = %d, want %d", tt.in, got, tt.want)
		}
		c := New(10, 10)
		c.SetCellSize(tt.in)
		if got := c.CellSize(); got != tt.want {
			t.Errorf("SetCellSize(%d): CellSize() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToScreen(t *testing.T) {
	c := New(600, 600)
	tests := []struct {
		p    rasterlab.GridPoint
		want image.Point
	}{
		{rasterlab.Pt(0, 0), image.Pt(300, 280)},
		{rasterlab.Pt(1, 2), image.Pt(320, 240)},
		{rasterlab.Pt(-1, -1), image.Pt(280, 300)},
		{rasterlab.Pt(15, 0), image.Pt(600, 280)},
	}
	for _, tt := range tests {
		if got := c.ToScreen(tt.p); got != tt.want {
			t.Errorf("ToScreen(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if got, want := c.CellRect(rasterlab.Pt(1, 2)), image.Rect(320, 240, 340, 260); got != want {
		t.Errorf("CellRect((1,2)) = %v, want %v", got, want)
	}
}

func TestRenderCellsGridAxes(t *testing.T) {
	c := New(600, 600)
	c.SetPoints([]rasterlab.GridPoint{rasterlab.Pt(0, 0), rasterlab.Pt(-3, -4)})
	pm := c.Render()

	checks := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"cell (0,0)", 310, 290, DefaultPalette().Cell.(color.NRGBA)},
		{"cell (-3,-4)", 250, 370, DefaultPalette().Cell.(color.NRGBA)},
		{"empty cell", 410, 190, white},
		{"grid dot", 320, 450, grey},
		{"grid gap", 320, 451, white},
		{"x axis", 0, 300, black},
		{"x axis upper row", 100, 299, black},
		{"y axis", 300, 500, black},
	}
	for _, tt := range checks {
		if got := pm.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: GetPixel(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderClipsOffscreenCells(t *testing.T) {
	c := New(100, 100)
	c.SetPoints(rasterlab.BresenhamCircle(0, 0, 1000))
	if got := c.Visible(); got != 0 {
		t.Errorf("Visible() = %d, want 0 for a circle larger than the canvas", got)
	}
	pm := c.Render()
	if countColor(pm, DefaultPalette().Cell.(color.NRGBA)) != 0 {
		t.Error("offscreen cells were drawn")
	}
	if got := len(c.Points()); got != len(rasterlab.BresenhamCircle(0, 0, 1000)) {
		t.Errorf("len(Points()) = %d, clipping must not drop points", got)
	}
}

func TestVisiblePartialCell(t *testing.T) {
	c := New(100, 100)
	// Cell (2,0) spans x in [90, 110): half on the canvas.
	c.SetPoints([]rasterlab.GridPoint{rasterlab.Pt(2, 0), rasterlab.Pt(3, 0), rasterlab.Pt(0, 0)})
	if got := c.Visible(); got != 2 {
		t.Errorf("Visible() = %d, want 2", got)
	}
}

func TestSetPointsCopies(t *testing.T) {
	c := New(100, 100)
	in := []rasterlab.GridPoint{rasterlab.Pt(1, 1)}
	c.SetPoints(in)
	in[0] = rasterlab.Pt(9, 9)
	if got := c.Points()[0]; got != rasterlab.Pt(1, 1) {
		t.Errorf("Points()[0] = %v after mutating the input, want (1,1)", got)
	}

	out := c.Points()
	out[0] = rasterlab.Pt(7, 7)
	if got := c.Points()[0]; got != rasterlab.Pt(1, 1) {
		t.Errorf("Points()[0] = %v after mutating the result, want (1,1)", got)
	}
}

func TestLabels(t *testing.T) {
	xLabel := image.Rect(575, 283, 600, 297)

	on := New(600, 600).Render()
	if countDark(on, xLabel) == 0 {
		t.Error("X label not drawn with labels enabled")
	}

	off := New(600, 600, WithLabels(false)).Render()
	if n := countDark(off, xLabel); n != 0 {
		t.Errorf("%d dark pixels in the X label area with labels disabled", n)
	}
}

func TestCaption(t *testing.T) {
	area := image.Rect(0, 0, 150, 30)

	plain := New(600, 600).Render()
	if n := countDark(plain, area); n != 0 {
		t.Fatalf("%d dark pixels in the caption area without a caption", n)
	}

	c := New(600, 600, WithLabels(false), WithCaption("Time: 1200 ns"))
	if countDark(c.Render(), area) == 0 {
		t.Error("caption not drawn")
	}

	second := image.Rect(0, 30, 150, 50)
	if n := countDark(c.Render(), second); n != 0 {
		t.Errorf("%d dark pixels below a one-line caption", n)
	}
	c.SetCaption("Time: 1200 ns\n11 points")
	if countDark(c.Render(), second) == 0 {
		t.Error("second caption line not drawn")
	}

	c.SetCaption("")
	if n := countDark(c.Render(), area); n != 0 {
		t.Errorf("%d dark pixels after clearing the caption", n)
	}
}

func TestWithPalettePartial(t *testing.T) {
	c := New(100, 100, WithLabels(false), WithPalette(Palette{Cell: red}))
	c.SetPoints([]rasterlab.GridPoint{rasterlab.Pt(0, 0)})
	pm := c.Render()

	if got := pm.GetPixel(55, 45); got != red {
		t.Errorf("cell pixel = %v, want %v", got, red)
	}
	if got := pm.GetPixel(80, 20); got != white {
		t.Errorf("background pixel = %v, want default white", got)
	}
}

func TestResize(t *testing.T) {
	c := New(100, 100)
	pm := c.Render()
	c.Resize(100, 100)
	if c.Render() != pm {
		t.Error("Resize to the same size replaced the pixmap")
	}
	c.Resize(200, 50)
	if c.Width() != 200 || c.Height() != 50 {
		t.Errorf("size after Resize = %dx%d, want 200x50", c.Width(), c.Height())
	}
	if got := c.ToScreen(rasterlab.Pt(0, 0)); got != image.Pt(100, 5) {
		t.Errorf("ToScreen((0,0)) after Resize = %v, want (100,5)", got)
	}
}

func TestRenderLogs(t *testing.T) {
	orig := rasterlab.Logger()
	t.Cleanup(func() { rasterlab.SetLogger(orig) })

	var buf bytes.Buffer
	rasterlab.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := New(50, 50, WithLabels(false))
	c.SetPoints(rasterlab.BresenhamLine(0, 0, 3, 3))
	c.Render()

	if !strings.Contains(buf.String(), "grid: render") || !strings.Contains(buf.String(), "points=4") {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func BenchmarkRender(b *testing.B) {
	c := New(600, 600)
	c.SetPoints(rasterlab.BresenhamCircle(0, 0, 12))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Render()
	}
}
