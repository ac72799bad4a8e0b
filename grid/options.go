package grid

import "image/color"

// Cell size bounds in pixels.
const (
	MinCellSize     = 5
	MaxCellSize     = 50
	DefaultCellSize = 20
)

// Palette holds the colors used by Canvas.Render.
type Palette struct {
	Background color.Color
	Grid       color.Color
	Axis       color.Color
	Cell       color.Color
	Text       color.Color
}

// DefaultPalette returns blue cells on a white background with light grey
// grid lines and black axes.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Grid:       color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
		Axis:       color.Black,
		Cell:       color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
		Text:       color.Black,
	}
}

// Option configures a Canvas during creation.
//
// Example:
//
//	c := grid.New(600, 600, grid.WithCellSize(10), grid.WithCaption("DDA"))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	cellSize int
	palette  Palette
	labels   bool
	caption  string
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		cellSize: DefaultCellSize,
		palette:  DefaultPalette(),
		labels:   true,
	}
}

// WithCellSize sets the size of one grid cell in pixels. Values outside
// [MinCellSize, MaxCellSize] are clamped.
func WithCellSize(px int) Option {
	return func(o *canvasOptions) {
		o.cellSize = clampCellSize(px)
	}
}

// WithPalette replaces the default colors. Nil entries keep their default.
func WithPalette(p Palette) Option {
	return func(o *canvasOptions) {
		def := DefaultPalette()
		o.palette = Palette{
			Background: orDefault(p.Background, def.Background),
			Grid:       orDefault(p.Grid, def.Grid),
			Axis:       orDefault(p.Axis, def.Axis),
			Cell:       orDefault(p.Cell, def.Cell),
			Text:       orDefault(p.Text, def.Text),
		}
	}
}

// WithLabels enables or disables the axis letters and origin mark.
func WithLabels(on bool) Option {
	return func(o *canvasOptions) {
		o.labels = on
	}
}

// WithCaption sets text drawn in the top-left corner, one line per
// newline-separated part.
func WithCaption(s string) Option {
	return func(o *canvasOptions) {
		o.caption = s
	}
}

func clampCellSize(px int) int {
	return min(max(px, MinCellSize), MaxCellSize)
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
