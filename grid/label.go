package grid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelSize is the label font size in points at 72 DPI, i.e. in pixels.
const labelSize = 12

// parseLabelFont parses the embedded Go Regular font once. The parsed font
// is shared; faces built from it are not, since a font.Face is not safe for
// concurrent use.
var parseLabelFont = sync.OnceValues(func() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to parse label font: %w", err)
	}
	return f, nil
})

// newLabelFace creates a face for axis labels and captions.
func newLabelFace() (font.Face, error) {
	f, err := parseLabelFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("grid: failed to create label face: %w", err)
	}
	return face, nil
}

// drawText draws s with its baseline origin at (x, y).
func drawText(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// textWidth returns the advance of s in whole pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
