package bench

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fxbench/fps"
)

// DefaultHUDSize is the HUD font size in points.
const DefaultHUDSize = 36

// hudMargin is the distance of the text from the top-left corner.
const hudMargin = 4

// FormatAverage returns the HUD line for avg.
func FormatAverage(avg *fps.Average) string {
	return fmt.Sprintf("AVG FPS: %.2f", avg.Value())
}

// HUD draws a single line of text in the top-left corner of an image.
type HUD struct {
	face  font.Face
	color color.Color
}

// NewHUD creates a HUD using Go Regular at size points (72 DPI).
// A size <= 0 selects the 7x13 bitmap face.
func NewHUD(size float64) (*HUD, error) {
	h := &HUD{face: basicfont.Face7x13, color: color.Black}
	if size <= 0 {
		return h, nil
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("bench: parse HUD font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("bench: create HUD face: %w", err)
	}
	h.face = face
	return h, nil
}

// SetColor changes the text color.
func (h *HUD) SetColor(c color.Color) {
	h.color = c
}

// Draw writes text onto dst, baseline one ascent below the margin.
func (h *HUD) Draw(dst draw.Image, text string) {
	b := dst.Bounds()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(h.color),
		Face: h.face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X + hudMargin),
			Y: fixed.I(b.Min.Y+hudMargin) + h.face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// Close releases the font face.
func (h *HUD) Close() error {
	return h.face.Close()
}
