package bench

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fxbench/render"
)

// WriteSnapshot encodes the canvas as PNG at its style size. A drawing
// buffer larger than the style box (pixel ratio > 1) is scaled down.
func WriteSnapshot(w io.Writer, c *render.Canvas) error {
	src := c.Image()
	sw, sh := c.StyleSize()

	var img image.Image = src
	if sw > 0 && sh > 0 && (sw != c.Width() || sh != c.Height()) {
		dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		img = dst
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("bench: encode snapshot: %w", err)
	}
	return nil
}

// SaveSnapshot writes the canvas to a PNG file.
func SaveSnapshot(path string, c *render.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("bench: close snapshot: %w", cerr)
		}
	}()
	return WriteSnapshot(f, c)
}
