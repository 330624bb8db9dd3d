package wheel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

var ErrEmptyFrame = errors.New("wheel: nothing to draw")

// Snapshot renders f over a bg-filled square and returns the image.
func Snapshot(f Frame, bg color.Color) (*image.RGBA, error) {
	rc := NewRasterCanvas(f.Diameter, f.Diameter)
	if !Render(rc, f) {
		return nil, ErrEmptyFrame
	}
	out := image.NewRGBA(rc.Image().Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), rc.Image(), image.Point{}, draw.Over)
	return out, nil
}

// EncodePNG writes a snapshot of f as PNG.
func EncodePNG(w io.Writer, f Frame, bg color.Color) error {
	img, err := Snapshot(f, bg)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
