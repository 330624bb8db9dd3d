package wheel

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Arc flattening: at most this many radians per polygon edge
const arcStep = math.Pi / 90

// RasterCanvas is a Canvas backed by an in-memory RGBA image.
type RasterCanvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func NewRasterCanvas(w, h int) *RasterCanvas {
	rc := &RasterCanvas{}
	rc.Resize(w, h)
	return rc
}

func (rc *RasterCanvas) Size() (int, int) {
	b := rc.img.Bounds()
	return b.Dx(), b.Dy()
}

func (rc *RasterCanvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	rc.img = image.NewRGBA(image.Rect(0, 0, w, h))
	rc.ras = vector.NewRasterizer(w, h)
}

func (rc *RasterCanvas) Clear() {
	draw.Draw(rc.img, rc.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (rc *RasterCanvas) FillWedge(cx, cy, radius, start, end float64, c color.Color) {
	w, h := rc.Size()
	if w == 0 || h == 0 || end <= start {
		return
	}
	rc.ras.Reset(w, h)
	rc.ras.MoveTo(float32(cx), float32(cy))
	n := int(math.Ceil((end - start) / arcStep))
	if n < 1 {
		n = 1
	}
	for k := 0; k <= n; k++ {
		a := start + (end-start)*float64(k)/float64(n)
		rc.ras.LineTo(float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a)))
	}
	rc.ras.ClosePath()
	rc.ras.Draw(rc.img, rc.img.Bounds(), image.NewUniform(c), image.Point{})
}

// Image exposes the painted pixels.
func (rc *RasterCanvas) Image() *image.RGBA { return rc.img }
