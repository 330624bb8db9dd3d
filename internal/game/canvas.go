package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas is the on-screen wheel surface.
type ebitenCanvas struct {
	img      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *ebitenCanvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ebitenCanvas) Resize(w, h int) {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *ebitenCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *ebitenCanvas) FillWedge(cx, cy, radius, start, end float64, clr color.Color) {
	if c.img == nil {
		return
	}
	var p vector.Path
	p.MoveTo(float32(cx), float32(cy))
	p.Arc(float32(cx), float32(cy), float32(radius), float32(start), float32(end), vector.Clockwise)
	p.Close()
	c.vertices, c.indices = fillPath(c.img, &p, clr, c.vertices[:0], c.indices[:0])
}

// fillPath fills p with a solid colour, reusing the vertex buffers.
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	vs, is = p.AppendVerticesAndIndicesForFilling(vs, is)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
	return vs, is
}
