// Package wheel paints the segmented colour wheel and holds the state the
// controls edit.
package wheel

import (
	"image/color"
	"math"

	"github.com/iburimskiy/color-wheel/internal/palette"
)

// Canvas is a square raster surface the wheel is painted on.
type Canvas interface {
	Size() (w, h int)
	// Resize changes the surface dimensions, discarding its content.
	Resize(w, h int)
	Clear()
	// FillWedge fills the sector between start and end (radians, clockwise
	// on screen) of the circle centred at (cx, cy).
	FillWedge(cx, cy, radius, start, end float64, c color.Color)
}

// Frame is everything a render depends on.
type Frame struct {
	Angle    float64
	Segments int
	Colors   []color.Color
	Diameter int
}

// Equal compares frames by value, colours element-wise.
func (f Frame) Equal(o Frame) bool {
	if f.Angle != o.Angle || f.Segments != o.Segments || f.Diameter != o.Diameter || len(f.Colors) != len(o.Colors) {
		return false
	}
	for i := range f.Colors {
		if f.Colors[i] != o.Colors[i] {
			return false
		}
	}
	return true
}

// Empty reports whether rendering f would paint nothing.
func (f Frame) Empty() bool {
	return f.Segments <= 0 || len(f.Colors) == 0 || f.Diameter <= 0
}

// ColorAt returns the fill of wedge i.
func (f Frame) ColorAt(i int) color.Color {
	if len(f.Colors) == 0 {
		return palette.Black
	}
	c := f.Colors[i%len(f.Colors)]
	if c == nil {
		return palette.Black
	}
	return c
}

// Render clears c and paints f onto it. It reports whether anything was
// painted; with no segments, no colours or no canvas the surface is left
// untouched.
func Render(c Canvas, f Frame) bool {
	if c == nil || f.Empty() {
		return false
	}
	if w, h := c.Size(); w != f.Diameter || h != f.Diameter {
		c.Resize(f.Diameter, f.Diameter)
	}
	c.Clear()

	radius := float64(f.Diameter) / 2
	step := 2 * math.Pi / float64(f.Segments)
	for i := 0; i < f.Segments; i++ {
		start := f.Angle + float64(i)*step
		c.FillWedge(radius, radius, radius, start, start+step, f.ColorAt(i))
	}
	return true
}
