package wheel

import (
	"image/color"
	"math"
)

// View repaints a canvas only when the frame changed since the last paint.
type View struct {
	last   Frame
	dirty  bool
	paints int
}

func NewView() *View {
	return &View{dirty: true}
}

// Invalidate forces the next Refresh to repaint.
func (v *View) Invalidate() { v.dirty = true }

// Refresh renders f onto c if f differs from the last rendered frame.
// It reports whether a paint happened.
func (v *View) Refresh(c Canvas, f Frame) bool {
	if !v.dirty && v.last.Equal(f) {
		return false
	}
	painted := Render(c, f)
	v.last = cloneFrame(f)
	v.dirty = false
	if painted {
		v.paints++
	}
	return painted
}

// Paints counts renders performed by Refresh.
func (v *View) Paints() int { return v.paints }

func cloneFrame(f Frame) Frame {
	f.Colors = append([]color.Color(nil), f.Colors...)
	return f
}

// Crossings counts wedge boundaries that pass a fixed pointer while the wheel
// turns from angle from by advance radians.
func Crossings(from, advance float64, segments int) int {
	if segments <= 0 || advance <= 0 {
		return 0
	}
	step := 2 * math.Pi / float64(segments)
	return int(math.Floor((from+advance)/step) - math.Floor(from/step))
}
