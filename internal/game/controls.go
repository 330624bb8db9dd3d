package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/color-wheel/internal/config"
)

var (
	trackColor  = color.RGBA{R: 25, G: 30, B: 40, A: 255}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	fillColor   = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	knobColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// slider is a horizontal range input.
type slider struct {
	label    string
	min, max float64
	step     float64
	format   func(float64) string

	x, y, w  float64
	dragging bool
}

func (s *slider) hit(mx, my int) bool {
	x, y := float64(mx), float64(my)
	return x >= s.x-6 && x <= s.x+s.w+6 && y >= s.y-6 && y <= s.y+config.SliderHeight+6
}

// update returns the new value while the knob is dragged.
func (s *slider) update(mx, my int, value float64) (float64, bool) {
	if s.hit(mx, my) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return value, false
	}
	v := sliderValue(float64(mx), s.x, s.w, s.min, s.max, s.step)
	return v, v != value
}

func (s *slider) draw(screen *ebiten.Image, value float64) {
	ebitenutil.DebugPrintAt(screen, s.label+": "+s.format(value), int(s.x), int(s.y)-18)

	x, y, w, h := float32(s.x), float32(s.y), float32(s.w), float32(config.SliderHeight)
	vector.DrawFilledRect(screen, x, y, w, h, trackColor, false)
	fw := float32(sliderRatio(value, s.min, s.max)) * w
	if fw > 0 {
		vector.DrawFilledRect(screen, x, y, fw, h, fillColor, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)
	vector.DrawFilledCircle(screen, x+fw, y+h/2, h*0.7, knobColor, true)
}

// button is a clickable labelled rectangle.
type button struct {
	x, y, w, h int
	hovered    bool
	pressed    bool
}

// update reports a completed click.
func (b *button) update(mx, my int) bool {
	b.hovered = mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	clicked := false
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image, text string) {
	var bg color.Color
	if b.pressed {
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bg = fillColor
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	textWidth := len(text) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, text, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
}

// swatchGrid lays out one square per colour-assignment entry.
type swatchGrid struct {
	x, y    int
	hovered int
}

func (s *swatchGrid) rect(i int) (x, y, size int) {
	col, row := i%config.SwatchCols, i/config.SwatchCols
	step := config.SwatchSize + config.SwatchGap
	return s.x + col*step, s.y + row*step, config.SwatchSize
}

// update returns the index clicked, or -1.
func (s *swatchGrid) update(mx, my, n int) int {
	s.hovered = -1
	for i := 0; i < n; i++ {
		x, y, size := s.rect(i)
		if mx >= x && mx < x+size && my >= y && my < y+size {
			s.hovered = i
			break
		}
	}
	if s.hovered >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return s.hovered
	}
	return -1
}

func (s *swatchGrid) draw(screen *ebiten.Image, colors []color.Color, label func(int) string) {
	for i, c := range colors {
		x, y, size := s.rect(i)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), c, false)
		stroke := float32(1)
		if i == s.hovered {
			stroke = 3
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), stroke, borderColor, false)
	}
	if s.hovered >= 0 && s.hovered < len(colors) {
		_, y, size := s.rect(len(colors) - 1)
		ebitenutil.DebugPrintAt(screen, label(s.hovered), s.x, y+size+8)
	}
}
