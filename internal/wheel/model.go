package wheel

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/color-wheel/internal/config"
	"github.com/iburimskiy/color-wheel/internal/palette"
)

// Params are the user-adjustable wheel settings.
type Params struct {
	Segments   int
	SpinRate   float64 // revolutions per second
	Diameter   int
	ColorCount int
	Paused     bool
}

// Model owns Params and the per-segment colour assignment. Every mutation
// goes through a setter that clamps to the control ranges.
type Model struct {
	params   Params
	colors   []color.Color
	revision uint64
}

func NewModel() *Model {
	return &Model{
		params: Params{
			Segments:   config.DefaultSegments,
			SpinRate:   config.DefaultSpinRate,
			Diameter:   config.DefaultDiameter,
			ColorCount: config.DefaultColorCount,
		},
		colors: palette.GenerateN(config.DefaultColorCount),
	}
}

func (m *Model) Params() Params { return m.params }

// Colors returns a copy of the colour assignment.
func (m *Model) Colors() []color.Color {
	return append([]color.Color(nil), m.colors...)
}

// Color returns entry i, or nil when out of range.
func (m *Model) Color(i int) color.Color {
	if i < 0 || i >= len(m.colors) {
		return nil
	}
	return m.colors[i]
}

func (m *Model) NumColors() int { return len(m.colors) }

// Revision increases on every effective change.
func (m *Model) Revision() uint64 { return m.revision }

// Frame combines the current parameters with angle.
func (m *Model) Frame(angle float64) Frame {
	return Frame{
		Angle:    angle,
		Segments: m.params.Segments,
		Colors:   m.Colors(),
		Diameter: m.params.Diameter,
	}
}

func (m *Model) SetSegments(n int) {
	n = clampInt(n, config.MinSegments, config.MaxSegments)
	if n != m.params.Segments {
		m.params.Segments = n
		m.revision++
	}
}

// SetSpinRate snaps r to the slider step.
func (m *Model) SetSpinRate(r float64) {
	if math.IsNaN(r) {
		return
	}
	r = math.Round(r/config.SpinRateStep) / (1 / config.SpinRateStep)
	r = math.Max(config.MinSpinRate, math.Min(config.MaxSpinRate, r))
	if r != m.params.SpinRate {
		m.params.SpinRate = r
		m.revision++
	}
}

func (m *Model) SetDiameter(d int) {
	d = clampInt(d, config.MinDiameter, config.MaxDiameter)
	if d != m.params.Diameter {
		m.params.Diameter = d
		m.revision++
	}
}

// SetColorCount also replaces the assignment with a fresh palette,
// discarding manual edits.
func (m *Model) SetColorCount(n int) {
	n = clampInt(n, config.MinColorCount, config.MaxColorCount)
	if n == m.params.ColorCount {
		return
	}
	m.params.ColorCount = n
	m.colors = palette.GenerateN(n)
	m.revision++
}

// SetColor replaces entry i. Out-of-range indices are ignored.
func (m *Model) SetColor(i int, c color.Color) {
	if i < 0 || i >= len(m.colors) {
		return
	}
	if c == nil {
		c = palette.Black
	}
	r, g, b, _ := c.RGBA()
	m.colors[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
	m.revision++
}

// Randomize draws one colour per segment from the current palette.
func (m *Model) Randomize(rng *rand.Rand) {
	m.colors = palette.Randomize(m.params.ColorCount, m.params.Segments, rng)
	m.revision++
}

func (m *Model) TogglePause() {
	m.params.Paused = !m.params.Paused
	m.revision++
}

// PauseLabel is the caption of the pause button.
func (m *Model) PauseLabel() string {
	if m.params.Paused {
		return "Resume"
	}
	return "Pause"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
