// Package palette builds the hue-spaced base colours of the wheel and the
// randomized per-segment assignments drawn from them.
package palette

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Black is the fallback colour for invalid counts and missing entries.
var Black color.Color = color.RGBA{A: 0xff}

// Hue returns the hue in degrees of the i-th of n evenly spaced colours.
func Hue(i, n int) float64 {
	return float64(i) * 360 / float64(n)
}

// Generate returns count colours at full saturation and 50% lightness with
// hues evenly spaced around the circle. A count that is not finite or below 1
// yields a single black entry.
func Generate(count float64) []color.Color {
	if math.IsNaN(count) || math.IsInf(count, 0) || count < 1 {
		return []color.Color{Black}
	}
	n := int(count)
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		colors[i] = fromHSL(Hue(i, n))
	}
	return colors
}

// GenerateN is Generate for integer counts.
func GenerateN(n int) []color.Color {
	return Generate(float64(n))
}

func fromHSL(hue float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, 1, 0.5).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Randomize returns segments colours drawn from Generate(count), never
// repeating the previous pick when the palette offers an alternative.
// A nil rng uses the math/rand global source.
func Randomize(count, segments int, rng *rand.Rand) []color.Color {
	if segments <= 0 {
		return []color.Color{}
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	base := GenerateN(count)
	out := make([]color.Color, 0, segments)
	choices := make([]color.Color, 0, len(base))
	for i := 0; i < segments; i++ {
		choices = choices[:0]
		for _, c := range base {
			if i > 0 && c == out[i-1] {
				continue
			}
			choices = append(choices, c)
		}
		if len(choices) == 0 {
			choices = append(choices, base...)
		}
		out = append(out, choices[intn(len(choices))])
	}
	return out
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	if c == nil {
		c = Black
	}
	r, g, b, _ := c.RGBA()
	cf := colorful.Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
	return cf.Hex()
}

// ParseHex parses #rgb or #rrggbb into an opaque colour.
func ParseHex(s string) (color.Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
