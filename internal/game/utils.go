package game

import (
	"fmt"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sliderValue maps a cursor x over a track to a value snapped to step.
func sliderValue(x, trackX, trackW, min, max, step float64) float64 {
	if trackW <= 0 {
		return min
	}
	v := min + clamp01((x-trackX)/trackW)*(max-min)
	if step > 0 {
		v = min + math.Round((v-min)/step)*step
	}
	return math.Max(min, math.Min(max, v))
}

// sliderRatio is the knob position of v on a min..max track.
func sliderRatio(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return clamp01((v - min) / (max - min))
}

func formatInt(v float64) string { return fmt.Sprintf("%d", int(math.Round(v))) }

func formatRate(v float64) string { return fmt.Sprintf("%.1f rev/s", v) }

func formatPixels(v float64) string { return fmt.Sprintf("%dpx", int(math.Round(v))) }

// formatDegrees formats an angle in radians as whole degrees
func formatDegrees(rad float64) string {
	return fmt.Sprintf("%03d deg", int(math.Round(rad*180/math.Pi))%360)
}
