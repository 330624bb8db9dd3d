package wheel

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/color-wheel/internal/palette"
)

var (
	red    = color.RGBA{R: 0xff, A: 0xff}
	green  = color.RGBA{G: 0xff, A: 0xff}
	blue   = color.RGBA{B: 0xff, A: 0xff}
	yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
)

type wedge struct {
	start, end float64
	color      color.Color
}

// recordingCanvas logs the calls the renderer makes
type recordingCanvas struct {
	w, h    int
	resizes int
	clears  int
	wedges  []wedge
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }
func (c *recordingCanvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.resizes++
}
func (c *recordingCanvas) Clear() {
	c.clears++
	c.wedges = nil
}
func (c *recordingCanvas) FillWedge(cx, cy, radius, start, end float64, col color.Color) {
	c.wedges = append(c.wedges, wedge{start, end, col})
}

func mustHex(t *testing.T, s string) color.Color {
	t.Helper()
	c, err := palette.ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", s, err)
	}
	return c
}

func TestRenderFourWedgesInOrder(t *testing.T) {
	colors := []color.Color{mustHex(t, "#f00"), mustHex(t, "#0f0"), mustHex(t, "#00f"), mustHex(t, "#ff0")}
	c := &recordingCanvas{}
	if !Render(c, Frame{Angle: 0, Segments: 4, Colors: colors, Diameter: 400}) {
		t.Fatal("Render reported no paint")
	}
	if c.w != 400 || c.h != 400 {
		t.Fatalf("canvas %dx%d, want 400x400", c.w, c.h)
	}
	if len(c.wedges) != 4 {
		t.Fatalf("painted %d wedges, want 4", len(c.wedges))
	}
	for i, w := range c.wedges {
		wantStart := float64(i) * math.Pi / 2
		if math.Abs(w.start-wantStart) > 1e-9 || math.Abs(w.end-w.start-math.Pi/2) > 1e-9 {
			t.Errorf("wedge %d spans [%f, %f], want start %f width π/2", i, w.start, w.end, wantStart)
		}
		if w.color != colors[i] {
			t.Errorf("wedge %d color %v, want %v", i, w.color, colors[i])
		}
	}
}

func TestRenderResizesOnlyOnChange(t *testing.T) {
	c := &recordingCanvas{}
	f := Frame{Segments: 3, Colors: []color.Color{red}, Diameter: 300}
	Render(c, f)
	Render(c, f)
	if c.resizes != 1 {
		t.Fatalf("resizes = %d, want 1", c.resizes)
	}
	f.Diameter = 500
	Render(c, f)
	if c.resizes != 2 || c.w != 500 {
		t.Fatalf("resizes = %d size %d, want 2 / 500", c.resizes, c.w)
	}
	if c.clears != 3 {
		t.Fatalf("clears = %d, want 3", c.clears)
	}
}

func TestRenderModularColorsAndNilFallback(t *testing.T) {
	c := &recordingCanvas{}
	Render(c, Frame{Segments: 5, Colors: []color.Color{red, nil}, Diameter: 100})
	want := []color.Color{red, palette.Black, red, palette.Black, red}
	for i, w := range c.wedges {
		if w.color != want[i] {
			t.Errorf("wedge %d color %v, want %v", i, w.color, want[i])
		}
	}
}

func TestRenderNoOps(t *testing.T) {
	cases := map[string]Frame{
		"no segments": {Segments: 0, Colors: []color.Color{red}, Diameter: 100},
		"no colors":   {Segments: 4, Diameter: 100},
		"no diameter": {Segments: 4, Colors: []color.Color{red}},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			c := &recordingCanvas{}
			if Render(c, f) {
				t.Fatal("Render reported a paint")
			}
			if c.resizes != 0 || c.clears != 0 || len(c.wedges) != 0 {
				t.Fatalf("canvas touched: %+v", c)
			}
		})
	}
	if Render(nil, Frame{Segments: 4, Colors: []color.Color{red}, Diameter: 100}) {
		t.Fatal("Render on nil canvas reported a paint")
	}
}

func near(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	d := func(x, y uint32) bool {
		if x > y {
			return x-y <= 0x101
		}
		return y-x <= 0x101
	}
	return d(ar, br) && d(ag, bg) && d(ab, bb) && d(aa, ba)
}

// quadrantSample returns a pixel well inside the wedge centred at angle a
func quadrantSample(diameter int, a float64) (int, int) {
	r := float64(diameter) / 2
	return int(r + r/2*math.Cos(a)), int(r + r/2*math.Sin(a))
}

func TestRasterPaintsQuadrants(t *testing.T) {
	rc := NewRasterCanvas(0, 0)
	colors := []color.Color{red, green, blue, yellow}
	Render(rc, Frame{Segments: 4, Colors: colors, Diameter: 200})

	img := rc.Image()
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	for i, want := range colors {
		x, y := quadrantSample(200, float64(i)*math.Pi/2+math.Pi/4)
		if got := img.At(x, y); !near(got, want) {
			t.Errorf("wedge %d at (%d,%d) = %v, want %v", i, x, y, got, want)
		}
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("corner outside the wheel has alpha %d", a)
	}
}

func TestRasterRotation(t *testing.T) {
	rc := NewRasterCanvas(0, 0)
	Render(rc, Frame{Angle: math.Pi / 2, Segments: 4, Colors: []color.Color{red, green, blue, yellow}, Diameter: 200})
	// wedge 0 now covers 90°..180°, the lower-left quadrant
	x, y := quadrantSample(200, 3*math.Pi/4)
	if got := rc.Image().At(x, y); !near(got, red) {
		t.Fatalf("rotated wedge 0 at (%d,%d) = %v, want red", x, y, got)
	}
}

func TestRasterRenderIsIdempotent(t *testing.T) {
	f := Frame{Angle: 1.234, Segments: 7, Colors: palette.GenerateN(3), Diameter: 180}

	once := NewRasterCanvas(0, 0)
	Render(once, f)

	twice := NewRasterCanvas(0, 0)
	Render(twice, f)
	Render(twice, f)

	if !bytes.Equal(once.Image().Pix, twice.Image().Pix) {
		t.Fatal("second render changed pixels")
	}
}

func TestRasterNoGhosting(t *testing.T) {
	a := Frame{Angle: 0.3, Segments: 9, Colors: []color.Color{red, blue}, Diameter: 160}
	b := Frame{Angle: 2.1, Segments: 5, Colors: []color.Color{green, yellow, blue}, Diameter: 160}

	reused := NewRasterCanvas(0, 0)
	Render(reused, a)
	Render(reused, b)

	fresh := NewRasterCanvas(0, 0)
	Render(fresh, b)

	if !bytes.Equal(reused.Image().Pix, fresh.Image().Pix) {
		t.Fatal("previous frame leaked into the new one")
	}
}

func TestRasterZeroSegmentsLeavesSurface(t *testing.T) {
	rc := NewRasterCanvas(0, 0)
	Render(rc, Frame{Segments: 4, Colors: []color.Color{red, green}, Diameter: 120})
	before := append([]byte(nil), rc.Image().Pix...)

	if Render(rc, Frame{Segments: 0, Colors: []color.Color{blue}, Diameter: 120}) {
		t.Fatal("Render with zero segments reported a paint")
	}
	if !bytes.Equal(before, rc.Image().Pix) {
		t.Fatal("surface changed on zero-segment render")
	}

	blank := NewRasterCanvas(120, 120)
	Render(blank, Frame{Segments: 0, Colors: []color.Color{blue}, Diameter: 120})
	for _, p := range blank.Image().Pix {
		if p != 0 {
			t.Fatal("never-painted surface is not blank")
		}
	}
}

func TestFrameEqual(t *testing.T) {
	a := Frame{Angle: 1, Segments: 2, Colors: []color.Color{red, green}, Diameter: 100}
	b := a
	b.Colors = []color.Color{red, green}
	if !a.Equal(b) {
		t.Fatal("frames with equal values differ")
	}
	b.Colors[1] = blue
	if a.Equal(b) {
		t.Fatal("color change not detected")
	}
	c := a
	c.Angle = 2
	if a.Equal(c) {
		t.Fatal("angle change not detected")
	}
}
