package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/color-wheel/internal/clock"
	"github.com/iburimskiy/color-wheel/internal/config"
	"github.com/iburimskiy/color-wheel/internal/logging"
	"github.com/iburimskiy/color-wheel/internal/palette"
	"github.com/iburimskiy/color-wheel/internal/sound"
	"github.com/iburimskiy/color-wheel/internal/wheel"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	surfaceColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pointerColor    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

type game struct {
	log *logging.Logger
	now func() time.Time

	// wheel
	model  *wheel.Model
	frames *clock.FrameLoop
	clock  *clock.AnimationClock
	view   *wheel.View
	canvas *ebitenCanvas
	rng    *rand.Rand
	start  time.Time

	// audio
	ticker *sound.Ticker

	// controls
	segments   *slider
	spinRate   *slider
	diameter   *slider
	colorCount *slider
	pauseBtn   *button
	randomBtn  *button
	snapBtn    *button
	swatches   *swatchGrid

	// pointer path buffers
	vertices []ebiten.Vertex
	indices  []uint16

	// input edge detection
	prevKey map[ebiten.Key]bool

	// native dialogs
	dialogs    chan dialogResult
	dialogOpen bool

	// state
	notice  string
	lastErr error
}

// NewGame builds the wheel with its default parameters and starts the clock.
func NewGame(cfg *config.Config, log *logging.Logger) *game {
	g := &game{
		log:     log,
		now:     time.Now,
		model:   wheel.NewModel(),
		frames:  clock.NewFrameLoop(),
		view:    wheel.NewView(),
		canvas:  &ebitenCanvas{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		prevKey: map[ebiten.Key]bool{},
		dialogs: make(chan dialogResult, 1),
	}
	g.start = g.now()
	g.layoutControls()

	p := g.model.Params()
	g.clock = clock.New(g.frames, p.SpinRate)
	g.clock.SetPaused(p.Paused)
	g.clock.Start()

	if cfg.Sound != nil && cfg.Sound.Enabled {
		g.ticker = g.startTicker(cfg.Sound)
	}
	return g
}

func (g *game) startTicker(cfg *config.Sound) *sound.Ticker {
	t, err := sound.New(cfg, g.log)
	if err != nil {
		g.log.Errorf("click sound: %v", err)
		g.lastErr = err
		return nil
	}
	if err := t.Start(); err != nil {
		// No audio device: keep running silently
		g.log.Errorf("%v", err)
		return nil
	}
	return t
}

func (g *game) layoutControls() {
	x, w := float64(config.PanelX), float64(config.PanelWidth)
	y := float64(config.PanelY) + 20
	row := func() float64 {
		r := y
		y += config.RowSpacing
		return r
	}
	g.segments = &slider{label: "Segments", min: config.MinSegments, max: config.MaxSegments, step: 1, format: formatInt, x: x, y: row(), w: w}
	g.spinRate = &slider{label: "Spin Rate", min: config.MinSpinRate, max: config.MaxSpinRate, step: config.SpinRateStep, format: formatRate, x: x, y: row(), w: w}
	g.diameter = &slider{label: "Diameter", min: config.MinDiameter, max: config.MaxDiameter, step: 1, format: formatPixels, x: x, y: row(), w: w}
	g.colorCount = &slider{label: "Number of Colours", min: config.MinColorCount, max: config.MaxColorCount, step: 1, format: formatInt, x: x, y: row(), w: w}

	bx, by := config.PanelX, int(y)
	bw := (config.PanelWidth - 20) / 3
	g.pauseBtn = &button{x: bx, y: by, w: bw, h: config.ButtonHeight}
	g.randomBtn = &button{x: bx + bw + 10, y: by, w: bw, h: config.ButtonHeight}
	g.snapBtn = &button{x: bx + 2*(bw+10), y: by, w: bw, h: config.ButtonHeight}

	g.swatches = &swatchGrid{x: config.PanelX, y: by + config.ButtonHeight + 30, hovered: -1}
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.drainDialogs()

	mouseX, mouseY := ebiten.CursorPosition()
	p := g.model.Params()

	if v, ok := g.segments.update(mouseX, mouseY, float64(p.Segments)); ok {
		g.model.SetSegments(int(v))
	}
	if v, ok := g.spinRate.update(mouseX, mouseY, p.SpinRate); ok {
		g.model.SetSpinRate(v)
	}
	if v, ok := g.diameter.update(mouseX, mouseY, float64(p.Diameter)); ok {
		g.model.SetDiameter(int(v))
	}
	if v, ok := g.colorCount.update(mouseX, mouseY, float64(p.ColorCount)); ok {
		g.model.SetColorCount(int(v))
	}

	if g.pauseBtn.update(mouseX, mouseY) || justPressed(ebiten.KeySpace) {
		g.model.TogglePause()
	}
	if g.randomBtn.update(mouseX, mouseY) || justPressed(ebiten.KeyR) {
		g.model.Randomize(g.rng)
	}
	if g.snapBtn.update(mouseX, mouseY) || justPressed(ebiten.KeyS) {
		g.saveSnapshot()
	}
	if i := g.swatches.update(mouseX, mouseY, g.model.NumColors()); i >= 0 {
		g.pickColor(i)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.syncClock()
	g.tick()
	return nil
}

// syncClock pushes spin rate and pause state to the clock and the ticker.
func (g *game) syncClock() {
	p := g.model.Params()
	g.clock.SetSpinRate(p.SpinRate)
	if g.clock.Paused() != p.Paused {
		g.clock.SetPaused(p.Paused)
		if g.ticker != nil {
			g.ticker.SetPaused(p.Paused)
		}
	}
}

// tick fires one frame of the scheduler and clicks for every wedge boundary
// that passed the pointer.
func (g *game) tick() {
	before := g.clock.Angle()
	ts := float64(g.now().Sub(g.start)) / float64(time.Millisecond)
	g.frames.Fire(ts)

	advance := clock.Wrap(g.clock.Angle() - before)
	// Pointer sits at the top: measure from -π/2
	from := clock.Wrap(before + math.Pi/2)
	if n := wheel.Crossings(from, advance, g.model.Params().Segments); n > 0 {
		if g.ticker != nil {
			g.ticker.Click(n)
		}
		g.log.Debugf("%d boundary crossing(s) at %s", n, formatDegrees(g.clock.Angle()))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	p := g.model.Params()
	g.view.Refresh(g.canvas, g.model.Frame(g.clock.Angle()))

	// Wheel surface, centred in its box
	off := float64(config.WheelBoxSize-p.Diameter) / 2
	wx, wy := float64(config.WheelX)+off, float64(config.WheelY)+off
	d := float32(p.Diameter)
	vector.DrawFilledRect(screen, float32(wx), float32(wy), d, d, surfaceColor, false)
	if g.canvas.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(wx, wy)
		screen.DrawImage(g.canvas.img, op)
	}
	g.drawPointer(screen, wx+float64(p.Diameter)/2, wy)

	g.drawControls(screen)

	status := fmt.Sprintf("%s | angle %s | Space: pause, R: randomize, S: snapshot, Esc/Q: quit",
		g.clock.State(), formatDegrees(g.clock.Angle()))
	if g.notice != "" {
		status += " | " + g.notice
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.WheelX, config.ScreenHeight-16)
}

// drawPointer paints the marker the wheel clicks against; it brightens
// with the click level.
func (g *game) drawPointer(screen *ebiten.Image, x, top float64) {
	level := 0.0
	if g.ticker != nil {
		level = g.ticker.Level()
	}
	clr := pointerColor
	if level > 0 {
		k := clamp01(level * 2)
		clr = color.RGBA{
			R: uint8(float64(pointerColor.R) + (255-float64(pointerColor.R))*k),
			G: uint8(float64(pointerColor.G) * (1 - k*0.6)),
			B: uint8(float64(pointerColor.B) * (1 - k*0.8)),
			A: 255,
		}
	}

	var path vector.Path
	path.MoveTo(float32(x-10), float32(top-14))
	path.LineTo(float32(x+10), float32(top-14))
	path.LineTo(float32(x), float32(top+8))
	path.Close()
	g.vertices, g.indices = fillPath(screen, &path, clr, g.vertices[:0], g.indices[:0])
}

func (g *game) drawControls(screen *ebiten.Image) {
	p := g.model.Params()
	ebitenutil.DebugPrintAt(screen, "Colour Wheel", config.PanelX, config.PanelY-20)

	g.segments.draw(screen, float64(p.Segments))
	g.spinRate.draw(screen, p.SpinRate)
	g.diameter.draw(screen, float64(p.Diameter))
	g.colorCount.draw(screen, float64(p.ColorCount))

	g.pauseBtn.draw(screen, g.model.PauseLabel())
	g.randomBtn.draw(screen, "Randomize")
	g.snapBtn.draw(screen, "Snapshot")

	colors := g.model.Colors()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Colours (%d) - click to edit", len(colors)), g.swatches.x, g.swatches.y-18)
	g.swatches.draw(screen, colors, func(i int) string {
		return fmt.Sprintf("#%d %s", i+1, palette.Hex(colors[i]))
	})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close cancels the frame subscription and releases the audio device.
func (g *game) Close() {
	g.clock.Stop()
	if g.ticker != nil {
		g.ticker.Close()
	}
}
