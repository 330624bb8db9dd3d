// Package sound plays a short click whenever a wedge boundary passes the
// pointer.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/color-wheel/internal/config"
	"github.com/iburimskiy/color-wheel/internal/logging"
)

const (
	sampleRate = beep.SampleRate(44100)
	ringSize   = 4096

	// More clicks than this in one frame blur into noise
	maxClicksPerFrame = 3
	maxVoices         = 8
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Ticker owns the speaker chain mixer -> volume -> ctrl -> tap.
type Ticker struct {
	log    *logging.Logger
	click  *beep.Buffer
	mixer  *beep.Mixer
	volume *effects.Volume
	ctrl   *beep.Ctrl
	tap    *levelTap

	started bool
	paused  bool
}

// New prepares the click sample. The speaker is opened by Start.
func New(cfg *config.Sound, log *logging.Logger) (*Ticker, error) {
	click := synthClick(format)
	if cfg != nil && cfg.ClickFile != "" {
		loaded, err := loadClick(cfg.ClickFile, format)
		if err != nil {
			return nil, err
		}
		click = loaded
	}

	vol := 1.0
	if cfg != nil {
		vol = cfg.Volume
	}

	t := &Ticker{
		log:   log,
		click: click,
		mixer: &beep.Mixer{},
	}
	t.volume = &effects.Volume{Streamer: t.mixer, Base: 2}
	setGain(t.volume, vol)
	t.ctrl = &beep.Ctrl{Streamer: t.volume}
	t.tap = newLevelTap(t.ctrl, ringSize)
	return t, nil
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

// Start opens the audio device and begins streaming silence.
func (t *Ticker) Start() error {
	if t.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(t.tap)
	t.started = true
	t.log.Debugf("speaker started at %d Hz, click %d samples", sampleRate, t.click.Len())
	return nil
}

// Click queues n clicks, capped per frame.
func (t *Ticker) Click(n int) {
	if !t.started || n <= 0 {
		return
	}
	speaker.Lock()
	t.enqueue(n)
	speaker.Unlock()
}

func (t *Ticker) enqueue(n int) {
	if t.paused {
		return
	}
	if n > maxClicksPerFrame {
		n = maxClicksPerFrame
	}
	for i := 0; i < n && t.mixer.Len() < maxVoices; i++ {
		t.mixer.Add(t.click.Streamer(0, t.click.Len()))
	}
}

func (t *Ticker) SetPaused(paused bool) {
	if !t.started {
		t.paused = paused
		return
	}
	speaker.Lock()
	t.paused = paused
	t.ctrl.Paused = paused
	speaker.Unlock()
}

// Level is the recent output peak in [0, 1].
func (t *Ticker) Level() float64 {
	return math.Min(1, t.tap.peak(sampleRate.N(time.Second/60)))
}

func (t *Ticker) Close() {
	if !t.started {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
	t.started = false
}
