package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

const (
	clickFreq     = 1800.0
	clickDuration = 25 * time.Millisecond
	clickDecay    = 180.0 // 1/s
	clickGain     = 0.8
)

var ErrUnsupportedFormat = errors.New("unsupported audio file type")

// tone is a sine burst with exponential decay.
type tone struct {
	freq     float64
	decay    float64
	gain     float64
	rate     beep.SampleRate
	position int
	duration int
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{
		freq:     freq,
		decay:    clickDecay,
		gain:     clickGain,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		t := float64(o.position) / float64(o.rate)
		val := o.gain * math.Exp(-o.decay*t) * math.Sin(2*math.Pi*o.freq*t)
		samples[i][0] = val
		samples[i][1] = val
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// synthClick renders the default click into a buffer.
func synthClick(format beep.Format) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(newTone(clickFreq, clickDuration, format.SampleRate))
	return buf
}

// loadClick decodes a wav, mp3 or flac file into a buffer at format's
// sample rate.
func loadClick(path string, format beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open click file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		src      beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, src, err = wav.Decode(f)
	case ".mp3":
		streamer, src, err = mp3.Decode(f)
	case ".flac":
		streamer, src, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if src.SampleRate != format.SampleRate {
		s = beep.Resample(4, src.SampleRate, format.SampleRate, streamer)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}
