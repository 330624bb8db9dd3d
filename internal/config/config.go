package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const (
	// Logical screen; ebiten scales it to the window.
	ScreenWidth  = 1560
	ScreenHeight = 1240

	// Wheel area
	WheelX       = 20
	WheelY       = 20
	WheelBoxSize = 1200

	// Control panel
	PanelX       = WheelX + WheelBoxSize + 20
	PanelY       = 40
	PanelWidth   = 300
	SliderHeight = 14
	RowSpacing   = 48
	ButtonHeight = 40
	SwatchSize   = 28
	SwatchGap    = 6
	SwatchCols   = 8
)

// Control ranges
const (
	MinSegments   = 0
	MaxSegments   = 32
	MinSpinRate   = 0.0
	MaxSpinRate   = 5.0
	SpinRateStep  = 0.1
	MinDiameter   = 100
	MaxDiameter   = 1200
	MinColorCount = 1
	MaxColorCount = 10
)

// Initial wheel parameters
const (
	DefaultSegments   = 16
	DefaultSpinRate   = 0.5
	DefaultDiameter   = 400
	DefaultColorCount = 2
)

// Config holds host settings read from the environment.
type Config struct {
	WindowWidth  int  `env:"WHEEL_WINDOW_WIDTH,default=1100"`
	WindowHeight int  `env:"WHEEL_WINDOW_HEIGHT,default=760"`
	TPS          int  `env:"WHEEL_TPS,default=60"`
	Debug        bool `env:"WHEEL_DEBUG,default=false"`

	Sound *Sound
}

type Sound struct {
	Enabled   bool    `env:"WHEEL_SOUND,default=true"`
	ClickFile string  `env:"WHEEL_CLICK_FILE"`
	Volume    float64 `env:"WHEEL_VOLUME,default=0.4"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads the configuration from l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, l); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("invalid tps %d", cfg.TPS)
	}
	if cfg.Sound.Volume < 0 {
		cfg.Sound.Volume = 0
	}
	if cfg.Sound.Volume > 1 {
		cfg.Sound.Volume = 1
	}
	return &cfg, nil
}
