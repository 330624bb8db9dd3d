package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

// TestLoadDefaults verifies defaults with an empty environment
func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.WindowWidth != 1100 || cfg.WindowHeight != 760 {
		t.Errorf("Expected window 1100x760, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TPS != 60 {
		t.Errorf("Expected TPS 60, got %d", cfg.TPS)
	}
	if cfg.Debug {
		t.Error("Expected Debug=false by default")
	}
	if cfg.Sound == nil {
		t.Fatal("Expected non-nil sound config")
	}
	if !cfg.Sound.Enabled {
		t.Error("Expected sound enabled by default")
	}
	if cfg.Sound.ClickFile != "" {
		t.Errorf("Expected empty click file, got %q", cfg.Sound.ClickFile)
	}
	if cfg.Sound.Volume != 0.4 {
		t.Errorf("Expected volume 0.4, got %f", cfg.Sound.Volume)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"WHEEL_WINDOW_WIDTH": "800",
		"WHEEL_TPS":          "30",
		"WHEEL_SOUND":        "false",
		"WHEEL_CLICK_FILE":   "/tmp/click.wav",
		"WHEEL_VOLUME":       "3",
		"WHEEL_DEBUG":        "true",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.WindowWidth != 800 {
		t.Errorf("Expected width 800, got %d", cfg.WindowWidth)
	}
	if cfg.TPS != 30 {
		t.Errorf("Expected TPS 30, got %d", cfg.TPS)
	}
	if cfg.Sound.Enabled {
		t.Error("Expected sound disabled")
	}
	if cfg.Sound.ClickFile != "/tmp/click.wav" {
		t.Errorf("Unexpected click file %q", cfg.Sound.ClickFile)
	}
	if cfg.Sound.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Sound.Volume)
	}
	if !cfg.Debug {
		t.Error("Expected Debug=true")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"zero tps":     {"WHEEL_TPS": "0"},
		"bad width":    {"WHEEL_WINDOW_WIDTH": "-1"},
		"not a number": {"WHEEL_WINDOW_HEIGHT": "tall"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatal("Expected error")
			}
		})
	}
}

func TestDefaultsWithinRanges(t *testing.T) {
	if DefaultSegments < MinSegments || DefaultSegments > MaxSegments {
		t.Errorf("default segments %d out of range", DefaultSegments)
	}
	if DefaultSpinRate < MinSpinRate || DefaultSpinRate > MaxSpinRate {
		t.Errorf("default spin rate %f out of range", DefaultSpinRate)
	}
	if DefaultDiameter < MinDiameter || DefaultDiameter > MaxDiameter {
		t.Errorf("default diameter %d out of range", DefaultDiameter)
	}
	if DefaultColorCount < MinColorCount || DefaultColorCount > MaxColorCount {
		t.Errorf("default color count %d out of range", DefaultColorCount)
	}
	if MaxDiameter > WheelBoxSize {
		t.Errorf("max diameter %d exceeds wheel box %d", MaxDiameter, WheelBoxSize)
	}
}
