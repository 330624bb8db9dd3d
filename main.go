package main

import (
	"context"
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/color-wheel/internal/config"
	"github.com/iburimskiy/color-wheel/internal/game"
	"github.com/iburimskiy/color-wheel/internal/logging"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.SetDebug(cfg.Debug)
	logger := logging.New("wheel")

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Colour Wheel - Space: Pause/Resume, R: Randomize, S: Snapshot, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	g := game.NewGame(cfg, logger)
	defer g.Close()

	logger.Infof("starting at %dx%d, %d tps", cfg.WindowWidth, cfg.WindowHeight, cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
