package game

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/color-wheel/internal/palette"
	"github.com/iburimskiy/color-wheel/internal/wheel"
)

var snapshotBackground = color.White

// dialogResult carries a native dialog outcome back to the game loop.
type dialogResult struct {
	apply  func(g *game)
	status string
	err    error
}

// openDialog runs fn off the game loop; at most one dialog is open.
func (g *game) openDialog(fn func() dialogResult) {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() { g.dialogs <- fn() }()
}

// drainDialogs applies finished dialog results on the game loop.
func (g *game) drainDialogs() {
	for {
		select {
		case res := <-g.dialogs:
			g.dialogOpen = false
			if res.err != nil {
				g.lastErr = res.err
				g.log.Errorf("%v", res.err)
				continue
			}
			if res.apply != nil {
				res.apply(g)
			}
			if res.status != "" {
				g.notice = res.status
				g.lastErr = nil
			}
		default:
			return
		}
	}
}

func (g *game) pickColor(i int) {
	current := g.model.Color(i)
	if current == nil {
		return
	}
	g.openDialog(func() dialogResult {
		c, err := zenity.SelectColor(
			zenity.Title(fmt.Sprintf("Segment colour %d", i+1)),
			zenity.Color(current),
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return dialogResult{}
			}
			return dialogResult{err: fmt.Errorf("colour dialog: %w", err)}
		}
		return dialogResult{
			apply:  func(g *game) { g.model.SetColor(i, c) },
			status: fmt.Sprintf("Colour %d set to %s", i+1, palette.Hex(c)),
		}
	})
}

func (g *game) saveSnapshot() {
	frame := g.model.Frame(g.clock.Angle())
	if frame.Empty() {
		g.lastErr = wheel.ErrEmptyFrame
		return
	}
	g.openDialog(func() dialogResult {
		path, err := zenity.SelectFileSave(
			zenity.Title("Save Wheel Snapshot"),
			zenity.Filename("wheel.png"),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "PNG image",
				Patterns: []string{"*.png"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return dialogResult{}
			}
			return dialogResult{err: fmt.Errorf("save dialog: %w", err)}
		}
		if err := writeSnapshot(path, frame); err != nil {
			return dialogResult{err: err}
		}
		return dialogResult{status: "Saved " + path}
	})
}

func writeSnapshot(path string, frame wheel.Frame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	return wheel.EncodePNG(f, frame, snapshotBackground)
}
