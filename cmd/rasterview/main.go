// Command rasterview shows the rasterization algorithms on an interactive
// grid.
//
// Keys: 1-4 or Tab select the algorithm, +/- change the scale, the arrows
// move the active handle, Space switches handles, D toggles duplicate
// removal and Esc quits.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/internal/locale"
	"github.com/gogpu/rasterlab/internal/viewer"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		lang    = flag.String("lang", "en", "interface language (en, ru)")
		verbose = flag.Bool("v", false, "log every redraw")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	rasterlab.SetLogger(logger)

	pr := locale.New(*lang)
	state := viewer.NewState(pr)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("rasterlab: " + pr.Algorithm(state.Algorithm()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(state, *width, *height)); err != nil {
		logger.Error("rasterview: run", "err", err)
		os.Exit(1)
	}
}
