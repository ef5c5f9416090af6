// Mandelzoom is an interactive Mandelbrot explorer. Left click or tap zooms
// in, right click zooms out, drag pans, holding a button or finger zooms
// continuously, the wheel and two-finger pinch zoom toward the cursor.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelzoom/explorer"
	"mandelzoom/viewport"
)

func main() {
	cfg := viewport.DefaultConfig()

	width := flag.Int("width", 800, "initial window width")
	height := flag.Int("height", 600, "initial window height")
	iter := flag.Int("iter", cfg.DefaultMaxIter, "escape iteration cap")
	snapshotDir := flag.String("snapshot-dir", "", "directory for PNG snapshots (default current)")
	flag.Float64Var(&cfg.MinZoom, "min-zoom", cfg.MinZoom, "minimum zoom")
	flag.Float64Var(&cfg.MaxZoom, "max-zoom", cfg.MaxZoom, "maximum zoom")
	flag.Float64Var(&cfg.WheelZoomFactor, "wheel-zoom", cfg.WheelZoomFactor, "wheel zoom factor per tick")
	flag.Float64Var(&cfg.ClickZoomFactor, "click-zoom", cfg.ClickZoomFactor, "click/tap zoom factor")
	flag.Float64Var(&cfg.HoldZoomRate, "hold-zoom", cfg.HoldZoomRate, "hold zoom factor per tick")
	flag.DurationVar(&cfg.HoldZoomDelay, "hold-delay", cfg.HoldZoomDelay, "delay before hold-zoom starts")
	flag.Float64Var(&cfg.PointerPanThreshold, "pan-threshold", cfg.PointerPanThreshold, "pointer pan threshold in pixels")
	flag.Parse()

	cfg.DefaultMaxIter = *iter

	ex := explorer.New(cfg, *width, *height)
	ex.SetSnapshotDir(*snapshotDir)

	ebiten.SetWindowTitle("Mandelzoom")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(newGame(ex))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
