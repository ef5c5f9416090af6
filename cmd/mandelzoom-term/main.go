// Mandelzoom-term explores the Mandelbrot set inside a terminal: every cell
// is one render pixel, painted as a background color. Mouse controls match
// the desktop binary; q or ESC quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"mandelzoom/explorer"
	"mandelzoom/viewport"
)

func main() {
	cfg := viewport.DefaultConfig()
	// A cell is a huge pixel; a one-cell drag is already a deliberate pan.
	cfg.PointerPanThreshold = 1

	iter := flag.Int("iter", 64, "escape iteration cap")
	snapshotDir := flag.String("snapshot-dir", "", "directory for PNG snapshots (default current)")
	logFile := flag.String("log", "", "append diagnostics to this file (default discard)")
	flag.Float64Var(&cfg.MinZoom, "min-zoom", cfg.MinZoom, "minimum zoom")
	flag.Float64Var(&cfg.MaxZoom, "max-zoom", cfg.MaxZoom, "maximum zoom")
	flag.DurationVar(&cfg.FrameDelay, "frame-delay", cfg.FrameDelay, "delay per frame loop")
	flag.Parse()

	cfg.DefaultMaxIter = *iter

	// The screen owns the terminal; anything written to stderr mid-run
	// shreds it, so diagnostics go to a file or nowhere.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg, *snapshotDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg viewport.Config, snapshotDir string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	surface, err := newTermSurface()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer surface.Close()

	w, h := surface.Size()
	ex := explorer.New(cfg, w, h)
	ex.SetSnapshotDir(snapshotDir)

	return explorer.Run(ctx, surface, ex)
}
