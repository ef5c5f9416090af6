package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelzoom/explorer"
)

// game adapts the explorer to ebiten's inverted loop: Update drains
// synthesized input events and runs the per-tick zoom update, Draw blits
// the ARGB frame.
type game struct {
	ex *explorer.Explorer

	img   *image.RGBA
	frame *ebiten.Image

	width, height int
	cursorX       int
	cursorY       int
	touches       map[ebiten.TouchID]image.Point
	touchIDs      []ebiten.TouchID
	titleZoom     float64
	titleIter     int
}

func newGame(ex *explorer.Explorer) *game {
	w, h := ex.Size()
	return &game{
		ex:      ex,
		width:   w,
		height:  h,
		cursorX: -1,
		cursorY: -1,
		touches: make(map[ebiten.TouchID]image.Point),
	}
}

func (g *game) Update() error {
	if w, h := g.ex.Size(); w != g.width || h != g.height {
		g.ex.HandleEvent(explorer.SurfaceResized{Width: g.width, Height: g.height})
	}

	g.pollInput()
	g.ex.Tick()

	if !g.ex.Running() {
		return ebiten.Termination
	}

	v := g.ex.View()
	if v.Zoom != g.titleZoom || v.MaxIter != g.titleIter {
		g.titleZoom = v.Zoom
		g.titleIter = v.MaxIter
		ebiten.SetWindowTitle(fmt.Sprintf("Mandelzoom — %.4gx, %d iterations", v.Zoom, v.MaxIter))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	pix := g.ex.Frame()
	w, h := g.ex.Size()

	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}

	dst := g.img.Pix
	for i, c := range pix {
		j := i * 4
		dst[j+0] = uint8(c >> 16)
		dst[j+1] = uint8(c >> 8)
		dst[j+2] = uint8(c)
		dst[j+3] = uint8(c >> 24)
	}

	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
