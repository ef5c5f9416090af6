package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mandelzoom/explorer"
	"mandelzoom/viewport"
)

var mouseButtons = []struct {
	eb ebiten.MouseButton
	vb viewport.Button
}{
	{ebiten.MouseButtonLeft, viewport.ButtonPrimary},
	{ebiten.MouseButtonRight, viewport.ButtonSecondary},
	{ebiten.MouseButtonMiddle, viewport.ButtonMiddle},
}

var keyBindings = []struct {
	eb ebiten.Key
	k  explorer.Key
}{
	{ebiten.KeyEscape, explorer.KeyQuit},
	{ebiten.KeyR, explorer.KeyReset},
	{ebiten.KeyS, explorer.KeySnapshot},
	{ebiten.KeyEqual, explorer.KeyIterUp},
	{ebiten.KeyNumpadAdd, explorer.KeyIterUp},
	{ebiten.KeyMinus, explorer.KeyIterDown},
	{ebiten.KeyNumpadSubtract, explorer.KeyIterDown},
}

// pollInput turns ebiten's polled input state into the explorer's discrete
// event stream, once per tick.
func (g *game) pollInput() {
	cx, cy := ebiten.CursorPosition()
	fx, fy := float64(cx), float64(cy)
	if cx != g.cursorX || cy != g.cursorY {
		g.cursorX, g.cursorY = cx, cy
		g.ex.HandleEvent(explorer.PointerMove{X: fx, Y: fy})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.ex.HandleEvent(explorer.PointerDown{Button: b.vb, X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.ex.HandleEvent(explorer.PointerUp{Button: b.vb, X: fx, Y: fy})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		delta := 1
		if wy < 0 {
			delta = -1
		}
		g.ex.HandleEvent(explorer.Wheel{Delta: delta, X: fx, Y: fy})
	}

	g.pollTouches()

	for _, kb := range keyBindings {
		if inpututil.IsKeyJustPressed(kb.eb) {
			g.ex.HandleEvent(explorer.KeyPress{Key: kb.k})
		}
	}
}

// pollTouches diffs the active touch set against the previous tick to
// synthesize down/move/up events. Positions are normalized to [0,1] here so
// the touch machine never sees raw pixels from this backend.
func (g *game) pollTouches() {
	w, h := g.ex.Size()
	norm := func(p image.Point) (float64, float64) {
		return float64(p.X) / float64(w), float64(p.Y) / float64(h)
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])

	active := make(map[ebiten.TouchID]bool, len(g.touchIDs))
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pos := image.Pt(x, y)
		active[id] = true

		prev, tracked := g.touches[id]
		g.touches[id] = pos

		nx, ny := norm(pos)
		if !tracked {
			g.ex.HandleEvent(explorer.TouchDown{ID: int64(id), X: nx, Y: ny})
		} else if prev != pos {
			g.ex.HandleEvent(explorer.TouchMove{ID: int64(id), X: nx, Y: ny})
		}
	}

	for id, pos := range g.touches {
		if active[id] {
			continue
		}
		nx, ny := norm(pos)
		g.ex.HandleEvent(explorer.TouchUp{ID: int64(id), X: nx, Y: ny})
		delete(g.touches, id)
	}
}
