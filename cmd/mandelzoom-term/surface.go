package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mandelzoom/explorer"
	"mandelzoom/viewport"
)

var termButtons = []struct {
	tb tcell.ButtonMask
	vb viewport.Button
}{
	{tcell.ButtonPrimary, viewport.ButtonPrimary},
	{tcell.ButtonSecondary, viewport.ButtonSecondary},
	{tcell.ButtonMiddle, viewport.ButtonMiddle},
}

const termButtonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// termSurface presents the frame as colored cells and decodes tcell events
// into the explorer's event stream. tcell reports mouse state as a button
// mask per event, so presses and releases are recovered by diffing masks.
type termSurface struct {
	screen tcell.Screen

	events chan tcell.Event
	quit   chan struct{}

	pending []explorer.Event
	buttons tcell.ButtonMask
	mouseX  int
	mouseY  int
}

func newTermSurface() (*termSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	s := &termSurface{
		screen: screen,
		events: make(chan tcell.Event, 128),
		quit:   make(chan struct{}),
		mouseX: -1,
		mouseY: -1,
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s, nil
}

func (s *termSurface) Close() {
	close(s.quit)
	s.screen.Fini()
}

func (s *termSurface) Size() (int, int) {
	return s.screen.Size()
}

// Present paints one cell per pixel. A frame whose dimensions disagree with
// the terminal is dropped; the resize reconciliation in the frame loop
// catches up on the next tick.
func (s *termSurface) Present(pix []uint32, width, height int) error {
	sw, sh := s.screen.Size()
	if sw != width || sh != height {
		return fmt.Errorf("frame is %dx%d, terminal is %dx%d", width, height, sw, sh)
	}

	for y := 0; y < height; y++ {
		row := pix[y*width : (y+1)*width]
		for x, c := range row {
			color := tcell.NewRGBColor(
				int32(c>>16&0xFF),
				int32(c>>8&0xFF),
				int32(c&0xFF),
			)
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(color))
		}
	}
	s.screen.Show()
	return nil
}

// PollEvent returns the next translated event, or nil once the queue is
// drained. A single tcell event can expand to several abstract events, so
// translations buffer through pending.
func (s *termSurface) PollEvent() explorer.Event {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			return ev
		}

		select {
		case tev := <-s.events:
			s.translate(tev)
		default:
			return nil
		}
	}
}

func (s *termSurface) push(ev explorer.Event) {
	s.pending = append(s.pending, ev)
}

func (s *termSurface) translate(tev tcell.Event) {
	switch tev := tev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		s.push(explorer.SurfaceResized{Width: w, Height: h})

	case *tcell.EventKey:
		s.translateKey(tev)

	case *tcell.EventMouse:
		s.translateMouse(tev)
	}
}

func (s *termSurface) translateKey(tev *tcell.EventKey) {
	switch tev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.push(explorer.KeyPress{Key: explorer.KeyQuit})
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch tev.Rune() {
	case 'q', 'Q':
		s.push(explorer.KeyPress{Key: explorer.KeyQuit})
	case 'r', 'R':
		s.push(explorer.KeyPress{Key: explorer.KeyReset})
	case 's', 'S':
		s.push(explorer.KeyPress{Key: explorer.KeySnapshot})
	case '+', '=':
		s.push(explorer.KeyPress{Key: explorer.KeyIterUp})
	case '-', '_':
		s.push(explorer.KeyPress{Key: explorer.KeyIterDown})
	}
}

func (s *termSurface) translateMouse(tev *tcell.EventMouse) {
	x, y := tev.Position()
	fx, fy := float64(x), float64(y)

	if x != s.mouseX || y != s.mouseY {
		s.mouseX, s.mouseY = x, y
		s.push(explorer.PointerMove{X: fx, Y: fy})
	}

	btns := tev.Buttons()
	for _, m := range termButtons {
		pressed := btns&m.tb != 0
		was := s.buttons&m.tb != 0
		if pressed && !was {
			s.push(explorer.PointerDown{Button: m.vb, X: fx, Y: fy})
		}
		if !pressed && was {
			s.push(explorer.PointerUp{Button: m.vb, X: fx, Y: fy})
		}
	}
	s.buttons = btns & termButtonMask

	if btns&tcell.WheelUp != 0 {
		s.push(explorer.Wheel{Delta: 1, X: fx, Y: fy})
	}
	if btns&tcell.WheelDown != 0 {
		s.push(explorer.Wheel{Delta: -1, X: fx, Y: fy})
	}
}
