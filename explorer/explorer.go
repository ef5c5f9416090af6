package explorer

import (
	"fmt"
	"log"
	"os"
	"time"

	"mandelzoom/fractal"
	"mandelzoom/viewport"
)

const (
	minIterCap = 16
	maxIterCap = 65536
)

// Explorer owns the view transform, both gesture machines, the renderer and
// the dirty flag. All mutation happens on the thread that calls HandleEvent,
// Tick and Frame; there is no locking because there is no sharing.
type Explorer struct {
	cfg      viewport.Config
	view     *viewport.View
	pointer  *viewport.Pointer
	touch    *viewport.Touch
	marker   viewport.Marker
	renderer *fractal.Renderer

	width, height int
	dirty         bool
	running       bool

	now func() time.Time

	// snapshotDir receives PNG snapshots; empty means current directory.
	snapshotDir string
}

func New(cfg viewport.Config, width, height int) *Explorer {
	e := &Explorer{
		cfg:      cfg,
		view:     viewport.NewView(cfg),
		renderer: fractal.NewRenderer(width, height),
		width:    width,
		height:   height,
		dirty:    true,
		running:  true,
		now:      time.Now,
	}
	e.pointer = viewport.NewPointer(cfg, e.view)
	e.touch = viewport.NewTouch(cfg, e.view, &e.marker)
	e.pointer.SetSize(width, height)
	e.touch.SetSize(width, height)
	return e
}

func (e *Explorer) Config() viewport.Config { return e.cfg }
func (e *Explorer) View() *viewport.View    { return e.view }
func (e *Explorer) Running() bool           { return e.running }
func (e *Explorer) Size() (int, int)        { return e.width, e.height }

// SetClock replaces the tick clock. Tests use it for determinism.
func (e *Explorer) SetClock(now func() time.Time) { e.now = now }

// SetSnapshotDir sets where PNG snapshots are written.
func (e *Explorer) SetSnapshotDir(dir string) { e.snapshotDir = dir }

// HandleEvent feeds one event to the matching gesture machine or control
// path and accumulates the dirty flag. Event handling is total; anything
// unrecognized is dropped.
func (e *Explorer) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		e.pointer.ButtonDown(ev.Button, ev.X, ev.Y, e.now())
	case PointerUp:
		if e.pointer.ButtonUp(ev.Button, ev.X, ev.Y) {
			e.dirty = true
		}
	case PointerMove:
		if e.pointer.Move(ev.X, ev.Y) {
			e.dirty = true
		}
	case Wheel:
		if e.pointer.Wheel(ev.Delta, ev.X, ev.Y) {
			e.dirty = true
		}
	case TouchDown:
		e.touch.FingerDown(ev.ID, ev.X, ev.Y, e.now())
	case TouchUp:
		if e.touch.FingerUp(ev.ID, ev.X, ev.Y, e.now()) {
			e.dirty = true
		}
	case TouchMove:
		if e.touch.FingerMove(ev.ID, ev.X, ev.Y) {
			e.dirty = true
		}
	case SurfaceResized:
		e.resize(ev.Width, ev.Height)
	case KeyPress:
		e.keyPress(ev.Key)
	case Quit:
		e.running = false
	}
}

func (e *Explorer) resize(width, height int) {
	if width == e.width && height == e.height {
		return
	}
	log.Printf("resize: %dx%d", width, height)
	e.width, e.height = width, height
	e.renderer.Resize(width, height)
	e.pointer.SetSize(width, height)
	e.touch.SetSize(width, height)
	e.dirty = true
}

func (e *Explorer) keyPress(k Key) {
	switch k {
	case KeyQuit:
		e.running = false
	case KeyReset:
		e.view.Reset()
		e.dirty = true
	case KeySnapshot:
		e.saveSnapshot()
	case KeyIterUp:
		e.setIterCap(e.view.MaxIter * 2)
	case KeyIterDown:
		e.setIterCap(e.view.MaxIter / 2)
	}
}

func (e *Explorer) setIterCap(n int) {
	if n < minIterCap {
		n = minIterCap
	}
	if n > maxIterCap {
		n = maxIterCap
	}
	if n == e.view.MaxIter {
		return
	}
	e.view.MaxIter = n
	e.dirty = true
	log.Printf("iteration cap: %d", n)
}

// Tick runs the continuous hold-zoom updates for both machines. The clock
// is read once and shared, so both machines see the same instant.
func (e *Explorer) Tick() {
	now := e.now()
	if e.pointer.Tick(now) {
		e.dirty = true
	}
	if e.touch.Tick(now) {
		e.dirty = true
	}
}

// Frame returns the current pixel buffer, re-rendering it first if the view
// changed since the last call. The buffer stays valid until the next resize.
func (e *Explorer) Frame() []uint32 {
	if e.dirty {
		pix := e.renderer.Frame(e.view)
		e.marker.Draw(pix, e.width, e.height, e.now())
		e.dirty = false
	}
	return e.renderer.Pix()
}

func (e *Explorer) saveSnapshot() {
	name := fmt.Sprintf("mandelzoom-%s.png", e.now().Format("20060102-150405"))
	if e.snapshotDir != "" {
		name = e.snapshotDir + string(os.PathSeparator) + name
	}

	file, err := os.Create(name)
	if err != nil {
		log.Println("snapshot:", err)
		return
	}
	defer file.Close()

	if err := fractal.WritePNG(file, e.Frame(), e.width, e.height); err != nil {
		log.Println(err)
		os.Remove(name)
		return
	}
	log.Println("saved", name)
}
