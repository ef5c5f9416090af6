package explorer

import (
	"context"
	"log"
	"time"
)

// Surface is the presentation side of a backend: it reports its pixel size,
// accepts a finished ARGB frame, and hands out queued input events.
type Surface interface {
	// Size returns the surface dimensions in render pixels.
	Size() (width, height int)

	// Present displays a width x height ARGB8888 row-major frame. An error
	// drops that frame only; the loop retries next tick.
	Present(pix []uint32, width, height int) error

	// PollEvent returns the next queued event, or nil when drained. It
	// must not block.
	PollEvent() Event
}

// Run is the frame loop: drain events, run the per-tick continuous-zoom
// update, render if dirty, present, sleep. It returns when the explorer
// stops (quit event, escape) or the context is cancelled.
func Run(ctx context.Context, s Surface, e *Explorer) error {
	for e.Running() {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}

		for ev := s.PollEvent(); ev != nil; ev = s.PollEvent() {
			e.HandleEvent(ev)
		}

		// The surface may have changed size without a resize event making
		// it into the queue; never present into mismatched dimensions.
		if w, h := s.Size(); w > 0 && h > 0 {
			if ew, eh := e.Size(); w != ew || h != eh {
				e.HandleEvent(SurfaceResized{Width: w, Height: h})
			}
		}

		e.Tick()

		w, h := e.Size()
		if err := s.Present(e.Frame(), w, h); err != nil {
			log.Println("present:", err)
		}

		time.Sleep(e.Config().FrameDelay)
	}
	return nil
}
