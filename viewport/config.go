package viewport

import "time"

// Config holds every tunable of the view transform and the gesture machines.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	MinZoom float64
	MaxZoom float64

	WheelZoomFactor float64
	ClickZoomFactor float64
	HoldZoomRate    float64
	HoldZoomDelay   time.Duration

	DoubleTapTime   time.Duration
	DoubleTapDist   float64
	TapDebounceTime time.Duration

	// PointerPanThreshold is the displacement in pixels, on either axis, that
	// turns a held button into a pan. TouchPanThreshold is the euclidean
	// displacement in surface pixels that does the same for a finger.
	PointerPanThreshold float64
	TouchPanThreshold   float64

	// TouchHoldCancelDist permanently disables hold-zoom for the current
	// finger-down sequence once exceeded.
	TouchHoldCancelDist float64

	// TapMoveThreshold is the maximum displacement for a finger-up to still
	// count as a tap.
	TapMoveThreshold float64

	DefaultMaxIter int
	FrameDelay     time.Duration
}

func DefaultConfig() Config {
	return Config{
		MinZoom:             0.1,
		MaxZoom:             1e14,
		WheelZoomFactor:     1.15,
		ClickZoomFactor:     1.5,
		HoldZoomRate:        1.16,
		HoldZoomDelay:       150 * time.Millisecond,
		DoubleTapTime:       800 * time.Millisecond,
		DoubleTapDist:       200,
		TapDebounceTime:     500 * time.Millisecond,
		PointerPanThreshold: 10,
		TouchPanThreshold:   15,
		TouchHoldCancelDist: 5,
		TapMoveThreshold:    20,
		DefaultMaxIter:      256,
		FrameDelay:          16 * time.Millisecond,
	}
}
