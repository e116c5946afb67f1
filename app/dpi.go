package app

import (
	"errors"

	"golang.org/x/exp/shiny/unit"
	"golang.org/x/mobile/event/size"
)

// DPI converts shiny's pixels-per-point density report into dots per
// inch, used to size font faces.
func DPI(pixelsPerPt float32) float64 {
	return float64(pixelsPerPt) * unit.PointsPerInch
}

var errScaleUnknown = errors.New("app: window has not reported its density yet")

// windowScaler reports the device-pixel to drawing-unit ratio of the
// shiny window. shiny buffers are addressed in device pixels, so the
// ratio is 1 once the window has delivered its first size event. Before
// that the ratio is unknown and callers fall back to the conservative
// high-density default. Backends with logically scaled coordinates would
// report their real ratio here.
type windowScaler struct {
	known bool
}

func (s *windowScaler) observe(e size.Event) {
	if e.PixelsPerPt > 0 {
		s.known = true
	}
}

func (s *windowScaler) PixelsPerUnit() (float64, error) {
	if !s.known {
		return 0, errScaleUnknown
	}
	return 1.0, nil
}
