package app

import (
	"image"
	"math"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/paint"
)

// windowHost adapts a shiny window to the surface's host interface.
// shiny offers no resize command for a created window, so the requested
// content size is recorded and used to size the paint buffer; the ruler
// keeps its exact physical scale no matter what size the window ends up
// with. The dirty mark becomes a paint event on the window's deque.
type windowHost struct {
	deque screen.EventDeque

	contentSize image.Point
}

func (h *windowHost) SetContentSize(width, height float64) {
	h.contentSize = image.Pt(
		int(math.Round(width)),
		int(math.Round(height)),
	)
}

func (h *windowHost) MarkDirty() {
	h.deque.Send(paint.Event{})
}

// bufferSize returns the paint buffer size covering both the window and
// the requested content area, so the full ruler is drawn even when the
// window is larger or smaller than requested.
func (h *windowHost) bufferSize(winSize image.Point) image.Point {
	size := winSize
	if h.contentSize.X > size.X {
		size.X = h.contentSize.X
	}
	if h.contentSize.Y > size.Y {
		size.Y = h.contentSize.Y
	}
	return size
}
