// Package display answers physical questions about the display backing
// the application window: how wide is the panel in millimeters, how many
// pixels does its current mode span, and how many device pixels make up
// one drawing unit. Every query is fallible; callers are expected to fall
// back to fixed reference values rather than abort.
package display

import "errors"

// ErrUnavailable indicates the platform cannot report display metrics.
// It is a recoverable condition, answered by falling back to a reference
// density, never a fatal one.
var ErrUnavailable = errors.New("display: metrics unavailable")

// Info describes one physical display.
type Info struct {
	// Name is the output name as reported by the system, e.g. "eDP-1".
	// It may be empty.
	Name string

	// PhysicalWidthMM is the measured width of the visible panel area.
	PhysicalWidthMM float64

	// PixelWidth is the native pixel width of the display's current mode.
	PixelWidth int
}

// Source reports the physical display currently backing the application
// window. Implementations that cannot map a window to an output return
// the primary display instead; availability wins over precision.
type Source interface {
	BackingDisplay() (Info, error)
}

// Scaler reports how many device pixels make up one abstract drawing
// unit for the current window and display pairing. The ratio is 1.0 on
// unscaled displays and typically 2.0 or 3.0 on high-density ones.
type Scaler interface {
	PixelsPerUnit() (float64, error)
}

// Watcher is implemented by sources that can deliver display
// configuration change notifications.
type Watcher interface {
	// Watch calls notify every time the display configuration changes.
	// notify runs on the watcher's own goroutine; hand the notification
	// over to the UI event thread before acting on it.
	Watch(notify func()) error
}
