// Package metrics resolves how many drawing units span one millimeter on
// the display currently showing the window.
package metrics

import (
	"strings"

	"github.com/mmruler/mmruler/display"
)

const (
	// MMPerInch converts between the two length units display hardware
	// is specified in.
	MMPerInch = 25.4

	// FallbackPPI is the density assumed when the system cannot report a
	// physical display size, 10 pixels per millimeter.
	FallbackPPI = 254.0

	// FallbackPixelsPerUnit is the backing scale assumed when the
	// windowing layer cannot report one. 2.0 is the common high-density
	// scale, the conservative guess for unknown hardware.
	FallbackPixelsPerUnit = 2.0

	fallbackPixelsPerMM = FallbackPPI / MMPerInch
)

// Fallback notes shown on the ruler when a measured value was
// substituted by a constant.
const (
	notePhysicalSizeFallback = "Note: Using fallback PPI (system didn't report physical mm size)."
	noteBackingScaleFallback = "(Also fell back to pixels/unit=2.0.)"
)

// DisplayMetrics is the raw measurement set one resolution runs on. It is
// rebuilt from system queries on every Resolve call, never stored.
type DisplayMetrics struct {
	PhysicalWidthMM float64
	PixelWidth      int
	PixelsPerUnit   float64
}

// PixelsPerMM returns the display's pixel density. Callers must have
// validated PhysicalWidthMM > 0.
func (m DisplayMetrics) PixelsPerMM() float64 {
	return float64(m.PixelWidth) / m.PhysicalWidthMM
}

// ScaleState is the resolved drawing scale. Degraded reports that at
// least one fallback constant stands in for a measured value, and Note
// then carries the human-readable reason, drawn dimly on the ruler.
type ScaleState struct {
	UnitsPerMM float64
	Degraded   bool
	Note       string
}

// Resolver computes a ScaleState from a display metrics source and a
// window backing-scale query. Either collaborator may be nil or failing;
// resolution still succeeds on fallback constants. Resolve is
// synchronous, side-effect-free and never retries: a transient failure
// here has no better answer than the fixed fallback.
type Resolver struct {
	Source display.Source
	Scaler display.Scaler
}

// Resolve produces the current scale for the backing display. It never
// fails; a query failure or a non-positive measurement degrades
// precision, not availability.
func (r Resolver) Resolve() ScaleState {
	var notes []string

	pixelsPerMM := fallbackPixelsPerMM
	if m, ok := r.measure(); ok {
		pixelsPerMM = m.PixelsPerMM()
	} else {
		notes = append(notes, notePhysicalSizeFallback)
	}

	pixelsPerUnit := FallbackPixelsPerUnit
	if ppu, ok := r.backingScale(); ok {
		pixelsPerUnit = ppu
	} else {
		notes = append(notes, noteBackingScaleFallback)
	}

	return ScaleState{
		UnitsPerMM: pixelsPerMM / pixelsPerUnit,
		Degraded:   len(notes) > 0,
		Note:       strings.Join(notes, " "),
	}
}

// measure queries the physical display. A zero width in either unit is
// treated the same as a failed query: it must never reach a division.
func (r Resolver) measure() (DisplayMetrics, bool) {
	if r.Source == nil {
		return DisplayMetrics{}, false
	}
	info, err := r.Source.BackingDisplay()
	if err != nil {
		return DisplayMetrics{}, false
	}
	if info.PhysicalWidthMM <= 0 || info.PixelWidth <= 0 {
		return DisplayMetrics{}, false
	}
	return DisplayMetrics{
		PhysicalWidthMM: info.PhysicalWidthMM,
		PixelWidth:      info.PixelWidth,
	}, true
}

func (r Resolver) backingScale() (float64, bool) {
	if r.Scaler == nil {
		return 0, false
	}
	ppu, err := r.Scaler.PixelsPerUnit()
	if err != nil || ppu <= 0 {
		return 0, false
	}
	return ppu, true
}
