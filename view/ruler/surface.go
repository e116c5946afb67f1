// Package ruler owns the resolved drawing scale and renders a 15 cm
// ruler calibrated to it.
package ruler

import (
	"image"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/mmruler/mmruler/metrics"
	"github.com/mmruler/mmruler/util/log"
	"github.com/mmruler/mmruler/view/theme"
)

// Host is the windowing side the surface talks back to. Both commands
// are requests; the host applies them however its platform allows.
type Host interface {
	// SetContentSize requests the hosting window's content area be
	// resized, in drawing units.
	SetContentSize(width, height float64)

	// MarkDirty requests a redraw of the whole surface.
	MarkDirty()
}

// KeyResult tells the windowing loop what to do after a key event.
type KeyResult int

const (
	// KeyNotHandled passes the event through to the default handler.
	KeyNotHandled KeyResult = iota

	// KeyCloseRequested asks the host to close the window.
	KeyCloseRequested
)

// Surface owns the current ScaleState and renders the ruler from it.
// All methods must be called from the single UI event thread.
type Surface struct {
	resolver metrics.Resolver
	host     Host

	// scale is replaced wholesale by RecomputeAndResize, never mutated
	// field by field, so Draw always reads one consistent resolution.
	scale metrics.ScaleState

	labelFace    font.Face
	advisoryFace font.Face
}

// NewSurface builds a surface drawing with the given faces. The scale
// starts at a plausible 5 units per millimeter until the first
// RecomputeAndResize runs.
func NewSurface(resolver metrics.Resolver, host Host, labelFace, advisoryFace font.Face) *Surface {
	return &Surface{
		resolver:     resolver,
		host:         host,
		scale:        metrics.ScaleState{UnitsPerMM: 5.0},
		labelFace:    labelFace,
		advisoryFace: advisoryFace,
	}
}

// Scale returns the current resolution result.
func (s *Surface) Scale() metrics.ScaleState {
	return s.scale
}

// SetFaces swaps the drawing faces, typically after the display DPI
// changed, and requests a redraw.
func (s *Surface) SetFaces(labelFace, advisoryFace font.Face) {
	s.labelFace = labelFace
	s.advisoryFace = advisoryFace
	s.host.MarkDirty()
}

// RecomputeAndResize resolves the scale for the current backing display,
// requests the window fit the ruler exactly and marks the surface dirty.
// Running it again under an unchanged display configuration requests the
// same geometry, so redundant notifications are safe.
func (s *Surface) RecomputeAndResize() {
	scale := s.resolver.Resolve()
	if scale.Degraded && scale.Note != s.scale.Note {
		log.Info("ruler: degraded scale: ", scale.Note)
	}
	s.scale = scale

	g := Geometry{UnitsPerMM: scale.UnitsPerMM}
	s.host.SetContentSize(g.ContentWidth(), ContentHeight)
	s.host.MarkDirty()
}

// HandleKey recognizes only the escape key, which requests closing the
// window. Everything else stays unhandled for the host's default
// handling.
func (s *Surface) HandleKey(e key.Event) KeyResult {
	if e.Code == key.CodeEscape && e.Direction == key.DirPress {
		return KeyCloseRequested
	}
	return KeyNotHandled
}

// Draw renders the ruler into dst: background, baseline, a tick per
// millimeter, a label per centimeter, and the advisory note when the
// scale is degraded. It only reads the ScaleState.
func (s *Surface) Draw(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)

	g := Geometry{UnitsPerMM: s.scale.UnitsPerMM}
	y0 := round(g.BaselineY())
	x0 := round(g.TickX(0))
	x1 := round(g.TickX(LengthMM))

	fg := image.NewUniform(theme.Foreground)
	fillRect(dst, x0, y0, x1+1, y0+1, fg)

	for mm := 0; mm <= LengthMM; mm++ {
		x := round(g.TickX(mm))
		h := round(TierOf(mm).Height())
		fillRect(dst, x, y0-h, x+1, y0, fg)
	}

	if s.labelFace != nil {
		s.drawLabels(dst, g, y0)
	}
	if s.scale.Degraded && s.scale.Note != "" && s.advisoryFace != nil {
		s.drawAdvisory(dst)
	}
}

// drawLabels centers a centimeter number under each full-centimeter tick.
func (s *Surface) drawLabels(dst *image.RGBA, g Geometry, y0 int) {
	m := s.labelFace.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(theme.Foreground),
		Face: s.labelFace,
	}
	for cm := 0; cm <= LengthMM/10; cm++ {
		text := strconv.Itoa(cm)
		w := d.MeasureString(text)
		d.Dot = fixed.Point26_6{
			X: fixI(g.LabelX(cm)) - w/2,
			Y: fixed.I(y0) + fixI(labelGap) + m.Ascent,
		}
		d.DrawString(text)
	}
}

// drawAdvisory puts the fallback note dimly in the top-left corner,
// above the reach of the tallest tick.
func (s *Surface) drawAdvisory(dst *image.RGBA) {
	m := s.advisoryFace.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(theme.Advisory),
		Face: s.advisoryFace,
		Dot: fixed.Point26_6{
			X: fixI(Margin),
			Y: fixI(labelGap) + m.Ascent,
		},
	}
	d.DrawString(s.scale.Note)
}

func fillRect(dst *image.RGBA, x0, y0, x1, y1 int, src image.Image) {
	draw.Draw(dst, image.Rect(x0, y0, x1, y1), src, image.Point{}, draw.Src)
}

func round(x float64) int {
	return int(math.Round(x))
}

func fixI(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
