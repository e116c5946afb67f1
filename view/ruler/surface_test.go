package ruler

import (
	"errors"
	"image"
	"reflect"
	"testing"

	"golang.org/x/mobile/event/key"

	"github.com/mmruler/mmruler/display"
	"github.com/mmruler/mmruler/metrics"
	"github.com/mmruler/mmruler/view/theme"
)

type fakeHost struct {
	widths  []float64
	heights []float64
	dirty   int
}

func (h *fakeHost) SetContentSize(width, height float64) {
	h.widths = append(h.widths, width)
	h.heights = append(h.heights, height)
}

func (h *fakeHost) MarkDirty() { h.dirty++ }

type fakeSource struct {
	info display.Info
	err  error
}

func (s fakeSource) BackingDisplay() (display.Info, error) { return s.info, s.err }

type fakeScaler struct {
	ppu float64
	err error
}

func (s fakeScaler) PixelsPerUnit() (float64, error) { return s.ppu, s.err }

func newTestSurface(source display.Source, scaler display.Scaler, host Host) *Surface {
	labelFace := theme.NewDefaultFace(&theme.FontFaceOptions{Size: theme.LabelFontSize})
	advisoryFace := theme.NewDefaultFace(&theme.FontFaceOptions{Size: theme.AdvisoryFontSize})
	return NewSurface(metrics.Resolver{Source: source, Scaler: scaler}, host, labelFace, advisoryFace)
}

func TestRecomputeAndResize(t *testing.T) {
	host := &fakeHost{}
	s := newTestSurface(
		fakeSource{info: display.Info{PhysicalWidthMM: 300, PixelWidth: 3000}},
		fakeScaler{ppu: 2.0},
		host,
	)

	s.RecomputeAndResize()

	want := metrics.ScaleState{UnitsPerMM: 5.0}
	if got := s.Scale(); got != want {
		t.Errorf("Scale() = %+v, want %+v", got, want)
	}
	if got, want := host.widths, []float64{790.0}; !reflect.DeepEqual(got, want) {
		t.Errorf("requested widths = %v, want %v", got, want)
	}
	if got, want := host.heights, []float64{ContentHeight}; !reflect.DeepEqual(got, want) {
		t.Errorf("requested heights = %v, want %v", got, want)
	}
	if host.dirty != 1 {
		t.Errorf("MarkDirty called %d times, want 1", host.dirty)
	}
}

// A redundant notification must request the same geometry again, not a
// different one.
func TestRecomputeAndResizeIdempotent(t *testing.T) {
	host := &fakeHost{}
	s := newTestSurface(
		fakeSource{info: display.Info{PhysicalWidthMM: 344, PixelWidth: 3456}},
		fakeScaler{ppu: 2.0},
		host,
	)

	s.RecomputeAndResize()
	first := s.Scale()
	s.RecomputeAndResize()
	second := s.Scale()

	if first != second {
		t.Errorf("ScaleState changed across identical recomputes: %+v then %+v", first, second)
	}
	if len(host.widths) != 2 || host.widths[0] != host.widths[1] {
		t.Errorf("requested widths = %v, want two identical requests", host.widths)
	}
}

func TestRecomputeAndResizeDegraded(t *testing.T) {
	host := &fakeHost{}
	s := newTestSurface(fakeSource{err: errors.New("no display")}, fakeScaler{ppu: 1.0}, host)

	s.RecomputeAndResize()

	got := s.Scale()
	if !got.Degraded || got.Note == "" {
		t.Errorf("Scale() = %+v, want degraded with note", got)
	}
	// fallback density of 10 px/mm at 1 px per unit.
	if got.UnitsPerMM != 10.0 {
		t.Errorf("Scale().UnitsPerMM = %v, want 10", got.UnitsPerMM)
	}
}

func TestHandleKey(t *testing.T) {
	s := newTestSurface(fakeSource{}, fakeScaler{ppu: 1.0}, &fakeHost{})

	tests := []struct {
		name string
		ev   key.Event
		want KeyResult
	}{
		{"escape press", key.Event{Code: key.CodeEscape, Direction: key.DirPress}, KeyCloseRequested},
		{"escape release", key.Event{Code: key.CodeEscape, Direction: key.DirRelease}, KeyNotHandled},
		{"other key", key.Event{Code: key.CodeQ, Direction: key.DirPress}, KeyNotHandled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HandleKey(tt.ev); got != tt.want {
				t.Errorf("HandleKey(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestDrawIsPureRead(t *testing.T) {
	host := &fakeHost{}
	s := newTestSurface(
		fakeSource{info: display.Info{PhysicalWidthMM: 300, PixelWidth: 3000}},
		fakeScaler{ppu: 2.0},
		host,
	)
	s.RecomputeAndResize()

	before := s.Scale()
	dst := image.NewRGBA(image.Rect(0, 0, 800, int(ContentHeight)))
	s.Draw(dst)
	s.Draw(dst)

	if after := s.Scale(); before != after {
		t.Errorf("Draw() mutated ScaleState: %+v then %+v", before, after)
	}
}

// inkAbove counts non-background pixels in the rows above the tallest
// tick, which only the advisory note may touch.
func inkAbove(m *image.RGBA, maxY int) int {
	n := 0
	b := m.Bounds()
	for y := b.Min.Y; y < maxY; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.RGBAAt(x, y) != theme.Background {
				n++
			}
		}
	}
	return n
}

func TestDrawAdvisoryOnlyWhenDegraded(t *testing.T) {
	const advisoryBand = 20 // rows above the tallest tick's reach

	clean := image.NewRGBA(image.Rect(0, 0, 800, int(ContentHeight)))
	s := newTestSurface(
		fakeSource{info: display.Info{PhysicalWidthMM: 300, PixelWidth: 3000}},
		fakeScaler{ppu: 2.0},
		&fakeHost{},
	)
	s.RecomputeAndResize()
	s.Draw(clean)
	if got := inkAbove(clean, advisoryBand); got != 0 {
		t.Errorf("clean draw put %d pixels into the advisory band", got)
	}

	degraded := image.NewRGBA(image.Rect(0, 0, 800, int(ContentHeight)))
	sd := newTestSurface(fakeSource{err: display.ErrUnavailable}, fakeScaler{ppu: 1.0}, &fakeHost{})
	sd.RecomputeAndResize()
	sd.Draw(degraded)
	if got := inkAbove(degraded, advisoryBand); got == 0 {
		t.Error("degraded draw left the advisory band empty")
	}
}

func TestDrawWithoutFaces(t *testing.T) {
	s := NewSurface(metrics.Resolver{}, &fakeHost{}, nil, nil)
	dst := image.NewRGBA(image.Rect(0, 0, 800, int(ContentHeight)))
	// must draw baseline and ticks without panicking.
	s.Draw(dst)

	g := Geometry{UnitsPerMM: s.Scale().UnitsPerMM}
	y0 := int(g.BaselineY())
	if got := dst.RGBAAt(int(Margin)+1, y0); got != theme.Foreground {
		t.Errorf("baseline pixel = %v, want %v", got, theme.Foreground)
	}
}
