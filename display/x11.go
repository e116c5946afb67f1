//go:build linux || freebsd || openbsd || netbsd
// +build linux freebsd openbsd netbsd

package display

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mmruler/mmruler/util/log"
)

// X11Source queries display metrics through the RandR extension, on the
// same X connection family the window itself is served by.
type X11Source struct {
	conn *xgb.Conn
	root xproto.Window
}

// NewSystemSource connects to the X server named by $DISPLAY.
func NewSystemSource() (Source, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("display: connect X server: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("display: init RandR extension: %w", err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	return &X11Source{conn: conn, root: root}, nil
}

// Close releases the X connection. The source is unusable afterwards.
func (s *X11Source) Close() error {
	s.conn.Close()
	return nil
}

// BackingDisplay returns metrics of the primary output, or of the first
// connected output when no primary is configured. X does not tell us
// which output a top-level window occupies, so the primary display
// stands in for the window's backing display.
func (s *X11Source) BackingDisplay() (Info, error) {
	res, err := randr.GetScreenResources(s.conn, s.root).Reply()
	if err != nil {
		return Info{}, fmt.Errorf("display: screen resources: %w", err)
	}

	var primary randr.Output
	if rep, err := randr.GetOutputPrimary(s.conn, s.root).Reply(); err == nil {
		primary = rep.Output
	}

	for _, output := range orderOutputs(primary, res.Outputs) {
		info, err := randr.GetOutputInfo(s.conn, output, 0).Reply()
		if err != nil {
			log.Debugf("display: output info: %v", err)
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(s.conn, info.Crtc, 0).Reply()
		if err != nil {
			log.Debugf("display: crtc info: %v", err)
			continue
		}
		width := modeWidth(res.Modes, crtc.Mode)
		if width == 0 {
			width = int(crtc.Width)
		}
		return Info{
			Name:            string(info.Name),
			PhysicalWidthMM: float64(info.MmWidth),
			PixelWidth:      width,
		}, nil
	}

	// No usable RandR output. The core screen still reports a size pair;
	// a virtual screen reports zero millimeters there, which callers
	// treat the same as a failed query.
	screen := xproto.Setup(s.conn).DefaultScreen(s.conn)
	if screen.WidthInMillimeters == 0 || screen.WidthInPixels == 0 {
		return Info{}, ErrUnavailable
	}
	return Info{
		PhysicalWidthMM: float64(screen.WidthInMillimeters),
		PixelWidth:      int(screen.WidthInPixels),
	}, nil
}

// Watch subscribes to RandR screen change notification and calls notify
// on every configuration change until the connection closes.
func (s *X11Source) Watch(notify func()) error {
	err := randr.SelectInputChecked(s.conn, s.root, randr.NotifyMaskScreenChange).Check()
	if err != nil {
		return fmt.Errorf("display: select RandR input: %w", err)
	}

	go func() {
		for {
			ev, xerr := s.conn.WaitForEvent()
			if ev == nil && xerr == nil {
				// connection closed.
				return
			}
			if xerr != nil {
				log.Debugf("display: X event error: %v", xerr)
				continue
			}
			if _, ok := ev.(randr.ScreenChangeNotifyEvent); ok {
				notify()
			}
		}
	}()
	return nil
}

// orderOutputs returns outputs with the primary one moved to the front,
// preserving the order of the rest.
func orderOutputs(primary randr.Output, outputs []randr.Output) []randr.Output {
	if primary == 0 {
		return outputs
	}
	ordered := make([]randr.Output, 0, len(outputs))
	for _, o := range outputs {
		if o == primary {
			ordered = append(ordered, o)
		}
	}
	if len(ordered) == 0 {
		// primary is stale; ignore it.
		return outputs
	}
	for _, o := range outputs {
		if o != primary {
			ordered = append(ordered, o)
		}
	}
	return ordered
}

// modeWidth returns the pixel width of the mode with the given id, or 0
// when the id is unknown.
func modeWidth(modes []randr.ModeInfo, mode randr.Mode) int {
	for _, m := range modes {
		if m.Id == uint32(mode) {
			return int(m.Width)
		}
	}
	return 0
}
