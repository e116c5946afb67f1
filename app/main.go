package app

import (
	"fmt"
	"image"
	"io"
	"os"
	"runtime"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/mmruler/mmruler/display"
	"github.com/mmruler/mmruler/event"
	"github.com/mmruler/mmruler/metrics"
	"github.com/mmruler/mmruler/util/log"
	"github.com/mmruler/mmruler/view/ruler"
	"github.com/mmruler/mmruler/view/theme"
)

// Title is shown on the window top.
const Title = "15 cm Ruler"

// entry point of main application. appConf nil is OK,
// use default if it is.
// its internal errors are handled by itself.
func Main(appConf *Config) {
	if appConf == nil {
		appConf = NewConfig()
	}

	// returned value must be called once.
	reset, err := SetupLogConfig(appConf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log configuration failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "Hint: try to change config logfile from %v\n", appConf.LogFile)
		return
	}
	defer reset()

	log.Infof("-- %s --", Title)

	// main loop
	driver.Main(func(s screen.Screen) {
		// capture panic as error in this thread
		defer func() {
			if rec := recover(); rec != nil {
				buf := make([]byte, 4096)
				bufEnd := runtime.Stack(buf, false)
				log.Info("PANIC: ", fmt.Errorf("%v\n%v\n", rec, string(buf[:bufEnd])))
			}
		}()

		if err := runWindow(s, appConf); err != nil {
			log.Info("Error: app.runWindow(): ", err)
		} else {
			log.Info("...quiting correctly")
		}
	})
}

// displayConfigChanged is sent into the window's event deque from the
// display watcher goroutine, so the change is handled on the UI thread.
type displayConfigChanged struct{}

var stageDeadEvent = lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}

func runWindow(s screen.Screen, appConf *Config) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  Title,
	})
	if err != nil {
		return fmt.Errorf("NewWindow FAIL: %w", err)
	}
	defer w.Release()

	source, err := display.NewSystemSource()
	if err != nil {
		// not fatal; resolution runs on fallback constants.
		log.Infof("display metrics source unavailable: %v", err)
		source = nil
	} else if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	scaler := &windowScaler{}
	host := &windowHost{deque: w}

	labelFace, advisoryFace, err := newFaces(appConf, 0)
	if err != nil {
		return fmt.Errorf("font FAIL: %w", err)
	}
	surface := ruler.NewSurface(
		metrics.Resolver{Source: source, Scaler: scaler},
		host, labelFace, advisoryFace,
	)

	hub := event.NewHub()
	hub.Subscribe(event.KindWindowAttached, surface.RecomputeAndResize)
	hub.Subscribe(event.KindWindowDisplayChanged, surface.RecomputeAndResize)
	hub.Subscribe(event.KindDisplayConfigChanged, surface.RecomputeAndResize)

	if watcher, ok := source.(display.Watcher); ok {
		if err := watcher.Watch(func() { w.Send(displayConfigChanged{}) }); err != nil {
			log.Debugf("display watch unavailable: %v", err)
		}
	}

	var (
		buf      screen.Buffer
		winSize  image.Point
		attached bool
		dpi      float64
	)
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case key.Event:
			if surface.HandleKey(e) == ruler.KeyCloseRequested {
				// single window application: closing it quits.
				w.Send(stageDeadEvent)
			}

		case displayConfigChanged:
			hub.Publish(event.KindDisplayConfigChanged)

		case size.Event:
			scaler.observe(e)
			winSize = e.Size()

			if newDPI := DPI(e.PixelsPerPt); newDPI > 0 && newDPI != dpi {
				// a density change after attachment means the window is
				// shown by another display now.
				movedDisplay := attached && dpi > 0
				dpi = newDPI
				if label, advisory, err := newFaces(appConf, dpi); err == nil {
					surface.SetFaces(label, advisory)
				} else {
					log.Debugf("font reload at %v dpi: %v", dpi, err)
				}
				if movedDisplay {
					hub.Publish(event.KindWindowDisplayChanged)
				}
			}

			if !attached {
				attached = true
				hub.Publish(event.KindWindowAttached)
			}

		case paint.Event:
			if winSize == (image.Point{}) {
				continue
			}
			bufSize := host.bufferSize(winSize)
			if buf == nil || buf.Size() != bufSize {
				if buf != nil {
					buf.Release()
				}
				buf, err = s.NewBuffer(bufSize)
				if err != nil {
					return fmt.Errorf("NewBuffer FAIL: %w", err)
				}
			}
			surface.Draw(buf.RGBA())
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()

		case error:
			log.Debug("FATAL: UI's Fatal Error")
			return e
		}
	}
}

func newFaces(appConf *Config, dpi float64) (labelFace, advisoryFace font.Face, err error) {
	labelFace, err = theme.NewFace(appConf.Font, &theme.FontFaceOptions{
		Size: appConf.FontSize,
		DPI:  dpi,
	})
	if err != nil {
		return nil, nil, err
	}
	advisoryFace, err = theme.NewFace(appConf.Font, &theme.FontFaceOptions{
		Size: theme.AdvisoryFontSize,
		DPI:  dpi,
	})
	if err != nil {
		return nil, nil, err
	}
	return labelFace, advisoryFace, nil
}
