// Package event provides a typed subscription hub for display-related
// notifications delivered on the UI event thread.
package event

// Kind identifies a notification the application loop can observe.
type Kind int8

const (
	// KindWindowAttached is published once, when the window first reports
	// its size after creation.
	KindWindowAttached Kind = iota

	// KindWindowDisplayChanged is published when the window starts being
	// shown by a different physical display.
	KindWindowDisplayChanged

	// KindDisplayConfigChanged is published on any system-wide display
	// configuration change, such as a resolution or scaling change and
	// attaching or detaching an external monitor.
	KindDisplayConfigChanged
)

func (k Kind) String() string {
	switch k {
	case KindWindowAttached:
		return "WindowAttached"
	case KindWindowDisplayChanged:
		return "WindowDisplayChanged"
	case KindDisplayConfigChanged:
		return "DisplayConfigChanged"
	default:
		return "Unknown"
	}
}

// Hub dispatches published kinds to their subscribed handlers in
// subscription order. Both Subscribe and Publish must be called from the
// single UI event thread; the hub itself takes no locks.
type Hub struct {
	handlers map[Kind][]func()
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: map[Kind][]func(){}}
}

// Subscribe registers fn for kind. A handler may be registered for
// multiple kinds, and multiple handlers for one kind.
func (h *Hub) Subscribe(kind Kind, fn func()) {
	h.handlers[kind] = append(h.handlers[kind], fn)
}

// Publish runs every handler subscribed to kind. Kinds with no
// subscribers are ignored.
func (h *Hub) Publish(kind Kind) {
	for _, fn := range h.handlers[kind] {
		fn()
	}
}
