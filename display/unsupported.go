//go:build !(linux || freebsd || openbsd || netbsd)
// +build !linux,!freebsd,!openbsd,!netbsd

package display

// NewSystemSource reports ErrUnavailable on platforms without a metrics
// backend. Resolution then runs entirely on fallback constants, which
// keeps the ruler rendering, only less precisely.
func NewSystemSource() (Source, error) {
	return nil, ErrUnavailable
}
