package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "", LstdFlags)

	logger.Debug("debug text")
	if bs := buf.Bytes(); len(bs) != 0 {
		t.Error("On InfoLevel, Debug outputs some text")
	}
	if err := logger.Err(); !errors.Is(err, ErrOutputDiscardedByLevel) {
		t.Errorf("discarded Debug should record ErrOutputDiscardedByLevel, got %v", err)
	}

	buf.Reset()
	logger.Info("info text")
	if bs := buf.Bytes(); len(bs) == 0 {
		t.Error("On InfoLevel, Info outputs nothing")
	}
	if err := logger.Err(); err != nil {
		t.Errorf("succeeded Info should reset internal error, got %v", err)
	}

	logger.SetLevel(DebugLevel)

	buf.Reset()
	logger.Info("info text")
	if bs := buf.Bytes(); len(bs) == 0 {
		t.Error("On DebugLevel, Info outputs nothing")
	}

	buf.Reset()
	logger.Debug("debug text")
	if bs := buf.Bytes(); len(bs) == 0 {
		t.Error("On DebugLevel, Debug outputs nothing")
	}
	if !strings.Contains(buf.String(), DebugPrefix) {
		t.Errorf("Debug output should contain %q, got %q", DebugPrefix, buf.String())
	}
}
