// package log defines a strict two-level logger, referenced from
// https://dave.cheney.net/2015/11/05/lets-talk-about-logging.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// InfoLevel outputs only calling Info*.
	// DebugLevel outputs all of outputting call, Info* and Debug*.
	InfoLevel = iota
	DebugLevel
)

// DebugPrefix is the 2nd prefix of the output text when calling Debug*,
// placed right after the prefix given by SetPrefix or New.
const DebugPrefix = "DEBUG: "

// ErrOutputDiscardedByLevel indicates log output is discarded by a
// different level, e.g. Debug() under the info level.
var ErrOutputDiscardedByLevel = errors.New("log output discarded by different log level")

// Logger has only 2 levels, info and debug.
// Output errors are not returned for convenience; the latest output error
// is recorded internally and can be retrieved from Err().
type Logger struct {
	logger *log.Logger

	mu          sync.Mutex
	level       int // output level, under the mutex.
	internalErr error
}

func (l *Logger) internalInfo(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.logger.Output(calldepth, msg)
	l.internalErr = err
}

func (l *Logger) Info(v ...interface{})                 { l.internalInfo(3, fmt.Sprint(v...)) }
func (l *Logger) Infoln(v ...interface{})               { l.internalInfo(3, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) { l.internalInfo(3, fmt.Sprintf(format, v...)) }

func (l *Logger) internalDebug(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < DebugLevel {
		l.internalErr = ErrOutputDiscardedByLevel
		return
	}
	err := l.logger.Output(calldepth, DebugPrefix+msg)
	l.internalErr = err
}

func (l *Logger) Debug(v ...interface{})   { l.internalDebug(3, fmt.Sprint(v...)) }
func (l *Logger) Debugln(v ...interface{}) { l.internalDebug(3, fmt.Sprintln(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.internalDebug(3, fmt.Sprintf(format, v...))
}

func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// set logging level.
func (l *Logger) SetLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// return current logging level.
func (l *Logger) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// same as standard package's log
func (l *Logger) SetFlags(flag int) {
	l.logger.SetFlags(flag)
}

// same as standard package's log
func (l *Logger) SetPrefix(prefix string) {
	l.logger.SetPrefix(prefix)
}

// Err returns the last internal error in the logger. A past error is
// replaced by the result of the latest output, so a succeeding output
// resets it to nil. Discarding output by level, for example Debug()
// under the info level, records ErrOutputDiscardedByLevel.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.internalErr
}

const (
	// These flags are same as log package's.
	Ldate         = log.Ldate
	Ltime         = log.Ltime
	Lmicroseconds = log.Lmicroseconds
	Llongfile     = log.Llongfile
	Lshortfile    = log.Lshortfile
	LUTC          = log.LUTC
	LstdFlags     = log.LstdFlags
)

// construct new Logger. default output level is InfoLevel.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{
		logger:      log.New(out, prefix, flag),
		level:       InfoLevel,
		internalErr: nil,
	}
}

var std = New(os.Stderr, "", LstdFlags)

func Info(v ...interface{}) {
	std.internalInfo(3, fmt.Sprint(v...))
}

func Infoln(v ...interface{}) {
	std.internalInfo(3, fmt.Sprintln(v...))
}

func Infof(format string, v ...interface{}) {
	std.internalInfo(3, fmt.Sprintf(format, v...))
}

func Debug(v ...interface{}) {
	std.internalDebug(3, fmt.Sprint(v...))
}

func Debugln(v ...interface{}) {
	std.internalDebug(3, fmt.Sprintln(v...))
}

func Debugf(format string, v ...interface{}) {
	std.internalDebug(3, fmt.Sprintf(format, v...))
}

// SetOutput sets output of the default logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetLevel sets level of the default logger.
func SetLevel(level int) {
	std.SetLevel(level)
}

// Level returns level of the default logger.
func Level() int {
	return std.Level()
}

// Err returns the last internal error of the default logger.
func Err() error {
	return std.Err()
}
