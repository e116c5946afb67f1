package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mmruler/mmruler/util/log"
	"github.com/mmruler/mmruler/view/theme"
)

const (
	LogFileStdOut = "stdout" // specify log outputs to stdout
	LogFileStdErr = "stderr" // specify log outputs to stderr

	// DefaultLogFile keeps the tool free of files it did not ask for.
	DefaultLogFile = LogFileStdErr

	LogLevelInfo    = "info"  // logging only information level.
	LogLevelDebug   = "debug" // logging all levels, debug and info.
	DefaultLogLevel = LogLevelInfo

	DefaultFont     = theme.DefaultFontName // font file. empty means use builtin font.
	DefaultFontSize = theme.LabelFontSize   // font size in pt

	// Initial window size before the first metric resolution replaces it.
	DefaultWidth  = 800
	DefaultHeight = 90
)

// Configure for the application.
// To build this, use NewConfig instead of the struct constructor, Config{}.
type Config struct {
	LogFile  string `toml:"logfile"`
	LogLevel string `toml:"loglevel"`

	Font     string  `toml:"font"`     // path for fontfile. empty means that use builtin font.
	FontSize float64 `toml:"fontsize"` // font size in pt.
}

// return default app config.
func NewConfig() *Config {
	return &Config{
		LogFile:  DefaultLogFile,
		LogLevel: DefaultLogLevel,
		Font:     DefaultFont,
		FontSize: DefaultFontSize,
	}
}

// LoadConfig returns the default config when file is empty, otherwise the
// decoded file over the defaults. Missing fields keep their default
// values. The application never writes a config file itself.
func LoadConfig(file string) (*Config, error) {
	appConf := NewConfig()
	if file == "" {
		return appConf, nil
	}
	if _, err := toml.DecodeFile(file, appConf); err != nil {
		return nil, fmt.Errorf("load config %s: %w", file, err)
	}
	return appConf, nil
}

// set up log configuration and return finalize function with internal error.
// when returned error, the finalize function is nil and need not be called.
func SetupLogConfig(appConf *Config) (func(), error) {
	switch level := appConf.LogLevel; level {
	case LogLevelInfo:
		log.SetLevel(log.InfoLevel)
	case LogLevelDebug:
		log.SetLevel(log.DebugLevel)
	default:
		log.Infof("unknown log level(%s). use 'info' level insteadly.", level)
		log.SetLevel(log.InfoLevel)
	}

	var (
		dstString string
		writer    io.Writer
		closeFunc func()
	)
	switch logfile := appConf.LogFile; logfile {
	case LogFileStdErr, "":
		dstString = "Stderr"
		writer = os.Stderr
		closeFunc = func() {}
	case LogFileStdOut:
		dstString = "Stdout"
		writer = os.Stdout
		closeFunc = func() {}
	default:
		dstString = logfile
		fp, err := os.Create(logfile)
		if err != nil {
			return nil, err
		}
		writer = fp
		closeFunc = func() { fp.Close() }
	}
	log.SetOutput(writer)
	if err := testingLogOutput("log output sanity check..."); err != nil {
		closeFunc()
		return nil, err
	}
	log.Infof("Output log to %s", dstString)

	return closeFunc, nil
}

func testingLogOutput(msg string) error {
	log.Debug(msg)
	err := log.Err()
	switch {
	case errors.Is(err, log.ErrOutputDiscardedByLevel):
	case errors.Is(err, io.EOF):
	case err == nil:
	default:
		return fmt.Errorf("log output error: %w", err)
	}
	return nil // normal operation
}
