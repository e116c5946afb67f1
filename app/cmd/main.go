package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mmruler/mmruler/app"
)

var (
	version string = "dev"
	commit  string = "none"
)

func main() {
	appConf, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if appConf == nil {
		// -version handled.
		return
	}
	app.Main(appConf)
}

// parseFlags returns the effective config: defaults, overwritten by the
// -config file when given, overwritten by flags set on the command line.
// A nil config with nil error means the invocation is already done.
func parseFlags() (*app.Config, error) {
	flag.Usage = printHelp

	configFile := ""
	flag.StringVar(&configFile, "config", configFile, "`config-file` to load. defaults apply when omitted;"+
		" no config file is ever written.")

	flagConf := app.NewConfig()
	flag.StringVar(&flagConf.LogFile, "logfile", flagConf.LogFile, "`output-file` to write log. { stdout | stderr } is OK.")
	flag.StringVar(&flagConf.LogLevel, "loglevel", flagConf.LogLevel, "`level` = { info | debug }.\n\t"+
		"info outputs information level log only, and debug also outputs debug level log.")
	flag.StringVar(&flagConf.Font, "font", flagConf.Font, "`font-path` to print the labels. use builtin default if empty")
	flag.Float64Var(&flagConf.FontSize, "fontsize", flagConf.FontSize, "`font-size` of the centimeter labels, in point(Pt.).")

	showVersion := false
	flag.BoolVar(&showVersion, "version", showVersion, "show version info and quit.")

	flag.Parse()

	if showVersion {
		fmt.Println(version + "-" + commit)
		return nil, nil
	}

	appConf, err := app.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "logfile":
			appConf.LogFile = flagConf.LogFile
		case "loglevel":
			appConf.LogLevel = flagConf.LogLevel
		case "font":
			appConf.Font = flagConf.Font
		case "fontsize":
			appConf.FontSize = flagConf.FontSize
		}
	})
	return appConf, nil
}

func printHelp() {
	progName := os.Args[0]
	fmt.Fprintf(os.Stderr, `Usage: %s [options]

  %s shows a 15 cm on-screen ruler calibrated to the physical
  pixel density of the display showing it. No manual calibration;
  press Esc to quit.

`, progName, progName)
	flag.PrintDefaults()
}
