// Released under an MIT license. See LICENSE.

// Package options parses the cclisp command line.
package options

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	budget      time.Duration
	budgeted    bool
	command     string
	config      string
	debug       bool
	interactive bool
	locale      string
	script      string
	usage       = `cclisp

Usage:
  cclisp [-d] [-b SECONDS] [-f FILE] [-l LOCALE] SCRIPT [ARGUMENTS...]
  cclisp [-d] [-b SECONDS] [-f FILE] [-l LOCALE] -c COMMAND [ARGUMENTS...]
  cclisp [-di] [-b SECONDS] [-f FILE] [-l LOCALE]
  cclisp -h
  cclisp -v

Arguments:
  ARGUMENTS  Words bound to args. Joined by spaces they are argstring.
  SCRIPT     Path to a cclisp program.

Options:
  -b, --budget=SECONDS   Maximum runtime for each program. Zero is unlimited.
  -c, --command=COMMAND  Run the specified program.
  -d, --debug            Log at debug level.
  -f, --config=FILE      Read settings from a YAML file.
  -i, --interactive      Invert interactive mode.
  -l, --locale=LOCALE    Default locale for fmtnum, fmtcur, fmtpct and eztime.
  -h, --help             Display this help.
  -v, --version          Print cclisp version.

If cclisp's stdin is a TTY, and cclisp was invoked with no program,
interactive mode is enabled. Otherwise, the program is read from stdin.
`
)

// Args returns the positional arguments passed to the program.
func Args() []string {
	return args
}

// Budget returns the runtime budget given with -b and whether -b was given.
func Budget() (time.Duration, bool) {
	return budget, budgeted
}

// Command returns the program given with -c.
func Command() string {
	return command
}

// Config returns the path of the YAML settings file, if any.
func Config() string {
	return config
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Interactive returns true if cclisp should start its REPL.
func Interactive() bool {
	return interactive
}

// Locale returns the locale given with -l.
func Locale() string {
	return locale
}

// Parse parses os.Args.
func Parse() error {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	debug, _ = opts.Bool("--debug")
	locale, _ = opts.String("--locale")
	script, _ = opts.String("SCRIPT")

	args, _ = opts["ARGUMENTS"].([]string)

	budget, budgeted = 0, false
	if s, _ := opts.String("--budget"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid budget %q", s)
		}

		budget, budgeted = time.Duration(f*float64(time.Second)), true
	}

	interactive = false
	if script == "" && command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}

// Script returns the path of the program to run, if any.
func Script() string {
	return script
}
