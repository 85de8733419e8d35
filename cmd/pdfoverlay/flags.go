package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks a malformed invocation: unknown flag or wrong positional count.
var ErrUsage = errors.New("usage error")

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	config     string
	dpi        float64
	dpiChanged bool
	verbose    bool
	version    bool
	help       bool
}

// parseFlags parses args (program name first) and returns the flags and
// the positional arguments. Flag errors are wrapped in ErrUsage.
// pflag output is discarded: stdout is reserved for the JSON envelope.
func parseFlags(args []string) (*cliFlags, []string, error) {
	name := "pdfoverlay"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "house defaults YAML (name or path)")
	fs.Float64Var(&f.dpi, "dpi", 0, "resolution for PNG output (default 72)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print diagnostics to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print help and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			f.help = true
			return f, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.dpiChanged = fs.Changed("dpi")

	return f, fs.Args(), nil
}
