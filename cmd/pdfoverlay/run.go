package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	pdfoverlay "github.com/alnah/go-pdfoverlay"
	"github.com/alnah/go-pdfoverlay/internal/config"
	"github.com/alnah/go-pdfoverlay/internal/hints"
)

// runMain executes one invocation and returns the process exit code.
// Every path except --help and --version writes exactly one envelope to
// env.Stdout.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fail(env, nil, err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "pdfoverlay %s\n", Version)
		return ExitSuccess
	}

	setMaxProcs(flags.verbose, env)

	if len(positional) != 3 {
		return fail(env, flags, fmt.Errorf("%w: expected 3 arguments, got %d", ErrUsage, len(positional)))
	}
	inputPath, outputPath, rawConfig := positional[0], positional[1], []byte(positional[2])

	// Syntax check with built-in defaults first, so a malformed config never
	// reaches the filesystem.
	if _, err := pdfoverlay.ParseConfig(rawConfig); err != nil {
		return fail(env, flags, err)
	}

	opts, err := serviceOptions(flags)
	if err != nil {
		return fail(env, flags, err)
	}
	svc := env.NewRenderer(opts...)

	cfg, err := svc.ParseConfig(rawConfig)
	if err != nil {
		return fail(env, flags, err)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	start := env.Now()
	result, err := svc.Render(ctx, pdfoverlay.Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Config:     cfg,
	})
	if err != nil {
		return failWithHint(env, flags, err, hintFor(err, inputPath, outputPath, flags.config))
	}

	if flags.verbose {
		elapsed := env.Now().Sub(start).Round(time.Millisecond)
		fmt.Fprintf(env.Stderr, "Rendered %d layer(s), skipped %d, as %s (%d page(s)) in %v\n",
			result.LayersDrawn, result.LayersSkipped, result.Mode, result.Pages, elapsed)
	}

	if err := writeEnvelope(env.Stdout, successEnvelope(result.Path)); err != nil {
		return ExitFailure
	}
	return ExitSuccess
}

// serviceOptions builds the service options from the house config and flags.
// --dpi overrides raster.dpi.
func serviceOptions(flags *cliFlags) ([]pdfoverlay.Option, error) {
	houseCfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		houseCfg = loaded
	}

	dpi := houseCfg.DPI()
	if flags.dpiChanged {
		if !(flags.dpi >= pdfoverlay.MinDPI && flags.dpi <= pdfoverlay.MaxDPI) {
			return nil, fmt.Errorf("%w: --dpi must be between %v and %v, got %v",
				config.ErrInvalidValue, pdfoverlay.MinDPI, pdfoverlay.MaxDPI, flags.dpi)
		}
		dpi = flags.dpi
	}

	return []pdfoverlay.Option{
		pdfoverlay.WithDefaults(houseCfg.LayerDefaults()),
		pdfoverlay.WithLineHeight(houseCfg.LineHeight()),
		pdfoverlay.WithDPI(dpi),
	}, nil
}

// hintFor picks the stderr hint matching err. Hints never reach the envelope.
func hintFor(err error, inputPath, outputPath, configName string) string {
	switch {
	case errors.Is(err, pdfoverlay.ErrOpen):
		return hints.ForOpen(inputPath)
	case errors.Is(err, pdfoverlay.ErrSameFile):
		return hints.ForSameFile()
	case errors.Is(err, pdfoverlay.ErrConfigParse):
		return hints.ForConfigJSON()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, pdfoverlay.ErrRender):
		return hints.ForOutput(outputPath)
	}
	return ""
}

func fail(env *Environment, flags *cliFlags, err error) int {
	var configName string
	if flags != nil {
		configName = flags.config
	}
	return failWithHint(env, flags, err, hintFor(err, "", "", configName))
}

// failWithHint writes the failure envelope and, in verbose mode, the full
// error with its hint to stderr.
func failWithHint(env *Environment, flags *cliFlags, err error, hint string) int {
	if flags != nil && flags.verbose {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hint)
	}
	_ = writeEnvelope(env.Stdout, failureEnvelope(err))
	return exitCodeFor(err)
}

// setMaxProcs configures GOMAXPROCS, logging the decision only when verbose.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(verbose bool, env *Environment) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
