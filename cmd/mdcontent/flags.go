package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	flag "github.com/spf13/pflag"
)

// MaxWorkers caps --workers.
const MaxWorkers = 32

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	root    string
	timeout string
	quiet   bool
	verbose bool
}

// renderOutputFlags holds HTML output flags.
type renderOutputFlags struct {
	standalone  bool
	hardWraps   bool
	style       string
	assetPrefix string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	html    renderOutputFlags
	output  string
	workers int
	drafts  bool
}

// rawFlags holds flags for the raw command.
type rawFlags struct {
	common commonFlags
	output string
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.root, "root", "r", "", "content root directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file read timeout (e.g., 5s)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addRenderOutputFlags adds HTML output flags to a FlagSet.
func addRenderOutputFlags(fs *flag.FlagSet, f *renderOutputFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML document")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render single newlines as <br>")
	fs.StringVar(&f.style, "style", "", "code highlight style (default: github)")
	fs.StringVar(&f.assetPrefix, "asset-prefix", "", "URL prefix for relative images")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .html file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include pages marked draft")
	addCommonFlags(fs, &f.common)
	addRenderOutputFlags(fs, &f.html)

	fs.Usage = func() { printRenderUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return f, fs.Args(), nil
}

// parseRawFlags parses raw command flags and returns positional args.
func parseRawFlags(args []string, stderr io.Writer) (*rawFlags, []string, error) {
	fs := flag.NewFlagSet("raw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &rawFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRawUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, stderr io.Writer) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &checkFlags{}

	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCheckUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse, passing ErrHelp through and marking other
// failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}

// Validate checks flag values shared by every command.
func (f *commonFlags) Validate() error {
	return validation.Errors{
		"timeout": validation.Validate(f.timeout, validation.By(positiveDuration)),
		"quiet":   validation.Validate(f.quiet, validation.When(f.verbose, validation.Empty.Error("cannot be combined with --verbose"))),
	}.Filter()
}

// Validate checks render flag values.
func (f *renderFlags) Validate() error {
	if err := f.common.Validate(); err != nil {
		return err
	}
	return validation.Errors{
		"workers": validation.Validate(f.workers, validation.Min(0), validation.Max(MaxWorkers)),
	}.Filter()
}

// positiveDuration accepts "" or a Go duration greater than zero.
func positiveDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return validation.NewError("validation_duration_invalid", "must be a duration like 5s or 1m")
	}
	if d <= 0 {
		return validation.NewError("validation_duration_positive", "must be positive")
	}
	return nil
}
