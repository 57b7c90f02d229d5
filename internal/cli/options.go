// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"seqcmp/internal/loader"
	"seqcmp/internal/report"
)

// Report formats.
const (
	ReportText = "text"
	ReportJSON = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output
	Input  string
	Output string // "-" = stdout
	Format loader.Format

	// Engine
	MatrixLimit int // cells; -1 = always full table

	// Report
	Report          string
	Pretty          bool
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals are INPUT [OUTPUT]; INPUT may be a glob matching one file.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt    Options
		help   bool
		format string
	)

	// Input / output
	fs.StringVar(&opt.Input, "input", "", "input record file ('-' for stdin)")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "out", "-", "output file ('-' for stdout)")
	fs.StringVar(&opt.Output, "o", "-", "alias of --out")
	fs.StringVar(&format, "format", string(loader.FormatAuto), "input format: auto | pairs | fasta")
	fs.StringVar(&format, "f", string(loader.FormatAuto), "alias of --format")

	// Engine
	fs.IntVar(&opt.MatrixLimit, "matrix-limit", report.DefaultMatrixLimit, "table cells above which the two-row LCS engine is used (-1=never)")

	// Report
	fs.StringVar(&opt.Report, "report", ReportText, "report format: text | json")
	fs.StringVar(&opt.Report, "r", ReportText, "alias of --report")
	fs.BoolVar(&opt.Pretty, "pretty", false, "append an ASCII block locating the substring (text)")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when the sequences share no symbol")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help message")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)

	f, err := loader.ParseFormat(format)
	if err != nil {
		return opt, err
	}
	opt.Format = f

	if err := applyPositionals(&opt, fs, posArgs); err != nil {
		return opt, err
	}
	return opt, Validate(&opt)
}

func applyPositionals(opt *Options, fs *flag.FlagSet, posArgs []string) error {
	if len(posArgs) > 2 {
		return fmt.Errorf("too many arguments: %q (want INPUT [OUTPUT])", posArgs)
	}
	if len(posArgs) == 0 {
		return nil
	}
	if opt.Input != "" {
		return errors.New("--input conflicts with a positional INPUT")
	}
	in, err := expandInput(posArgs[0])
	if err != nil {
		return err
	}
	opt.Input = in
	if len(posArgs) == 2 {
		if isSet(fs, "out") || isSet(fs, "o") {
			return errors.New("--out conflicts with a positional OUTPUT")
		}
		opt.Output = posArgs[1]
	}
	return nil
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("an input file is required (positional INPUT or --input)")
	}
	if o.Output == "" {
		return errors.New("--out must not be empty")
	}
	switch o.Report {
	case ReportText, ReportJSON:
	default:
		return fmt.Errorf("invalid --report %q", o.Report)
	}
	if o.MatrixLimit < -1 {
		return errors.New("--matrix-limit must be ≥ -1")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
