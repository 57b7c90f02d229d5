// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqcmp/internal/cli"
	"seqcmp/internal/loader"
	"seqcmp/internal/report"
	"seqcmp/internal/version"
	"seqcmp/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags or unusable input
	ExitIO       = 3
	ExitCanceled = 130
)

// RunContext parses argv, compares the two input sequences and writes the
// report. It returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqcmp")
	fs.SetOutput(io.Discard)

	usage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, code)
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage(ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqcmp version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	if ctx.Err() != nil {
		return ExitCanceled
	}
	in, err := loader.Load(opts.Input, opts.Format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if ctx.Err() != nil {
		return ExitCanceled
	}
	rep, err := report.Compare(in.Pair, report.Config{MatrixLimit: opts.MatrixLimit})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if !opts.Quiet {
		warn(stderr, in, rep)
	}

	if ctx.Err() != nil {
		return ExitCanceled
	}
	wo := writers.Options{Pretty: opts.Pretty}
	code := ExitOK
	if rep.LCS.Length == 0 {
		code = opts.NoMatchExitCode
	}
	if opts.Output != "-" {
		if err := writers.WriteReportFile(opts.Report, opts.Output, rep, wo); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitIO
		}
		return code
	}
	if err := writers.WriteReport(opts.Report, outw, rep, wo); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return flush(outw, stderr, code)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

func warn(stderr io.Writer, in loader.Result, rep report.Report) {
	if in.Extra > 0 {
		unit := "line(s)"
		if in.Format == loader.FormatFASTA {
			unit = "record(s)"
		}
		_, _ = fmt.Fprintf(stderr, "warning: ignoring %d %s after the first two sequences\n", in.Extra, unit)
	}
	if rep.First.Other > 0 {
		_, _ = fmt.Fprintf(stderr, "warning: seq1 has %d symbol(s) outside ACGT; they count toward length only\n", rep.First.Other)
	}
	if rep.Second.Other > 0 {
		_, _ = fmt.Fprintf(stderr, "warning: seq2 has %d symbol(s) outside ACGT; they count toward length only\n", rep.Second.Other)
	}
	if rep.Engine == report.EngineRolling {
		_, _ = fmt.Fprintf(stderr, "warning: %d×%d table exceeds --matrix-limit, using two-row LCS engine\n",
			rep.First.Length, rep.Second.Length)
	}
}
