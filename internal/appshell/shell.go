// Package appshell wires a RunContext-style entry point to the process:
// signals, argv and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by app entry points.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with
// its code. An interrupted run that still reports success exits 130.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without os.Exit, for tests.
func Exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
