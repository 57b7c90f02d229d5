package cli

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// splitArgs separates flag arguments from positionals so flags may follow
// INPUT/OUTPUT. '-' is a positional (stdin/stdout), everything after '--' is
// positional, and a non-bool flag written without '=' takes the next arg.
func splitArgs(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	isBool := func(name string) bool {
		f := fs.Lookup(name)
		if f == nil {
			return false
		}
		bf, ok := f.Value.(interface{ IsBoolFlag() bool })
		return ok && bf.IsBoolFlag()
	}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !isBool(strings.TrimLeft(arg, "-")) && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

// expandInput resolves a glob to exactly one path. Non-glob paths and '-'
// are returned unchanged.
func expandInput(arg string) (string, error) {
	if arg == "-" || !strings.ContainsAny(arg, "*?[") {
		return arg, nil
	}
	m, err := filepath.Glob(arg)
	if err != nil {
		return "", fmt.Errorf("bad glob %q: %v", arg, err)
	}
	switch len(m) {
	case 0:
		return "", fmt.Errorf("no input matched %q", arg)
	case 1:
		return m[0], nil
	}
	return "", fmt.Errorf("INPUT %q matched %d files, want 1", arg, len(m))
}
