package cli

import (
	"flag"
	"fmt"

	"seqcmp/internal/version"
)

// NewFlagSet returns a FlagSet with the seqcmp help text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – pairwise sequence comparison (GC content, longest common substring)\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] INPUT [OUTPUT]\n", name)
		fmt.Fprintf(out, "  %s -f fasta -r json pair.fa.gz\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            Record with two sequences, or '-' for STDIN")
		fmt.Fprintf(out, "  -f, --format string         Input format: auto | pairs | fasta [%s]\n", def("format"))

		fmt.Fprintln(out, "\nEngine:")
		fmt.Fprintf(out, "      --matrix-limit int      Cells above which the two-row LCS engine is used (-1=never) [%s]\n", def("matrix-limit"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out file              Report file, or '-' for STDOUT [%s]\n", def("out"))
		fmt.Fprintf(out, "  -r, --report string         Report format: text | json [%s]\n", def("report"))
		fmt.Fprintf(out, "      --pretty                Append an ASCII block locating the substring (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no common substring exists [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}
