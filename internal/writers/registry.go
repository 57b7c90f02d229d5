// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqcmp/internal/report"
)

// Options are presentation switches shared by all formats. A format
// ignores the switches it has no use for.
type Options struct {
	Pretty bool // text: append an ASCII block locating the substring
}

// ReportFunc renders one report.
type ReportFunc func(w io.Writer, r report.Report, o Options) error

// ReportWriters maps a format name to its renderer. Formats register
// themselves in init() blocks.
var ReportWriters = map[string]ReportFunc{}

// RegisterReport adds or replaces a format (last wins).
func RegisterReport(format string, fn ReportFunc) { ReportWriters[format] = fn }

// WriteReport renders r in the named format.
func WriteReport(format string, w io.Writer, r report.Report, o Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, o)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for k := range ReportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
