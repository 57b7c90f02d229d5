package writers

import (
	"bufio"
	"io"
	"strconv"

	"seqcmp/internal/pretty"
	"seqcmp/internal/report"
)

func init() { RegisterReport("text", WriteText) }

// WriteText prints the five-line report. Sequences are always called seq1
// and seq2 here regardless of their input labels; GC content has exactly one
// decimal place and an empty substring is printed as nothing. With
// o.Pretty a "# "-prefixed alignment block follows the five lines.
func WriteText(w io.Writer, r report.Report, o Options) error {
	bw := bufio.NewWriter(w)
	line := func(key, val string) {
		_, _ = bw.WriteString(key)
		_, _ = bw.WriteString(": ")
		_, _ = bw.WriteString(val)
		_ = bw.WriteByte('\n')
	}
	line("seq1 length", strconv.Itoa(r.First.Length))
	line("seq2 length", strconv.Itoa(r.Second.Length))
	line("seq1 GC content", percent(r.First.GCPercent))
	line("seq2 GC content", percent(r.Second.GCPercent))
	line("Longest common substring", r.LCS.Substring)
	if o.Pretty {
		_, _ = bw.WriteString(pretty.Render(r.Pair.First.Symbols(), r.Pair.Second.Symbols(), r.LCS, pretty.DefaultOptions))
	}
	return bw.Flush()
}

func percent(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) + "%" }
