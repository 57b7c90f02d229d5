// Package pretty draws an ASCII block locating the longest common substring
// in both sequences.
package pretty

import (
	"fmt"
	"strings"

	"seqcmp/internal/lcs"
)

// Options control the ASCII rendering.
type Options struct {
	// Symbols of context shown on each side of the match. If <=0, use default (10).
	Flank int

	// Glyphs
	MatchGlyph string // default "|"
	ClipGlyph  string // default "…", marks a window cut short of the sequence end
}

// DefaultOptions is the look used by the text report.
var DefaultOptions = Options{
	Flank:      10,
	MatchGlyph: "|",
	ClipGlyph:  "…",
}

const linePrefix = "# "

// window is one sequence row of the block.
type window struct {
	label    string
	text     string // visible symbols
	lead     int    // visible symbols before the match
	from, to int    // 1-based inclusive coordinates of text
	clipL    bool
	clipR    bool
}

// cut windows seq around a match; end and length count characters.
func cut(label, s string, end, length, flank int) window {
	seq := []rune(s)
	start := end - length // 0-based start of the match
	lo := start - flank
	if lo < 0 {
		lo = 0
	}
	hi := end + flank
	if hi > len(seq) {
		hi = len(seq)
	}
	return window{
		label: label,
		text:  string(seq[lo:hi]),
		lead:  start - lo,
		from:  lo + 1,
		to:    hi,
		clipL: lo > 0,
		clipR: hi < len(seq),
	}
}

// Render returns the block for r, one "# "-prefixed line per row, each
// ending in '\n'. The match is drawn in the same columns on both rows.
func Render(first, second string, r lcs.Result, o Options) string {
	if o.Flank <= 0 {
		o.Flank = DefaultOptions.Flank
	}
	if o.MatchGlyph == "" {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.ClipGlyph == "" {
		o.ClipGlyph = DefaultOptions.ClipGlyph
	}
	if r.Length == 0 {
		return linePrefix + "no common substring\n"
	}

	a := cut("seq1", first, r.EndInFirst, r.Length, o.Flank)
	b := cut("seq2", second, r.EndInSecond, r.Length, o.Flank)
	lead := a.lead
	if b.lead > lead {
		lead = b.lead
	}
	clip := len([]rune(o.ClipGlyph))

	row := func(w window) string {
		var sb strings.Builder
		sb.WriteString(linePrefix)
		sb.WriteString(w.label)
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat(" ", lead-w.lead))
		if w.clipL {
			sb.WriteString(o.ClipGlyph)
		} else {
			sb.WriteString(strings.Repeat(" ", clip))
		}
		sb.WriteString(w.text)
		if w.clipR {
			sb.WriteString(o.ClipGlyph)
		}
		fmt.Fprintf(&sb, "  %d-%d\n", w.from, w.to)
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(row(a))
	sb.WriteString(linePrefix)
	sb.WriteString(strings.Repeat(" ", len("seq1 ")+lead+clip))
	sb.WriteString(strings.Repeat(o.MatchGlyph, r.Length))
	sb.WriteByte('\n')
	sb.WriteString(row(b))
	return sb.String()
}
