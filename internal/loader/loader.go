// Package loader reads the two sequences to compare from a text record.
//
// Two layouts are understood:
//
//	pairs  one "<label> <symbols>" line per sequence
//	fasta  ">label" header lines followed by sequence lines
//
// Only the first two sequences are used; anything after them is counted in
// Result.Extra so the caller can warn about it.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"seqcmp/internal/sequence"
)

// Format selects the input layout.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatPairs Format = "pairs"
	FormatFASTA Format = "fasta"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatAuto, FormatPairs, FormatFASTA:
		return f, nil
	}
	return "", fmt.Errorf("invalid input format %q (want auto | pairs | fasta)", s)
}

// Result is a loaded pair plus the number of ignored trailing entries.
type Result struct {
	Pair   sequence.Pair
	Format Format // resolved layout, never FormatAuto
	Extra  int
}

// Load opens path ("-" for stdin, gzip transparently) and reads it.
func Load(path string, f Format) (Result, error) {
	rc, err := open(path)
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()
	res, err := Read(rc, f)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", displayName(path), err)
	}
	return res, nil
}

// Read parses r in format f. FormatAuto picks fasta when the first
// non-blank line starts with '>', pairs otherwise.
func Read(r io.Reader, f Format) (Result, error) {
	switch f {
	case FormatPairs:
		return ReadPairs(r)
	case FormatFASTA:
		return ReadFASTA(r)
	case FormatAuto, "":
		rr, fasta, err := sniffFASTA(r)
		if err != nil {
			return Result{}, err
		}
		if fasta {
			return ReadFASTA(rr)
		}
		return ReadPairs(rr)
	}
	return Result{}, fmt.Errorf("invalid input format %q", f)
}

// sniffFASTA reports whether the first non-whitespace byte of r is '>'.
// The returned reader replays everything read, leading whitespace included,
// so line numbers downstream are unchanged.
func sniffFASTA(r io.Reader) (io.Reader, bool, error) {
	br := bufio.NewReader(r)
	var lead bytes.Buffer
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return &lead, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			lead.WriteByte(c)
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return nil, false, err
		}
		return io.MultiReader(&lead, br), c == '>', nil
	}
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
