package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seqcmp/internal/sequence"
)

// maxLine allows long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// ReadPairs reads two "<label><whitespace><symbols>" lines. Blank lines are
// skipped; tokens after the symbols are ignored.
func ReadPairs(r io.Reader) (Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		seqs   []sequence.Sequence
		extra  int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(seqs) == 2 {
			extra++
			continue
		}
		if len(fields) < 2 {
			return Result{}, fmt.Errorf("line %d: no sequence after label %q: %w", lineNo, fields[0], sequence.ErrMalformedInput)
		}
		s, err := sequence.New(fields[0], fields[1])
		if err != nil {
			return Result{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		seqs = append(seqs, s)
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("read: %w", err)
	}
	if len(seqs) < 2 {
		return Result{}, fmt.Errorf("found %d sequence line(s), need 2: %w", len(seqs), sequence.ErrMalformedInput)
	}
	p, err := sequence.NewPair(seqs[0], seqs[1])
	if err != nil {
		return Result{}, err
	}
	return Result{Pair: p, Format: FormatPairs, Extra: extra}, nil
}
