package loader

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"seqcmp/internal/sequence"
)

// ReadFASTA reads the first two FASTA records of r. Residues are kept as
// written; the record ID becomes the label.
func ReadFASTA(r io.Reader) (Result, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))

	var (
		seqs  []sequence.Sequence
		extra int
	)
	for sc.Next() {
		if len(seqs) == 2 {
			extra++
			continue
		}
		rec, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return Result{}, fmt.Errorf("record %d: unexpected sequence type %T", len(seqs)+1, sc.Seq())
		}
		s, err := sequence.New(rec.Name(), letters(rec.Seq))
		if err != nil {
			return Result{}, fmt.Errorf("record %d: %w", len(seqs)+1, err)
		}
		seqs = append(seqs, s)
	}
	if err := sc.Error(); err != nil {
		return Result{}, fmt.Errorf("fasta: %w", err)
	}
	if len(seqs) < 2 {
		return Result{}, fmt.Errorf("found %d FASTA record(s), need 2: %w", len(seqs), sequence.ErrMalformedInput)
	}
	p, err := sequence.NewPair(seqs[0], seqs[1])
	if err != nil {
		return Result{}, err
	}
	return Result{Pair: p, Format: FormatFASTA, Extra: extra}, nil
}

func letters(ls alphabet.Letters) string {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = byte(l)
	}
	return string(b)
}
