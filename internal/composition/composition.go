// Package composition computes per-sequence base composition.
package composition

import (
	"unicode/utf8"

	"seqcmp/internal/sequence"
)

// Metrics is the composition summary of one sequence.
type Metrics struct {
	Length    int
	GC        int     // count of 'G' plus 'C'
	Other     int     // symbols outside A, C, G, T
	GCPercent float64 // 100*GC/Length, one decimal place
}

// Compute returns the length and GC percentage of seq.
//
// Length counts characters, not bytes. Only uppercase 'G' and 'C' count
// toward GC; every other symbol counts toward the length only. GCPercent is rounded to one decimal place with
// round-half-to-even, evaluated exactly on the integer ratio so a value
// sitting on a .x5 boundary always lands on the even tenth.
func Compute(seq string) (Metrics, error) {
	n := utf8.RuneCountInString(seq)
	if n == 0 {
		return Metrics{}, sequence.ErrEmptySequence
	}
	gc, other := 0, 0
	for _, c := range seq {
		switch c {
		case 'G', 'C':
			gc++
		case 'A', 'T':
		default:
			other++
		}
	}
	return Metrics{Length: n, GC: gc, Other: other, GCPercent: float64(tenths(gc, n)) / 10}, nil
}

// Of is Compute over a Sequence.
func Of(s sequence.Sequence) (Metrics, error) {
	m, err := Compute(s.Symbols())
	if err != nil && s.Label() != "" {
		return m, &labeled{label: s.Label(), err: err}
	}
	return m, err
}

// tenths returns round-half-even(1000*num/den), i.e. the percentage in
// tenths of a percent.
func tenths(num, den int) int {
	q, r := (1000*num)/den, (1000*num)%den
	switch {
	case 2*r > den:
		q++
	case 2*r == den && q%2 == 1:
		q++
	}
	return q
}

type labeled struct {
	label string
	err   error
}

func (e *labeled) Error() string { return e.label + ": " + e.err.Error() }
func (e *labeled) Unwrap() error { return e.err }
