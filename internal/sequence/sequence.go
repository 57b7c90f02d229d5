// Package sequence holds the immutable symbol strings compared by seqcmp.
package sequence

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrMalformedInput reports an input record that does not hold two
	// labeled sequences.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptySequence reports a sequence with zero symbols.
	ErrEmptySequence = errors.New("empty sequence")
)

// Sequence is an ordered run of symbols. Symbols are kept literally:
// ambiguity codes, lowercase letters and gaps are not rejected.
type Sequence struct {
	label   string
	symbols string
}

// New returns a Sequence, ErrEmptySequence when symbols is empty, or
// ErrMalformedInput when symbols is not valid UTF-8.
func New(label, symbols string) (Sequence, error) {
	var err error
	switch {
	case symbols == "":
		err = ErrEmptySequence
	case !utf8.ValidString(symbols):
		err = fmt.Errorf("invalid UTF-8: %w", ErrMalformedInput)
	default:
		return Sequence{label: label, symbols: symbols}, nil
	}
	if label == "" {
		return Sequence{}, err
	}
	return Sequence{}, fmt.Errorf("%s: %w", label, err)
}

func (s Sequence) Label() string   { return s.label }
func (s Sequence) Symbols() string { return s.symbols }

// Len is the number of characters in the sequence.
func (s Sequence) Len() int { return utf8.RuneCountInString(s.symbols) }

// Pair is two sequences identified by position.
type Pair struct {
	First  Sequence
	Second Sequence
}

// NewPair enforces that neither sequence is empty.
func NewPair(first, second Sequence) (Pair, error) {
	if first.Len() == 0 {
		return Pair{}, fmt.Errorf("first sequence: %w", ErrEmptySequence)
	}
	if second.Len() == 0 {
		return Pair{}, fmt.Errorf("second sequence: %w", ErrEmptySequence)
	}
	return Pair{First: first, Second: second}, nil
}
