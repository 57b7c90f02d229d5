package sequence

import (
	"errors"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	if _, err := New("", ""); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("want ErrEmptySequence, got %v", err)
	}
	_, err := New("seq1", "")
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("want ErrEmptySequence, got %v", err)
	}
	if err.Error() != "seq1: empty sequence" {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestNewKeepsSymbolsLiterally(t *testing.T) {
	s, err := New("x", "acgtNRY-")
	if err != nil {
		t.Fatal(err)
	}
	if s.Symbols() != "acgtNRY-" || s.Len() != 8 || s.Label() != "x" {
		t.Fatalf("unexpected sequence %+v", s)
	}
}

func TestNewCountsCharacters(t *testing.T) {
	s, err := New("x", "éa")
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if _, err := New("x", "A\xc3"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("invalid UTF-8: want ErrMalformedInput, got %v", err)
	}
}

func TestNewPairRejectsZeroValue(t *testing.T) {
	a, _ := New("a", "ACGT")
	if _, err := NewPair(a, Sequence{}); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("want ErrEmptySequence for second, got %v", err)
	}
	if _, err := NewPair(Sequence{}, a); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("want ErrEmptySequence for first, got %v", err)
	}
	p, err := NewPair(a, a)
	if err != nil || p.First.Symbols() != "ACGT" || p.Second.Symbols() != "ACGT" {
		t.Fatalf("pair: %+v err=%v", p, err)
	}
}
