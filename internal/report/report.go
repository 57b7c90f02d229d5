// Package report assembles the comparison of two sequences.
package report

import (
	"fmt"

	"seqcmp/internal/composition"
	"seqcmp/internal/lcs"
	"seqcmp/internal/sequence"
)

// DefaultMatrixLimit is the table size (cells) above which Compare switches
// to the two-row LCS engine.
const DefaultMatrixLimit = 25_000_000

// Engine names.
const (
	EngineFull    = "full"
	EngineRolling = "rolling"
)

type Config struct {
	MatrixLimit int // 0 = DefaultMatrixLimit; <0 = always use the full table
}

// Report is the composition of both sequences plus their longest common
// substring.
type Report struct {
	Pair        sequence.Pair
	FirstLabel  string
	SecondLabel string
	First       composition.Metrics
	Second      composition.Metrics
	LCS         lcs.Result
	Engine      string
}

// Compare runs the composition analyzer on each sequence and the LCS engine
// on the pair. Nothing is returned unless every stage succeeds.
func Compare(p sequence.Pair, cfg Config) (Report, error) {
	first, err := composition.Of(p.First)
	if err != nil {
		return Report{}, fmt.Errorf("first sequence: %w", err)
	}
	second, err := composition.Of(p.Second)
	if err != nil {
		return Report{}, fmt.Errorf("second sequence: %w", err)
	}

	a, b := p.First.Symbols(), p.Second.Symbols()
	r := Report{
		Pair:        p,
		FirstLabel:  p.First.Label(),
		SecondLabel: p.Second.Label(),
		First:       first,
		Second:      second,
		Engine:      SelectEngine(p.First.Len(), p.Second.Len(), cfg.MatrixLimit),
	}
	if r.Engine == EngineRolling {
		r.LCS = lcs.LongestRolling(a, b)
	} else {
		r.LCS = lcs.Longest(a, b)
	}
	return r, nil
}

// SelectEngine picks the LCS engine for inputs of the given lengths.
func SelectEngine(firstLen, secondLen, limit int) string {
	if limit == 0 {
		limit = DefaultMatrixLimit
	}
	if limit > 0 && lcs.Cells(firstLen, secondLen) > limit {
		return EngineRolling
	}
	return EngineFull
}
