// Package lcs finds the longest common substring of two sequences with the
// suffix-match dynamic program.
//
// Ties are broken by scan order: the table is filled row by row (outer loop
// over first, inner loop over second) and the running maximum only moves on a
// strictly longer run. Of several maximal substrings, the one whose match
// completes earliest in first wins, and for equal end positions in first the
// smallest end position in second.
//
// Symbols are characters: pure ASCII input is compared byte by byte, anything
// else is decoded to runes first, so positions and lengths never split a
// multi-byte character.
package lcs

import "unicode/utf8"

// Result is the retained longest common substring.
type Result struct {
	Substring   string
	Length      int
	EndInFirst  int // 1-based end position in first; 0 when Length == 0
	EndInSecond int // 1-based end position in second; 0 when Length == 0
}

// Matrix is the (len(first)+1) x (len(second)+1) match table. Cell (i, j)
// holds the length of the common suffix of first[:i] and second[:j].
type Matrix struct {
	rows, cols int
	cells      []int
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

// At returns cell (i, j).
func (m Matrix) At(i, j int) int { return m.cells[i*m.cols+j] }

type symbol interface{ ~byte | ~rune }

// Build fills the full match table.
func Build(first, second string) Matrix {
	if isASCII(first) && isASCII(second) {
		return build([]byte(first), []byte(second))
	}
	return build([]rune(first), []rune(second))
}

func build[S symbol](first, second []S) Matrix {
	m := Matrix{rows: len(first) + 1, cols: len(second) + 1}
	m.cells = make([]int, m.rows*m.cols)
	for i := 1; i < m.rows; i++ {
		row, prev := m.cells[i*m.cols:(i+1)*m.cols], m.cells[(i-1)*m.cols:i*m.cols]
		for j := 1; j < m.cols; j++ {
			if first[i-1] == second[j-1] {
				row[j] = prev[j-1] + 1
			}
		}
	}
	return m
}

// Longest returns the longest common substring of first and second using
// the full match table. Either input empty, or no shared symbol, yields the
// zero Result.
func Longest(first, second string) Result {
	if isASCII(first) && isASCII(second) {
		return longest([]byte(first), []byte(second)).bytes(first)
	}
	r := []rune(first)
	return longest(r, []rune(second)).runes(r)
}

func longest[S symbol](first, second []S) tracker {
	m := build(first, second)
	var t tracker
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			t.offer(m.At(i, j), i, j)
		}
	}
	return t
}

// LongestRolling returns the same Result as Longest while keeping only two
// rows of the table, O(len(second)) extra space.
func LongestRolling(first, second string) Result {
	if isASCII(first) && isASCII(second) {
		return longestRolling([]byte(first), []byte(second)).bytes(first)
	}
	r := []rune(first)
	return longestRolling(r, []rune(second)).runes(r)
}

func longestRolling[S symbol](first, second []S) tracker {
	prev := make([]int, len(second)+1)
	cur := make([]int, len(second)+1)
	var t tracker
	for i := 1; i <= len(first); i++ {
		for j := 1; j <= len(second); j++ {
			if first[i-1] == second[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = 0
			}
			t.offer(cur[j], i, j)
		}
		prev, cur = cur, prev
	}
	return t
}

// Cells is the size of the full table for the given input lengths.
func Cells(firstLen, secondLen int) int { return (firstLen + 1) * (secondLen + 1) }

type tracker struct {
	maxLen, endI, endJ int
}

func (t *tracker) offer(v, i, j int) {
	// strict: a later run of equal length never replaces an earlier one
	if v > t.maxLen {
		t.maxLen, t.endI, t.endJ = v, i, j
	}
}

func (t tracker) bytes(first string) Result {
	if t.maxLen == 0 {
		return Result{}
	}
	return Result{
		Substring:   first[t.endI-t.maxLen : t.endI],
		Length:      t.maxLen,
		EndInFirst:  t.endI,
		EndInSecond: t.endJ,
	}
}

func (t tracker) runes(first []rune) Result {
	if t.maxLen == 0 {
		return Result{}
	}
	return Result{
		Substring:   string(first[t.endI-t.maxLen : t.endI]),
		Length:      t.maxLen,
		EndInFirst:  t.endI,
		EndInSecond: t.endJ,
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
