package lcs

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

type engineFunc func(string, string) Result

var engines = map[string]engineFunc{
	"full":    Longest,
	"rolling": LongestRolling,
}

func TestReferenceScenario(t *testing.T) {
	for name, f := range engines {
		// ACGTA (ends at 5 in first) and TACGT (ends at 8) are both maximal.
		got := f("ACGTACGT", "TACGTAGA")
		want := Result{Substring: "ACGTA", Length: 5, EndInFirst: 5, EndInSecond: 6}
		if got != want {
			t.Errorf("%s: got %+v, want %+v", name, got, want)
		}
	}
}

func TestTieKeepsEarliestEndInFirst(t *testing.T) {
	for name, f := range engines {
		got := f("AGCAGC", "AGC")
		if got.Substring != "AGC" || got.Length != 3 || got.EndInFirst != 3 {
			t.Errorf("%s: got %+v, want AGC ending at 3", name, got)
		}
	}
}

func TestTieKeepsEarliestEndInSecond(t *testing.T) {
	// "AC" ends at i=2 in first, and at j=2 and j=4 in second.
	for name, f := range engines {
		got := f("ACG", "ACAC")
		if got.Substring != "AC" || got.EndInFirst != 2 || got.EndInSecond != 2 {
			t.Errorf("%s: got %+v, want AC ending at (2,2)", name, got)
		}
	}
}

func TestTieBetweenDifferentSubstrings(t *testing.T) {
	// "GG" and "TT" are both maximal; "TT" completes first in first.
	for name, f := range engines {
		got := f("TTAGG", "GGCTT")
		if got.Substring != "TT" || got.EndInFirst != 2 || got.EndInSecond != 5 {
			t.Errorf("%s: got %+v, want TT", name, got)
		}
	}
}

func TestEmptyAndDisjoint(t *testing.T) {
	for name, f := range engines {
		for _, in := range [][2]string{{"", "ACGT"}, {"ACGT", ""}, {"", ""}, {"AAAA", "CCCC"}} {
			if got := f(in[0], in[1]); got != (Result{}) {
				t.Errorf("%s(%q,%q): got %+v, want zero", name, in[0], in[1], got)
			}
		}
	}
}

func TestSelfIsLongest(t *testing.T) {
	for name, f := range engines {
		for _, s := range []string{"A", "ACGT", "NNNNRY", "GATTACAGATTACA"} {
			got := f(s, s)
			if got.Substring != s || got.Length != len(s) || got.EndInFirst != len(s) {
				t.Errorf("%s(%q): got %+v", name, s, got)
			}
		}
	}
}

func TestMultiByteSymbols(t *testing.T) {
	for name, f := range engines {
		// é and è share their UTF-8 lead byte but are different symbols.
		if got := f("é", "è"); got != (Result{}) {
			t.Errorf("%s: got %+v, want zero", name, got)
		}
		got := f("xéyè", "aéyb")
		want := Result{Substring: "éy", Length: 2, EndInFirst: 3, EndInSecond: 3}
		if got != want {
			t.Errorf("%s: got %+v, want %+v", name, got, want)
		}
		if got := f("ACGTé", "TACGT"); got.Substring != "ACGT" || got.EndInFirst != 4 || got.EndInSecond != 5 {
			t.Errorf("%s: mixed input got %+v", name, got)
		}
	}
}

func TestEnginesAgreeOnRunes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("AéèΣ")
	gen := func(n int) string {
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}
	for iter := 0; iter < 200; iter++ {
		a, b := gen(rng.Intn(30)), gen(rng.Intn(30))
		full, roll := Longest(a, b), LongestRolling(a, b)
		if full != roll {
			t.Fatalf("%q vs %q: full %+v, rolling %+v", a, b, full, roll)
		}
		if !utf8.ValidString(full.Substring) || utf8.RuneCountInString(full.Substring) != full.Length {
			t.Fatalf("%q vs %q: bad substring %+v", a, b, full)
		}
		if full.Length > 0 && string([]rune(a)[full.EndInFirst-full.Length:full.EndInFirst]) != full.Substring {
			t.Fatalf("EndInFirst does not locate %q in %q", full.Substring, a)
		}
		m := Build(a, b)
		if m.Rows() != utf8.RuneCountInString(a)+1 || m.Cols() != utf8.RuneCountInString(b)+1 {
			t.Fatalf("dims %dx%d for %q, %q", m.Rows(), m.Cols(), a, b)
		}
	}
}

func TestBuildInvariant(t *testing.T) {
	first, second := "GATTACA", "TACATTG"
	m := Build(first, second)
	if m.Rows() != len(first)+1 || m.Cols() != len(second)+1 {
		t.Fatalf("dims %dx%d", m.Rows(), m.Cols())
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want := 0
			if i > 0 && j > 0 && first[i-1] == second[j-1] {
				want = m.At(i-1, j-1) + 1
			}
			if m.At(i, j) != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestEnginesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gen := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte("ACGT"[rng.Intn(4)])
		}
		return b.String()
	}
	for iter := 0; iter < 300; iter++ {
		a, b := gen(rng.Intn(60)), gen(rng.Intn(60))
		full, roll := Longest(a, b), LongestRolling(a, b)
		if full != roll {
			t.Fatalf("%q vs %q: full %+v, rolling %+v", a, b, full, roll)
		}
		if full.Length != len(full.Substring) {
			t.Fatalf("length mismatch %+v", full)
		}
		if !strings.Contains(a, full.Substring) || !strings.Contains(b, full.Substring) {
			t.Fatalf("%q not common to %q and %q", full.Substring, a, b)
		}
		if full.Length > 0 && b[full.EndInSecond-full.Length:full.EndInSecond] != full.Substring {
			t.Fatalf("EndInSecond does not locate %q in %q", full.Substring, b)
		}
		if again := Longest(a, b); again != full {
			t.Fatalf("not idempotent")
		}
	}
}

func TestCells(t *testing.T) {
	if got := Cells(8, 8); got != 81 {
		t.Fatalf("Cells(8,8)=%d", got)
	}
}
