package automaton

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// TestQueriesMatchBruteForce checks recognition, counts and first
// occurrences for every substring of random texts, plus random patterns
// that mostly do not occur.
func TestQueriesMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 25; i++ {
		k := 1 + rng.Intn(4)
		text := randomString(rng, rng.Intn(50), k)
		a := mustBuild(t, LowercaseConfig(), text)

		var patterns []string
		for start := 0; start < len(text); start++ {
			for end := start + 1; end <= len(text); end++ {
				patterns = append(patterns, text[start:end])
			}
		}
		for j := 0; j < 50; j++ {
			patterns = append(patterns, randomString(rng, 1+rng.Intn(8), k+1))
		}

		for _, p := range patterns {
			sym := symbols(p)
			wantCount := bruteCount(text, p)
			if got := a.Contains(sym); got != (wantCount > 0) {
				t.Fatalf("%q: Contains(%q) = %v, want %v", text, p, got, wantCount > 0)
			}
			if got := a.CountOccurrences(sym); got != wantCount {
				t.Fatalf("%q: CountOccurrences(%q) = %d, want %d", text, p, got, wantCount)
			}
			if got, want := a.FirstOccurrence(sym), bruteFirst(text, p); got != want {
				t.Fatalf("%q: FirstOccurrence(%q) = %d, want %d", text, p, got, want)
			}
		}
	}
}

// TestTotalOccurrenceIdentity: summing counts over distinct substrings
// counts every (start, length) pair once.
func TestTotalOccurrenceIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 15; i++ {
		text := randomString(rng, rng.Intn(40), 1+rng.Intn(3))
		n := len(text)
		a := mustBuild(t, LowercaseConfig(), text)

		distinct := make(map[string]struct{})
		for start := 0; start < n; start++ {
			for end := start + 1; end <= n; end++ {
				distinct[text[start:end]] = struct{}{}
			}
		}

		total := 0
		for p := range distinct {
			total += a.CountOccurrences(symbols(p))
		}
		if total != n*(n+1)/2 {
			t.Errorf("%q: total occurrences = %d, want %d", text, total, n*(n+1)/2)
		}
		if got := a.DistinctSubstrings(); got != int64(len(distinct)) {
			t.Errorf("%q: DistinctSubstrings() = %d, want %d", text, got, len(distinct))
		}
	}
}

func TestOccurrences(t *testing.T) {
	a := mustBuild(t, LowercaseConfig(), "abracadabra")

	tests := []struct {
		pattern string
		want    []int
	}{
		{pattern: "a", want: []int{0, 3, 5, 7, 10}},
		{pattern: "abra", want: []int{0, 7}},
		{pattern: "bra", want: []int{1, 8}},
		{pattern: "cad", want: []int{4}},
		{pattern: "abracadabra", want: []int{0}},
		{pattern: "z", want: nil},
		{pattern: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := a.Occurrences(symbols(tt.pattern))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Occurrences(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestOccurrencesRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 10; i++ {
		text := randomString(rng, 1+rng.Intn(60), 1+rng.Intn(3))
		a := mustBuild(t, LowercaseConfig(), text)

		for j := 0; j < 30; j++ {
			start := rng.Intn(len(text))
			end := start + 1 + rng.Intn(len(text)-start)
			p := text[start:end]

			var want []int
			for k := 0; k+len(p) <= len(text); k++ {
				if text[k:k+len(p)] == p {
					want = append(want, k)
				}
			}
			got := a.Occurrences(symbols(p))
			if !slices.Equal(got, want) {
				t.Fatalf("%q: Occurrences(%q) = %v, want %v", text, p, got, want)
			}
			if len(got) != a.CountOccurrences(symbols(p)) {
				t.Fatalf("%q: len(Occurrences(%q)) != CountOccurrences", text, p)
			}
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	a := mustBuild(t, LowercaseConfig(), "abc")

	if got := a.StateOf(nil); got != RootState {
		t.Errorf("StateOf(empty) = %d, want RootState", got)
	}
	if !a.Contains(nil) {
		t.Error("Contains(empty) = false, want true")
	}
	if got := a.FirstOccurrence(nil); got != 0 {
		t.Errorf("FirstOccurrence(empty) = %d, want 0", got)
	}
	if got := a.CountOccurrences(nil); got != 0 {
		t.Errorf("CountOccurrences(empty) = %d, want 0", got)
	}
}

func TestTransition(t *testing.T) {
	a := mustBuild(t, abConfig(), "aba")

	s := a.Transition(RootState, 'a')
	if s == InvalidState {
		t.Fatal("Transition(root, a) = InvalidState")
	}
	if got := a.Transition(s, 'b'); got != a.StateOf(symbols("ab")) {
		t.Errorf("Transition(a, b) = %d, want StateOf(ab)", got)
	}
	if got := a.Transition(a.StateOf(symbols("b")), 'b'); got != InvalidState {
		t.Errorf("Transition(b, b) = %d, want InvalidState", got)
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	a := mustBuild(t, LowercaseConfig(), "xabcdezabcf")

	tests := []struct {
		other      string
		wantStart  int
		wantLength int
	}{
		{other: "abcd", wantStart: 0, wantLength: 4},
		{other: "qqabcfqq", wantStart: 2, wantLength: 4},
		{other: "zab", wantStart: 0, wantLength: 3},
		{other: "ggg", wantStart: -1, wantLength: 0},
		{other: "", wantStart: -1, wantLength: 0},
		{other: "dezabcfx", wantStart: 0, wantLength: 7},
	}
	for _, tt := range tests {
		t.Run(tt.other, func(t *testing.T) {
			start, length := a.LongestCommonSubstring(symbols(tt.other))
			if start != tt.wantStart || length != tt.wantLength {
				t.Errorf("LongestCommonSubstring(%q) = (%d, %d), want (%d, %d)",
					tt.other, start, length, tt.wantStart, tt.wantLength)
			}
		})
	}
}

func TestLongestCommonSubstringRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 20; i++ {
		text := randomString(rng, rng.Intn(40), 3)
		other := randomString(rng, rng.Intn(40), 3)
		a := mustBuild(t, LowercaseConfig(), text)

		want := 0
		for s := 0; s < len(other); s++ {
			for e := s + 1; e <= len(other); e++ {
				if e-s > want && bruteCount(text, other[s:e]) > 0 {
					want = e - s
				}
			}
		}

		start, length := a.LongestCommonSubstring(symbols(other))
		if length != want {
			t.Fatalf("%q vs %q: length = %d, want %d", text, other, length, want)
		}
		if length > 0 && bruteCount(text, other[start:start+length]) == 0 {
			t.Fatalf("%q vs %q: reported %q is not shared", text, other, other[start:start+length])
		}
	}
}

func TestQueryPreconditions(t *testing.T) {
	a := mustBuild(t, abConfig(), "abab")

	tests := []struct {
		name string
		f    func()
		want error
	}{
		{name: "Transition invalid state", f: func() { a.Transition(InvalidState, 'a') }, want: ErrInvalidState},
		{name: "Transition bad symbol", f: func() { a.Transition(RootState, 'c') }, want: ErrSymbolOutOfRange},
		{name: "StateOf bad symbol", f: func() { a.StateOf([]int{'a', 'x'}) }, want: ErrSymbolOutOfRange},
		{name: "StateOf bad symbol after miss", f: func() { a.StateOf([]int{'b', 'b', 'x'}) }, want: ErrSymbolOutOfRange},
		{name: "CountOccurrences bad symbol", f: func() { a.CountOccurrences([]int{0}) }, want: ErrSymbolOutOfRange},
		{name: "FirstOccurrence bad symbol", f: func() { a.FirstOccurrence([]int{-5}) }, want: ErrSymbolOutOfRange},
		{name: "LongestCommonSubstring bad symbol", f: func() { a.LongestCommonSubstring([]int{'z'}) }, want: ErrSymbolOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := expectPanic(t, tt.f)
			if !errors.Is(err, tt.want) {
				t.Errorf("panic = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestQueryBeforeFinalize(t *testing.T) {
	a, err := New(abConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.Extend(symbols("ab")); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	err = expectPanic(t, func() { a.CountOccurrences(symbols("a")) })
	if !errors.Is(err, ErrNotFinalized) {
		t.Errorf("panic = %v, want ErrNotFinalized", err)
	}

	// Structure that needs no annotations is available while building.
	if got := a.DistinctSubstrings(); got != 3 {
		t.Errorf("DistinctSubstrings() = %d, want 3", got)
	}
}
