package automaton

import (
	"math/rand"
	"testing"
)

// symbols converts a string to symbol codes, one per byte.
func symbols(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}

// mustBuild builds and finalizes an automaton over text.
func mustBuild(t testing.TB, config Config, text string) *Automaton {
	t.Helper()
	a, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.Extend(symbols(text)); err != nil {
		t.Fatalf("Extend(%q) error = %v", text, err)
	}
	if err := a.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return a
}

// bruteCount counts (possibly overlapping) occurrences of p in s.
func bruteCount(s, p string) int {
	n := 0
	for i := 0; i+len(p) <= len(s); i++ {
		if s[i:i+len(p)] == p {
			n++
		}
	}
	return n
}

// bruteFirst returns the first index of p in s, or -1.
func bruteFirst(s, p string) int {
	for i := 0; i+len(p) <= len(s); i++ {
		if s[i:i+len(p)] == p {
			return i
		}
	}
	return -1
}

// randomString returns a string of length n over the first k letters.
func randomString(rng *rand.Rand, n, k int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.Intn(k))
	}
	return string(b)
}

// abConfig is the two-letter alphabet {a, b}.
func abConfig() Config {
	return DefaultConfig().WithAlphabet('a', 2)
}

// expectPanic runs f and returns the *Error it panics with.
func expectPanic(t *testing.T, f func()) (err *Error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		e, ok := r.(*Error)
		if !ok {
			t.Fatalf("panic value = %T(%v), want *Error", r, r)
		}
		err = e
	}()
	f()
	return nil
}
