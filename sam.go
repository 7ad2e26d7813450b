// Package sam provides a suffix automaton index for substring queries.
//
// An Index is built once from a sequence of symbols and then answers, in time
// proportional to the pattern length rather than the indexed length:
//   - whether a pattern is a substring
//   - where it first occurs
//   - how many times it occurs (overlaps included)
//   - every position where it occurs
//
// Basic usage:
//
//	idx, err := sam.BuildString("abracadabra")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx.CountString("abra")           // 2
//	idx.FirstOccurrenceString("cad") // 4
//
// Custom alphabets:
//
//	config := sam.DefaultConfig().WithAlphabet(0, 4) // e.g. DNA as 0..3
//	idx, err := sam.Build([]int{0, 2, 1, 3, 3, 0}, config)
//
// The underlying automaton, including per-state introspection for building
// further algorithms, is available through Index.Automaton.
package sam

import (
	"iter"

	"github.com/coregx/sam/automaton"
)

// Index is a finalized suffix automaton over one sequence.
//
// An Index is immutable and safe to query concurrently from multiple
// goroutines.
type Index struct {
	engine *automaton.Automaton
}

// Build indexes seq over the alphabet described by config.
//
// Returns an error if config is invalid or any symbol of seq is outside the
// alphabet.
func Build(seq []int, config automaton.Config) (*Index, error) {
	if config.ExpectedLength == 0 {
		config.ExpectedLength = len(seq)
	}
	engine, err := automaton.New(config)
	if err != nil {
		return nil, err
	}
	if err := engine.Extend(seq); err != nil {
		return nil, err
	}
	return finish(engine)
}

// MustBuild is like Build but panics if the sequence cannot be indexed.
//
// This is useful for sequences known to be valid at compile time.
func MustBuild(seq []int, config automaton.Config) *Index {
	idx, err := Build(seq, config)
	if err != nil {
		panic("sam: Build: " + err.Error())
	}
	return idx
}

// BuildString indexes the bytes of s over the full byte alphabet.
func BuildString(s string) (*Index, error) {
	return BuildBytes([]byte(s), DefaultConfig())
}

// BuildBytes indexes b, one symbol per byte, over the alphabet of config.
func BuildBytes(b []byte, config automaton.Config) (*Index, error) {
	return Build(bytesToSymbols(b), config)
}

// BuildSeq indexes the symbols produced by seq, consuming it once.
//
// Symbols are appended as they arrive, so a producer such as a file reader
// never needs to materialize the whole sequence. The first out-of-range
// symbol stops consumption and is reported as an error.
func BuildSeq(seq iter.Seq[int], config automaton.Config) (*Index, error) {
	engine, err := automaton.New(config)
	if err != nil {
		return nil, err
	}
	for symbol := range seq {
		if err := engine.Append(symbol); err != nil {
			return nil, err
		}
	}
	return finish(engine)
}

func finish(engine *automaton.Automaton) (*Index, error) {
	if err := engine.Finalize(); err != nil {
		return nil, err
	}
	return &Index{engine: engine}, nil
}

// DefaultConfig returns the default configuration: the full byte alphabet.
//
// Users can customize this and pass it to Build.
func DefaultConfig() automaton.Config {
	return automaton.DefaultConfig()
}

// Automaton returns the underlying finalized automaton.
func (x *Index) Automaton() *automaton.Automaton {
	return x.engine
}

// Len returns the length of the indexed sequence.
func (x *Index) Len() int {
	return x.engine.Len()
}

// Contains reports whether pattern is a substring of the indexed sequence.
// Panics if a symbol of pattern is outside the alphabet.
func (x *Index) Contains(pattern []int) bool {
	return x.engine.Contains(pattern)
}

// FirstOccurrence returns the smallest start index of pattern, or -1.
// Panics if a symbol of pattern is outside the alphabet.
func (x *Index) FirstOccurrence(pattern []int) int {
	return x.engine.FirstOccurrence(pattern)
}

// Count returns the number of (possibly overlapping) occurrences of pattern.
// Panics if a symbol of pattern is outside the alphabet.
func (x *Index) Count(pattern []int) int {
	return x.engine.CountOccurrences(pattern)
}

// Occurrences returns every start index of pattern in ascending order.
// Panics if a symbol of pattern is outside the alphabet.
func (x *Index) Occurrences(pattern []int) []int {
	return x.engine.Occurrences(pattern)
}

// DistinctSubstrings returns the number of distinct non-empty substrings.
func (x *Index) DistinctSubstrings() int64 {
	return x.engine.DistinctSubstrings()
}

// LongestCommonSubstring returns the start (in other) and length of the
// longest run of other that also occurs in the indexed sequence, or (-1, 0).
func (x *Index) LongestCommonSubstring(other []int) (start, length int) {
	return x.engine.LongestCommonSubstring(other)
}

// ContainsString is like Contains for the bytes of s.
func (x *Index) ContainsString(s string) bool {
	return x.engine.Contains(stringToSymbols(s))
}

// FirstOccurrenceString is like FirstOccurrence for the bytes of s.
func (x *Index) FirstOccurrenceString(s string) int {
	return x.engine.FirstOccurrence(stringToSymbols(s))
}

// CountString is like Count for the bytes of s.
func (x *Index) CountString(s string) int {
	return x.engine.CountOccurrences(stringToSymbols(s))
}

// OccurrencesString is like Occurrences for the bytes of s.
func (x *Index) OccurrencesString(s string) []int {
	return x.engine.Occurrences(stringToSymbols(s))
}

// LongestCommonSubstringString is like LongestCommonSubstring for s and
// returns the shared substring itself.
func (x *Index) LongestCommonSubstringString(s string) string {
	start, length := x.engine.LongestCommonSubstring(stringToSymbols(s))
	if length == 0 {
		return ""
	}
	return s[start : start+length]
}

func bytesToSymbols(b []byte) []int {
	out := make([]int, len(b))
	for i, c := range b {
		out[i] = int(c)
	}
	return out
}

func stringToSymbols(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}
