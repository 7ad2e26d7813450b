package automaton

import "slices"

// Query operations require Finalize to have run. They panic with an *Error
// when given an invalid state or a symbol outside the alphabet: such input
// is a caller bug, not an absent pattern. A pattern that simply does not
// occur is reported through InvalidState, -1 or 0.

// Transition returns the successor of s on symbol, or InvalidState if s has
// no such transition.
func (a *Automaton) Transition(s StateID, symbol int) StateID {
	a.mustFinalized()
	a.mustState(s)
	return a.trans.get(s, a.mustOffset(symbol))
}

// StateOf returns the state whose class contains pattern, or InvalidState if
// pattern is not a substring of the indexed sequence. The empty pattern
// resolves to RootState.
//
// Every symbol of pattern is range-checked, even past the point where the
// walk falls off the automaton.
func (a *Automaton) StateOf(pattern []int) StateID {
	a.mustFinalized()
	s := RootState
	for _, symbol := range pattern {
		c := a.mustOffset(symbol)
		if s != InvalidState {
			s = a.trans.get(s, c)
		}
	}
	return s
}

// Contains reports whether pattern is a substring of the indexed sequence.
func (a *Automaton) Contains(pattern []int) bool {
	return a.StateOf(pattern) != InvalidState
}

// FirstOccurrence returns the smallest index at which pattern starts in the
// indexed sequence, or -1 if it does not occur.
func (a *Automaton) FirstOccurrence(pattern []int) int {
	s := a.StateOf(pattern)
	if s == InvalidState {
		return -1
	}
	return a.states[s].firstEndPos - len(pattern) + 1
}

// CountOccurrences returns the number of indices at which pattern starts in
// the indexed sequence. Overlapping occurrences are counted.
func (a *Automaton) CountOccurrences(pattern []int) int {
	s := a.StateOf(pattern)
	if s == InvalidState {
		return 0
	}
	return a.endPosCount[s]
}

// Occurrences returns every index at which pattern starts, in ascending
// order. The result has CountOccurrences(pattern) elements; it is nil when
// pattern does not occur or is empty.
//
// The end positions of a class are exactly the first end positions of the
// non-clone states in its suffix-link subtree, which is walked with an
// explicit stack.
func (a *Automaton) Occurrences(pattern []int) []int {
	s := a.StateOf(pattern)
	if s == InvalidState || s == RootState {
		return nil
	}

	out := make([]int, 0, a.endPosCount[s])
	stack := []StateID{s}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if st := &a.states[top]; !st.clone {
			out = append(out, st.firstEndPos-len(pattern)+1)
		}
		stack = append(stack, a.children[a.childStart[top]:a.childStart[top+1]]...)
	}

	slices.Sort(out)
	return out
}

// DistinctSubstrings returns the number of distinct non-empty substrings of
// the indexed sequence. Each non-root state contributes the lengths in
// (length(link), length].
func (a *Automaton) DistinctSubstrings() int64 {
	var total int64
	for i := 1; i < len(a.states); i++ {
		st := &a.states[i]
		total += int64(st.length - a.states[st.link].length)
	}
	return total
}

// LongestCommonSubstring finds the longest substring of other that also
// occurs in the indexed sequence. It returns the start index in other and
// the length of the first such substring, or (-1, 0) if they share no
// symbol.
//
// other is scanned once; on a mismatch the match is shortened by following
// suffix links, so the scan runs in O(len(other)) amortized.
func (a *Automaton) LongestCommonSubstring(other []int) (start, length int) {
	a.mustFinalized()

	s, cur := RootState, 0
	best, bestEnd := 0, -1
	for i, symbol := range other {
		c := a.mustOffset(symbol)
		for s != RootState && a.trans.get(s, c) == InvalidState {
			s = a.states[s].link
			cur = a.states[s].length
		}
		if next := a.trans.get(s, c); next != InvalidState {
			s = next
			cur++
		}
		if cur > best {
			best, bestEnd = cur, i
		}
	}

	if best == 0 {
		return -1, 0
	}
	return bestEnd - best + 1, best
}
