package automaton

import "slices"

// Finalize annotates every state with occurrence statistics and freezes the
// automaton. It must be called exactly once, after the last Append and
// before any query; a second call returns ErrFinalized.
//
// States are processed in descending order of length. That single order
// serves both aggregations:
//   - a suffix link always points to a strictly shorter state, so every
//     child in the suffix-link tree is done before its parent and end
//     position counts can be pushed upward;
//   - a transition always points to a strictly longer state, so every
//     successor's path count is final before its source needs it.
//
// The pass is iterative and linear in the number of states, so arbitrarily
// long inputs do not grow the call stack.
func (a *Automaton) Finalize() error {
	if a.finalized {
		return ErrFinalized
	}

	n := len(a.states)
	order := a.lengthOrder()
	a.buildSuffixTree(order)

	a.endPosCount = make([]int, n)
	a.pathsFrom = make([]int64, n)

	for _, s := range order {
		st := &a.states[s]
		if s != RootState {
			if !st.clone {
				a.endPosCount[s]++
			}
			a.endPosCount[st.link] += a.endPosCount[s]
		} else {
			// The empty substring is not counted as an occurrence.
			a.endPosCount[s] = 0
		}

		a.pathsFrom[s] = int64(a.endPosCount[s]) + a.trans.sum(s, a.pathsFrom)
	}

	a.finalized = true
	return nil
}

// lengthOrder returns every state ordered by descending length.
//
// Lengths are bounded by the sequence length, so a counting sort replaces a
// comparison sort: tally states per length, prefix-sum the tallies into
// bucket ends, then place states back to front.
func (a *Automaton) lengthOrder() []StateID {
	counts := make([]int, a.size+1)
	for i := range a.states {
		counts[a.states[i].length]++
	}
	for length := 0; length < a.size; length++ {
		counts[length+1] += counts[length]
	}

	order := make([]StateID, len(a.states))
	for i := len(a.states) - 1; i >= 0; i-- {
		length := a.states[i].length
		counts[length]--
		order[counts[length]] = StateID(i) //nolint:gosec // G115: i < len(states) <= MaxStateID
	}

	slices.Reverse(order)
	return order
}

// buildSuffixTree materializes the suffix-link tree as child lists. Children
// of each state are listed in the given processing order.
func (a *Automaton) buildSuffixTree(order []StateID) {
	n := len(a.states)
	start := make([]int, n+1)
	for i := 1; i < n; i++ {
		start[a.states[i].link+1]++
	}
	for i := 0; i < n; i++ {
		start[i+1] += start[i]
	}

	fill := make([]int, n)
	copy(fill, start[:n])
	children := make([]StateID, max(n-1, 0))
	for _, s := range order {
		if s == RootState {
			continue
		}
		parent := a.states[s].link
		children[fill[parent]] = s
		fill[parent]++
	}

	a.childStart = start
	a.children = children
}

// EndPosCount returns the number of end positions of the substrings
// represented by s, i.e. how many times each of them occurs.
// Panics if the automaton is not finalized or s is invalid.
func (a *Automaton) EndPosCount(s StateID) int {
	a.mustFinalized()
	a.mustState(s)
	return a.endPosCount[s]
}

// PathsFrom returns the end position count of s plus the path counts of all
// its transition successors: the number of (occurrence, continuation) pairs
// reachable from s.
// Panics if the automaton is not finalized or s is invalid.
func (a *Automaton) PathsFrom(s StateID) int64 {
	a.mustFinalized()
	a.mustState(s)
	return a.pathsFrom[s]
}

// Children returns the children of s in the suffix-link tree.
// The returned slice must not be modified.
// Panics if the automaton is not finalized or s is invalid.
func (a *Automaton) Children(s StateID) []StateID {
	a.mustFinalized()
	a.mustState(s)
	return a.children[a.childStart[s]:a.childStart[s+1]]
}
