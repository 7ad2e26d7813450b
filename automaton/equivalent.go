package automaton

import (
	"github.com/coregx/sam/internal/conv"
	"github.com/coregx/sam/internal/sparse"
)

// Equivalent reports whether a and b are the same automaton up to state
// numbering: same alphabet, and a bijection between their states that
// preserves lengths, first end positions, clone marks, transitions and
// suffix links.
//
// Every state of a suffix automaton is reachable from the root, and
// transitions are deterministic, so walking both automata from their roots
// in lockstep fixes the only candidate bijection.
func Equivalent(a, b *Automaton) bool {
	if a.config.MinSymbol != b.config.MinSymbol || a.config.AlphabetSize != b.config.AlphabetSize {
		return false
	}
	if a.size != b.size || len(a.states) != len(b.states) {
		return false
	}

	n := len(a.states)
	mapping := make([]StateID, n)
	mapping[RootState] = RootState

	// The dense side of visited doubles as the BFS queue.
	visited := sparse.NewSparseSet(conv.IntToUint32(n))
	visited.Insert(uint32(RootState))
	for i := 0; i < visited.Len(); i++ {
		sa := StateID(visited.Values()[i])
		sb := mapping[sa]
		if a.states[sa].length != b.states[sb].length ||
			a.states[sa].firstEndPos != b.states[sb].firstEndPos ||
			a.states[sa].clone != b.states[sb].clone {
			return false
		}
		if a.trans.degree(sa) != b.trans.degree(sb) {
			return false
		}

		ok := true
		a.trans.each(sa, func(c uint32, ta StateID) {
			if !ok {
				return
			}
			tb := b.trans.get(sb, c)
			switch {
			case tb == InvalidState:
				ok = false
			case visited.Insert(uint32(ta)):
				mapping[ta] = tb
			case mapping[ta] != tb:
				ok = false
			}
		})
		if !ok {
			return false
		}
	}
	if visited.Len() != n {
		return false
	}

	image := sparse.NewSparseSet(conv.IntToUint32(n))
	for _, sa := range visited.Values() {
		if !image.Insert(uint32(mapping[sa])) {
			return false
		}
	}

	for i := 1; i < n; i++ {
		sa := StateID(i) //nolint:gosec // G115: i < n <= MaxStateID
		if mapping[a.states[sa].link] != b.states[mapping[sa]].link {
			return false
		}
	}
	return b.states[RootState].link == InvalidState
}
