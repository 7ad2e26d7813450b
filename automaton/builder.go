package automaton

// Append extends the automaton by one symbol so that it recognizes every
// substring of the sequence so far plus symbol.
//
// Returns ErrSymbolOutOfRange (leaving the automaton unchanged) if symbol is
// outside the alphabet, and ErrFinalized if Finalize has already run.
func (a *Automaton) Append(symbol int) error {
	if a.finalized {
		return ErrFinalized
	}
	c, ok := a.config.offset(symbol)
	if !ok {
		return symbolError(symbol, &a.config)
	}
	a.extend(c)
	return nil
}

// Extend appends every symbol of seq in order.
//
// The whole slice is validated first: if any symbol is out of range, nothing
// is appended and the error names the first offending symbol.
func (a *Automaton) Extend(seq []int) error {
	if a.finalized {
		return ErrFinalized
	}
	for _, symbol := range seq {
		if _, ok := a.config.offset(symbol); !ok {
			return symbolError(symbol, &a.config)
		}
	}

	if grow := len(a.states) + 2*len(seq); grow > cap(a.states) {
		states := make([]state, len(a.states), grow)
		copy(states, a.states)
		a.states = states
		a.trans.reserve(grow)
	}
	for _, symbol := range seq {
		c, _ := a.config.offset(symbol)
		a.extend(c)
	}
	return nil
}

// extend is the online construction step for the symbol at alphabet offset c.
//
// A new state cur is created for the whole extended sequence. Walking
// suffix links back from the previous last state, every state without a
// c-transition gets one to cur. If the walk stops at a state p that already
// has a c-transition to q, either q is the tight successor of p (its length
// is exactly length(p)+1) and becomes cur's suffix link, or q's class is
// split: a clone of q takes length(p)+1, the c-transitions that pointed to q
// along the rest of the walk are redirected to it, and it becomes the suffix
// link of both q and cur.
//
// Every loop iteration either adds a transition or redirects one that is
// never redirected again, so the total work over n symbols is O(n) for a
// fixed alphabet.
func (a *Automaton) extend(c uint32) {
	p := a.last

	cur := a.newState(a.size+1, a.size)
	a.size++
	a.last = cur

	for p != InvalidState && a.trans.get(p, c) == InvalidState {
		a.trans.set(p, c, cur)
		p = a.states[p].link
	}

	if p == InvalidState {
		a.states[cur].link = RootState
		return
	}

	q := a.trans.get(p, c)
	if a.states[q].length == a.states[p].length+1 {
		a.states[cur].link = q
		return
	}

	pc := a.cloneState(q, a.states[p].length+1)
	for p != InvalidState && a.trans.get(p, c) == q {
		a.trans.set(p, c, pc)
		p = a.states[p].link
	}

	a.states[q].link = pc
	a.states[cur].link = pc
}
