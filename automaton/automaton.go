// Package automaton implements a suffix automaton: the minimal deterministic
// automaton recognizing exactly the substrings of a finite symbol sequence.
//
// An Automaton is built online, one symbol at a time, with Append or Extend.
// Once the whole sequence is consumed, Finalize runs a single bottom-up pass
// over the suffix-link tree that annotates every state with occurrence
// statistics. After that the automaton is immutable and answers substring
// queries in time proportional to the pattern length:
//
//	a, _ := automaton.New(automaton.LowercaseConfig())
//	_ = a.Extend([]int{'a', 'b', 'a'})
//	_ = a.Finalize()
//	a.CountOccurrences([]int{'a'}) // 2
//	a.FirstOccurrence([]int{'b'})  // 1
//
// States are identified by StateID, an index into the automaton's state
// store. RootState (the empty substring) always exists; InvalidState stands
// for "no state" wherever a reference may be absent.
//
// An Automaton is not safe for concurrent mutation. After Finalize it is
// read-only and may be queried from multiple goroutines.
package automaton

import (
	"github.com/coregx/sam/internal/conv"
)

// StateID uniquely identifies a state in the automaton.
// This is a 32-bit unsigned integer for compact transition rows.
type StateID uint32

// Special state constants
const (
	// InvalidState represents an absent state reference: the root's suffix
	// link, a missing transition, or a pattern that is not a substring.
	InvalidState StateID = 0xFFFFFFFF

	// RootState is always state ID 0 and represents the empty substring.
	RootState StateID = 0

	// MaxStateID is the largest usable state ID.
	MaxStateID StateID = InvalidState - 1
)

// state is one equivalence class of substrings sharing the same set of end
// positions. Transitions live in the automaton's transitionTable.
type state struct {
	// length of the longest substring in the class
	length int

	// link is the suffix link; InvalidState for the root
	link StateID

	// firstEndPos is the earliest end index (inclusive) of any substring in
	// the class. Clones inherit it from the state they were split from.
	firstEndPos int

	// clone marks states created by splitting a class; they do not stand
	// for an end position of their own.
	clone bool
}

// Automaton is a suffix automaton over a fixed alphabet.
//
// The zero value is not usable; create one with New.
type Automaton struct {
	config Config
	states []state
	trans  transitionTable

	// size is the number of symbols appended so far
	size int

	// last is the state of the whole sequence appended so far
	last StateID

	clones    int
	finalized bool

	// Annotations computed by Finalize.
	endPosCount []int
	pathsFrom   []int64

	// Suffix-link tree in compressed form: the children of s are
	// children[childStart[s]:childStart[s+1]].
	childStart []int
	children   []StateID
}

// New creates an empty automaton holding only the root state.
// Returns an error if the configuration is invalid.
func New(config Config) (*Automaton, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	a := &Automaton{
		config: config,
		trans:  newTransitionTable(&config),
	}
	if config.ExpectedLength > 0 {
		// Root plus two states per symbol, matching what Extend asks for.
		capacity := 2*config.ExpectedLength + 1
		a.states = make([]state, 0, capacity)
		a.trans.reserve(capacity)
	}
	a.last = a.newState(0, -1)
	return a, nil
}

// newState appends a fresh state with an empty transition row.
func (a *Automaton) newState(length, firstEndPos int) StateID {
	id := a.nextID()
	a.states = append(a.states, state{
		length:      length,
		link:        InvalidState,
		firstEndPos: firstEndPos,
	})
	a.trans.addRow()
	return id
}

// cloneState appends a copy of q with the given length. The copy keeps q's
// suffix link, first end position and transition row.
func (a *Automaton) cloneState(q StateID, length int) StateID {
	id := a.nextID()
	s := a.states[q]
	s.length = length
	s.clone = true
	a.states = append(a.states, s)
	a.trans.addRowCopy(q)
	a.clones++
	return id
}

func (a *Automaton) nextID() StateID {
	id := StateID(conv.IntToUint32(len(a.states)))
	if id > MaxStateID {
		panic("automaton: state ID space exhausted")
	}
	return id
}

// Config returns the configuration the automaton was created with.
func (a *Automaton) Config() Config {
	return a.config
}

// Len returns the number of symbols appended so far.
func (a *Automaton) Len() int {
	return a.size
}

// NumStates returns the number of states, including the root.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// Last returns the state representing the whole sequence appended so far.
func (a *Automaton) Last() StateID {
	return a.last
}

// Finalized reports whether Finalize has run.
func (a *Automaton) Finalized() bool {
	return a.finalized
}

// valid reports whether s names an existing state.
func (a *Automaton) valid(s StateID) bool {
	return s != InvalidState && int(s) < len(a.states)
}

// mustState panics with an *Error if s is not a valid state.
func (a *Automaton) mustState(s StateID) {
	if !a.valid(s) {
		panic(stateError(s))
	}
}

// mustFinalized panics with ErrNotFinalized if Finalize has not run.
func (a *Automaton) mustFinalized() {
	if !a.finalized {
		panic(ErrNotFinalized)
	}
}

// mustOffset maps symbol to its alphabet offset or panics with an *Error.
func (a *Automaton) mustOffset(symbol int) uint32 {
	c, ok := a.config.offset(symbol)
	if !ok {
		panic(symbolError(symbol, &a.config))
	}
	return c
}

// Length returns the length of the longest substring represented by s.
func (a *Automaton) Length(s StateID) int {
	a.mustState(s)
	return a.states[s].length
}

// Link returns the suffix link of s, or InvalidState for the root.
func (a *Automaton) Link(s StateID) StateID {
	a.mustState(s)
	return a.states[s].link
}

// FirstEndPos returns the earliest end index (inclusive) of the substrings
// represented by s. The root has no end position and returns -1.
func (a *Automaton) FirstEndPos(s StateID) int {
	a.mustState(s)
	return a.states[s].firstEndPos
}

// IsClone reports whether s was created by splitting an existing class.
func (a *Automaton) IsClone(s StateID) bool {
	a.mustState(s)
	return a.states[s].clone
}

// EachTransition calls f for every outgoing transition of s, in ascending
// symbol order.
func (a *Automaton) EachTransition(s StateID, f func(symbol int, next StateID)) {
	a.mustState(s)
	a.trans.each(s, func(c uint32, next StateID) {
		f(a.config.symbol(c), next)
	})
}

// Stats reports the size of the automaton.
type Stats struct {
	// Symbols is the number of symbols appended
	Symbols int

	// States is the number of states including the root
	States int

	// Clones is the number of states created by class splits
	Clones int

	// Transitions is the total number of transitions
	Transitions int
}

// Stats returns size statistics for the automaton.
func (a *Automaton) Stats() Stats {
	return Stats{
		Symbols:     a.size,
		States:      len(a.states),
		Clones:      a.clones,
		Transitions: a.trans.count(),
	}
}
