package automaton

import "github.com/coregx/sam/internal/sparse"

// transitionTable stores the outgoing transitions of every state.
//
// Rows are addressed by StateID and symbols by their zero-based offset in the
// alphabet. Rows are only ever appended; entries may be overwritten (a
// redirect to a clone) but never removed.
type transitionTable interface {
	// reserve grows capacity for at least n rows.
	reserve(n int)

	// addRow appends an empty row.
	addRow()

	// addRowCopy appends a row identical to the row of src.
	addRowCopy(src StateID)

	// get returns the target of s on c, or InvalidState.
	get(s StateID, c uint32) StateID

	// set points s on c to t.
	set(s StateID, c uint32, t StateID)

	// each calls f for every transition of s in ascending symbol order.
	each(s StateID, f func(c uint32, target StateID))

	// degree returns the number of transitions out of s.
	degree(s StateID) int

	// sum returns the total of weights[t] over every target t of s.
	sum(s StateID, weights []int64) int64

	// count returns the total number of transitions.
	count() int
}

// newTransitionTable picks the row layout for the configured alphabet.
func newTransitionTable(c *Config) transitionTable {
	if c.dense() {
		return &denseTable{stride: c.AlphabetSize}
	}
	return &sparseTable{}
}

// denseTable stores all rows back to back in one slice:
// the target of s on c lives at next[s*stride+c].
type denseTable struct {
	stride int
	next   []StateID
	total  int
}

func (t *denseTable) reserve(n int) {
	if need := n * t.stride; need > cap(t.next) {
		grown := make([]StateID, len(t.next), need)
		copy(grown, t.next)
		t.next = grown
	}
}

func (t *denseTable) addRow() {
	for i := 0; i < t.stride; i++ {
		t.next = append(t.next, InvalidState)
	}
}

func (t *denseTable) addRowCopy(src StateID) {
	start := int(src) * t.stride
	// The source row precedes the destination, so append never overlaps it.
	t.next = append(t.next, t.next[start:start+t.stride]...)
	t.total += t.degree(src)
}

func (t *denseTable) get(s StateID, c uint32) StateID {
	return t.next[int(s)*t.stride+int(c)]
}

func (t *denseTable) set(s StateID, c uint32, target StateID) {
	i := int(s)*t.stride + int(c)
	if t.next[i] == InvalidState {
		t.total++
	}
	t.next[i] = target
}

func (t *denseTable) each(s StateID, f func(c uint32, target StateID)) {
	row := t.next[int(s)*t.stride : int(s+1)*t.stride]
	for c, target := range row {
		if target != InvalidState {
			f(uint32(c), target) //nolint:gosec // G115: c < stride <= MaxInt32
		}
	}
}

func (t *denseTable) sum(s StateID, weights []int64) int64 {
	var total int64
	for _, target := range t.next[int(s)*t.stride : int(s+1)*t.stride] {
		if target != InvalidState {
			total += weights[target]
		}
	}
	return total
}

func (t *denseTable) degree(s StateID) int {
	n := 0
	for _, target := range t.next[int(s)*t.stride : int(s+1)*t.stride] {
		if target != InvalidState {
			n++
		}
	}
	return n
}

func (t *denseTable) count() int {
	return t.total
}

// sparseTable keeps one sorted map per state, for alphabets too large for
// fixed-width rows.
type sparseTable struct {
	rows  []sparse.Map
	total int
}

func (t *sparseTable) reserve(n int) {
	if n > cap(t.rows) {
		grown := make([]sparse.Map, len(t.rows), n)
		copy(grown, t.rows)
		t.rows = grown
	}
}

func (t *sparseTable) addRow() {
	t.rows = append(t.rows, sparse.Map{})
}

func (t *sparseTable) addRowCopy(src StateID) {
	t.rows = append(t.rows, t.rows[src].Clone())
	t.total += t.rows[src].Len()
}

func (t *sparseTable) get(s StateID, c uint32) StateID {
	if v, ok := t.rows[s].Get(c); ok {
		return StateID(v)
	}
	return InvalidState
}

func (t *sparseTable) set(s StateID, c uint32, target StateID) {
	row := &t.rows[s]
	if _, ok := row.Get(c); !ok {
		t.total++
	}
	row.Set(c, uint32(target))
}

func (t *sparseTable) each(s StateID, f func(c uint32, target StateID)) {
	t.rows[s].Each(func(k, v uint32) {
		f(k, StateID(v))
	})
}

func (t *sparseTable) sum(s StateID, weights []int64) int64 {
	row := &t.rows[s]
	var total int64
	for i := 0; i < row.Len(); i++ {
		_, v := row.At(i)
		total += weights[v]
	}
	return total
}

func (t *sparseTable) degree(s StateID) int {
	return t.rows[s].Len()
}

func (t *sparseTable) count() int {
	return t.total
}
