package machines

import (
	"fmt"

	"github.com/reusee/turing/tapes"
)

// Machine is a single-tape deterministic Turing machine.
//
// A Machine is not safe for concurrent use; see Locked.
type Machine[V comparable] struct {
	tape  *tapes.Tape[V]
	state State
	start State
	table Table[V]
}

// New returns a machine starting at state 0 with an empty table.
// A nil tape is replaced by an empty one.
func New[V comparable](tape *tapes.Tape[V]) *Machine[V] {
	return NewWithTable(tape, 0, nil)
}

func NewWithStart[V comparable](tape *tapes.Tape[V], start State) *Machine[V] {
	return NewWithTable(tape, start, nil)
}

// NewWithTable returns a fully specified machine. The machine owns table.
func NewWithTable[V comparable](tape *tapes.Tape[V], start State, table Table[V]) *Machine[V] {
	if tape == nil {
		tape = tapes.New[V]()
	}
	if table == nil {
		table = make(Table[V])
	}
	return &Machine[V]{
		tape:  tape,
		state: start,
		start: start,
		table: table,
	}
}

// AddTransition upserts a table entry, returning the previous effect if there was one.
func (m *Machine[V]) AddTransition(cause Cause[V], effect Effect[V]) (Effect[V], bool) {
	return m.table.Insert(cause, effect)
}

// InsertTape replaces the tape. The head is wherever the new tape's head is.
// A nil tape is replaced by an empty one.
func (m *Machine[V]) InsertTape(tape *tapes.Tape[V]) {
	if tape == nil {
		tape = tapes.New[V]()
	}
	m.tape = tape
}

// Tape returns the owned tape. Callers must not mutate it.
func (m *Machine[V]) Tape() *tapes.Tape[V] {
	return m.tape
}

func (m *Machine[V]) State() State {
	return m.state
}

func (m *Machine[V]) StartingState() State {
	return m.start
}

// SetState moves the control to state without touching the tape.
func (m *Machine[V]) SetState(state State) {
	m.state = state
}

// Table returns a copy of the transition table.
func (m *Machine[V]) Table() Table[V] {
	return m.table.Clone()
}

// PeekTransition returns the transition Step would take.
func (m *Machine[V]) PeekTransition() (Effect[V], error) {
	cause := Cause[V]{
		State: m.state,
		Cell:  m.tape.Current(),
	}
	effect, ok := m.table.Lookup(cause)
	if !ok {
		return effect, fmt.Errorf("%w: %v", ErrTransitionNotFound, cause)
	}
	return effect, nil
}

// Step performs one transition and reports whether the machine is still running.
//
// A transition that keeps both the state and the cell under the head is a
// halting fixed point: Step returns false and changes nothing. Otherwise the
// state is set, the cell is written, then the head moves.
func (m *Machine[V]) Step() (bool, error) {
	effect, err := m.PeekTransition()
	if err != nil {
		return false, err
	}

	if effect.State == m.state && effect.Cell == m.tape.Current().Canonical() {
		return false, nil
	}

	m.state = effect.State
	m.tape.Put(effect.Cell)
	m.tape.Move(effect.Direction)

	return true, nil
}

// Reset restores the starting state. The tape and head are kept.
func (m *Machine[V]) Reset() {
	m.state = m.start
}
