package rules

import (
	"fmt"
	"strconv"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

// Program is a parsed transition table with its starting state.
type Program[V comparable] struct {
	Start machines.State
	Table machines.Table[V]
}

// Machine returns a machine running the program on tape. A nil tape is an empty one.
func (p *Program[V]) Machine(tape *tapes.Tape[V]) *machines.Machine[V] {
	return machines.NewWithTable(tape, p.Start, p.Table.Clone())
}

// Build parses src and returns a machine on a fresh empty tape.
func Build[V comparable](src string, symbols SymbolParser[V]) (*machines.Machine[V], error) {
	program, err := Parse(src, symbols)
	if err != nil {
		return nil, err
	}
	return program.Machine(nil), nil
}

// Parse lexicalises src and parses the lexes.
func Parse[V comparable](src string, symbols SymbolParser[V]) (*Program[V], error) {
	lexes, err := Lexicalise(src)
	if err != nil {
		return nil, SyntaxError{Err: err}
	}
	return ParseLexes(lexes, symbols)
}

// ParseLexes builds a program from clauses of the form Tuple -> Tuple.
// Later clauses override earlier ones with the same cause. The default
// starting state is 0.
func ParseLexes[V comparable](lexes []Lex, symbols SymbolParser[V]) (*Program[V], error) {
	b := newBuilder(symbols)
	for i := 0; i < len(lexes); i += 3 {
		clause := i/3 + 1
		rest := lexes[i:]
		if rest[0].Kind != LexTuple {
			return nil, ClauseError{Clause: clause, Err: ErrNotImplicationForm}
		}
		if len(rest) == 1 {
			return nil, ClauseError{Clause: clause, Err: ErrImplyingNothing}
		}
		if rest[1].Kind != LexImplication {
			return nil, ClauseError{Clause: clause, Err: ErrNotImplicationForm}
		}
		if len(rest) == 2 {
			return nil, ClauseError{Clause: clause, Err: ErrImplyingNothing}
		}
		if rest[2].Kind != LexTuple {
			return nil, ClauseError{Clause: clause, Err: ErrNotImplicationForm}
		}
		if err := b.clause(rest[0].Fields, rest[2].Fields); err != nil {
			return nil, ClauseError{Clause: clause, Err: err}
		}
	}
	return b.program, nil
}

type builder[V comparable] struct {
	symbols SymbolParser[V]
	program *Program[V]
}

func newBuilder[V comparable](symbols SymbolParser[V]) *builder[V] {
	return &builder[V]{
		symbols: symbols,
		program: &Program[V]{
			Table: make(machines.Table[V]),
		},
	}
}

func (b *builder[V]) clause(cause, effect []Field) error {
	switch {

	case len(cause) == 0 && len(effect) == 1:
		if effect[0].None {
			return ErrMustHaveStartingState
		}
		state, err := parseState(effect[0])
		if err != nil {
			return err
		}
		b.program.Start = state
		return nil

	case len(cause) == 2 && len(effect) == 3:
		fromState, err := parseState(cause[0])
		if err != nil {
			return err
		}
		fromCell, err := b.parseCell(cause[1])
		if err != nil {
			return err
		}
		toState, err := parseState(effect[0])
		if err != nil {
			return err
		}
		toCell, err := b.parseCell(effect[1])
		if err != nil {
			return err
		}
		if effect[2].None {
			return ErrMissingDirection
		}
		direction, ok := tapes.ParseDirection(effect[2].Text)
		if !ok {
			return fmt.Errorf("%w: direction %q", ErrInvalidType, effect[2].Text)
		}
		b.program.Table.Insert(
			machines.Cause[V]{
				State: fromState,
				Cell:  fromCell,
			},
			machines.Effect[V]{
				State:     toState,
				Cell:      toCell,
				Direction: direction,
			},
		)
		return nil

	}

	return fmt.Errorf("%w: %d -> %d", ErrWrongNumberOfArguments, len(cause), len(effect))
}

func parseState(field Field) (machines.State, error) {
	if field.None {
		return 0, fmt.Errorf("%w: state None", ErrInvalidType)
	}
	n, err := strconv.ParseUint(field.Text, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: state %q: %w", ErrInvalidType, field.Text, err)
	}
	return machines.State(n), nil
}

func (b *builder[V]) parseCell(field Field) (tapes.Cell[V], error) {
	if field.None {
		return tapes.Blank[V](), nil
	}
	v, err := b.symbols(field.Text)
	if err != nil {
		return tapes.Blank[V](), fmt.Errorf("%w: symbol %q: %w", ErrInvalidType, field.Text, err)
	}
	return tapes.Mark(v), nil
}
