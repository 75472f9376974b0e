package rules

import (
	"strings"
)

const implication = "->"

// ParseLines parses one clause per line by splitting each line on "->" and
// lexicalising both sides as single tuples. Blank lines are skipped.
// It accepts the same clauses as Parse.
func ParseLines[V comparable](src string, symbols SymbolParser[V]) (*Program[V], error) {
	b := newBuilder(symbols)
	clause := 0
	for line := range strings.Lines(src) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		clause++

		parts := strings.Split(line, implication)
		if len(parts) == 1 {
			// a lone tuple implies nothing; anything else is malformed
			if _, err := lexTuple(parts[0]); err != nil {
				return nil, ClauseError{Clause: clause, Err: err}
			}
			return nil, ClauseError{Clause: clause, Err: ErrImplyingNothing}
		}
		if len(parts) > 2 {
			return nil, ClauseError{Clause: clause, Err: ErrNotImplicationForm}
		}

		cause, err := lexTuple(parts[0])
		if err != nil {
			return nil, ClauseError{Clause: clause, Err: err}
		}
		if strings.TrimSpace(parts[1]) == "" {
			return nil, ClauseError{Clause: clause, Err: ErrImplyingNothing}
		}
		effect, err := lexTuple(parts[1])
		if err != nil {
			return nil, ClauseError{Clause: clause, Err: err}
		}

		if err := b.clause(cause.Fields, effect.Fields); err != nil {
			return nil, ClauseError{Clause: clause, Err: err}
		}
	}
	return b.program, nil
}

func lexTuple(src string) (Lex, error) {
	lexes, err := Lexicalise(src)
	if err != nil {
		return Lex{}, SyntaxError{Err: err}
	}
	if len(lexes) != 1 || lexes[0].Kind != LexTuple {
		return Lex{}, ErrNotImplicationForm
	}
	return lexes[0], nil
}
