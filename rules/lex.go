package rules

import (
	"slices"
	"strings"
)

// Field is one tuple element. None marks the literal text "None", a blank symbol.
type Field struct {
	Text string
	None bool
}

func Text(text string) Field {
	return Field{Text: text}
}

var None = Field{None: true}

func (f Field) String() string {
	if f.None {
		return "None"
	}
	return f.Text
}

type LexKind uint8

const (
	LexTuple LexKind = iota + 1
	LexImplication
)

// Lex is a structural token. Lexes carry no position.
type Lex struct {
	Kind   LexKind
	Fields []Field
}

func Tuple(fields ...Field) Lex {
	return Lex{
		Kind:   LexTuple,
		Fields: fields,
	}
}

var Implication = Lex{Kind: LexImplication}

func (l Lex) Equal(other Lex) bool {
	return l.Kind == other.Kind && slices.Equal(l.Fields, other.Fields)
}

func (l Lex) String() string {
	if l.Kind == LexImplication {
		return "->"
	}
	parts := make([]string, 0, len(l.Fields))
	for _, field := range l.Fields {
		parts = append(parts, field.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// LexState is a state of the lexicalising automaton.
type LexState uint8

const (
	LexBlank LexState = iota
	LexInsideTuple
	LexImplicationStart
)

func (s LexState) String() string {
	switch s {
	case LexBlank:
		return "blank"
	case LexInsideTuple:
		return "inside tuple"
	case LexImplicationStart:
		return "implication start"
	}
	return "unknown"
}

type lexer struct {
	state  LexState
	lexes  []Lex
	fields []Field
	buf    strings.Builder
}

// Lexicalise scans source text into tuples and implication markers.
// It stops at the first error.
func Lexicalise(src string) ([]Lex, error) {
	l := new(lexer)
	for _, r := range src {
		var err error
		switch l.state {
		case LexBlank:
			err = l.blank(r)
		case LexInsideTuple:
			l.insideTuple(r)
		case LexImplicationStart:
			err = l.implicationStart(r)
		}
		if err != nil {
			return nil, err
		}
	}
	if l.state != LexBlank {
		return nil, InvalidHoldStateError{State: l.state}
	}
	return l.lexes, nil
}

func (l *lexer) blank(r rune) error {
	switch r {
	case ' ', '\t', '\r', '\n':
	case '(':
		l.state = LexInsideTuple
	case '-':
		l.state = LexImplicationStart
	default:
		return UnexpectedTokenError{Char: r}
	}
	return nil
}

func (l *lexer) insideTuple(r rune) {
	switch r {
	case ',':
		l.closeField()
	case ')':
		// an empty trailing field is dropped, so "()" is the empty tuple
		if strings.TrimSpace(l.buf.String()) != "" {
			l.closeField()
		}
		l.buf.Reset()
		l.lexes = append(l.lexes, Tuple(l.fields...))
		l.fields = nil
		l.state = LexBlank
	default:
		l.buf.WriteRune(r)
	}
}

func (l *lexer) closeField() {
	text := strings.TrimSpace(l.buf.String())
	l.buf.Reset()
	if text == "None" {
		l.fields = append(l.fields, None)
	} else {
		l.fields = append(l.fields, Text(text))
	}
}

func (l *lexer) implicationStart(r rune) error {
	if r != '>' {
		return UnexpectedTokenError{Char: r}
	}
	l.lexes = append(l.lexes, Implication)
	l.state = LexBlank
	return nil
}
