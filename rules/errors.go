package rules

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrInvalidHoldState = errors.New("invalid hold state")
	// kinds of ErrInvalidHoldState
	ErrUnclosedTuple       = errors.New("unclosed tuple")
	ErrDanglingImplication = errors.New("dangling implication")

	ErrSyntax                 = errors.New("syntax error")
	ErrNotImplicationForm     = errors.New("not in implication form")
	ErrImplyingNothing        = errors.New("implying nothing")
	ErrWrongNumberOfArguments = errors.New("wrong number of arguments")
	ErrInvalidType            = errors.New("invalid type")
	ErrMissingDirection       = errors.New("missing direction")
	ErrMustHaveStartingState  = errors.New("must have starting state")
)

type UnexpectedTokenError struct {
	Char rune
}

func (u UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q", u.Char)
}

func (u UnexpectedTokenError) Is(target error) bool {
	return target == ErrUnexpectedToken
}

// InvalidHoldStateError reports input ending outside the blank state.
type InvalidHoldStateError struct {
	State LexState
}

func (i InvalidHoldStateError) Error() string {
	switch i.State {
	case LexInsideTuple:
		return "invalid hold state: unclosed tuple"
	case LexImplicationStart:
		return "invalid hold state: dangling implication"
	}
	return "invalid hold state: " + i.State.String()
}

func (i InvalidHoldStateError) Is(target error) bool {
	switch target {
	case ErrInvalidHoldState:
		return true
	case ErrUnclosedTuple:
		return i.State == LexInsideTuple
	case ErrDanglingImplication:
		return i.State == LexImplicationStart
	}
	return false
}

// SyntaxError wraps a lexical error surfaced while parsing.
type SyntaxError struct {
	Err error
}

func (s SyntaxError) Error() string {
	return "syntax error: " + s.Err.Error()
}

func (s SyntaxError) Unwrap() error {
	return s.Err
}

func (s SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ClauseError locates a semantic error at a clause, counted from 1.
type ClauseError struct {
	Clause int
	Err    error
}

func (c ClauseError) Error() string {
	return fmt.Sprintf("clause %d: %v", c.Clause, c.Err)
}

func (c ClauseError) Unwrap() error {
	return c.Err
}
