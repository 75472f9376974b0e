package inputs

import (
	"errors"
	"fmt"

	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var ErrNotIterable = errors.New("not iterable")

// maxExecutionSteps bounds an input expression.
const maxExecutionSteps = 1 << 20

// Eval evaluates a Starlark expression yielding the initial cells,
// for example [True, False] * 3 or ["a" if i % 2 else None for i in range(4)].
// None elements are blank; others are rendered as text and parsed by symbols.
func Eval[V comparable](expr string, symbols rules.SymbolParser[V]) ([]tapes.Cell[V], error) {
	thread := &starlark.Thread{
		Name: "input",
	}
	thread.SetMaxExecutionSteps(maxExecutionSteps)

	value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "input", expr, nil)
	if err != nil {
		return nil, err
	}

	iter := starlark.Iterate(value)
	if iter == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotIterable, value.Type())
	}
	defer iter.Done()

	var cells []tapes.Cell[V]
	var elem starlark.Value
	for i := 0; iter.Next(&elem); i++ {
		cell, err := toCell(elem, symbols)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func toCell[V comparable](value starlark.Value, symbols rules.SymbolParser[V]) (tapes.Cell[V], error) {
	var text string
	switch value := value.(type) {
	case starlark.NoneType:
		return tapes.Blank[V](), nil
	case starlark.String:
		text = string(value)
	default:
		text = value.String()
	}
	v, err := symbols(text)
	if err != nil {
		return tapes.Blank[V](), err
	}
	return tapes.Mark(v), nil
}
