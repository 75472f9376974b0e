package rules

import (
	"fmt"
	"strconv"

	"github.com/reusee/turing/vars"
)

// SymbolParser parses the text of a non-blank tuple field into a symbol.
type SymbolParser[V comparable] func(text string) (V, error)

func Bools(text string) (bool, error) {
	v, ok := vars.ParseBool(text)
	if !ok {
		return false, fmt.Errorf("not a bool: %q", text)
	}
	return v, nil
}

func Strings(text string) (string, error) {
	return text, nil
}

func Ints(text string) (int, error) {
	return strconv.Atoi(text)
}
