package inputs

import (
	"fmt"
	"strings"

	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

// Parse reads cells separated by whitespace or commas. None and _ are blank.
func Parse[V comparable](text string, symbols rules.SymbolParser[V]) ([]tapes.Cell[V], error) {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	cells := make([]tapes.Cell[V], 0, len(words))
	for i, word := range words {
		if word == "None" || word == "_" {
			cells = append(cells, tapes.Blank[V]())
			continue
		}
		v, err := symbols(word)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		cells = append(cells, tapes.Mark(v))
	}
	return cells, nil
}
