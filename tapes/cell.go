package tapes

import (
	"encoding/json"
	"fmt"
)

// Cell is the content of one tape position: a symbol, or blank.
// The zero Cell is blank.
type Cell[V comparable] struct {
	Value V
	Valid bool
}

func Blank[V comparable]() (ret Cell[V]) {
	return
}

func Mark[V comparable](value V) Cell[V] {
	return Cell[V]{
		Value: value,
		Valid: true,
	}
}

func Marks[V comparable](values ...V) []Cell[V] {
	ret := make([]Cell[V], 0, len(values))
	for _, value := range values {
		ret = append(ret, Mark(value))
	}
	return ret
}

// Canonical returns c, or the zero blank if c is blank. Blanks built by hand
// may carry a stale Value; compare cells through Canonical.
func (c Cell[V]) Canonical() Cell[V] {
	if !c.Valid {
		return Cell[V]{}
	}
	return c
}

func (c Cell[V]) IsBlank() bool {
	return !c.Valid
}

func (c Cell[V]) Get() (V, bool) {
	return c.Value, c.Valid
}

func (c Cell[V]) String() string {
	if !c.Valid {
		return "None"
	}
	return fmt.Sprint(c.Value)
}

func (c Cell[V]) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *Cell[V]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Cell[V]{}
		return nil
	}
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*c = Mark(value)
	return nil
}
