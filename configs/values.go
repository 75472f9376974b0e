package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the first value at path. A missing value yields the zero T;
// other failures panic, since configs are read while building a scope.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}

// All decodes every value at path, in load order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}
