package machines

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/turing/tapes"
)

// State identifies a control configuration. Any value may be a transition
// target, defined as a source or not.
type State uint

// Cause is the left side of a transition: the current state and the cell under the head.
type Cause[V comparable] struct {
	State State
	Cell  tapes.Cell[V]
}

// Effect is the right side of a transition.
type Effect[V comparable] struct {
	State     State
	Cell      tapes.Cell[V]
	Direction tapes.Direction
}

func (c Cause[V]) String() string {
	return fmt.Sprintf("(%d, %v)", c.State, c.Cell)
}

func (e Effect[V]) String() string {
	return fmt.Sprintf("(%d, %v, %v)", e.State, e.Cell, e.Direction)
}

// Table maps causes to effects. A missing cause is a lookup failure.
type Table[V comparable] map[Cause[V]]Effect[V]

// Insert binds cause to effect, returning the replaced binding if any.
// Blank cells in cause and effect are stored in canonical form.
func (t Table[V]) Insert(cause Cause[V], effect Effect[V]) (old Effect[V], replaced bool) {
	cause.Cell = cause.Cell.Canonical()
	effect.Cell = effect.Cell.Canonical()
	old, replaced = t[cause]
	t[cause] = effect
	return
}

func (t Table[V]) Lookup(cause Cause[V]) (Effect[V], bool) {
	cause.Cell = cause.Cell.Canonical()
	effect, ok := t[cause]
	effect.Cell = effect.Cell.Canonical()
	return effect, ok
}

func (t Table[V]) Clone() Table[V] {
	if t == nil {
		return make(Table[V])
	}
	return maps.Clone(t)
}

// Causes returns all causes ordered by state, then blank first, then symbol text.
func (t Table[V]) Causes() []Cause[V] {
	causes := slices.Collect(maps.Keys(t))
	slices.SortFunc(causes, func(a, b Cause[V]) int {
		if c := cmp.Compare(a.State, b.State); c != 0 {
			return c
		}
		if a.Cell.Valid != b.Cell.Valid {
			if !a.Cell.Valid {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Cell.String(), b.Cell.String())
	})
	return causes
}
