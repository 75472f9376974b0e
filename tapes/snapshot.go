package tapes

// Snapshot is a serializable copy of a tape.
type Snapshot[V comparable] struct {
	Head   int       `json:"head"`
	Origin int       `json:"origin"`
	Cells  []Cell[V] `json:"cells"`
}

func (t *Tape[V]) Snapshot() Snapshot[V] {
	low, _ := t.Bounds()
	return Snapshot[V]{
		Head:   t.head,
		Origin: low,
		Cells:  t.Contents(),
	}
}

// Restore builds a tape with the same window, cells and head as the snapshot.
func (s Snapshot[V]) Restore() *Tape[V] {
	t := &Tape[V]{
		cells: make(map[int]Cell[V], len(s.Cells)),
		head:  s.Head,
	}
	for i, cell := range s.Cells {
		t.Write(s.Origin+i, cell)
	}
	return t
}
