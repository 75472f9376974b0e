package machines

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/turing/tapes"
)

// Dump writes a human-readable description of the machine for debugging.
func (m *Machine[V]) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "state: %d (start %d)\nhead: %d\n", m.state, m.start, m.tape.Head())
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "transitions: %d\n", len(m.table)); err != nil {
		return err
	}
	for _, cause := range m.table.Causes() {
		if _, err := fmt.Fprintf(w, "  %v -> %v\n", cause, m.table[cause]); err != nil {
			return err
		}
	}

	cells := make([]string, 0, m.tape.Len())
	for _, cell := range tapes.TrimBlanks(m.tape.Contents()) {
		cells = append(cells, cell.String())
	}
	_, err = fmt.Fprintf(w, "tape: [%s]\n", strings.Join(cells, ", "))
	return err
}

func (m *Machine[V]) String() string {
	var b strings.Builder
	_ = m.Dump(&b)
	return b.String()
}
