package tapes

import (
	"strings"

	"github.com/samber/lo"
)

// Tape is an unbounded bidirectional tape with a head.
//
// Cells are stored sparsely by absolute position. The materialized window
// mirrors a pair of growable arrays anchored at the origin: writing position
// p >= 0 materializes [0, p], writing p < 0 materializes [p, -1]. The window
// never shrinks. Reads outside the window return blank.
type Tape[V comparable] struct {
	cells    map[int]Cell[V]
	head     int
	positive int // materialized positions 0 .. positive-1
	negative int // materialized positions -negative .. -1
}

// New returns a tape holding values at positions 0 .. len(values)-1, head at 0.
func New[V comparable](values ...V) *Tape[V] {
	return FromCells(Marks(values...))
}

// FromCells returns a tape holding cells at positions 0 .. len(cells)-1, head at 0.
func FromCells[V comparable](cells []Cell[V]) *Tape[V] {
	t := &Tape[V]{
		cells: make(map[int]Cell[V], len(cells)),
	}
	for i, cell := range cells {
		t.Write(i, cell)
	}
	return t
}

func (t *Tape[V]) Read(pos int) Cell[V] {
	return t.cells[pos]
}

func (t *Tape[V]) Write(pos int, cell Cell[V]) {
	if t.cells == nil {
		t.cells = make(map[int]Cell[V])
	}
	if pos >= 0 {
		t.positive = max(t.positive, pos+1)
	} else {
		t.negative = max(t.negative, -pos)
	}
	if cell.Valid {
		t.cells[pos] = cell
	} else {
		delete(t.cells, pos)
	}
}

func (t *Tape[V]) Head() int {
	return t.head
}

// Seek places the head at an absolute position.
func (t *Tape[V]) Seek(pos int) {
	t.head = pos
}

// Current reads the cell under the head.
func (t *Tape[V]) Current() Cell[V] {
	return t.Read(t.head)
}

// Put writes the cell under the head.
func (t *Tape[V]) Put(cell Cell[V]) {
	t.Write(t.head, cell)
}

// Move displaces the head and returns the cell now under it.
func (t *Tape[V]) Move(direction Direction) Cell[V] {
	t.head += direction.Delta()
	return t.Current()
}

func (t *Tape[V]) MoveLeft() Cell[V] {
	return t.Move(Left)
}

func (t *Tape[V]) MoveRight() Cell[V] {
	return t.Move(Right)
}

// Bounds returns the materialized window as the half-open range [lo, hi).
func (t *Tape[V]) Bounds() (low, high int) {
	return -t.negative, t.positive
}

func (t *Tape[V]) Len() int {
	return t.negative + t.positive
}

// Contents returns the materialized window in ascending position order.
func (t *Tape[V]) Contents() []Cell[V] {
	ret := make([]Cell[V], 0, t.Len())
	for pos := -t.negative; pos < t.positive; pos++ {
		ret = append(ret, t.cells[pos])
	}
	return ret
}

// ContentsTrimBlanks is Contents without leading and trailing blank runs.
// Interior blanks are kept.
func (t *Tape[V]) ContentsTrimBlanks() []Cell[V] {
	return TrimBlanks(t.Contents())
}

// ContentsAroundHead returns the 2*radius+1 cells from head-radius to head+radius.
func (t *Tape[V]) ContentsAroundHead(radius int) []Cell[V] {
	if radius < 0 {
		return nil
	}
	return lo.Map(
		lo.RangeFrom(t.head-radius, 2*radius+1),
		func(pos int, _ int) Cell[V] {
			return t.Read(pos)
		},
	)
}

func (t *Tape[V]) String() string {
	var b strings.Builder
	for i, cell := range t.Contents() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cell.String())
	}
	return b.String()
}

func TrimBlanks[V comparable](cells []Cell[V]) []Cell[V] {
	cells = lo.DropWhile(cells, Cell[V].IsBlank)
	return lo.DropRightWhile(cells, Cell[V].IsBlank)
}
