package tapes

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestReadUnwritten(t *testing.T) {
	tape := New[bool]()
	for _, pos := range []int{0, 1, -1, 42, -42, 1337, -1 << 40} {
		if cell := tape.Read(pos); !cell.IsBlank() {
			t.Fatalf("position %d: got %v", pos, cell)
		}
	}
	if got := tape.Contents(); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestWriteRead(t *testing.T) {
	tape := New[int]()
	positions := []int{0, -1, -42, 1337, 5, -6}
	for i, pos := range positions {
		tape.Write(pos, Mark(i*10))
	}
	for i, pos := range positions {
		cell := tape.Read(pos)
		if v, ok := cell.Get(); !ok || v != i*10 {
			t.Fatalf("position %d: got %v", pos, cell)
		}
	}

	tape.Write(1337, Blank[int]())
	if !tape.Read(1337).IsBlank() {
		t.Fatal("should be blank")
	}
}

func TestContentsWindow(t *testing.T) {
	tape := New[string]()
	tape.Write(3, Mark("x"))
	if got := tape.Contents(); !slices.Equal(got, []Cell[string]{
		{}, {}, {}, Mark("x"),
	}) {
		t.Fatalf("got %v", got)
	}

	tape.Write(-2, Mark("y"))
	if got := tape.Contents(); !slices.Equal(got, []Cell[string]{
		Mark("y"), {}, {}, {}, {}, Mark("x"),
	}) {
		t.Fatalf("got %v", got)
	}

	// blank writes materialize too, and the window never shrinks
	tape.Write(3, Blank[string]())
	tape.Write(-4, Blank[string]())
	low, high := tape.Bounds()
	if low != -4 || high != 4 {
		t.Fatalf("got [%d, %d)", low, high)
	}
	if tape.Len() != 8 {
		t.Fatalf("got %d", tape.Len())
	}
}

func TestContentsTrimBlanks(t *testing.T) {
	tape := FromCells([]Cell[string]{
		{}, {}, Mark("X"), {}, {}, Mark("Y"), {}, {},
	})
	got := tape.ContentsTrimBlanks()
	if !slices.Equal(got, []Cell[string]{
		Mark("X"), {}, {}, Mark("Y"),
	}) {
		t.Fatalf("got %v", got)
	}

	if got := New[bool]().ContentsTrimBlanks(); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	if got := TrimBlanks([]Cell[bool]{{}, {}}); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestContentsAroundHead(t *testing.T) {
	tape := New(1, 2, 3)
	tape.MoveRight()
	got := tape.ContentsAroundHead(2)
	if !slices.Equal(got, []Cell[int]{
		{}, Mark(1), Mark(2), Mark(3), {},
	}) {
		t.Fatalf("got %v", got)
	}
	if got := tape.ContentsAroundHead(0); !slices.Equal(got, []Cell[int]{Mark(2)}) {
		t.Fatalf("got %v", got)
	}
	if got := tape.ContentsAroundHead(-1); got != nil {
		t.Fatalf("got %v", got)
	}
	// viewing does not materialize
	if tape.Len() != 3 {
		t.Fatalf("got %d", tape.Len())
	}
}

func TestMove(t *testing.T) {
	tape := New(true, false)
	if cell := tape.MoveRight(); cell != Mark(false) {
		t.Fatalf("got %v", cell)
	}
	if cell := tape.MoveRight(); !cell.IsBlank() {
		t.Fatalf("got %v", cell)
	}

	start := tape.Head()
	tape.Move(Left)
	tape.Move(Right)
	tape.Move(Hold)
	if tape.Head() != start {
		t.Fatalf("got %d", tape.Head())
	}

	tape.Seek(-3)
	if cell := tape.MoveLeft(); !cell.IsBlank() || tape.Head() != -4 {
		t.Fatalf("got %v at %d", cell, tape.Head())
	}
	tape.Put(Mark(true))
	if tape.Current() != Mark(true) || tape.Read(-4) != Mark(true) {
		t.Fatal()
	}
}

func TestString(t *testing.T) {
	tape := New(true, false)
	tape.Write(3, Mark(true))
	if str := tape.String(); str != "true false None true" {
		t.Fatalf("got %q", str)
	}
}

func TestSnapshot(t *testing.T) {
	tape := New("a", "b")
	tape.Write(-2, Mark("z"))
	tape.Seek(-1)

	data, err := json.Marshal(tape.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"head":-1,"origin":-2,"cells":["z",null,"a","b"]}` {
		t.Fatalf("got %s", data)
	}

	var snapshot Snapshot[string]
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatal(err)
	}
	restored := snapshot.Restore()
	if !slices.Equal(restored.Contents(), tape.Contents()) {
		t.Fatalf("got %v", restored.Contents())
	}
	if restored.Head() != -1 {
		t.Fatalf("got %d", restored.Head())
	}
}
