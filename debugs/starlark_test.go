package debugs

import (
	"testing"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"int", 42, starlark.MakeInt(42)},
		{"state", machines.State(7), starlark.MakeInt(7)},
		{"direction", tapes.Left, starlark.MakeInt(-1)},
		{"float", 0.5, starlark.Float(0.5)},
		{"[]any", []any{1, "a", nil}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.None})},
		{"[]int", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"map[string]any", map[string]any{"head": 3}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("head"), starlark.MakeInt(3))
			return d
		}()},
		{"cell struct", tapes.Mark(true), starlark.String("true")},
		{"blank cell", tapes.Blank[int](), starlark.String("None")},
		{"nil pointer", (*int)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ToStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("ToStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}
}

func TestPredeclaredFunc(t *testing.T) {
	calls := 0
	globals := Predeclared(map[string]any{
		"step": func() bool {
			calls++
			return true
		},
		"state": 3,
	})

	thread := &starlark.Thread{Name: "test"}
	result, err := starlark.Call(thread, globals["step"], nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("got %d", calls)
	}
	if result != starlark.True {
		t.Fatalf("got %v", result)
	}
	if equal, err := starlark.Equal(globals["state"], starlark.MakeInt(3)); err != nil || !equal {
		t.Fatalf("got %v", globals["state"])
	}
}
