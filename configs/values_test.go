package configs

import (
	"strings"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	n := First[int](loader, "max_steps")
	if n != 100 {
		t.Fatalf("got %v", n)
	}

	if str := First[string](loader, "symbols"); str != "bool" {
		t.Fatalf("got %v", str)
	}
}

func TestFirstMissing(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	if d := First[string](loader, "checkpoint"); d != "" {
		t.Fatalf("got %v", d)
	}
}

func TestFirstBadType(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if err, ok := p.(error); !ok || !strings.Contains(err.Error(), "config symbols") {
			t.Fatalf("got %v", p)
		}
	}()
	First[int](loader, "symbols")
}
