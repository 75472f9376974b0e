package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/modes"
)

const program = "() -> (1)\n(1, None) -> (1, None, Hold)\n"

func testScope(t *testing.T, stdin string) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() Stdin {
			return strings.NewReader(stdin)
		},
	)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flip.tm")
	if err := os.WriteFile(path, []byte(program), 0644); err != nil {
		t.Fatal(err)
	}
	testScope(t, "").Call(func(
		load Load,
	) {
		src, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if src != program {
			t.Fatalf("got %q", src)
		}

		_, err = load(t.Context(), filepath.Join(t.TempDir(), "missing"))
		if err == nil || !strings.Contains(err.Error(), "missing") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadStdin(t *testing.T) {
	testScope(t, program).Call(func(
		load Load,
	) {
		src, err := load(context.Background(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if src != program {
			t.Fatalf("got %q", src)
		}
	})
}

func TestLoadTooLarge(t *testing.T) {
	big := strings.Repeat("(1, None) -> (1, None, Hold)\n", maxSize/29+1)
	if len(big) <= maxSize {
		t.Fatalf("got %d", len(big))
	}
	path := filepath.Join(t.TempDir(), "big.tm")
	if err := os.WriteFile(path, []byte(big), 0644); err != nil {
		t.Fatal(err)
	}
	testScope(t, big).Call(func(
		load Load,
	) {
		for _, location := range []string{"-", path} {
			if _, err := load(context.Background(), location); !errors.Is(err, ErrTooLarge) {
				t.Fatalf("%s: got %v", location, err)
			}
		}
	})

	exact := strings.Repeat("a", maxSize)
	testScope(t, exact).Call(func(
		load Load,
	) {
		src, err := load(context.Background(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if len(src) != maxSize {
			t.Fatalf("got %d", len(src))
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/flip.tm":
			fmt.Fprint(w, program)
		case "/binary":
			w.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	testScope(t, "").Call(func(
		load Load,
	) {
		src, err := load(t.Context(), server.URL+"/flip.tm")
		if err != nil {
			t.Fatal(err)
		}
		if src != program {
			t.Fatalf("got %q", src)
		}

		_, err = load(t.Context(), server.URL+"/binary")
		if !errors.Is(err, ErrNotText) {
			t.Fatalf("got %v", err)
		}

		_, err = load(t.Context(), server.URL+"/missing")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}
