package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files lazily. Earlier files take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

// NewLoader returns a loader over filePaths. A non-empty schemaSrc is closed
// and unified with every file.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			for _, filePath := range filePaths {
				value, err := compileFile(ctx, filePath, schema)
				if err != nil {
					return nil, fmt.Errorf("load %s: %w", filePath, err)
				}
				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

func compileFile(ctx *cue.Context, filePath string, schema cue.Value) (cue.Value, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return cue.Value{}, err
	}
	value := ctx.CompileBytes(content, cue.Filename(filePath))
	if err := value.Err(); err != nil {
		return cue.Value{}, err
	}
	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return cue.Value{}, err
		}
	}
	return value, nil
}

// Paths returns the files the loader reads.
func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return ret, nil
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Err() != nil || !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
