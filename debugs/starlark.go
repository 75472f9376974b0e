package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlarkValue converts Go values exposed to the tap REPL.
// Functions become builtins; other unknown types are rendered with fmt.
func ToStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case []byte:
		return starlark.Bytes(v)
	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = ToStarlarkValue(e)
		}
		return starlark.NewList(elems)
	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, e := range v {
			d.SetKey(starlark.String(k), ToStarlarkValue(e))
		}
		return d
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Bool:
		return starlark.Bool(value.Bool())
	case reflect.String:
		if s, ok := v.(fmt.Stringer); ok {
			return starlark.String(s.String())
		}
		return starlark.String(value.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())
	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())
	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = ToStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)
	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				ToStarlarkValue(iter.Key().Interface()),
				ToStarlarkValue(iter.Value().Interface()),
			)
		}
		return d
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		if s, ok := v.(fmt.Stringer); ok {
			return starlark.String(s.String())
		}
		return ToStarlarkValue(value.Elem().Interface())
	case reflect.Func:
		return starlarkutil.MakeFunc("", v)
	}

	return starlark.String(fmt.Sprint(v))
}
