package payload

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// MaxDepth bounds nesting for Parse and FromAny.
	MaxDepth = 64
	// MaxNodes bounds how many values FromAny emits; the rest are cut to Null.
	MaxNodes = 100000
)

// Parse decodes JSON text preserving mapping key order.
// Empty input yields Absent. Input nested deeper than MaxDepth is rejected.
func Parse(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Value{}, nil
	}
	if nestingExceeds(data, MaxDepth) {
		return Value{}, ErrTooDeep
	}
	if !gjson.ValidBytes(data) {
		return Value{}, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// MustParse is Parse for literals; invalid input yields Absent.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		return Value{}
	}
	return v
}

// nestingExceeds reports whether brackets outside string literals nest deeper than limit.
func nestingExceeds(data []byte, limit int) bool {
	depth := 0
	inString := false
	escaped := false
	for _, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
			if depth > limit {
				return true
			}
		case ']', '}':
			depth--
		}
	}
	return false
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		if r.Raw == "" {
			return Value{}
		}
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(r.Num)
	case gjson.String:
		return Text(r.Str)
	}

	if r.IsArray() {
		items := []Value{}
		r.ForEach(func(_, item gjson.Result) bool {
			items = append(items, fromResult(item))
			return true
		})
		return Seq(items...)
	}

	var fields []Field
	r.ForEach(func(key, item gjson.Result) bool {
		fields = append(fields, F(key.Str, fromResult(item)))
		return true
	})
	return Map(fields...)
}

// FromAny converts a decoded Go value into a Value.
// Go maps are walked in sorted key order. A map, slice or pointer that is
// already being walked becomes Null, as does anything past MaxDepth or
// MaxNodes. Values with no natural mapping go through a JSON round trip and
// become Null when that fails.
func FromAny(v any) Value {
	w := &walker{path: map[uintptr]struct{}{}}
	return w.walk(v, 0)
}

type walker struct {
	path  map[uintptr]struct{}
	nodes int
}

// enter marks a reference as on the current path. It returns false when the
// reference is already there.
func (w *walker) enter(rv reflect.Value) (uintptr, bool) {
	ptr := rv.Pointer()
	if ptr == 0 {
		return 0, true
	}
	if _, ok := w.path[ptr]; ok {
		return 0, false
	}
	w.path[ptr] = struct{}{}
	return ptr, true
}

func (w *walker) leave(ptr uintptr) {
	if ptr != 0 {
		delete(w.path, ptr)
	}
}

func (w *walker) walk(v any, depth int) Value {
	w.nodes++
	if depth > MaxDepth || w.nodes > MaxNodes {
		return Null()
	}

	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Value:
		if x == nil {
			return Null()
		}
		return *x
	case time.Time:
		return Time(x)
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return Text(string(x))
		}
		return Number(f)
	case json.RawMessage:
		parsed, err := Parse(x)
		if err != nil || parsed.IsAbsent() {
			return Null()
		}
		return parsed
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return Text(rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return w.walk(rv.Elem().Interface(), depth+1)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		ptr, ok := w.enter(rv)
		if !ok {
			return Null()
		}
		defer w.leave(ptr)
		return w.walk(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		if rv.Kind() == reflect.Slice && rv.Len() > 0 {
			ptr, ok := w.enter(rv)
			if !ok {
				return Null()
			}
			defer w.leave(ptr)
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, w.walk(rv.Index(i).Interface(), depth+1))
		}
		return Seq(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null()
		}
		ptr, ok := w.enter(rv)
		if !ok {
			return Null()
		}
		defer w.leave(ptr)
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, F(k.String(), w.walk(rv.MapIndex(k).Interface(), depth+1)))
		}
		return Map(fields...)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return Null()
	}
	parsed, err := Parse(raw)
	if err != nil || parsed.IsAbsent() {
		return Null()
	}
	return parsed
}
