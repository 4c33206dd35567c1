package payload

import (
	"math"
	"time"
)

// Kind enumerates the shapes a Value can take.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindText
	KindTime
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "absent"
	}
}

// Field is one key/value member of a mapping.
type Field struct {
	Key   string
	Value Value
}

// Value is an untyped payload value as received from an upstream service.
// The zero Value is Absent: the key or element was not there at all.
type Value struct {
	kind   Kind
	b      bool
	n      float64
	s      string
	t      time.Time
	items  []Value
	fields []Field
}

func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }
func Text(s string) Value { return Value{kind: KindText, s: s} }
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// Seq builds a sequence. A nil argument list yields an empty sequence, not Absent.
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Map builds a mapping. Repeated keys keep their first position and their last value.
func Map(fields ...Field) Value {
	out := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Key]; ok {
			out[i].Value = f.Value
			continue
		}
		index[f.Key] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindMapping, fields: out}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNullish reports whether v is Absent or Null.
func (v Value) IsNullish() bool { return v.kind == KindAbsent || v.kind == KindNull }

// IsObject reports whether v is a structured value: a mapping, a sequence or a time.
func (v Value) IsObject() bool {
	return v.kind == KindMapping || v.kind == KindSequence || v.kind == KindTime
}

// Truthy reports whether v would pass a plain boolean test.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindAbsent, KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	case KindText:
		return v.s != ""
	default:
		return true
	}
}

// Str returns the text of a Text value and "" for anything else.
func (v Value) Str() string {
	if v.kind != KindText {
		return ""
	}
	return v.s
}

// Num returns the number of a Number value and 0 for anything else.
func (v Value) Num() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// Bool returns the boolean of a Bool value and false for anything else.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Time returns the time of a Time value and the zero time for anything else.
func (v Value) Time() time.Time {
	if v.kind != KindTime {
		return time.Time{}
	}
	return v.t
}

// Items returns the elements of a sequence, nil otherwise.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Fields returns the members of a mapping in their original order, nil otherwise.
func (v Value) Fields() []Field {
	if v.kind != KindMapping {
		return nil
	}
	return v.fields
}

// Len returns the number of elements or members, 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.fields)
	default:
		return 0
	}
}

// Get returns the member stored under key, Absent when v is not a mapping or has no such key.
func (v Value) Get(key string) Value {
	for _, f := range v.Fields() {
		if f.Key == key {
			return f.Value
		}
	}
	return Value{}
}

// Lookup returns the first member among keys that is neither Absent nor Null.
func (v Value) Lookup(keys ...string) Value {
	for _, k := range keys {
		if got := v.Get(k); !got.IsNullish() {
			return got
		}
	}
	return Value{}
}

// Or returns v unless it is Absent or Null, in which case it returns fallback.
func (v Value) Or(fallback Value) Value {
	if v.IsNullish() {
		return fallback
	}
	return v
}

// Equal reports deep equality. NaN equals NaN so normalized values compare stably.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n || (math.IsNaN(v.n) && math.IsNaN(o.n))
	case KindText:
		return v.s == o.s
	case KindTime:
		return v.t.Equal(o.t)
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Key != o.fields[i].Key || !v.fields[i].Value.Equal(o.fields[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
