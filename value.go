package jsonmatch

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant a Value holds. Int and Float are distinct
// kinds so that "is this a whole number stored as a float" style queries can
// see the underlying representation, while equality treats both as one
// numeric domain.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer number"
	case KindFloat:
		return "float number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsNumber reports whether the kind belongs to the numeric domain.
func (k Kind) IsNumber() bool { return k == KindInt || k == KindFloat }

// Value is an immutable JSON-like tree: null, boolean, number (integer or
// float, tagged), string, array, or object. Objects remember insertion order
// for display; order never affects equality. The engine never mutates a
// Value handed to it, and the constructors copy their inputs so callers
// cannot mutate one after the fact either.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *objectBody
}

type objectBody struct {
	keys []string
	vals map[string]Value
}

// Field is one key/value pair of an object literal.
type Field struct {
	Name  string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a JSON number holding a signed 64-bit integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a JSON number holding a double-precision float.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// ArrayOf returns a JSON array of the given elements.
func ArrayOf(elems ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), elems...)}
}

// ObjectOf returns a JSON object with the given fields in the given order.
// A repeated field name keeps the last value but the original position.
func ObjectOf(fields ...Field) Value {
	body := &objectBody{vals: make(map[string]Value, len(fields))}
	for _, f := range fields {
		if _, seen := body.vals[f.Name]; !seen {
			body.keys = append(body.keys, f.Name)
		}
		body.vals[f.Name] = f.Value
	}
	return Value{kind: KindObject, obj: body}
}

// FromGo converts already-parsed Go data of the shapes encoding/json
// produces (map[string]any, []any, string, bool, float64, json.Number, nil)
// plus native Go numeric types into a Value tree. Integral json.Number and
// Go integer inputs become Int; everything else numeric becomes Float. Map
// keys are ordered lexically since Go maps carry no insertion order.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(1)<<63-1 {
			return Value{}, fmt.Errorf("uint64 value %d overflows int64", x)
		}
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid json.Number %q: %w", x.String(), err)
		}
		return Float(f), nil
	case []any:
		elems := make([]Value, 0, len(x))
		for idx, el := range x {
			ev, err := FromGo(el)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", idx, err)
			}
			elems = append(elems, ev)
		}
		return Value{kind: KindArray, arr: elems}, nil
	case []Value:
		return ArrayOf(x...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fv, err := FromGo(x[k])
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			fields = append(fields, Field{Name: k, Value: fv})
		}
		return ObjectOf(fields...), nil
	default:
		return Value{}, fmt.Errorf("unsupported Go type %T", v)
	}
}

// MustFromGo is FromGo for literals known to be convertible; it panics on
// anything FromGo rejects. Intended for test fixtures.
func MustFromGo(v any) Value {
	val, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Kind reports which variant the value holds. The zero Value is null.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload, with ok=false for non-boolean values.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload, with ok=false unless the value is a
// number stored as an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the numeric payload as a float64 for either numeric
// representation, with ok=false for non-numbers.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsString returns the string payload, with ok=false for non-strings.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Len returns the element count of an array, the field count of an object,
// or the byte length of a string; ok=false for other kinds.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindArray:
		return len(v.arr), true
	case KindObject:
		return len(v.obj.keys), true
	case KindString:
		return len(v.s), true
	default:
		return 0, false
	}
}

// Elems returns the elements of an array value. The slice is shared; callers
// must not modify it. Returns nil for non-arrays.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Keys returns an object's field names in insertion order. Returns nil for
// non-objects.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.obj.keys
}

// FieldValue looks up a field of an object value.
func (v Value) FieldValue(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	fv, ok := v.obj.vals[name]
	return fv, ok
}

// Equal reports structural equality. Numbers compare across the
// integer/float representations: Int 7 equals Float 7.0. Object key order is
// irrelevant; array order is not.
func (v Value) Equal(other Value) bool {
	if v.kind.IsNumber() && other.kind.IsNumber() {
		if v.kind == KindInt && other.kind == KindInt {
			return v.i == other.i
		}
		a, _ := v.AsFloat()
		b, _ := other.AsFloat()
		return a == b
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj.keys) != len(other.obj.keys) {
			return false
		}
		for k, fv := range v.obj.vals {
			ov, ok := other.obj.vals[k]
			if !ok || !fv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value as compact JSON-style text for diagnostics.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindArray:
		sb.WriteByte('[')
		for i, el := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			el.render(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, k := range v.obj.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
			fv := v.obj.vals[k]
			fv.render(sb)
		}
		sb.WriteByte('}')
	}
}
