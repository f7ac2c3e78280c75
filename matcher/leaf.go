// Package matcher provides the predicates of the structural matching
// engine: leaf and kind checks, typed primitive adapters, string matchers,
// the object pattern matcher, and the four array matching strategies. All of
// them implement jsonmatch.Predicate and nest freely.
package matcher

import (
	"fmt"
	"math"

	"github.com/chege/jsonmatch"
)

// leafMatcher adapts a boolean test over a Value into a Predicate. want
// names the expected condition; explain, when set, overrides how the actual
// value is described on failure.
type leafMatcher struct {
	want    string
	test    func(jsonmatch.Value) bool
	explain func(jsonmatch.Value) string
}

func (m leafMatcher) Describe() string { return m.want }

func (m leafMatcher) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	if m.test(v) {
		return jsonmatch.Success()
	}
	actual := describeValue(v)
	if m.explain != nil {
		actual = m.explain(v)
	}
	return jsonmatch.Failuref(at, "expected %s, got %s", m.want, actual)
}

// describeValue names the actual value's kind and payload for failure
// explanations.
func describeValue(v jsonmatch.Value) string {
	switch v.Kind() {
	case jsonmatch.KindNull:
		return "JSON null"
	case jsonmatch.KindBool:
		return fmt.Sprintf("JSON %s", v)
	case jsonmatch.KindInt:
		return fmt.Sprintf("an integer JSON number (%s)", v)
	case jsonmatch.KindFloat:
		return fmt.Sprintf("a float JSON number (%s)", v)
	case jsonmatch.KindString:
		return fmt.Sprintf("a JSON string (%s)", v)
	case jsonmatch.KindArray:
		n, _ := v.Len()
		return fmt.Sprintf("a JSON array of length %d", n)
	case jsonmatch.KindObject:
		n, _ := v.Len()
		return fmt.Sprintf("a JSON object with %d fields", n)
	default:
		return v.Kind().String()
	}
}

// PredicateFunc builds a predicate from an arbitrary caller-supplied test
// over the raw Value. desc names the condition for diagnostics.
func PredicateFunc(desc string, test func(jsonmatch.Value) bool) jsonmatch.Predicate {
	return leafMatcher{want: desc, test: test}
}

// IsNull matches JSON null.
func IsNull() jsonmatch.Predicate {
	return leafMatcher{want: "JSON null", test: jsonmatch.Value.IsNull}
}

// IsNotNull matches any value except JSON null.
func IsNotNull() jsonmatch.Predicate {
	return leafMatcher{want: "a non-null JSON value", test: func(v jsonmatch.Value) bool {
		return !v.IsNull()
	}}
}

// IsString matches JSON strings.
func IsString() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON string", test: isKind(jsonmatch.KindString)}
}

// IsBool matches JSON booleans.
func IsBool() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON boolean", test: isKind(jsonmatch.KindBool)}
}

// IsTrue matches the JSON boolean true.
func IsTrue() jsonmatch.Predicate {
	return leafMatcher{want: "JSON true", test: func(v jsonmatch.Value) bool {
		b, ok := v.AsBool()
		return ok && b
	}}
}

// IsFalse matches the JSON boolean false.
func IsFalse() jsonmatch.Predicate {
	return leafMatcher{want: "JSON false", test: func(v jsonmatch.Value) bool {
		b, ok := v.AsBool()
		return ok && !b
	}}
}

// IsNumber matches JSON numbers of either representation.
func IsNumber() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON number", test: func(v jsonmatch.Value) bool {
		return v.Kind().IsNumber()
	}}
}

// IsInteger matches JSON numbers stored as integers. A float with zero
// fractional part does not qualify; see IsWholeNumber for that.
func IsInteger() jsonmatch.Predicate {
	return leafMatcher{want: "an integer JSON number", test: isKind(jsonmatch.KindInt)}
}

// IsWholeNumber matches JSON numbers with no fractional part, whether
// stored as an integer or as a float like 2.0.
func IsWholeNumber() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON number with no fractional part", test: func(v jsonmatch.Value) bool {
		if _, ok := v.AsInt(); ok {
			return true
		}
		if v.Kind() != jsonmatch.KindFloat {
			return false
		}
		f, _ := v.AsFloat()
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
	}}
}

// IsFractionalNumber matches JSON numbers stored as floats with a nonzero
// fractional part.
func IsFractionalNumber() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON number with a fractional part", test: func(v jsonmatch.Value) bool {
		if v.Kind() != jsonmatch.KindFloat {
			return false
		}
		f, _ := v.AsFloat()
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f != math.Trunc(f)
	}}
}

// IsArray matches JSON arrays.
func IsArray() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON array", test: isKind(jsonmatch.KindArray)}
}

// IsObject matches JSON objects.
func IsObject() jsonmatch.Predicate {
	return leafMatcher{want: "a JSON object", test: isKind(jsonmatch.KindObject)}
}

// IsEmptyString matches "".
func IsEmptyString() jsonmatch.Predicate {
	return emptiness("an empty JSON string", jsonmatch.KindString, true)
}

// IsNonEmptyString matches any string with at least one byte.
func IsNonEmptyString() jsonmatch.Predicate {
	return emptiness("a non-empty JSON string", jsonmatch.KindString, false)
}

// IsEmptyArray matches [].
func IsEmptyArray() jsonmatch.Predicate {
	return emptiness("an empty JSON array", jsonmatch.KindArray, true)
}

// IsNonEmptyArray matches arrays with at least one element.
func IsNonEmptyArray() jsonmatch.Predicate {
	return emptiness("a non-empty JSON array", jsonmatch.KindArray, false)
}

// IsEmptyObject matches {}.
func IsEmptyObject() jsonmatch.Predicate {
	return emptiness("an empty JSON object", jsonmatch.KindObject, true)
}

// IsNonEmptyObject matches objects with at least one field.
func IsNonEmptyObject() jsonmatch.Predicate {
	return emptiness("a non-empty JSON object", jsonmatch.KindObject, false)
}

func isKind(k jsonmatch.Kind) func(jsonmatch.Value) bool {
	return func(v jsonmatch.Value) bool { return v.Kind() == k }
}

func emptiness(want string, k jsonmatch.Kind, empty bool) jsonmatch.Predicate {
	return leafMatcher{want: want, test: func(v jsonmatch.Value) bool {
		if v.Kind() != k {
			return false
		}
		n, _ := v.Len()
		return (n == 0) == empty
	}}
}
