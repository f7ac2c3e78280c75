package matcher

import (
	"fmt"

	"github.com/chege/jsonmatch"
)

// Eq matches by structural equality with the given literal Value. This is
// the direct-value shortcut: anywhere a predicate is expected, Eq lets a
// concrete value stand in for one. Int 7 and Float 7.0 compare equal under
// the numeric-domain rule.
func Eq(want jsonmatch.Value) jsonmatch.Predicate {
	return leafMatcher{
		want: fmt.Sprintf("a value equal to %s", want),
		test: func(v jsonmatch.Value) bool { return v.Equal(want) },
	}
}

// EqGo is Eq over already-parsed Go data (see jsonmatch.FromGo). If the
// input cannot be converted the resulting predicate fails every match with
// the conversion error rather than panicking.
func EqGo(want any) jsonmatch.Predicate {
	wv, err := jsonmatch.FromGo(want)
	if err != nil {
		return brokenPredicate{msg: fmt.Sprintf("unusable expected literal: %v", err)}
	}
	return Eq(wv)
}

// brokenPredicate stands in for a predicate whose construction input was
// invalid. It fails every match with the construction error, keeping the
// no-panic propagation policy.
type brokenPredicate struct{ msg string }

func (b brokenPredicate) Describe() string { return b.msg }

func (b brokenPredicate) Match(_ jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	return jsonmatch.Failure(at, b.msg)
}

// StringThat matches a JSON string whose payload satisfies the given test,
// failing with a kind mismatch for any non-string value. desc names the
// delegated condition as a noun phrase, e.g. "a string of length 2".
func StringThat(desc string, test func(string) bool) jsonmatch.Predicate {
	return leafMatcher{want: desc, test: func(v jsonmatch.Value) bool {
		s, ok := v.AsString()
		return ok && test(s)
	}, explain: typedExplain(jsonmatch.KindString, "a JSON string")}
}

// IntThat matches a JSON number stored as an integer whose payload
// satisfies the given test.
func IntThat(desc string, test func(int64) bool) jsonmatch.Predicate {
	return leafMatcher{want: desc, test: func(v jsonmatch.Value) bool {
		i, ok := v.AsInt()
		return ok && test(i)
	}, explain: typedExplain(jsonmatch.KindInt, "an integer JSON number")}
}

// FloatThat matches a JSON number of either representation, seen as a
// float64, whose payload satisfies the given test.
func FloatThat(desc string, test func(float64) bool) jsonmatch.Predicate {
	return leafMatcher{want: desc, test: func(v jsonmatch.Value) bool {
		f, ok := v.AsFloat()
		return ok && test(f)
	}, explain: func(v jsonmatch.Value) string {
		if v.Kind().IsNumber() {
			return describeValue(v)
		}
		return fmt.Sprintf("%s instead of a JSON number", describeValue(v))
	}}
}

// BoolEq matches the JSON boolean equal to want.
func BoolEq(want bool) jsonmatch.Predicate {
	if want {
		return IsTrue()
	}
	return IsFalse()
}

// BoolThat matches a JSON boolean whose payload satisfies the given test.
func BoolThat(desc string, test func(bool) bool) jsonmatch.Predicate {
	return leafMatcher{want: desc, test: func(v jsonmatch.Value) bool {
		b, ok := v.AsBool()
		return ok && test(b)
	}, explain: typedExplain(jsonmatch.KindBool, "a JSON boolean")}
}

// typedExplain reports values of the wrong kind as kind mismatches and
// leaves right-kind failures to the usual value description.
func typedExplain(k jsonmatch.Kind, kindName string) func(jsonmatch.Value) string {
	return func(v jsonmatch.Value) string {
		if v.Kind() == k {
			return describeValue(v)
		}
		return fmt.Sprintf("%s instead of %s", describeValue(v), kindName)
	}
}
