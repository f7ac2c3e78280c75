package matcher

import (
	"fmt"
	"strings"

	"github.com/chege/jsonmatch"
)

// requirement selects which bipartite matching size proves an unordered
// array strategy: a perfect matching, every predicate covered (superset
// arrays allowed), or every element covered (surplus predicates allowed).
type requirement int

const (
	perfectMatch requirement = iota
	superset
	subset
)

// ElementsAre matches a JSON array element-wise, in order, against the
// given predicates. It fails fast: a length mismatch or the first
// mismatching index is reported alone, unlike the object matcher's
// collect-all policy.
func ElementsAre(preds ...jsonmatch.Predicate) jsonmatch.Predicate {
	return orderedElements{preds: preds}
}

type orderedElements struct {
	preds []jsonmatch.Predicate
}

func (m orderedElements) Describe() string {
	return describeElementList("a JSON array with elements, in order:", m.preds)
}

func (m orderedElements) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	if v.Kind() != jsonmatch.KindArray {
		return jsonmatch.Failuref(at, "expected a JSON array, got %s", describeValue(v))
	}
	elems := v.Elems()
	if len(elems) != len(m.preds) {
		return jsonmatch.Failuref(at, "expected an array of length %d, got %d", len(m.preds), len(elems))
	}
	for i, pred := range m.preds {
		if sub := pred.Match(elems[i], at.Index(i)); !sub.Matched {
			return sub
		}
	}
	return jsonmatch.Success()
}

// UnorderedElementsAre matches a JSON array whose elements correspond 1:1
// with the predicates in some order: a perfect bipartite matching must
// exist between predicates and elements.
func UnorderedElementsAre(preds ...jsonmatch.Predicate) jsonmatch.Predicate {
	return unorderedElements{preds: preds, req: perfectMatch}
}

// ContainsEach matches a JSON array in which every predicate is satisfied
// by a distinct element; extra elements are allowed.
func ContainsEach(preds ...jsonmatch.Predicate) jsonmatch.Predicate {
	return unorderedElements{preds: preds, req: superset}
}

// IsContainedIn matches a JSON array in which every element is accounted
// for by a distinct predicate; extra predicates are allowed.
func IsContainedIn(preds ...jsonmatch.Predicate) jsonmatch.Predicate {
	return unorderedElements{preds: preds, req: subset}
}

type unorderedElements struct {
	preds []jsonmatch.Predicate
	req   requirement
}

func (m unorderedElements) Describe() string {
	var header string
	switch m.req {
	case perfectMatch:
		header = "a JSON array with elements, in any order:"
	case superset:
		header = "a JSON array containing distinct elements matching:"
	default:
		header = "a JSON array whose elements each match one of:"
	}
	return describeElementList(header, m.preds)
}

func (m unorderedElements) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	if v.Kind() != jsonmatch.KindArray {
		return jsonmatch.Failuref(at, "expected a JSON array, got %s", describeValue(v))
	}
	elems := v.Elems()
	n, cnt := len(m.preds), len(elems)

	switch m.req {
	case perfectMatch:
		if cnt != n {
			return jsonmatch.Failuref(at, "expected an array of length %d, got %d", n, cnt)
		}
	case superset:
		if cnt < n {
			return jsonmatch.Failuref(at, "expected an array of at least %d elements, got %d", n, cnt)
		}
	case subset:
		if cnt > n {
			return jsonmatch.Failuref(at, "expected an array of at most %d elements, got %d", n, cnt)
		}
	}

	// Predicate evaluation is side-effect-free, so each (predicate,
	// element) pair is evaluated once and the verdict reused across the
	// augmenting-path search.
	compat := make([][]bool, n)
	for i, pred := range m.preds {
		compat[i] = make([]bool, cnt)
		for j, el := range elems {
			compat[i][j] = pred.Match(el, at.Index(j)).Matched
		}
	}

	leftToRight, rightToLeft := maximumMatching(n, cnt, func(i, j int) bool {
		return compat[i][j]
	})

	size := matchingSize(leftToRight)
	required := n
	if m.req == subset {
		required = cnt
	}
	if size == required {
		return jsonmatch.Success()
	}

	// Full unmatched sets on the side(s) the strategy constrains, then the
	// best-matching size against the requirement.
	out := jsonmatch.Success()
	if m.req != subset {
		for i, peer := range leftToRight {
			if peer == -1 {
				out.Addf(at, "no element matches expected predicate #%d (%s)", i, m.preds[i].Describe())
			}
		}
	}
	if m.req != superset {
		for j, peer := range rightToLeft {
			if peer == -1 {
				out.Addf(at.Index(j), "element %s did not match any predicate", elems[j])
			}
		}
	}
	out.Addf(at, "best matching covers %d of the %d required pairs", size, required)
	return out
}

func describeElementList(header string, preds []jsonmatch.Predicate) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, pred := range preds {
		fmt.Fprintf(&sb, " %d. %s;", i, pred.Describe())
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Len matches a JSON array of exactly n elements.
func Len(n int) jsonmatch.Predicate {
	return LenThat(fmt.Sprintf("is equal to %d", n), func(got int) bool { return got == n })
}

// LenThat matches a JSON array whose length satisfies the given test.
func LenThat(desc string, test func(int) bool) jsonmatch.Predicate {
	return leafMatcher{
		want: fmt.Sprintf("a JSON array whose length %s", desc),
		test: func(v jsonmatch.Value) bool {
			if v.Kind() != jsonmatch.KindArray {
				return false
			}
			n, _ := v.Len()
			return test(n)
		},
	}
}

// Each matches a JSON array every element of which satisfies pred. All
// failing indices are reported, like the object matcher's collect-all
// policy.
func Each(pred jsonmatch.Predicate) jsonmatch.Predicate {
	return eachElement{pred: pred}
}

type eachElement struct {
	pred jsonmatch.Predicate
}

func (m eachElement) Describe() string {
	return fmt.Sprintf("a JSON array whose every element is %s", m.pred.Describe())
}

func (m eachElement) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	if v.Kind() != jsonmatch.KindArray {
		return jsonmatch.Failuref(at, "expected a JSON array, got %s", describeValue(v))
	}
	out := jsonmatch.Success()
	for i, el := range v.Elems() {
		out.Merge(m.pred.Match(el, at.Index(i)))
	}
	return out
}

// EachIsString matches a JSON array whose elements are all strings.
func EachIsString() jsonmatch.Predicate { return Each(IsString()) }

// EachIsNumber matches a JSON array whose elements are all numbers.
func EachIsNumber() jsonmatch.Predicate { return Each(IsNumber()) }

// EachIsBool matches a JSON array whose elements are all booleans.
func EachIsBool() jsonmatch.Predicate { return Each(IsBool()) }

// EachIsNull matches a JSON array whose elements are all null.
func EachIsNull() jsonmatch.Predicate { return Each(IsNull()) }

// EachIsArray matches a JSON array whose elements are all arrays.
func EachIsArray() jsonmatch.Predicate { return Each(IsArray()) }

// EachIsObject matches a JSON array whose elements are all objects.
func EachIsObject() jsonmatch.Predicate { return Each(IsObject()) }
