package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chege/jsonmatch"
)

func strArray(elems ...string) jsonmatch.Value {
	vals := make([]jsonmatch.Value, len(elems))
	for i, s := range elems {
		vals[i] = jsonmatch.String(s)
	}
	return jsonmatch.ArrayOf(vals...)
}

func TestOrderedMatch(t *testing.T) {
	preds := []jsonmatch.Predicate{EqString("a"), EqString("b")}

	out := MatchArrayOrdered(preds, strArray("a", "b"))
	assert.True(t, out.Matched)

	// Swapping the values without swapping the predicates must fail.
	out = MatchArrayOrdered(preds, strArray("b", "a"))
	assert.False(t, out.Matched)
}

func TestOrderedFailsFastAtFirstMismatch(t *testing.T) {
	out := MatchArrayOrdered(
		[]jsonmatch.Predicate{EqString("a"), EqString("b"), EqString("c")},
		strArray("x", "y", "z"),
	)
	require.False(t, out.Matched)
	// Only the first mismatching index is reported.
	require.Len(t, out.Fragments, 1)
	assert.Equal(t, "[0]", out.Fragments[0].Path.String())
}

func TestOrderedLengthMismatch(t *testing.T) {
	out := MatchArrayOrdered([]jsonmatch.Predicate{EqString("a")}, strArray("a", "b"))
	require.False(t, out.Matched)
	require.Len(t, out.Fragments, 1)
	assert.Equal(t, "expected an array of length 1, got 2", out.Fragments[0].Message)
}

func TestOrderedEmpty(t *testing.T) {
	assert.True(t, MatchArrayOrdered(nil, strArray()).Matched)
	assert.False(t, MatchArrayOrdered(nil, strArray("x")).Matched)
}

func TestOrderedKindMismatch(t *testing.T) {
	out := MatchArrayOrdered([]jsonmatch.Predicate{IsString()}, jsonmatch.String("not-an-array"))
	require.False(t, out.Matched)
	assert.Contains(t, out.Report(), "expected a JSON array")
}

func permutations(elems []string) [][]string {
	if len(elems) <= 1 {
		return [][]string{append([]string(nil), elems...)}
	}
	var out [][]string
	for i := range elems {
		rest := make([]string, 0, len(elems)-1)
		rest = append(rest, elems[:i]...)
		rest = append(rest, elems[i+1:]...)
		for _, tail := range permutations(rest) {
			out = append(out, append([]string{elems[i]}, tail...))
		}
	}
	return out
}

func TestUnorderedExactPermutationInvariant(t *testing.T) {
	preds := []jsonmatch.Predicate{EqString("a"), StringHasPrefix("b"), EqString("c")}
	for _, perm := range permutations([]string{"a", "bee", "c"}) {
		out := MatchArrayUnorderedExact(preds, strArray(perm...))
		assert.True(t, out.Matched, "permutation %v", perm)
	}
	for _, perm := range permutations([]string{"a", "x", "c"}) {
		out := MatchArrayUnorderedExact(preds, strArray(perm...))
		assert.False(t, out.Matched, "permutation %v", perm)
	}
}

func TestUnorderedExactLengthMismatch(t *testing.T) {
	out := MatchArrayUnorderedExact(
		[]jsonmatch.Predicate{EqString("a"), EqString("b")},
		strArray("a"),
	)
	require.False(t, out.Matched)
	require.Len(t, out.Fragments, 1)
	assert.Equal(t, "expected an array of length 2, got 1", out.Fragments[0].Message)
}

func TestUnorderedExactDuplicatesConsumeDistinctElements(t *testing.T) {
	preds := []jsonmatch.Predicate{EqString("x"), EqString("x"), EqString("x")}
	assert.True(t, MatchArrayUnorderedExact(preds, strArray("x", "x", "x")).Matched)
	assert.False(t, MatchArrayUnorderedExact(preds, strArray("x", "y", "x")).Matched)
}

func TestUnorderedExactReportsBothSides(t *testing.T) {
	out := MatchArrayUnorderedExact(
		[]jsonmatch.Predicate{EqString("a"), EqString("b")},
		strArray("a", "z"),
	)
	require.False(t, out.Matched)

	report := out.Report()
	assert.Contains(t, report, `no element matches expected predicate #1 (a string equal to "b")`)
	assert.Contains(t, report, `[1]: element "z" did not match any predicate`)
	assert.Contains(t, report, "best matching covers 1 of the 2 required pairs")
}

func TestContainsEach(t *testing.T) {
	admin := EqString("admin")
	tester := EqString("tester")
	roles := strArray("admin", "user", "tester", "viewer")

	out := MatchArrayContainsEach([]jsonmatch.Predicate{admin, tester}, roles)
	assert.True(t, out.Matched)

	missing := EqString("missing")
	out = MatchArrayContainsEach([]jsonmatch.Predicate{admin, missing}, roles)
	require.False(t, out.Matched)

	var unmatchedPreds []string
	for _, f := range out.Fragments {
		if strings.Contains(f.Message, "no element matches expected predicate") {
			unmatchedPreds = append(unmatchedPreds, f.Message)
		}
	}
	require.Len(t, unmatchedPreds, 1)
	assert.Contains(t, unmatchedPreds[0], `a string equal to "missing"`)
	// Surplus elements are allowed by this strategy, so none are reported.
	for _, f := range out.Fragments {
		assert.NotContains(t, f.Message, "did not match any predicate")
	}
}

func TestContainsEachNeedsDistinctElements(t *testing.T) {
	preds := []jsonmatch.Predicate{EqString("x"), EqString("x"), EqString("x")}
	out := MatchArrayContainsEach(preds, strArray("x", "x"))
	require.False(t, out.Matched)
	assert.Contains(t, out.Report(), "at least 3")
}

func TestContainsEachTooSmall(t *testing.T) {
	out := MatchArrayContainsEach(
		[]jsonmatch.Predicate{EqString("a"), EqString("b")},
		strArray("a"),
	)
	require.False(t, out.Matched)
	require.Len(t, out.Fragments, 1)
	assert.Equal(t, "expected an array of at least 2 elements, got 1", out.Fragments[0].Message)
}

func TestIsContainedIn(t *testing.T) {
	pa, pb, pc, pd := EqString("a"), EqString("b"), EqString("c"), EqString("d")

	out := MatchArrayIsContainedIn(
		[]jsonmatch.Predicate{pa, pb, pc, pd},
		strArray("a", "b", "c"),
	)
	assert.True(t, out.Matched)

	// Without a predicate for "b" the element has nowhere to go.
	out = MatchArrayIsContainedIn(
		[]jsonmatch.Predicate{pa, pc, pd},
		strArray("a", "b", "c"),
	)
	require.False(t, out.Matched)

	var unmatchedElems []jsonmatch.Fragment
	for _, f := range out.Fragments {
		if strings.Contains(f.Message, "did not match any predicate") {
			unmatchedElems = append(unmatchedElems, f)
		}
	}
	require.Len(t, unmatchedElems, 1)
	assert.Equal(t, "[1]", unmatchedElems[0].Path.String())
	assert.Contains(t, unmatchedElems[0].Message, `"b"`)
}

func TestIsContainedInTooLarge(t *testing.T) {
	out := MatchArrayIsContainedIn(
		[]jsonmatch.Predicate{EqString("a")},
		strArray("a", "b"),
	)
	require.False(t, out.Matched)
	require.Len(t, out.Fragments, 1)
	assert.Equal(t, "expected an array of at most 1 elements, got 2", out.Fragments[0].Message)
}

func TestUnorderedNestedPredicates(t *testing.T) {
	preds := []jsonmatch.Predicate{
		Object(map[string]jsonmatch.Predicate{"id": Eq(jsonmatch.Int(1))}, false),
		Object(map[string]jsonmatch.Predicate{"id": Eq(jsonmatch.Int(2))}, false),
	}
	actual := jsonmatch.MustFromGo([]any{
		map[string]any{"id": 2, "name": "two"},
		map[string]any{"id": 1, "name": "one"},
	})
	assert.True(t, MatchArrayUnorderedExact(preds, actual).Matched)
}

func TestLen(t *testing.T) {
	mustMatch(t, Len(3), strArray("a", "b", "c"))
	mustNotMatch(t, Len(2), strArray("a"))
	mustNotMatch(t, Len(0), jsonmatch.String(""))

	atLeast := LenThat("is at least 2", func(n int) bool { return n >= 2 })
	mustMatch(t, atLeast, strArray("a", "b", "c"))
	mustNotMatch(t, atLeast, strArray("a"))
}

func TestEachCollectsAllFailures(t *testing.T) {
	out := MatchLeaf(Each(IsString()), jsonmatch.MustFromGo([]any{"a", 1, "b", true}))
	require.False(t, out.Matched)
	require.Len(t, out.Fragments, 2)
	assert.Equal(t, "[1]", out.Fragments[0].Path.String())
	assert.Equal(t, "[3]", out.Fragments[1].Path.String())
}

func TestEachIsKind(t *testing.T) {
	mustMatch(t, EachIsString(), strArray("a", "b"))
	mustNotMatch(t, EachIsString(), jsonmatch.MustFromGo([]any{"a", 1}))

	mustMatch(t, EachIsNumber(), jsonmatch.MustFromGo([]any{1, 2.5}))
	mustMatch(t, EachIsNull(), jsonmatch.ArrayOf(jsonmatch.Null()))
	mustMatch(t, EachIsBool(), jsonmatch.ArrayOf(jsonmatch.Bool(true)))
	mustMatch(t, EachIsArray(), jsonmatch.ArrayOf(jsonmatch.ArrayOf()))
	mustMatch(t, EachIsObject(), jsonmatch.ArrayOf(jsonmatch.ObjectOf()))

	// Vacuously true on the empty array.
	mustMatch(t, EachIsString(), strArray())
}
