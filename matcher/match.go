package matcher

import "github.com/chege/jsonmatch"

// The entry points below are the engine's interface to pattern-building
// layers: each takes a fully constructed pattern and a value and returns a
// fresh Outcome. They are thin wrappers that run the corresponding
// predicate from the root path.

// MatchObject matches v against a field-name -> predicate mapping, strict
// or relaxed (see Object).
func MatchObject(fields map[string]jsonmatch.Predicate, strict bool, v jsonmatch.Value) jsonmatch.Outcome {
	return Object(fields, strict).Match(v, jsonmatch.RootPath())
}

// MatchArrayOrdered matches v element-wise, in order, against preds.
func MatchArrayOrdered(preds []jsonmatch.Predicate, v jsonmatch.Value) jsonmatch.Outcome {
	return ElementsAre(preds...).Match(v, jsonmatch.RootPath())
}

// MatchArrayUnorderedExact matches v against preds requiring a 1:1
// correspondence in any order.
func MatchArrayUnorderedExact(preds []jsonmatch.Predicate, v jsonmatch.Value) jsonmatch.Outcome {
	return UnorderedElementsAre(preds...).Match(v, jsonmatch.RootPath())
}

// MatchArrayContainsEach matches v requiring a distinct element for every
// predicate, extras allowed.
func MatchArrayContainsEach(preds []jsonmatch.Predicate, v jsonmatch.Value) jsonmatch.Outcome {
	return ContainsEach(preds...).Match(v, jsonmatch.RootPath())
}

// MatchArrayIsContainedIn matches v requiring a distinct predicate for
// every element, surplus predicates allowed.
func MatchArrayIsContainedIn(preds []jsonmatch.Predicate, v jsonmatch.Value) jsonmatch.Outcome {
	return IsContainedIn(preds...).Match(v, jsonmatch.RootPath())
}

// MatchLeaf evaluates a single predicate against v from the root path.
func MatchLeaf(pred jsonmatch.Predicate, v jsonmatch.Value) jsonmatch.Outcome {
	return pred.Match(v, jsonmatch.RootPath())
}
