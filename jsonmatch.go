// Package jsonmatch holds the shared value model for structural matching of
// JSON-like data in test assertions: the Value tree, path addressing, the
// Predicate capability, and the Outcome type that carries match verdicts and
// path-qualified explanations.
//
// The matchers themselves live in the matcher subpackage.
package jsonmatch

// Predicate is the single capability every matcher implements: evaluate a
// Value at a given Path and report the verdict together with any explanation
// fragments scoped to that Path. Container matchers (objects, arrays) are
// themselves Predicates over their children's Predicates, so patterns nest
// to arbitrary depth.
type Predicate interface {
	Match(v Value, at Path) Outcome

	// Describe names the condition the predicate checks, e.g. "a JSON
	// string" or `a string equal to "admin"`. Array diagnostics use it to refer
	// to predicates that could not be assigned to any element.
	Describe() string
}
