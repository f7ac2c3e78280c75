package matcher

import (
	"fmt"

	"github.com/chege/jsonmatch"
)

// parsedPathSet holds dot-notation paths parsed at predicate construction.
// Parse errors do not panic; they turn every match into a failure naming
// the bad paths.
type parsedPathSet struct {
	raw    []string
	parsed []jsonmatch.Path
	errs   []error
}

func parsePathSet(paths []string) parsedPathSet {
	set := parsedPathSet{raw: paths}
	for _, p := range paths {
		parsed, err := jsonmatch.ParsePath(p)
		if err != nil {
			set.errs = append(set.errs, err)
			continue
		}
		set.parsed = append(set.parsed, parsed)
	}
	return set
}

func (s parsedPathSet) failInvalid(out *jsonmatch.Outcome, at jsonmatch.Path) bool {
	for _, err := range s.errs {
		out.Addf(at, "%v", err)
	}
	return len(s.errs) > 0
}

// HasPaths matches a JSON object containing every one of the given
// dot-notation paths; extra paths are allowed.
func HasPaths(paths ...string) jsonmatch.Predicate {
	return pathSetMatcher{set: parsePathSet(paths), exact: false}
}

// HasOnlyPaths matches a JSON object whose path set is exactly the given
// one: nothing missing, nothing extra.
func HasOnlyPaths(paths ...string) jsonmatch.Predicate {
	return pathSetMatcher{set: parsePathSet(paths), exact: true}
}

type pathSetMatcher struct {
	set   parsedPathSet
	exact bool
}

func (m pathSetMatcher) Describe() string {
	if m.exact {
		return fmt.Sprintf("a JSON object with exactly the paths %q", m.set.raw)
	}
	return fmt.Sprintf("a JSON object containing the paths %q", m.set.raw)
}

func (m pathSetMatcher) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	out := jsonmatch.Success()
	if m.set.failInvalid(&out, at) {
		return out
	}
	if v.Kind() != jsonmatch.KindObject {
		return jsonmatch.Failuref(at, "expected a JSON object, got %s", describeValue(v))
	}

	actual := make(map[string]bool)
	for _, p := range jsonmatch.CollectPaths(v) {
		actual[p.Dotted()] = true
	}
	expected := make(map[string]bool, len(m.set.parsed))
	for _, p := range m.set.parsed {
		key := p.Dotted()
		expected[key] = true
		if !actual[key] {
			out.Addf(at, "missing path %q", key)
		}
	}
	if m.exact {
		for _, p := range jsonmatch.CollectPaths(v) {
			if key := p.Dotted(); !expected[key] {
				out.Addf(at, "unexpected path %q present", key)
			}
		}
	}
	return out
}

// HasPathWith matches a JSON value whose sub-value at the given
// dot-notation path satisfies pred.
func HasPathWith(path string, pred jsonmatch.Predicate) jsonmatch.Predicate {
	parsed, err := jsonmatch.ParsePath(path)
	return pathWithMatcher{raw: path, parsed: parsed, parseErr: err, pred: pred}
}

type pathWithMatcher struct {
	raw      string
	parsed   jsonmatch.Path
	parseErr error
	pred     jsonmatch.Predicate
}

func (m pathWithMatcher) Describe() string {
	return fmt.Sprintf("a value whose path %q holds %s", m.raw, m.pred.Describe())
}

func (m pathWithMatcher) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	if m.parseErr != nil {
		return jsonmatch.Failuref(at, "%v", m.parseErr)
	}
	sub, err := jsonmatch.ResolvePath(v, m.parsed)
	if err != nil {
		return jsonmatch.Failuref(at, "missing path %q: %v", m.raw, err)
	}
	return m.pred.Match(sub, at.Join(m.parsed))
}
