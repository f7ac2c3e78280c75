package matcher

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	ac "github.com/petar-dambovaliev/aho-corasick"

	"github.com/chege/jsonmatch"
)

// EqString matches a JSON string equal to want, case sensitively.
func EqString(want string) jsonmatch.Predicate {
	return StringThat(fmt.Sprintf("a string equal to %q", want), func(s string) bool {
		return s == want
	})
}

// EqStringFold matches a JSON string equal to want under Unicode case
// folding.
func EqStringFold(want string) jsonmatch.Predicate {
	return StringThat(fmt.Sprintf("a string equal to %q ignoring case", want), func(s string) bool {
		return strings.EqualFold(s, want)
	})
}

// StringContains matches a JSON string containing sub.
func StringContains(sub string) jsonmatch.Predicate {
	return StringThat(fmt.Sprintf("a string containing %q", sub), func(s string) bool {
		return strings.Contains(s, sub)
	})
}

// StringContainsFold is StringContains under Unicode case folding.
func StringContainsFold(sub string) jsonmatch.Predicate {
	folded := strings.ToLower(sub)
	return StringThat(fmt.Sprintf("a string containing %q ignoring case", sub), func(s string) bool {
		return strings.Contains(strings.ToLower(s), folded)
	})
}

// StringHasPrefix matches a JSON string starting with prefix.
func StringHasPrefix(prefix string) jsonmatch.Predicate {
	return StringThat(fmt.Sprintf("a string starting with %q", prefix), func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

// StringHasSuffix matches a JSON string ending with suffix.
func StringHasSuffix(suffix string) jsonmatch.Predicate {
	return StringThat(fmt.Sprintf("a string ending with %q", suffix), func(s string) bool {
		return strings.HasSuffix(s, suffix)
	})
}

// StringHasPrefixFold is StringHasPrefix under Unicode case folding.
func StringHasPrefixFold(prefix string) jsonmatch.Predicate {
	folded := strings.ToLower(prefix)
	return StringThat(fmt.Sprintf("a string starting with %q ignoring case", prefix), func(s string) bool {
		return strings.HasPrefix(strings.ToLower(s), folded)
	})
}

// StringHasSuffixFold is StringHasSuffix under Unicode case folding.
func StringHasSuffixFold(suffix string) jsonmatch.Predicate {
	folded := strings.ToLower(suffix)
	return StringThat(fmt.Sprintf("a string ending with %q ignoring case", suffix), func(s string) bool {
		return strings.HasSuffix(strings.ToLower(s), folded)
	})
}

var regexCache sync.Map // map[string]*regexp.Regexp

func getCachedRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	actual, _ := regexCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// StringMatches matches a JSON string against the given regular expression.
// Compiled patterns are cached process-wide. An invalid pattern makes the
// predicate fail every match with the compile error instead of panicking.
func StringMatches(pattern string) jsonmatch.Predicate {
	re, err := getCachedRegex(pattern)
	if err != nil {
		return brokenPredicate{msg: fmt.Sprintf("unusable regular expression %q: %v", pattern, err)}
	}
	return StringThat(fmt.Sprintf("a string matching regex %q", pattern), re.MatchString)
}

// SubstringSetOptions configures the multi-substring matchers.
type SubstringSetOptions struct {
	// CaseInsensitive enables ASCII case-insensitive matching in the
	// automaton.
	CaseInsensitive bool
	// MinLength drops needles shorter than this before building the
	// automaton.
	MinLength int
}

// DefaultSubstringSetOptions returns the settings used by ContainsAnyOf and
// ContainsAllOf.
func DefaultSubstringSetOptions() SubstringSetOptions {
	return SubstringSetOptions{CaseInsensitive: false, MinLength: 1}
}

// substringSet compiles a needle list into an Aho-Corasick automaton once,
// at predicate construction time.
type substringSet struct {
	needles   []string
	automaton *ac.AhoCorasick // nil when no needles survive the options
	opts      SubstringSetOptions
}

func newSubstringSet(opts SubstringSetOptions, needles []string) substringSet {
	dedupe := make(map[string]struct{}, len(needles))
	kept := make([]string, 0, len(needles))
	for _, n := range needles {
		if len(n) < opts.MinLength {
			continue
		}
		key := n
		if opts.CaseInsensitive {
			key = strings.ToLower(n)
		}
		if _, ok := dedupe[key]; ok {
			continue
		}
		dedupe[key] = struct{}{}
		kept = append(kept, n)
	}
	var automaton *ac.AhoCorasick
	if len(kept) > 0 {
		builder := ac.NewAhoCorasickBuilder(ac.Opts{
			AsciiCaseInsensitive: opts.CaseInsensitive,
			MatchKind:            ac.LeftMostLongestMatch,
		})
		built := builder.Build(kept)
		automaton = &built
	}
	return substringSet{needles: kept, automaton: automaton, opts: opts}
}

func (ss substringSet) hasAny(text string) bool {
	if ss.automaton == nil {
		return false
	}
	return len(ss.automaton.FindAll(text)) > 0
}

// missing returns the needles with no occurrence in text. Leftmost-longest
// automaton matches can shadow needles nested inside longer ones, so any
// needle the scan did not report is re-checked directly.
func (ss substringSet) missing(text string) []string {
	if ss.automaton == nil {
		return nil
	}
	found := make([]bool, len(ss.needles))
	for _, m := range ss.automaton.FindAll(text) {
		if idx := m.Pattern(); idx >= 0 && idx < len(found) {
			found[idx] = true
		}
	}
	var out []string
	for i, n := range ss.needles {
		if found[i] {
			continue
		}
		if ss.opts.CaseInsensitive {
			if strings.Contains(strings.ToLower(text), strings.ToLower(n)) {
				continue
			}
		} else if strings.Contains(text, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ContainsAnyOf matches a JSON string containing at least one of the given
// substrings.
func ContainsAnyOf(subs ...string) jsonmatch.Predicate {
	return ContainsAnyOfWith(DefaultSubstringSetOptions(), subs...)
}

// ContainsAnyOfWith is ContainsAnyOf with explicit options.
func ContainsAnyOfWith(opts SubstringSetOptions, subs ...string) jsonmatch.Predicate {
	ss := newSubstringSet(opts, subs)
	return StringThat(fmt.Sprintf("a string containing any of %q", ss.needles), ss.hasAny)
}

// ContainsAllOf matches a JSON string containing every one of the given
// substrings.
func ContainsAllOf(subs ...string) jsonmatch.Predicate {
	return ContainsAllOfWith(DefaultSubstringSetOptions(), subs...)
}

// ContainsAllOfWith is ContainsAllOf with explicit options.
func ContainsAllOfWith(opts SubstringSetOptions, subs ...string) jsonmatch.Predicate {
	ss := newSubstringSet(opts, subs)
	return StringThat(fmt.Sprintf("a string containing all of %q", ss.needles), func(s string) bool {
		return len(ss.missing(s)) == 0
	})
}
