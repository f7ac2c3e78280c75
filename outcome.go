package jsonmatch

import (
	"fmt"
	"strings"
)

// Fragment is one path-qualified explanation of a mismatch.
type Fragment struct {
	Path    Path
	Message string
}

func (f Fragment) String() string {
	if f.Path.IsRoot() {
		return f.Message
	}
	return f.Path.String() + ": " + f.Message
}

// Outcome is the result of one match invocation: the verdict plus, on
// failure, the ordered explanation fragments collected along the way. It is
// produced fresh per invocation and never shared.
type Outcome struct {
	Matched   bool
	Fragments []Fragment
}

// Success returns a matched outcome with no fragments.
func Success() Outcome { return Outcome{Matched: true} }

// Failure returns an unmatched outcome with a single fragment at the given
// path.
func Failure(at Path, msg string) Outcome {
	return Outcome{Fragments: []Fragment{{Path: at, Message: msg}}}
}

// Failuref is Failure with fmt.Sprintf formatting.
func Failuref(at Path, format string, args ...any) Outcome {
	return Failure(at, fmt.Sprintf(format, args...))
}

// Merge folds another outcome into this one: the verdict is the conjunction
// and the fragments are appended in order. Fragments are never dropped.
func (o *Outcome) Merge(other Outcome) {
	o.Matched = o.Matched && other.Matched
	o.Fragments = append(o.Fragments, other.Fragments...)
}

// Add appends one fragment and marks the outcome unmatched.
func (o *Outcome) Add(at Path, msg string) {
	o.Matched = false
	o.Fragments = append(o.Fragments, Fragment{Path: at, Message: msg})
}

// Addf is Add with fmt.Sprintf formatting.
func (o *Outcome) Addf(at Path, format string, args ...any) {
	o.Add(at, fmt.Sprintf(format, args...))
}

// Report renders the aggregate failure report, one fragment per line, each
// prefixed with its rendered path. A successful match renders as the empty
// string.
func (o Outcome) Report() string {
	if len(o.Fragments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(o.Fragments))
	for _, f := range o.Fragments {
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}
