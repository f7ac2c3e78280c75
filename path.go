package jsonmatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPathNotFound reports that a path does not resolve inside a value:
// descent through the wrong container kind, a missing field, or an
// out-of-range index. A correctly constructed pattern never lets this escape
// to users; if it surfaces it is a programming error, not a match failure.
var ErrPathNotFound = errors.New("path not found")

// ErrInvalidPath reports malformed dot-notation path text.
var ErrInvalidPath = errors.New("invalid path")

// Segment is one step of a Path: an object field name or an array index.
type Segment struct {
	field string
	index int
	isKey bool
}

// FieldSeg returns an object-descent segment.
func FieldSeg(name string) Segment { return Segment{field: name, isKey: true} }

// IndexSeg returns an array-descent segment.
func IndexSeg(i int) Segment { return Segment{index: i} }

// IsField reports whether the segment descends into an object.
func (s Segment) IsField() bool { return s.isKey }

// FieldName returns the field name of an object-descent segment.
func (s Segment) FieldName() string { return s.field }

// Index returns the index of an array-descent segment.
func (s Segment) Index() int { return s.index }

// Path addresses a location in a Value tree by sequential descent from the
// root. The root path is empty. Paths render in the dotted/bracketed format
// diagnostics depend on: each object descent appends ".<field>" (without the
// leading dot for the first segment) and each array descent appends
// "[<index>]", e.g. "user.roles[2]".
type Path struct {
	segs []Segment
}

// RootPath returns the empty path addressing the whole value.
func RootPath() Path { return Path{} }

// NewPath builds a path from the given segments.
func NewPath(segs ...Segment) Path {
	return Path{segs: append([]Segment(nil), segs...)}
}

// IsRoot reports whether the path is empty.
func (p Path) IsRoot() bool { return len(p.segs) == 0 }

// Segments returns the segments of the path. The slice is shared; callers
// must not modify it.
func (p Path) Segments() []Segment { return p.segs }

// Field returns a new path extended by an object descent. The receiver is
// unchanged and the result does not alias its backing storage.
func (p Path) Field(name string) Path { return p.extend(FieldSeg(name)) }

// Index returns a new path extended by an array descent.
func (p Path) Index(i int) Path { return p.extend(IndexSeg(i)) }

// Join returns a new path extended by every segment of q.
func (p Path) Join(q Path) Path {
	segs := make([]Segment, 0, len(p.segs)+len(q.segs))
	segs = append(segs, p.segs...)
	segs = append(segs, q.segs...)
	return Path{segs: segs}
}

func (p Path) extend(s Segment) Path {
	segs := make([]Segment, 0, len(p.segs)+1)
	segs = append(segs, p.segs...)
	segs = append(segs, s)
	return Path{segs: segs}
}

// String renders the path in the dotted/bracketed diagnostic format. The
// root path renders as the empty string.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p.segs {
		if s.isKey {
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.field)
		} else {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Dotted renders the path in pure dot notation ("items.0.id"), with dots and
// backslashes inside field names escaped. This is the notation ParsePath
// accepts and the path-set matchers report with.
func (p Path) Dotted() string {
	parts := make([]string, 0, len(p.segs))
	for _, s := range p.segs {
		if s.isKey {
			parts = append(parts, escapeField(s.field))
		} else {
			parts = append(parts, strconv.Itoa(s.index))
		}
	}
	return strings.Join(parts, ".")
}

func escapeField(field string) string {
	var sb strings.Builder
	for _, ch := range field {
		if ch == '.' || ch == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// ParsePath parses dot-notation path text into a Path. Purely numeric
// segments become array indices; "\." escapes a literal dot inside a field
// name and "\\" a literal backslash. Empty segments and trailing escapes are
// rejected with an ErrInvalidPath-wrapped error.
func ParsePath(text string) (Path, error) {
	var segs []Segment
	var current strings.Builder
	escaped := false
	flush := func() error {
		if current.Len() == 0 {
			return fmt.Errorf("%w %q: empty segment", ErrInvalidPath, text)
		}
		seg := current.String()
		current.Reset()
		if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 {
			segs = append(segs, IndexSeg(idx))
		} else {
			segs = append(segs, FieldSeg(seg))
		}
		return nil
	}
	for _, ch := range text {
		switch {
		case escaped:
			current.WriteRune(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '.':
			if err := flush(); err != nil {
				return Path{}, err
			}
		default:
			current.WriteRune(ch)
		}
	}
	if escaped {
		return Path{}, fmt.Errorf("%w %q: trailing escape", ErrInvalidPath, text)
	}
	if err := flush(); err != nil {
		return Path{}, err
	}
	return Path{segs: segs}, nil
}

// ResolvePath walks the path from the root of v and returns the sub-value it
// addresses, or an ErrPathNotFound-wrapped error naming the first segment
// that does not exist.
func ResolvePath(v Value, p Path) (Value, error) {
	cur := v
	for i, seg := range p.segs {
		at := Path{segs: p.segs[:i+1]}
		if seg.isKey {
			if cur.Kind() != KindObject {
				return Value{}, fmt.Errorf("%w: %s: cannot descend into %s by field", ErrPathNotFound, at, cur.Kind())
			}
			fv, ok := cur.FieldValue(seg.field)
			if !ok {
				return Value{}, fmt.Errorf("%w: %s: no such field", ErrPathNotFound, at)
			}
			cur = fv
		} else {
			if cur.Kind() != KindArray {
				return Value{}, fmt.Errorf("%w: %s: cannot descend into %s by index", ErrPathNotFound, at, cur.Kind())
			}
			elems := cur.Elems()
			if seg.index < 0 || seg.index >= len(elems) {
				return Value{}, fmt.Errorf("%w: %s: index out of range (length %d)", ErrPathNotFound, at, len(elems))
			}
			cur = elems[seg.index]
		}
	}
	return cur, nil
}

// CollectPaths enumerates every non-root path reachable in the value tree,
// in depth-first order.
func CollectPaths(v Value) []Path {
	var out []Path
	collectPathsInner(v, RootPath(), &out)
	return out
}

func collectPathsInner(v Value, at Path, out *[]Path) {
	if !at.IsRoot() {
		*out = append(*out, at)
	}
	switch v.Kind() {
	case KindObject:
		for _, k := range v.Keys() {
			fv, _ := v.FieldValue(k)
			collectPathsInner(fv, at.Field(k), out)
		}
	case KindArray:
		for i, el := range v.Elems() {
			collectPathsInner(el, at.Index(i), out)
		}
	}
}
