package matcher

import (
	"sort"
	"strings"

	"github.com/chege/jsonmatch"
)

// objectPattern matches a JSON object against a field-name -> predicate
// mapping. In strict mode the actual object's key set must equal the
// pattern's exactly; in relaxed mode surplus actual fields are ignored.
// Mismatches are collected across all fields, never short-circuited, so one
// report shows every offending field at once.
type objectPattern struct {
	names  []string // pattern field names, sorted for deterministic output
	fields map[string]jsonmatch.Predicate
	strict bool
}

// Object builds the object pattern predicate. The fields map is copied.
func Object(fields map[string]jsonmatch.Predicate, strict bool) jsonmatch.Predicate {
	names := make([]string, 0, len(fields))
	copied := make(map[string]jsonmatch.Predicate, len(fields))
	for name, pred := range fields {
		names = append(names, name)
		copied[name] = pred
	}
	sort.Strings(names)
	return objectPattern{names: names, fields: copied, strict: strict}
}

func (m objectPattern) Describe() string {
	var sb strings.Builder
	sb.WriteString("a JSON object with fields {")
	for i, name := range m.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
	}
	sb.WriteString("}")
	if m.strict {
		sb.WriteString(" and no others")
	}
	return sb.String()
}

func (m objectPattern) Match(v jsonmatch.Value, at jsonmatch.Path) jsonmatch.Outcome {
	if v.Kind() != jsonmatch.KindObject {
		return jsonmatch.Failuref(at, "expected a JSON object, got %s", describeValue(v))
	}
	out := jsonmatch.Success()
	for _, name := range m.names {
		pred := m.fields[name]
		fv, ok := v.FieldValue(name)
		if !ok {
			out.Addf(at.Field(name), "missing field (expected %s)", pred.Describe())
			continue
		}
		out.Merge(pred.Match(fv, at.Field(name)))
	}
	if m.strict {
		for _, key := range v.Keys() {
			if _, declared := m.fields[key]; declared {
				continue
			}
			fv, _ := v.FieldValue(key)
			out.Addf(at.Field(key), "unexpected field present (value %s)", fv)
		}
	}
	return out
}
