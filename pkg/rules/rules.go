// Package rules loads and models the three rule files that configure a
// comparison run: the field-name mapping, the value translation table, and
// the row filters. Loaders return plain lookup structures and have no side
// effects; callers own logging and error surfacing.
package rules

import (
	"sort"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

// Mapping maps a raw source field name to its standard field name. The raw
// names are unique by construction; several raw names may map to the same
// standard name.
type Mapping map[string]string

// Standard returns the standard name for a raw source field and whether the
// field is mapped at all.
func (m Mapping) Standard(raw string) (string, bool) {
	std, ok := m[raw]
	return std, ok
}

// HasStandard reports whether any raw field maps to the given standard name.
func (m Mapping) HasStandard(name string) bool {
	for _, std := range m {
		if std == name {
			return true
		}
	}
	return false
}

// Standards returns the distinct standard names in ascending order.
func (m Mapping) Standards() []string {
	seen := make(map[string]struct{}, len(m))
	for _, std := range m {
		seen[std] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for std := range seen {
		out = append(out, std)
	}
	sort.Strings(out)
	return out
}

// Translations maps a raw cell value to its replacement. Replacement happens
// before normalization; values without an entry pass through unchanged.
type Translations map[string]string

// Apply returns the replacement for raw, or raw itself when no translation
// exists.
func (t Translations) Apply(raw string) string {
	if replacement, ok := t[raw]; ok {
		return replacement
	}
	return raw
}

// Rule forbids one literal value in one standard field.
type Rule struct {
	Field string
	Value string
}

// Filters is the ordered rule list. Order is preserved from the rule file;
// evaluation is any-match, so order affects nothing observable.
type Filters []Rule

// Match reports whether any rule matches the record. Rules compare their
// literal value against the record's normalized value; a rule naming a field
// the record lacks matches nothing.
func (f Filters) Match(rec *record.Record) bool {
	for _, rule := range f {
		if v, ok := rec.Get(rule.Field); ok && v == rule.Value {
			return true
		}
	}
	return false
}
