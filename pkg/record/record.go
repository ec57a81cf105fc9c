// Package record defines the normalized record model shared by the
// discrepancy pipeline: an ordered field/value mapping produced from one
// source row, and a unique-key index of such records.
//
// Records preserve field insertion order so report headers are reproducible,
// while value comparison is order-insensitive. All values are normalized
// strings; the composite primary key lives under the reserved KeyField name.
package record

import (
	"maps"
	"strings"
)

// KeyField is the reserved field name holding the composite primary key.
const KeyField = "primary_key"

// Normalize standardizes a raw value: lowercased with leading and trailing
// whitespace removed. Every value stored in a Record has this form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Record is an ordered mapping from standard field name to normalized value.
type Record struct {
	fields []string
	values map[string]string
}

// New creates an empty record.
func New() *Record {
	return &Record{
		values: make(map[string]string),
	}
}

// Set stores value under field. A new field is appended to the field order;
// setting an existing field overwrites its value in place.
func (r *Record) Set(field, value string) {
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Get returns the value stored under field and whether it is present.
func (r *Record) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether field is present.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Key returns the composite primary key, or "" when the record has none.
func (r *Record) Key() string {
	return r.values[KeyField]
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Equal reports whether two records carry exactly the same fields with the
// same values. Field order does not participate in equality.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	return maps.Equal(r.values, other.values)
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	c := &Record{
		fields: make([]string, len(r.fields)),
		values: make(map[string]string, len(r.values)),
	}
	copy(c.fields, r.fields)
	maps.Copy(c.values, r.values)
	return c
}
