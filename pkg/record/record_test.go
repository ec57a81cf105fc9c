package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Bond", "bond"},
		{"trims edges", "  007  ", "007"},
		{"both", "  James BOND ", "james bond"},
		{"interior whitespace kept", "a  b", "a  b"},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
		{"tabs and newlines", "\tbond\n", "bond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Normalize(tt.input))
		})
	}
}

func TestRecordSetAndGet(t *testing.T) {
	r := record.New()
	r.Set(record.KeyField, "007")
	r.Set("full_name", "bond")

	v, ok := r.Get("full_name")
	require.True(t, ok)
	assert.Equal(t, "bond", v)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, "007", r.Key())
	assert.True(t, r.Has(record.KeyField))
	assert.Equal(t, 2, r.Len())
}

func TestRecordFieldOrder(t *testing.T) {
	r := record.New()
	r.Set(record.KeyField, "1")
	r.Set("b", "x")
	r.Set("a", "y")
	assert.Equal(t, []string{record.KeyField, "b", "a"}, r.Fields())

	// Overwriting keeps the original position
	r.Set("b", "z")
	assert.Equal(t, []string{record.KeyField, "b", "a"}, r.Fields())
	v, _ := r.Get("b")
	assert.Equal(t, "z", v)
}

func TestRecordEqual(t *testing.T) {
	build := func(pairs ...string) *record.Record {
		r := record.New()
		for i := 0; i+1 < len(pairs); i += 2 {
			r.Set(pairs[i], pairs[i+1])
		}
		return r
	}

	t.Run("identical", func(t *testing.T) {
		a := build(record.KeyField, "1", "name", "alice")
		b := build(record.KeyField, "1", "name", "alice")
		assert.True(t, a.Equal(b))
	})

	t.Run("order insensitive", func(t *testing.T) {
		a := build("name", "alice", record.KeyField, "1")
		b := build(record.KeyField, "1", "name", "alice")
		assert.True(t, a.Equal(b))
	})

	t.Run("different value", func(t *testing.T) {
		a := build(record.KeyField, "1", "name", "alice")
		b := build(record.KeyField, "1", "name", "bob")
		assert.False(t, a.Equal(b))
	})

	t.Run("different fields", func(t *testing.T) {
		a := build(record.KeyField, "1", "name", "alice")
		b := build(record.KeyField, "1", "status", "alice")
		assert.False(t, a.Equal(b))
	})

	t.Run("missing field", func(t *testing.T) {
		a := build(record.KeyField, "1", "name", "alice")
		b := build(record.KeyField, "1")
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	t.Run("nil other", func(t *testing.T) {
		a := build(record.KeyField, "1")
		assert.False(t, a.Equal(nil))
	})
}

func TestRecordClone(t *testing.T) {
	r := record.New()
	r.Set(record.KeyField, "9")
	r.Set("status", "active")

	c := r.Clone()
	require.True(t, r.Equal(c))
	assert.Equal(t, r.Fields(), c.Fields())

	// Mutating the clone leaves the original untouched
	c.Set("status", "closed")
	v, _ := r.Get("status")
	assert.Equal(t, "active", v)
	assert.False(t, r.Equal(c))
}

func TestRecordKeyMissing(t *testing.T) {
	r := record.New()
	r.Set("name", "ghost")
	assert.Equal(t, "", r.Key())
}
