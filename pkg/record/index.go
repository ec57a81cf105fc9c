package record

import (
	"sort"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
)

// Index maps composite primary keys to records. At most one record per key
// may occupy the index at any time; Add rejects collisions so the invariant
// holds by construction.
type Index struct {
	records map[string]*Record
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		records: make(map[string]*Record),
	}
}

// Add inserts rec under its composite key. An empty key or a key already
// present is an error; the index is unchanged on failure.
func (ix *Index) Add(rec *Record) error {
	key := rec.Key()
	if key == "" {
		return errors.NewValidationError(KeyField, key, "record has no composite key")
	}
	if _, exists := ix.records[key]; exists {
		return errors.NewDuplicateKeyError("", key)
	}
	ix.records[key] = rec
	return nil
}

// Get returns the record stored under key and whether it is present.
func (ix *Index) Get(key string) (*Record, bool) {
	rec, ok := ix.records[key]
	return rec, ok
}

// Has reports whether key is present.
func (ix *Index) Has(key string) bool {
	_, ok := ix.records[key]
	return ok
}

// Remove deletes and returns the record stored under key. The boolean is
// false when the key is absent.
func (ix *Index) Remove(key string) (*Record, bool) {
	rec, ok := ix.records[key]
	if ok {
		delete(ix.records, key)
	}
	return rec, ok
}

// Len returns the number of records in the index.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Keys returns all composite keys in ascending order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.records))
	for key := range ix.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Records returns all records sorted by composite key.
func (ix *Index) Records() []*Record {
	recs := make([]*Record, 0, len(ix.records))
	for _, key := range ix.Keys() {
		recs = append(recs, ix.records[key])
	}
	return recs
}

// Clone returns a new index holding the same records. The records themselves
// are shared: cloning supports destructive matching over a working set, not
// record mutation.
func (ix *Index) Clone() *Index {
	c := NewIndex()
	for key, rec := range ix.records {
		c.records[key] = rec
	}
	return c
}
