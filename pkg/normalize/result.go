package normalize

import (
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

// Result represents the outcome of normalizing one tabular source.
type Result struct {
	// Index holds the surviving records, at most one per composite key.
	Index *record.Index

	// Keyless holds records whose key columns were all blank, in arrival
	// order.
	Keyless []*record.Record

	// Duplicates holds every record implicated in a key collision, sorted
	// by key with arrival order preserved within one key. The record that
	// first claimed a key follows the record that collided with it.
	Duplicates []*record.Record
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{
		Index:      record.NewIndex(),
		Keyless:    []*record.Record{},
		Duplicates: []*record.Record{},
	}
}

// Indexed returns the number of records that survived into the index.
func (r *Result) Indexed() int {
	return r.Index.Len()
}

// Quarantined returns the number of records routed to either quarantine
// list.
func (r *Result) Quarantined() int {
	return len(r.Keyless) + len(r.Duplicates)
}
