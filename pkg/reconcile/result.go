package reconcile

import (
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

// Result represents the outcome of reconciling two record indices. All
// three lists are ordered by composite key.
type Result struct {
	// ExtraLeft holds records whose keys appear only in the left index.
	ExtraLeft []*record.Record

	// ExtraRight holds records whose keys appear only in the right index.
	ExtraRight []*record.Record

	// Differences holds one entry per shared key whose records disagree
	// on at least one field.
	Differences []*record.Record
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{
		ExtraLeft:   []*record.Record{},
		ExtraRight:  []*record.Record{},
		Differences: []*record.Record{},
	}
}

// HasDiscrepancies reports whether any list is non-empty.
func (r *Result) HasDiscrepancies() bool {
	return len(r.ExtraLeft) > 0 || len(r.ExtraRight) > 0 || len(r.Differences) > 0
}
