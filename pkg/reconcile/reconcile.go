// Package reconcile computes the discrepancy set between two normalized
// record indices: records present on only one side, and field-level
// differences between records the two sides share.
//
// Neither input index is mutated; matching runs against a cloned working
// copy of the right side. Keys are unique within an index by construction,
// so every key matches at most once.
package reconcile

import (
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

// Reconciler compares two record indices.
type Reconciler interface {
	// Reconcile returns the records unique to each side and a difference
	// entry for every shared key whose records disagree.
	Reconcile(left, right *record.Index) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	leftName  string
	rightName string
}

// New creates a Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	r := &reconciler{
		leftName:  options.leftName,
		rightName: options.rightName,
	}
	return r, nil
}

// Reconcile walks the left index in key order against a working copy of the
// right index. Matched pairs leave the working copy; whatever survives the
// pass is unique to the right side.
func (r *reconciler) Reconcile(left, right *record.Index) (*Result, error) {
	if left == nil || right == nil {
		return nil, &errors.ValidationError{
			Field:   "index",
			Message: "cannot be nil",
		}
	}

	result := NewResult()
	working := right.Clone()

	for _, rec := range left.Records() {
		match, ok := working.Remove(rec.Key())
		if !ok {
			result.ExtraLeft = append(result.ExtraLeft, rec)
			continue
		}
		if rec.Equal(match) {
			continue
		}

		diff, err := Difference(rec, match, r.leftName, r.rightName)
		if err != nil {
			return nil, err
		}
		result.Differences = append(result.Differences, diff)
	}

	result.ExtraRight = working.Records()

	return result, nil
}
