package reconcile

import (
	"fmt"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

// SameMarker replaces the second source's value in a difference entry when
// the two sources agree on a field, so disagreements stand out.
const SameMarker = "*same*"

// Difference builds the field-by-field comparison record for two records
// sharing a composite key. The entry carries the key first, then one column
// pair per non-key field of rec1 in rec1's field order: the field labeled
// with name1 holds rec1's value, the field labeled with name2 holds rec2's
// value or SameMarker.
//
// Records with different keys must never reach this function; that is a
// KeyMismatchError. A field of rec1 missing from rec2 is a
// SchemaMismatchError.
func Difference(rec1, rec2 *record.Record, name1, name2 string) (*record.Record, error) {
	if rec1.Key() != rec2.Key() {
		return nil, errors.NewKeyMismatchError(rec1.Key(), rec2.Key())
	}

	diff := record.New()
	diff.Set(record.KeyField, rec1.Key())

	for _, field := range rec1.Fields() {
		if field == record.KeyField {
			continue
		}

		v1, _ := rec1.Get(field)
		v2, ok := rec2.Get(field)
		if !ok {
			return nil, errors.NewSchemaMismatchError(field, name2)
		}

		diff.Set(fmt.Sprintf("%s-[%s]", field, name1), v1)
		if v1 == v2 {
			diff.Set(fmt.Sprintf("%s-[%s]", field, name2), SameMarker)
		} else {
			diff.Set(fmt.Sprintf("%s-[%s]", field, name2), v2)
		}
	}

	return diff, nil
}
