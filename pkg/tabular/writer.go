package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/constants"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
)

// WriteRecords writes records as one delimited table: a header row taken
// from the first record's field order, then one row per record. A record
// missing a header field contributes an empty cell; a record carrying a
// field outside the header is a FormatError, since every collection written
// here must be uniform in shape. Writing nothing is ErrNoRecords; callers
// decide that empty collections produce no file at all.
func WriteRecords(w io.Writer, recs []*record.Record, d Dialect) error {
	if len(recs) == 0 {
		return errors.ErrNoRecords
	}

	cw := csv.NewWriter(w)
	cw.Comma = d.Delimiter
	if cw.Comma == 0 {
		cw.Comma = constants.DefaultDelimiter
	}

	header := recs[0].Fields()
	known := make(map[string]struct{}, len(header))
	for _, field := range header {
		known[field] = struct{}{}
	}

	if err := cw.Write(header); err != nil {
		return errors.WrapIO("write", "", err)
	}

	for i, rec := range recs {
		for _, field := range rec.Fields() {
			if _, ok := known[field]; !ok {
				return errors.NewFormatError("", i+2, fmt.Sprintf("field %q not in header", field))
			}
		}

		row := make([]string, len(header))
		for j, field := range header {
			row[j], _ = rec.Get(field)
		}
		if err := cw.Write(row); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}

	cw.Flush()
	return errors.WrapIO("flush", "", cw.Error())
}
