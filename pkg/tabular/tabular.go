// Package tabular reads and writes the delimited text files the pipeline
// consumes and produces. Reading yields a header row plus raw data rows;
// rows are never padded or truncated, so callers can detect rows too short
// for the columns they need. Writing derives the header from the first
// record's field order, keeping output byte-reproducible.
package tabular

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/constants"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
)

// Dialect describes how a delimited file is parsed.
type Dialect struct {
	// Delimiter separates fields within a row.
	Delimiter rune

	// TrimLeadingSpace ignores whitespace immediately following a delimiter,
	// for sources exported with a space after each separator.
	TrimLeadingSpace bool
}

// DefaultDialect returns the comma dialect with leading-space trimming.
func DefaultDialect() Dialect {
	return Dialect{
		Delimiter:        constants.DefaultDelimiter,
		TrimLeadingSpace: constants.DefaultTrimLeadingSpace,
	}
}

// Table is one parsed delimited file.
type Table struct {
	// Path is where the table was read from, used in error reporting.
	Path string

	// Header holds the first row of the file.
	Header []string

	// Rows holds every data row after the header, unpadded: a ragged source
	// yields rows of varying length.
	Rows [][]string
}

// RowNumber converts a Rows slice position to the 1-based file row number,
// counting the header as row 1.
func (t *Table) RowNumber(i int) int {
	return i + 2
}

// ReadFile reads the delimited file at path.
func ReadFile(path string, d Dialect) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return Read(f, path, d)
}

// Read parses delimited data from r. The path is carried into the returned
// table and any errors for diagnostics only.
func Read(r io.Reader, path string, d Dialect) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = d.Delimiter
	if cr.Comma == 0 {
		cr.Comma = constants.DefaultDelimiter
	}
	cr.TrimLeadingSpace = d.TrimLeadingSpace
	cr.FieldsPerRecord = -1 // rows may be ragged; short rows surface downstream

	all, err := cr.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(all) == 0 {
		return nil, errors.NewFormatError(path, 0, "missing header row")
	}

	return &Table{
		Path:   path,
		Header: all[0],
		Rows:   all[1:],
	}, nil
}
