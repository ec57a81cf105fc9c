// Package report writes discrepancy collections to timestamped CSV files
// and renders the optional Markdown run summary. One file per non-empty
// collection; callers decide what to emit and in which order.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/utc"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/constants"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

// Category names one discrepancy report kind. The value appears verbatim in
// report file names.
type Category string

// String returns the string representation of a category.
func (c Category) String() string {
	return string(c)
}

// The four discrepancy categories.
const (
	// CategoryMissingPK collects records whose key columns were all blank.
	CategoryMissingPK Category = "missingPK"

	// CategoryDuplicate collects records quarantined by key collisions.
	CategoryDuplicate Category = "duplicate"

	// CategoryExtra collects records present in only one source.
	CategoryExtra Category = "extra"

	// CategoryDifferences collects field-level difference entries.
	CategoryDifferences Category = "differences"
)

// Emitter writes report files into one directory. The directory is created
// on first write.
type Emitter struct {
	dir     string
	dialect tabular.Dialect
	now     func() utc.Time
	dryRun  bool
}

// New creates an Emitter writing into dir.
func New(dir string, opts ...Option) *Emitter {
	e := &Emitter{
		dir:     dir,
		dialect: tabular.DefaultDialect(),
		now:     utc.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Dir returns the reports directory.
func (e *Emitter) Dir() string {
	return e.dir
}

// Write serializes recs into `<name> <category> <timestamp>.csv` inside the
// reports directory and returns the file's path. The header follows the
// first record's field order. Writing an empty collection is a caller bug
// and fails with ErrNoRecords; callers skip empty collections instead.
func (e *Emitter) Write(name string, category Category, recs []*record.Record) (string, error) {
	if len(recs) == 0 {
		return "", errors.ErrNoRecords
	}

	filename := fmt.Sprintf("%s %s %s.csv", name, category, e.now().Format(constants.TimeFormatFilename))
	path := filepath.Join(e.dir, filename)

	if e.dryRun {
		return path, nil
	}

	if err := os.MkdirAll(e.dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", e.dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}

	if err := tabular.WriteRecords(f, recs, e.dialect); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.WrapIO("close", path, err)
	}

	return path, nil
}
