// Package normalize reshapes one raw tabular source into a keyed record
// index. Header columns are renamed through the field mapping, cell values
// pass through the translation table and are normalized, and filter rules
// drop unwanted rows before any grouping happens.
//
// Rows whose key columns are all blank are collected as keyless; rows that
// collide on a composite key are quarantined as duplicates together with the
// record they collided with, so the returned index holds at most one record
// per key.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/rules"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

// Normalizer turns parsed tables into keyed record indices.
type Normalizer interface {
	// Normalize consumes one parsed table and returns its indexed records
	// along with the keyless and duplicate quarantine lists.
	Normalize(table *tabular.Table) (*Result, error)
}

// normalizer is the default implementation of Normalizer.
type normalizer struct {
	mapping      rules.Mapping
	translations rules.Translations
	filters      rules.Filters
	primaryKeys  map[string]bool
}

// New creates a Normalizer for the given rule set.
func New(mapping rules.Mapping, translations rules.Translations, filters rules.Filters, opts ...Option) (Normalizer, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	n := &normalizer{
		mapping:      mapping,
		translations: translations,
		filters:      filters,
		primaryKeys:  make(map[string]bool, len(options.primaryKeys)),
	}
	for _, field := range options.primaryKeys {
		n.primaryKeys[field] = true
	}
	return n, nil
}

// valueColumn binds a standard field name to its position in the raw rows.
type valueColumn struct {
	field string
	col   int
}

// Normalize builds the record index for one table.
func (n *normalizer) Normalize(table *tabular.Table) (*Result, error) {
	if table == nil {
		return nil, &errors.ValidationError{
			Field:   "table",
			Message: "cannot be nil",
		}
	}

	keyCols, valueCols := n.columns(table.Header)

	result := NewResult()
	seen := make(map[string]bool)

	for i, row := range table.Rows {
		rec, rawKey, err := n.row(table, i, row, keyCols, valueCols)
		if err != nil {
			return nil, err
		}

		// Filtered rows contribute to no list at all.
		if n.filters.Match(rec) {
			continue
		}

		// A key made only of blank cells marks the record keyless.
		if strings.TrimSpace(rawKey) == "" {
			result.Keyless = append(result.Keyless, rec)
			continue
		}

		key := rec.Key()
		if seen[key] {
			result.Duplicates = append(result.Duplicates, rec)
			if resident, ok := result.Index.Remove(key); ok {
				result.Duplicates = append(result.Duplicates, resident)
			}
			continue
		}
		seen[key] = true
		if err := result.Index.Add(rec); err != nil {
			return nil, err
		}
	}

	// Stable sort keeps arrival order within one key.
	sort.SliceStable(result.Duplicates, func(i, j int) bool {
		return result.Duplicates[i].Key() < result.Duplicates[j].Key()
	})

	return result, nil
}

// columns scans the header once and resolves every mapped column: key
// components by position in header order, value columns under their
// standard names. Unmapped columns are ignored.
func (n *normalizer) columns(header []string) (keys []int, values []valueColumn) {
	for idx, name := range header {
		standard, ok := n.mapping.Standard(name)
		if !ok {
			continue
		}
		if n.primaryKeys[standard] {
			keys = append(keys, idx)
			continue
		}
		values = append(values, valueColumn{field: standard, col: idx})
	}
	return keys, values
}

// row builds one record from one data row. The raw key concatenation is
// returned alongside the record because the keyless test runs on the raw
// form, before normalization.
func (n *normalizer) row(table *tabular.Table, i int, row []string, keyCols []int, valueCols []valueColumn) (*record.Record, string, error) {
	rec := record.New()

	parts := make([]string, len(keyCols))
	for j, col := range keyCols {
		if col >= len(row) {
			return nil, "", errors.NewFormatError(table.Path, table.RowNumber(i),
				fmt.Sprintf("row has %d values but key column %d requires %d", len(row), j+1, col+1))
		}
		parts[j] = row[col]
	}
	rawKey := strings.Join(parts, " ")
	rec.Set(record.KeyField, record.Normalize(rawKey))

	for _, vc := range valueCols {
		if vc.col >= len(row) {
			return nil, "", errors.NewFormatError(table.Path, table.RowNumber(i),
				fmt.Sprintf("row has %d values but field %q requires %d", len(row), vc.field, vc.col+1))
		}
		rec.Set(vc.field, record.Normalize(n.translations.Apply(row[vc.col])))
	}

	return rec, rawKey, nil
}
