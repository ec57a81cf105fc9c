package rules

import (
	"fmt"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

// mode selects which post-checks a two-column load runs. Mapping and
// translation files share one parser so their formats cannot drift apart.
type mode string

const (
	modeMapping      mode = "mapping"
	modeTranslations mode = "translations"
)

// LoadMapping reads a mapping file: a header row, then rows of
// (standard_name, source_name). Every configured primary-key field must
// appear among the standard names or the load fails with a ConfigError.
func LoadMapping(path string, primaryKeys []string, d tabular.Dialect) (Mapping, error) {
	pairs, err := loadPairs(path, modeMapping, d)
	if err != nil {
		return nil, err
	}

	m := Mapping(pairs)
	for _, key := range primaryKeys {
		if !m.HasStandard(key) {
			return nil, errors.NewConfigError("primary_keys",
				fmt.Sprintf("%q is not mapped by any source field in %s", key, path), nil)
		}
	}
	return m, nil
}

// LoadTranslations reads a translation file: a header row, then rows of
// (replacement, raw_value). Same shape and duplicate handling as a mapping
// file, without the primary-key check.
func LoadTranslations(path string, d tabular.Dialect) (Translations, error) {
	pairs, err := loadPairs(path, modeTranslations, d)
	if err != nil {
		return nil, err
	}
	return Translations(pairs), nil
}

// loadPairs parses a two-column rule file into a map keyed by the second
// column. A row with fewer than two columns is a FormatError; a repeated
// key is a DuplicateKeyError, since the reverse lookup would be ambiguous.
func loadPairs(path string, m mode, d tabular.Dialect) (map[string]string, error) {
	table, err := tabular.ReadFile(path, d)
	if err != nil {
		return nil, err
	}

	pairs := make(map[string]string, len(table.Rows))
	for i, row := range table.Rows {
		if len(row) < 2 {
			return nil, errors.NewFormatError(path, table.RowNumber(i),
				fmt.Sprintf("%s row needs two columns, got %d", m, len(row)))
		}
		standard, source := row[0], row[1]
		if _, exists := pairs[source]; exists {
			return nil, errors.NewDuplicateKeyError(path, source)
		}
		pairs[source] = standard
	}
	return pairs, nil
}

// LoadFilters reads a filter file: a header row, then rows of
// (field, forbidden_value). Rule order is preserved.
func LoadFilters(path string, d tabular.Dialect) (Filters, error) {
	table, err := tabular.ReadFile(path, d)
	if err != nil {
		return nil, err
	}

	filters := make(Filters, 0, len(table.Rows))
	for i, row := range table.Rows {
		if len(row) < 2 {
			return nil, errors.NewFormatError(path, table.RowNumber(i),
				fmt.Sprintf("filter row needs two columns, got %d", len(row)))
		}
		filters = append(filters, Rule{Field: row[0], Value: row[1]})
	}
	return filters, nil
}
