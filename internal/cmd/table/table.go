// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// SourcesToTableData converts per-source comparison statistics to table format.
func SourcesToTableData(sources []discrepancy.SourceReport) Data {
	headers := []string{"Source", "Path", "Rows", "Indexed", "Keyless", "Duplicates"}

	rows := make([][]string, 0, len(sources))
	for _, src := range sources {
		rows = append(rows, []string{
			src.Name,
			src.Path,
			strconv.Itoa(src.Rows),
			strconv.Itoa(src.Indexed),
			strconv.Itoa(src.Keyless),
			strconv.Itoa(src.Duplicates),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft,
			AlignRight, AlignRight, AlignRight, AlignRight,
		},
	}
}

// DiscrepanciesToTableData converts the discrepancy counts of a comparison
// result to table format, one row per source-scoped category.
func DiscrepanciesToTableData(result *discrepancy.Result) Data {
	headers := []string{"Category", "Source", "Count"}

	var rows [][]string
	for i, src := range result.Sources {
		rows = append(rows,
			[]string{"keyless", src.Name, strconv.Itoa(src.Keyless)},
			[]string{"duplicate", src.Name, strconv.Itoa(src.Duplicates)},
			[]string{"extra", src.Name, strconv.Itoa(result.Extras[i])},
		)
	}
	rows = append(rows, []string{
		"differences",
		result.Sources[0].Name + " / " + result.Sources[1].Name,
		strconv.Itoa(result.Differences),
	})

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight},
	}
}

// ProfileToTableData converts a comparison profile to a key-value table.
func ProfileToTableData(p *profile.Profile) Data {
	headers := []string{"Setting", "Value"}

	rows := [][]string{
		{"primary keys", joinList(p.PrimaryKeys)},
		{"delimiter", p.Delimiter},
		{"trim leading space", strconv.FormatBool(p.TrimLeadingSpace)},
		{"mapping", p.Mapping},
		{"translations", p.Translations},
		{"filters", p.Filters},
		{"reports", p.Reports},
	}
	for _, src := range p.Sources {
		rows = append(rows, []string{"source " + src.Name, src.Path})
	}

	return Data{Headers: headers, Rows: rows}
}

func joinList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
