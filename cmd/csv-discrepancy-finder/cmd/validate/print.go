package validate

import (
	"fmt"
	"io"

	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/output"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/table"
)

// printResults renders the check results in the configured output format.
func printResults(w io.Writer, app appcontext.Interface, results []checkResult) error {
	format := output.DetectFormat(app.OutputFormat())

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, results)
	default:
		return printTable(w, results)
	}
}

// printTable renders the results as a table, adding the detail column
// only when at least one check produced one.
func printTable(w io.Writer, results []checkResult) error {
	withDetail := false
	for _, result := range results {
		if result.Detail != "" {
			withDetail = true
			break
		}
	}

	headers := []string{"Component", "Status"}
	if withDetail {
		headers = append(headers, "Detail")
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		row := []string{result.Component, result.Status}
		if withDetail {
			row = append(row, result.Detail)
		}
		rows = append(rows, row)
	}

	if _, err := fmt.Fprintln(w, "Validation results:"); err != nil {
		return err
	}
	formatter := output.NewFormatter(output.FormatTable)
	return formatter.Format(w, table.Data{Headers: headers, Rows: rows})
}
