package compare

import (
	"fmt"
	"io"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/output"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/table"
)

// printResult renders the comparison result in the configured output format.
func printResult(w io.Writer, app appcontext.Interface, result *discrepancy.Result, dryRun bool) error {
	format := output.DetectFormat(app.OutputFormat())

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, result)
	default:
		return printTables(w, format, result, dryRun)
	}
}

// printTables renders the human-readable view: the outcome line, per-source
// statistics, discrepancy counts, and the report file paths.
func printTables(w io.Writer, format output.Format, result *discrepancy.Result, dryRun bool) error {
	fmt.Fprintln(w, result.Summary())
	fmt.Fprintln(w)

	formatter := output.NewFormatter(format)
	if err := formatter.Format(w, table.SourcesToTableData(result.Sources[:])); err != nil {
		return err
	}

	if result.HasDiscrepancies() {
		fmt.Fprintln(w)
		if err := formatter.Format(w, table.DiscrepanciesToTableData(result)); err != nil {
			return err
		}
	}

	if len(result.ReportPaths) > 0 {
		fmt.Fprintln(w)
		if dryRun {
			fmt.Fprintln(w, "Dry run, reports not written:")
		} else {
			fmt.Fprintln(w, "Reports:")
		}
		for _, path := range result.ReportPaths {
			fmt.Fprintf(w, "  %s\n", path)
		}
		if result.SummaryPath != "" {
			fmt.Fprintf(w, "  %s\n", result.SummaryPath)
		}
	}

	return nil
}
