// Package compare implements the compare command, which runs the full
// comparison pipeline and writes discrepancy reports.
package compare

import (
	"github.com/spf13/cobra"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/cmdutil"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/report"
)

// NewCommand creates the compare command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		GroupID: "core",
		Short:   "Compare the two configured sources and report discrepancies",
		Long: `Compare runs the full pipeline: both sources are normalized using the
mapping, translation, and filter rules, indexed by primary key, and
reconciled field by field.

Each discrepancy category that occurs (missingPK, duplicate, extra,
differences) is written to its own timestamped CSV file in the reports
directory.`,
		Example: `  csv-discrepancy-finder compare
  csv-discrepancy-finder compare --profile people.yaml --summary
  csv-discrepancy-finder compare --source-1 HR=hr.csv --source-2 Payroll=payroll.csv
  csv-discrepancy-finder compare --dry-run -o json`,
		Args: cobra.NoArgs,
	}

	reportFlags := cmdutil.AddReportFlags(cmd)
	sourceFlags := cmdutil.AddSourceFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, app, reportFlags, sourceFlags)
	}

	return cmd
}

// run assembles finder options from the flags and executes the comparison.
func run(cmd *cobra.Command, app appcontext.Interface, reportFlags *cmdutil.ReportFlags, sourceFlags *cmdutil.SourceFlags) error {
	var opts []discrepancy.Option

	if reportFlags.Dir != "" {
		opts = append(opts, discrepancy.WithReportsDir(reportFlags.Dir))
	}
	if reportFlags.Summary {
		opts = append(opts, discrepancy.WithSummary(true))
	}

	// Source overrides and dry runs need the resolved profile up front.
	if !sourceFlags.Empty() || reportFlags.DryRun {
		base, err := app.Profile()
		if err != nil {
			return err
		}
		p := base.Clone()
		sourceFlags.Apply(p)
		opts = append(opts, discrepancy.WithProfile(p))

		if reportFlags.DryRun {
			dir := reportFlags.Dir
			if dir == "" {
				dir = p.Reports
			}
			emitter := report.New(dir, report.WithDialect(p.Dialect()), report.WithDryRun())
			opts = append(opts, discrepancy.WithEmitter(emitter))
		}
	}

	finder, err := app.FinderWithOptions(opts...)
	if err != nil {
		return err
	}

	result, err := finder.Compare(cmd.Context())
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), app, result, reportFlags.DryRun)
}
