// Package profile implements the profile command, which shows the
// effective comparison profile after defaults and flags are applied.
package profile

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/output"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/table"
	profiles "github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

// NewCommand creates the profile command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "profile",
		GroupID: "management",
		Short:   "Show the effective comparison profile",
		Long: `Profile prints the settings a comparison would run with: sources, primary
keys, rule file paths, the reports directory, and the CSV dialect. Defaults
are filled in for anything the profile file leaves unset.`,
		Example: `  csv-discrepancy-finder profile
  csv-discrepancy-finder profile --profile people.yaml -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}
}

func run(cmd *cobra.Command, app appcontext.Interface) error {
	p, err := app.Profile()
	if err != nil {
		return err
	}
	return printProfile(cmd.OutOrStdout(), app, p)
}

// printProfile renders the profile in the configured output format.
func printProfile(w io.Writer, app appcontext.Interface, p *profiles.Profile) error {
	format := output.DetectFormat(app.OutputFormat())

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, p)
	default:
		if _, err := fmt.Fprintln(w, "Comparison profile:"); err != nil {
			return err
		}
		formatter := output.NewFormatter(output.FormatTable)
		return formatter.Format(w, table.ProfileToTableData(p))
	}
}
