// Package cmdutil provides shared flag groups for csv-discrepancy-finder commands.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

// ReportFlags holds flags controlling report emission.
type ReportFlags struct {
	Dir     string
	Summary bool
	DryRun  bool
}

// AddReportFlags adds report emission flags to a command.
func AddReportFlags(cmd *cobra.Command) *ReportFlags {
	flags := &ReportFlags{}

	cmd.Flags().StringVarP(&flags.Dir, "reports", "r", "",
		"Directory for report files (overrides the profile)")
	cmd.Flags().BoolVar(&flags.Summary, "summary", false,
		"Write a markdown run summary alongside the reports")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"Run the comparison without writing any report files")

	return flags
}

// SourceFlags holds overrides for the two compared sources. Each value is
// either a path or a name=path pair.
type SourceFlags struct {
	Source1 string
	Source2 string
}

// AddSourceFlags adds source override flags to a command.
func AddSourceFlags(cmd *cobra.Command) *SourceFlags {
	flags := &SourceFlags{}

	cmd.Flags().StringVar(&flags.Source1, "source-1", "",
		"Override the first source (path or name=path)")
	cmd.Flags().StringVar(&flags.Source2, "source-2", "",
		"Override the second source (path or name=path)")

	return flags
}

// Empty reports whether no source override was given.
func (f *SourceFlags) Empty() bool {
	return f.Source1 == "" && f.Source2 == ""
}

// Apply overlays the overrides onto the profile's sources. The profile must
// already hold exactly two sources.
func (f *SourceFlags) Apply(p *profile.Profile) {
	applySource(&p.Sources[0], f.Source1)
	applySource(&p.Sources[1], f.Source2)
}

func applySource(src *profile.Source, override string) {
	if override == "" {
		return
	}
	if idx := strings.Index(override, "="); idx > 0 {
		src.Name = override[:idx]
		src.Path = override[idx+1:]
		return
	}
	src.Path = override
}
