// Package version implements the version command.
package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/internal/cmd/output"
)

// info collects build and runtime details for structured output.
type info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// NewCommand creates the version command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Version prints the build version, commit, build date, and platform.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}
}

func run(cmd *cobra.Command, app appcontext.Interface) error {
	v := info{
		Version:   app.Version(),
		Commit:    app.Commit(),
		Date:      app.Date(),
		BuiltBy:   app.BuiltBy(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), v)
	default:
		return printText(cmd.OutOrStdout(), v)
	}
}

// printText writes the version details as plain text.
func printText(w io.Writer, v info) error {
	_, err := fmt.Fprintf(w, "csv-discrepancy-finder version %s\n  commit: %s\n  built: %s\n  built by: %s\n  go version: %s\n  platform: %s\n",
		v.Version, v.Commit, v.Date, v.BuiltBy, v.GoVersion, v.Platform)
	return err
}
