// Package validate implements the validate command, which checks the
// profile and rule files without reading any source rows.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/rules"
)

// checkResult describes the outcome of one validation check.
type checkResult struct {
	Component string `json:"component"`
	Status    string `json:"status"`
	Detail    string `json:"detail,omitempty"`
}

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Validate the profile and rule files",
		Long: `Validate loads the comparison profile and every rule file it names and
reports problems. Source files are checked for existence only; no source
rows are read.`,
		Example: `  csv-discrepancy-finder validate
  csv-discrepancy-finder validate --profile people.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}
}

// run performs all checks, prints them, and fails if any check failed.
func run(cmd *cobra.Command, app appcontext.Interface) error {
	results := check(app)

	if err := printResults(cmd.OutOrStdout(), app, results); err != nil {
		return err
	}

	failures := 0
	for _, result := range results {
		if result.Status != statusOK {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("validation failed: %d problem(s)", failures)
	}
	return nil
}

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// check validates the profile, the three rule files, and source existence.
func check(app appcontext.Interface) []checkResult {
	p, err := app.Profile()
	if err != nil {
		// Without a profile there is nothing else to check.
		return []checkResult{fail("profile", err)}
	}
	results := []checkResult{ok("profile")}

	dialect := p.Dialect()
	results = append(results, checkRule("mapping", func() error {
		_, err := rules.LoadMapping(p.Mapping, p.PrimaryKeys, dialect)
		return err
	}))
	results = append(results, checkRule("translations", func() error {
		_, err := rules.LoadTranslations(p.Translations, dialect)
		return err
	}))
	results = append(results, checkRule("filters", func() error {
		_, err := rules.LoadFilters(p.Filters, dialect)
		return err
	}))

	for _, src := range p.Sources {
		results = append(results, checkSource(src))
	}

	return results
}

func checkRule(component string, load func() error) checkResult {
	if err := load(); err != nil {
		return fail(component, err)
	}
	return ok(component)
}

func checkSource(src profile.Source) checkResult {
	component := "source " + src.Name
	if _, err := os.Stat(src.Path); err != nil {
		return fail(component, err)
	}
	return ok(component)
}

func ok(component string) checkResult {
	return checkResult{Component: component, Status: statusOK}
}

func fail(component string, err error) checkResult {
	return checkResult{Component: component, Status: statusFailed, Detail: err.Error()}
}
