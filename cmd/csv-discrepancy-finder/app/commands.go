package app

import (
	"github.com/spf13/cobra"

	"github.com/kmorhun/csv-discrepancy-finder/cmd/csv-discrepancy-finder/cmd/compare"
	profilecmd "github.com/kmorhun/csv-discrepancy-finder/cmd/csv-discrepancy-finder/cmd/profile"
	"github.com/kmorhun/csv-discrepancy-finder/cmd/csv-discrepancy-finder/cmd/validate"
	"github.com/kmorhun/csv-discrepancy-finder/cmd/csv-discrepancy-finder/cmd/version"
)

// CreateCompareCommand creates the compare command with app dependencies.
func (a *App) CreateCompareCommand() *cobra.Command {
	return compare.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateProfileCommand creates the profile command with app dependencies.
func (a *App) CreateProfileCommand() *cobra.Command {
	return profilecmd.NewCommand(a)
}

// CreateVersionCommand creates the version command with app dependencies.
func (a *App) CreateVersionCommand() *cobra.Command {
	return version.NewCommand(a)
}
