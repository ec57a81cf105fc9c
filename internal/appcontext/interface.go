// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/csv-discrepancy-finder/app implements this
// interface, providing dependency injection for commands while keeping
// them testable.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Finder returns the default finder instance, creating it lazily if
	// needed. This is thread-safe and ensures only one instance is created.
	Finder() (discrepancy.Finder, error)

	// FinderWithOptions creates a new finder instance with custom options.
	// Use this when a command needs specific configuration (e.g., compare
	// with --reports).
	FinderWithOptions(...discrepancy.Option) (discrepancy.Finder, error)

	// Profile returns the comparison profile the app resolved from flags,
	// environment, and profile files.
	Profile() (*profile.Profile, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
