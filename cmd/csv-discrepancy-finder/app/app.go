// Package app provides the application context and dependency management
// for the csv-discrepancy-finder CLI. It follows idiomatic Go patterns for
// CLI applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

// App represents the csv-discrepancy-finder application with all its
// dependencies. It provides a centralized place for configuration, logging,
// and the finder instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Finder instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	finder discrepancy.Finder
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfig("config", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Finder returns the finder instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Finder() (discrepancy.Finder, error) {
	a.mu.RLock()
	if a.finder != nil {
		f := a.finder
		a.mu.RUnlock()
		return f, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.finder != nil {
		return a.finder, nil
	}

	f, err := discrepancy.New(a.buildFinderOptions()...)
	if err != nil {
		return nil, err
	}

	a.finder = f
	return f, nil
}

// FinderWithOptions returns a new finder instance with custom options
// layered on top of the app configuration. This is useful for commands
// that need specific configurations different from the default app
// instance (e.g., compare with --reports).
func (a *App) FinderWithOptions(opts ...discrepancy.Option) (discrepancy.Finder, error) {
	combined := append(a.buildFinderOptions(), opts...)
	f, err := discrepancy.New(combined...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Profile returns the comparison profile resolved from the app
// configuration. This is a convenience method that handles finder
// initialization and profile retrieval in one call.
func (a *App) Profile() (*profile.Profile, error) {
	f, err := a.Finder()
	if err != nil {
		return nil, err
	}
	return f.Profile(), nil
}

// buildFinderOptions constructs finder options from the app configuration.
func (a *App) buildFinderOptions() []discrepancy.Option {
	opts := []discrepancy.Option{
		discrepancy.WithLogger(a.logger),
	}

	// Add profile file if configured
	if a.config.ProfileFile != "" {
		opts = append(opts, discrepancy.WithProfileFile(a.config.ProfileFile))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFinder sets a custom finder instance (useful for testing).
func WithFinder(f discrepancy.Finder) Option {
	return func(a *App) error {
		a.finder = f
		return nil
	}
}
