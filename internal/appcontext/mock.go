package appcontext

import (
	"github.com/rs/zerolog"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	FinderFunc            func() (discrepancy.Finder, error)
	FinderWithOptionsFunc func(...discrepancy.Option) (discrepancy.Finder, error)
	ProfileFunc           func() (*profile.Profile, error)
	LoggerFunc            func() *zerolog.Logger
	OutputFormatFunc      func() string
	VersionFunc           func() string
	CommitFunc            func() string
	DateFunc              func() string
	BuiltByFunc           func() string
}

// Finder returns a finder using the mock function or nil.
func (m *Mock) Finder() (discrepancy.Finder, error) {
	if m.FinderFunc != nil {
		return m.FinderFunc()
	}
	return nil, nil
}

// FinderWithOptions returns a finder using the mock function or nil.
func (m *Mock) FinderWithOptions(opts ...discrepancy.Option) (discrepancy.Finder, error) {
	if m.FinderWithOptionsFunc != nil {
		return m.FinderWithOptionsFunc(opts...)
	}
	return nil, nil
}

// Profile returns a profile using the mock function or the default profile.
func (m *Mock) Profile() (*profile.Profile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc()
	}
	return profile.Default(), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
