package discrepancy

import (
	"github.com/rs/zerolog"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/report"
)

// options configures a Finder.
type options struct {
	profile     *profile.Profile
	profileFile string
	reportsDir  string
	summary     bool
	emitter     *report.Emitter
	logger      *zerolog.Logger
}

func defaultOptions() *options {
	return &options{}
}

// Option is a function that configures a Finder instance.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns finder options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithProfile sets the run profile directly. It takes precedence over
// WithProfileFile.
func WithProfile(p *profile.Profile) Option {
	return func(o *options) error {
		if p == nil {
			return &errors.ValidationError{
				Field:   "profile",
				Message: "cannot be nil",
			}
		}
		o.profile = p
		return nil
	}
}

// WithProfileFile loads the run profile from a YAML file.
func WithProfileFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "profile file",
				Message: "path cannot be empty",
			}
		}
		o.profileFile = path
		return nil
	}
}

// WithReportsDir overrides the profile's reports directory.
func WithReportsDir(dir string) Option {
	return func(o *options) error {
		o.reportsDir = dir
		return nil
	}
}

// WithSummary enables the Markdown run summary.
func WithSummary(enabled bool) Option {
	return func(o *options) error {
		o.summary = enabled
		return nil
	}
}

// WithEmitter replaces the report emitter entirely, including its directory
// and dialect wiring. Tests use this to inject a fixed clock.
func WithEmitter(e *report.Emitter) Option {
	return func(o *options) error {
		if e == nil {
			return &errors.ValidationError{
				Field:   "emitter",
				Message: "cannot be nil",
			}
		}
		o.emitter = e
		return nil
	}
}

// WithLogger routes the run's log output through the given logger instead
// of the one carried by the context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
