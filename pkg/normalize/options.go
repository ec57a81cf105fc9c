package normalize

import (
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
)

// options configures a normalizer.
type options struct {
	primaryKeys []string
}

func defaultOptions() *options {
	return &options{
		primaryKeys: []string{"id"},
	}
}

// Option is a function that configures a Normalizer.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns normalizer options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithPrimaryKeys sets the standard fields whose columns form the composite
// primary key.
func WithPrimaryKeys(fields ...string) Option {
	return func(o *options) error {
		if len(fields) == 0 {
			return &errors.ValidationError{
				Field:   "primary_keys",
				Message: "cannot be empty",
			}
		}
		o.primaryKeys = fields
		return nil
	}
}
