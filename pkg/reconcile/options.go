package reconcile

import (
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
)

// options configures a reconciler.
type options struct {
	leftName  string
	rightName string
}

func defaultOptions() *options {
	return &options{
		leftName:  "source 1",
		rightName: "source 2",
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithSourceNames sets the display names used to label the two sides in
// difference entries.
func WithSourceNames(left, right string) Option {
	return func(o *options) error {
		if left == "" || right == "" {
			return &errors.ValidationError{
				Field:   "source names",
				Message: "cannot be empty",
			}
		}
		o.leftName = left
		o.rightName = right
		return nil
	}
}
