package report

import (
	"github.com/agentstation/utc"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

// Option is a functional option for configuring an Emitter.
type Option func(*Emitter)

// WithDialect sets the CSV dialect used for report files.
func WithDialect(d tabular.Dialect) Option {
	return func(e *Emitter) {
		e.dialect = d
	}
}

// WithClock replaces the timestamp source used in file names. Tests inject a
// fixed clock for reproducible names.
func WithClock(now func() utc.Time) Option {
	return func(e *Emitter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithDryRun makes the emitter compute report paths without creating any
// files or directories.
func WithDryRun() Option {
	return func(e *Emitter) {
		e.dryRun = true
	}
}
