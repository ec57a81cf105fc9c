package discrepancy

import (
	"fmt"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/report"
)

// SourceReport summarizes one source's normalization outcome.
type SourceReport struct {
	// Name is the source's display name.
	Name string `json:"name" yaml:"name"`

	// Path is the source CSV file.
	Path string `json:"path" yaml:"path"`

	// Rows is the number of data rows read, before filtering.
	Rows int `json:"rows" yaml:"rows"`

	// Indexed is the number of records that survived into the index.
	Indexed int `json:"indexed" yaml:"indexed"`

	// Keyless is the number of records with no key values.
	Keyless int `json:"keyless" yaml:"keyless"`

	// Duplicates is the number of records quarantined by key collisions.
	Duplicates int `json:"duplicates" yaml:"duplicates"`
}

// Result represents the outcome of one comparison run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id" yaml:"run_id"`

	// StartedAt and CompletedAt bound the run in UTC.
	StartedAt   utc.Time `json:"started_at" yaml:"started_at"`
	CompletedAt utc.Time `json:"completed_at" yaml:"completed_at"`

	// Sources holds per-source statistics, in profile order.
	Sources [2]SourceReport `json:"sources" yaml:"sources"`

	// Extras counts records present in only one source, per source.
	Extras [2]int `json:"extras" yaml:"extras"`

	// Differences counts matched records that disagree on field values.
	Differences int `json:"differences" yaml:"differences"`

	// ReportPaths lists every report file written, in emission order.
	ReportPaths []string `json:"report_paths" yaml:"report_paths"`

	// SummaryPath is the Markdown summary file, when one was written.
	SummaryPath string `json:"summary_path,omitempty" yaml:"summary_path,omitempty"`
}

// NewResult creates a result with a fresh run ID and start timestamp.
func NewResult() *Result {
	return &Result{
		RunID:       uuid.New().String(),
		StartedAt:   utc.Now(),
		ReportPaths: []string{},
	}
}

// Finalize marks the run complete.
func (r *Result) Finalize() {
	r.CompletedAt = utc.Now()
}

// Discrepancies returns the total number of discrepant records across all
// categories.
func (r *Result) Discrepancies() int {
	total := r.Extras[0] + r.Extras[1] + r.Differences
	for _, src := range r.Sources {
		total += src.Keyless + src.Duplicates
	}
	return total
}

// HasDiscrepancies reports whether any category is non-empty.
func (r *Result) HasDiscrepancies() bool {
	return r.Discrepancies() > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if !r.HasDiscrepancies() {
		return fmt.Sprintf("Compared %s with %s. No discrepancies found.",
			r.Sources[0].Name, r.Sources[1].Name)
	}
	return fmt.Sprintf("Compared %s with %s. Found %d discrepancies: %d+%d extra, %d differing, %d+%d keyless, %d+%d duplicates.",
		r.Sources[0].Name, r.Sources[1].Name,
		r.Discrepancies(),
		r.Extras[0], r.Extras[1],
		r.Differences,
		r.Sources[0].Keyless, r.Sources[1].Keyless,
		r.Sources[0].Duplicates, r.Sources[1].Duplicates)
}

// summary converts the result into the report package's summary model.
func (r *Result) summary() *report.Summary {
	sources := make([]report.SummarySource, 0, len(r.Sources))
	for _, src := range r.Sources {
		sources = append(sources, report.SummarySource{
			Name:       src.Name,
			Path:       src.Path,
			Rows:       src.Rows,
			Indexed:    src.Indexed,
			Keyless:    src.Keyless,
			Duplicates: src.Duplicates,
		})
	}
	return &report.Summary{
		RunID:       r.RunID,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		Sources:     sources,
		Extras:      r.Extras[:],
		Differences: r.Differences,
		Files:       r.ReportPaths,
	}
}
