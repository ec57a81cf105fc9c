// Package discrepancy reconciles two CSV sources that describe the same
// records under different schemas. Column names are standardized through a
// mapping file, values pass through a translation table, filtered rows are
// dropped, and the surviving records are grouped by a normalized composite
// primary key. A comparison run reports four discrepancy categories as
// timestamped CSV files: records missing key values, duplicate keys,
// records present in only one source, and field-level differences between
// matched records.
//
// Example usage:
//
//	// Compare the two sources named by config/profile.yaml
//	finder, err := discrepancy.New(
//	    discrepancy.WithProfileFile("config/profile.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := finder.Compare(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Summary())
//	for _, path := range result.ReportPaths {
//	    fmt.Println(path)
//	}
package discrepancy

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/logging"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/normalize"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/reconcile"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/report"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/rules"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

// Compile-time interface check to ensure proper implementation.
var _ Finder = (*finder)(nil)

// Finder runs comparisons between the two configured sources.
type Finder interface {
	// Profile returns the run profile the finder was built with.
	Profile() *profile.Profile

	// Compare executes the full pipeline: load rules, normalize both
	// sources, reconcile, and emit one CSV report per non-empty
	// discrepancy category.
	Compare(ctx context.Context) (*Result, error)
}

// finder is the internal implementation of the Finder interface.
type finder struct {
	options *options
	profile *profile.Profile
	emitter *report.Emitter
	logger  *zerolog.Logger
}

// New creates a new Finder instance with the given options.
func New(opts ...Option) (Finder, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	f := &finder{options: options}

	// Resolve the profile: explicit profile, profile file, then defaults.
	switch {
	case options.profile != nil:
		f.profile = options.profile
		if err := f.profile.Validate(); err != nil {
			return nil, err
		}
	case options.profileFile != "":
		p, err := profile.Load(options.profileFile)
		if err != nil {
			return nil, err
		}
		f.profile = p
	default:
		f.profile = profile.Default()
	}

	f.logger = options.logger

	// Reports land in the profile directory unless overridden; a custom
	// emitter replaces the directory and dialect wiring entirely.
	f.emitter = options.emitter
	if f.emitter == nil {
		dir := f.profile.Reports
		if options.reportsDir != "" {
			dir = options.reportsDir
		}
		f.emitter = report.New(dir, report.WithDialect(f.profile.Dialect()))
	}

	return f, nil
}

// Profile returns the run profile the finder was built with.
func (f *finder) Profile() *profile.Profile {
	return f.profile
}

// Compare executes the comparison pipeline.
func (f *finder) Compare(ctx context.Context) (*Result, error) {
	// Step 0: Set context and logger
	if ctx == nil {
		ctx = context.Background()
	}
	logger := f.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	// Step 1: Start the run
	result := NewResult()
	runLogger := logger.With().Str("run_id", result.RunID).Logger()
	logger = &runLogger

	src1, src2 := f.profile.Sources[0], f.profile.Sources[1]
	logger.Info().
		Str("source_1", src1.Name).
		Str("source_2", src2.Name).
		Msg("Comparing sources")

	// Step 2: Load the rule files
	dialect := f.profile.Dialect()
	mapping, err := rules.LoadMapping(f.profile.Mapping, f.profile.PrimaryKeys, dialect)
	if err != nil {
		return nil, err
	}
	translations, err := rules.LoadTranslations(f.profile.Translations, dialect)
	if err != nil {
		return nil, err
	}
	filters, err := rules.LoadFilters(f.profile.Filters, dialect)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("mapped_fields", len(mapping)).
		Int("translations", len(translations)).
		Int("filters", len(filters)).
		Msg("Rules loaded")

	// Step 3: Normalize both sources
	if ctx.Err() != nil {
		return nil, errors.ErrCanceled
	}
	normalizer, err := normalize.New(mapping, translations, filters,
		normalize.WithPrimaryKeys(f.profile.PrimaryKeys...))
	if err != nil {
		return nil, err
	}

	left, err := f.normalizeSource(logger, normalizer, src1, &result.Sources[0])
	if err != nil {
		return nil, err
	}
	right, err := f.normalizeSource(logger, normalizer, src2, &result.Sources[1])
	if err != nil {
		return nil, err
	}

	// Step 4: Reconcile the two indices
	if ctx.Err() != nil {
		return nil, errors.ErrCanceled
	}
	reconciler, err := reconcile.New(reconcile.WithSourceNames(src1.Name, src2.Name))
	if err != nil {
		return nil, err
	}
	recon, err := reconciler.Reconcile(left.Index, right.Index)
	if err != nil {
		return nil, err
	}
	result.Extras[0] = len(recon.ExtraLeft)
	result.Extras[1] = len(recon.ExtraRight)
	result.Differences = len(recon.Differences)
	logger.Debug().
		Int("extra_1", result.Extras[0]).
		Int("extra_2", result.Extras[1]).
		Int("differences", result.Differences).
		Msg("Sources reconciled")

	// Step 5: Emit one report per non-empty collection
	if ctx.Err() != nil {
		return nil, errors.ErrCanceled
	}
	emissions := []struct {
		name     string
		category report.Category
		records  []*record.Record
	}{
		{src1.Name, report.CategoryMissingPK, left.Keyless},
		{src2.Name, report.CategoryMissingPK, right.Keyless},
		{src1.Name, report.CategoryDuplicate, left.Duplicates},
		{src2.Name, report.CategoryDuplicate, right.Duplicates},
		{src1.Name, report.CategoryExtra, recon.ExtraLeft},
		{src2.Name, report.CategoryExtra, recon.ExtraRight},
		{src1.Name + " " + src2.Name, report.CategoryDifferences, recon.Differences},
	}
	for _, e := range emissions {
		if len(e.records) == 0 {
			continue
		}
		path, err := f.emitter.Write(e.name, e.category, e.records)
		if err != nil {
			return nil, err
		}
		logger.Info().
			Str("source", e.name).
			Str("category", e.category.String()).
			Int("records", len(e.records)).
			Str("path", path).
			Msg("Report written")
		result.ReportPaths = append(result.ReportPaths, path)
	}

	// Step 6: Finalize and optionally write the run summary
	result.Finalize()
	if f.options.summary {
		path, err := f.emitter.WriteSummary(result.summary())
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", path).Msg("Summary written")
		result.SummaryPath = path
	}

	logger.Info().
		Int("reports", len(result.ReportPaths)).
		Int("discrepancies", result.Discrepancies()).
		Msg("Comparison complete")

	return result, nil
}

// normalizeSource reads one source file and builds its record index,
// recording per-source statistics into rep.
func (f *finder) normalizeSource(logger *zerolog.Logger, normalizer normalize.Normalizer, src profile.Source, rep *SourceReport) (*normalize.Result, error) {
	table, err := tabular.ReadFile(src.Path, f.profile.Dialect())
	if err != nil {
		return nil, err
	}

	res, err := normalizer.Normalize(table)
	if err != nil {
		return nil, err
	}

	rep.Name = src.Name
	rep.Path = src.Path
	rep.Rows = len(table.Rows)
	rep.Indexed = res.Indexed()
	rep.Keyless = len(res.Keyless)
	rep.Duplicates = len(res.Duplicates)

	logger.Debug().
		Str("source", src.Name).
		Int("rows", rep.Rows).
		Int("indexed", rep.Indexed).
		Int("keyless", rep.Keyless).
		Int("duplicates", rep.Duplicates).
		Msg("Source normalized")

	return res, nil
}
