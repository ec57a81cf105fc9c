// Package profile defines the run profile: which two sources to compare,
// where the rule files live, and how the CSV files are shaped. A profile
// comes from a YAML file or from Default, which mirrors the conventional
// config/ and exports/ layout.
package profile

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/constants"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

// Source names one tabular source file.
type Source struct {
	Name string `json:"name" yaml:"name"` // Display name, used in report file names
	Path string `json:"path" yaml:"path"` // Path to the source CSV file
}

// Profile configures one comparison run.
type Profile struct {
	PrimaryKeys      []string `json:"primary_keys" yaml:"primary_keys"`             // Standard fields forming the composite key
	Delimiter        string   `json:"delimiter" yaml:"delimiter"`                   // Single-rune CSV delimiter
	TrimLeadingSpace bool     `json:"trim_leading_space" yaml:"trim_leading_space"` // Skip spaces following the delimiter
	Mapping          string   `json:"mapping" yaml:"mapping"`                       // Path to the field mapping CSV
	Translations     string   `json:"translations" yaml:"translations"`             // Path to the value translation CSV
	Filters          string   `json:"filters" yaml:"filters"`                       // Path to the filter rule CSV
	Reports          string   `json:"reports" yaml:"reports"`                       // Directory for generated reports
	Sources          []Source `json:"sources" yaml:"sources"`                       // Exactly two sources, compared in order
}

// Default returns the conventional profile: rule files under config/,
// reports under exports/, two sources s1.csv and s2.csv keyed by id.
func Default() *Profile {
	return &Profile{
		PrimaryKeys:      []string{"id"},
		Delimiter:        string(constants.DefaultDelimiter),
		TrimLeadingSpace: constants.DefaultTrimLeadingSpace,
		Mapping:          filepath.Join(constants.DefaultConfigDir, constants.DefaultMappingFile),
		Translations:     filepath.Join(constants.DefaultConfigDir, constants.DefaultTranslationsFile),
		Filters:          filepath.Join(constants.DefaultConfigDir, constants.DefaultFiltersFile),
		Reports:          constants.DefaultReportsDir,
		Sources: []Source{
			{Name: "Test 1", Path: "s1.csv"},
			{Name: "Test 2", Path: "s2.csv"},
		},
	}
}

// Load reads and validates a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns a copy of the profile whose slices are independent of the
// original. Command-line overrides mutate the copy.
func (p *Profile) Clone() *Profile {
	clone := *p
	clone.PrimaryKeys = append([]string(nil), p.PrimaryKeys...)
	clone.Sources = append([]Source(nil), p.Sources...)
	return &clone
}

// Validate checks the profile for the constraints the pipeline relies on.
func (p *Profile) Validate() error {
	if len(p.PrimaryKeys) == 0 {
		return errors.NewConfigError("primary_keys", "cannot be empty", nil)
	}
	for _, key := range p.PrimaryKeys {
		if key == "" {
			return errors.NewConfigError("primary_keys", "names cannot be empty", nil)
		}
	}

	if len([]rune(p.Delimiter)) != 1 {
		return errors.NewConfigError("delimiter", "must be a single character", nil)
	}

	if p.Mapping == "" {
		return errors.NewConfigError("mapping", "path cannot be empty", nil)
	}
	if p.Translations == "" {
		return errors.NewConfigError("translations", "path cannot be empty", nil)
	}
	if p.Filters == "" {
		return errors.NewConfigError("filters", "path cannot be empty", nil)
	}
	if p.Reports == "" {
		return errors.NewConfigError("reports", "directory cannot be empty", nil)
	}

	if len(p.Sources) != 2 {
		return errors.NewConfigError("sources", "exactly two sources are required", nil)
	}
	for _, src := range p.Sources {
		if src.Name == "" {
			return errors.NewConfigError("sources", "source names cannot be empty", nil)
		}
		if src.Path == "" {
			return errors.NewConfigError("sources", "source paths cannot be empty", nil)
		}
	}
	if p.Sources[0].Name == p.Sources[1].Name {
		return errors.NewConfigError("sources", "source names must differ", nil)
	}

	return nil
}

// Dialect returns the CSV dialect shared by every file the profile names.
func (p *Profile) Dialect() tabular.Dialect {
	return tabular.Dialect{
		Delimiter:        []rune(p.Delimiter)[0],
		TrimLeadingSpace: p.TrimLeadingSpace,
	}
}
