// Package constants provides shared constants used throughout the
// csv-discrepancy-finder codebase. This includes file permissions, default
// paths, CSV dialect defaults, and format strings that should be consistent
// across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// CSV dialect defaults
const (
	// DefaultDelimiter separates fields in source and rule files
	DefaultDelimiter = ','

	// DefaultTrimLeadingSpace skips whitespace following the delimiter,
	// matching sources exported with a space after each comma
	DefaultTrimLeadingSpace = true
)

// Path constants
const (
	// DefaultConfigDir holds the rule files next to the working directory
	DefaultConfigDir = "config"

	// DefaultMappingFile is the field-name mapping rule file
	DefaultMappingFile = "mapping.csv"

	// DefaultTranslationsFile is the value translation rule file
	DefaultTranslationsFile = "translations.csv"

	// DefaultFiltersFile is the row filter rule file
	DefaultFiltersFile = "filtering.csv"

	// DefaultReportsDir receives the generated report files
	DefaultReportsDir = "exports"

	// DefaultLogsDir receives per-run log files
	DefaultLogsDir = "logs"

	// DefaultProfileFile is the run profile looked up when none is given
	DefaultProfileFile = "profile.yaml"
)

// Format constants
const (
	// TimeFormatFilename is the format used in generated file names.
	// Colon-free so the names stay legal on every file system.
	TimeFormatFilename = "2006-01-02 15-04-05"

	// TimeFormatLog is the format used in log files
	TimeFormatLog = "2006-01-02 15:04:05.000"
)
