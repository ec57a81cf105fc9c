// Package errors provides custom error types for the discrepancy pipeline.
// These errors enable programmatic error checking with errors.Is/errors.As
// and carry enough context (file, row, key, field) to diagnose bad input
// without re-reading the source files.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the discrepancy pipeline
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRecords indicates that an operation requiring records received none
	ErrNoRecords = errors.New("no records")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// FormatError represents a malformed row in a delimited input file:
// the row is too short for a column the pipeline needs, or a report
// record does not match the header shape. Row is 1-based and counts
// the header; 0 means the row is unknown or not applicable.
type FormatError struct {
	Path    string
	Row     int
	Message string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	switch {
	case e.Path != "" && e.Row > 0:
		return fmt.Sprintf("format error in %s at row %d: %s", e.Path, e.Row, e.Message)
	case e.Path != "":
		return fmt.Sprintf("format error in %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("format error: %s", e.Message)
	}
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewFormatError creates a new FormatError
func NewFormatError(path string, row int, message string) *FormatError {
	return &FormatError{Path: path, Row: row, Message: message}
}

// DuplicateKeyError represents a key collision: a raw source name that
// appears twice in a mapping or translation file, or an attempt to add
// a second record under one composite key to a record index.
type DuplicateKeyError struct {
	Path string
	Key  string
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("duplicate key %q in %s", e.Key, e.Path)
	}
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(path, key string) *DuplicateKeyError {
	return &DuplicateKeyError{Path: path, Key: key}
}

// ConfigError represents a configuration error: a primary-key field not
// covered by the loaded mapping, or an invalid run profile.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// KeyMismatchError indicates that two records handed to difference
// construction do not share a composite primary key. This is a caller
// contract violation, never a property of the input data.
type KeyMismatchError struct {
	Key1 string
	Key2 string
}

// Error implements the error interface
func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("primary key mismatch between compared records: %q vs %q", e.Key1, e.Key2)
}

// NewKeyMismatchError creates a new KeyMismatchError
func NewKeyMismatchError(key1, key2 string) *KeyMismatchError {
	return &KeyMismatchError{Key1: key1, Key2: key2}
}

// SchemaMismatchError indicates that one source carries a standard field
// the other lacks: the mapping configuration produced inconsistent
// record shapes between the two sources.
type SchemaMismatchError struct {
	Field  string
	Source string
}

// Error implements the error interface
func (e *SchemaMismatchError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("field %q missing from source %s", e.Field, e.Source)
	}
	return fmt.Sprintf("field %q missing from compared record", e.Field)
}

// NewSchemaMismatchError creates a new SchemaMismatchError
func NewSchemaMismatchError(field, source string) *SchemaMismatchError {
	return &SchemaMismatchError{Field: field, Source: source}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "csv", "json", etc.
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsFormat checks if an error is a FormatError
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsDuplicateKey checks if an error is a DuplicateKeyError
func IsDuplicateKey(err error) bool {
	var de *DuplicateKeyError
	return errors.As(err, &de)
}

// IsConfig checks if an error is a ConfigError
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Field: field, Message: err.Error(), Err: err}
}
