package parsererror

import (
	"fmt"
	"strings"
)

// StructuralError means the file cannot be ingested at all: too few lines or
// required header columns are absent.
type StructuralError struct {
	MissingColumns []string
	Msg            string
}

func (e *StructuralError) Error() string {
	if len(e.MissingColumns) > 0 {
		return fmt.Sprintf("Missing required columns: %s", strings.Join(e.MissingColumns, ", "))
	}
	return e.Msg
}

// RowError describes one rejected data row. Parsing continues after it.
type RowError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Reason)
}

// NewInvalidDateError reports an unparseable date cell.
func NewInvalidDateError(row int, value string) *RowError {
	return &RowError{
		Row:    row,
		Field:  "date",
		Value:  value,
		Reason: fmt.Sprintf("Invalid date %q", value),
	}
}

// NewRequiredFieldError reports an empty required cell.
func NewRequiredFieldError(row int, field, label string) *RowError {
	return &RowError{
		Row:    row,
		Field:  field,
		Reason: label + " is required",
	}
}

// CatalogError represents an invalid product row in a catalog source.
type CatalogError struct {
	Source  string
	Row     int
	Name    string
	Reasons []string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s row %d (%s): %s", e.Source, e.Row, e.Name, strings.Join(e.Reasons, "; "))
}

// InvalidFormatError represents an input that does not conform to the format
// a loader expects.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
