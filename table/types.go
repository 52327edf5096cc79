package table

import "errors"

// Sentinel errors returned by the table package.
var (
	// ErrNoColumns indicates a table was constructed with zero columns.
	ErrNoColumns = errors.New("table: at least one column is required")

	// ErrEmptyName indicates a column name is the empty string.
	ErrEmptyName = errors.New("table: column name must be non-empty")

	// ErrDuplicateColumn indicates two columns share the same name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrRaggedColumns indicates columns of differing lengths.
	ErrRaggedColumns = errors.New("table: all columns must have the same length")

	// ErrUnknownColumn indicates a requested column name is not present.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrRowMismatch indicates a column-wise concatenation of tables
	// with differing row counts.
	ErrRowMismatch = errors.New("table: row count mismatch")

	// ErrNoHeader indicates a TSV input with no header row.
	ErrNoHeader = errors.New("table: missing header row")

	// ErrBadImagePath indicates an image path without a "space-" tag
	// segment, so no confounds path can be derived from it.
	ErrBadImagePath = errors.New("table: image path has no space- tag segment")
)

// Table is an ordered collection of named float64 columns of equal
// length. Missing values are NaN. The zero value is not usable; build
// tables with New or ParseTSV.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}
