// Package table provides the ordered numeric table that carries raw
// fMRIPrep confound regressors, one row per acquired volume.
//
// What:
//
//   - Table wraps an ordered set of named float64 columns of equal length.
//   - Missing or non-numeric cells are represented as NaN.
//   - Select extracts a deterministic sub-table by column name.
//   - Concat joins tables column-wise, preserving name order.
//   - ReadTSV / ParseTSV ingest tab-separated files with a header row.
//   - ConfoundsPath maps a preprocessed image path to its sibling
//     confounds TSV by substituting the "_space-..." tag segment.
//
// Why:
//
//   - Confound selection is pure column plumbing: deterministic order,
//     strict name lookup, cheap column-wise composition.
//   - NaN cells propagate naturally into the motion-PCA row-dropping
//     step without a separate missing-value type.
//
// Complexity:
//
//   - Select:  O(k) lookups, columns shared (no value copy).
//   - Concat:  O(total columns), columns shared.
//   - ParseTSV: O(rows×cols).
//
// Errors:
//
//   - ErrNoColumns, ErrEmptyName, ErrDuplicateColumn, ErrRaggedColumns
//     on construction.
//   - ErrUnknownColumn on selection.
//   - ErrRowMismatch on column-wise concatenation.
//   - ErrNoHeader, ErrBadImagePath on ingestion.
//
// A Table is immutable by convention: no method mutates an existing
// table, and derived tables share column storage with their source.
package table
