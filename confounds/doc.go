// Package confounds maps a denoising strategy onto a deterministic set
// of confound-regressor columns drawn from an fMRIPrep confounds table.
//
// What:
//
//   - Loader orchestrates five confound categories — motion, high_pass,
//     wm_csf, global, compcor — validated eagerly at construction and
//     applied in a fixed order to one or many raw tables.
//   - ExpandNames derives the _derivative1 / _power2 /
//     _derivative1_power2 column families from base parameter names.
//   - High-pass cosine regressors are discovered by keyword, CompCor
//     components by zero-padded index with non-fatal diagnostics for
//     absent indices.
//   - Motion parameters can optionally be compressed with PCA
//     (motion_pca_1..k) via the pca package.
//   - P2/P6/P9/P24/P36 build the Ciric et al. (2017) preset strategies.
//
// Why:
//
//   - Denoising pipelines need a reproducible, fail-fast mapping from a
//     named strategy to an exact design-matrix column set; silent
//     fallbacks and global warnings make analyses unauditable.
//
// Options:
//
//   - WithMotion / WithWMCSF / WithGlobalSignal: expansion mode per
//     category (Basic, Derivatives, Power2, Full).
//   - WithMotionPCA: number of principal components (0 disables).
//   - WithCompCor / WithNCompCor: component variant (anat, temp, full)
//     and inclusive upper index bound.
//
// Errors (sentinel):
//
//   - ErrInvalidStrategy  — empty strategy, unknown or repeated category,
//     negative counts. Raised by NewLoader before any table is touched.
//   - ErrUnknownMode      — expansion mode or compcor variant outside the
//     closed enum. Also raised eagerly.
//   - ErrMissingColumn    — an expected (possibly expanded) column is
//     absent from the raw table; aborts the load.
//   - ErrNoMatchingColumn — a keyword matched no column; aborts the load.
//   - ErrNilTable         — a nil raw table was passed to Load.
//
// Absent CompCor components are not fatal: they are reported as
// Diagnostic values retained on the Loader after each load.
package confounds
