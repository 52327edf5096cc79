// Package pca reduces a set of numeric columns to their leading
// principal components, as used for motion-parameter compression in
// confound selection.
//
// What:
//
//   - DropNaNRows removes every row containing a NaN in any column.
//   - Standardize z-scores each column to zero mean and unit
//     (population) variance; constant columns become all-zero.
//   - Reduce runs the full pipeline: drop NaN rows, standardize,
//     eigendecompose the sample covariance (Jacobi rotations), and
//     project onto the k leading components.
//
// Why:
//
//   - A full 24-parameter motion expansion is heavily collinear; a few
//     principal components capture most of its variance with far fewer
//     regressors spent.
//
// Determinism:
//
//   - Fixed traversal order, max-off-diagonal Jacobi pivoting, ties
//     broken by lowest index, and a sign convention (largest-magnitude
//     loading of each component is positive) make Reduce reproducible
//     bit-for-bit across runs.
//
// Complexity:
//
//   - Time O(r·c + sweeps·c³) for r rows and c columns; motion use
//     has c ≤ 24, so the eigen step is negligible.
//   - Memory O(r·c).
//
// Errors:
//
//   - ErrNoData        — no columns, or fewer than two complete rows.
//   - ErrBadComponents — k < 1 or k > min(rows, cols).
//   - ErrEigenFailed   — Jacobi rotations did not converge.
package pca
