package pca

import "errors"

// Numeric policy for the Jacobi eigendecomposition.
const (
	// jacobiTol is the off-diagonal magnitude below which the working
	// matrix is considered diagonal.
	jacobiTol = 1e-12

	// jacobiMaxRotations bounds the number of single Jacobi rotations
	// per call; generous for the c ≤ 24 matrices seen in motion use.
	jacobiMaxRotations = 10000
)

// Sentinel errors returned by the pca package.
var (
	// ErrNoData indicates an input with no columns or with fewer than
	// two rows surviving NaN removal (a sample covariance needs two).
	ErrNoData = errors.New("pca: need at least one column and two complete rows")

	// ErrBadComponents indicates a component count outside
	// [1, min(rows, cols)].
	ErrBadComponents = errors.New("pca: component count out of range")

	// ErrEigenFailed indicates the Jacobi rotations did not converge
	// within the rotation budget.
	ErrEigenFailed = errors.New("pca: eigen decomposition did not converge")
)
