package confounds

import "errors"

var (
	// ErrInvalidStrategy indicates an empty strategy, an unknown or
	// repeated category, or a negative component count.
	ErrInvalidStrategy = errors.New("confounds: invalid strategy")

	// ErrUnknownMode indicates an expansion mode or compcor variant
	// outside the supported set. Unknown modes are rejected eagerly
	// rather than silently treated as Basic.
	ErrUnknownMode = errors.New("confounds: unknown expansion mode or compcor variant")

	// ErrMissingColumn indicates an expected column cannot be found in
	// the raw confounds; a different denoising strategy may be needed.
	ErrMissingColumn = errors.New("confounds: column not found in raw confounds; consider a different denoising strategy")

	// ErrNoMatchingColumn indicates a keyword search matched nothing.
	ErrNoMatchingColumn = errors.New("confounds: no column matches keyword")

	// ErrNilTable indicates a nil raw table was passed to a load call.
	ErrNilTable = errors.New("confounds: raw table is nil")
)
