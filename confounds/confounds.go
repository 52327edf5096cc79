package confounds

import (
	"fmt"

	"github.com/neurokit/confounds/table"
)

// Loader applies a validated denoising strategy to raw confound tables.
//
// Construct once with NewLoader (or a preset), then reuse across any
// number of inputs: the configuration is immutable after construction,
// and every load is independent. The most recent result and its
// diagnostics stay accessible via Confounds, AllConfounds and
// Diagnostics.
type Loader struct {
	strategy []Category
	active   [numCategories]bool
	opts     Options

	confounds    *table.Table
	allConfounds []*table.Table
	diags        []Diagnostic
}

// NewLoader builds a Loader for the given strategy, validating
// everything eagerly — before any table is touched:
//
//   - strategy must be non-empty, with known, non-repeated categories
//     (ErrInvalidStrategy);
//   - expansion modes and the compcor variant must be members of their
//     closed enums (ErrUnknownMode);
//   - component counts must be non-negative (ErrInvalidStrategy).
func NewLoader(strategy []Category, opts ...Option) (*Loader, error) {
	if len(strategy) == 0 {
		return nil, fmt.Errorf("at least one category is required: %w", ErrInvalidStrategy)
	}

	l := &Loader{
		strategy: make([]Category, len(strategy)),
		opts:     DefaultOptions(),
	}
	for _, o := range opts {
		o(&l.opts)
	}
	copy(l.strategy, strategy)

	for _, c := range strategy {
		if c < Motion || c >= numCategories {
			return nil, fmt.Errorf("%s is not a supported confound category: %w", c, ErrInvalidStrategy)
		}
		if l.active[c] {
			return nil, fmt.Errorf("category %s repeated: %w", c, ErrInvalidStrategy)
		}
		l.active[c] = true
	}
	if err := validateOptions(l.opts); err != nil {
		return nil, err
	}

	return l, nil
}

// validateOptions rejects out-of-enum modes/variants and negative
// counts. Unknown modes are an error here, never a silent Basic.
func validateOptions(o Options) error {
	for _, m := range []ExpansionMode{o.Motion, o.WMCSF, o.GlobalSignal} {
		if m < Basic || m > Full {
			return fmt.Errorf("%s: %w", m, ErrUnknownMode)
		}
	}
	if o.CompCor < CompCorAnat || o.CompCor > CompCorFull {
		return fmt.Errorf("%s: %w", o.CompCor, ErrUnknownMode)
	}
	if o.MotionPCA < 0 {
		return fmt.Errorf("motion pca count must be non-negative: %w", ErrInvalidStrategy)
	}
	if o.NCompCor < 0 {
		return fmt.Errorf("compcor component bound must be non-negative: %w", ErrInvalidStrategy)
	}

	return nil
}

// Load selects the configured confounds from one raw table and returns
// the result table, which is also retained on the Loader. A fatal
// error (missing column, no keyword match, row misalignment after
// motion PCA) yields no partial result.
func (l *Loader) Load(raw *table.Table) (*table.Table, error) {
	out, diags, err := l.loadSingle(raw)
	if err != nil {
		return nil, err
	}
	l.confounds, l.allConfounds, l.diags = out, nil, diags

	return out, nil
}

// LoadFile reads one confounds file and loads it. A path ending in a
// known image suffix is first mapped to its sibling confounds TSV (see
// table.ConfoundsPath).
func (l *Loader) LoadFile(path string) (*table.Table, error) {
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}

	return l.Load(raw)
}

// LoadAll loads a sequence of raw tables, returning one result per
// input in input order. Inputs are processed independently; the first
// fatal error aborts the call with no results retained.
func (l *Loader) LoadAll(raws []*table.Table) ([]*table.Table, error) {
	outs := make([]*table.Table, len(raws))
	var diags []Diagnostic
	for i, raw := range raws {
		out, d, err := l.loadSingle(raw)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		outs[i] = out
		diags = append(diags, d...)
	}
	l.confounds, l.allConfounds, l.diags = nil, outs, diags

	return outs, nil
}

// LoadFiles reads and loads a sequence of confounds files, with the
// same path convenience and ordering guarantees as LoadFile/LoadAll.
func (l *Loader) LoadFiles(paths []string) ([]*table.Table, error) {
	raws := make([]*table.Table, len(paths))
	for i, path := range paths {
		raw, err := readInput(path)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		raws[i] = raw
	}

	return l.LoadAll(raws)
}

// Confounds returns the result of the last single-input load, or nil.
func (l *Loader) Confounds() *table.Table { return l.confounds }

// AllConfounds returns the results of the last multi-input load, or nil.
func (l *Loader) AllConfounds() []*table.Table { return l.allConfounds }

// Diagnostics returns the non-fatal diagnostics gathered by the last
// load (absent CompCor component columns), or nil.
func (l *Loader) Diagnostics() []Diagnostic { return l.diags }

// Strategy returns the categories this loader was built with, in the
// order given at construction.
func (l *Loader) Strategy() []Category {
	out := make([]Category, len(l.strategy))
	copy(out, l.strategy)

	return out
}

// Options returns the resolved per-category configuration.
func (l *Loader) Options() Options { return l.opts }

// loadSingle runs the active category loaders against one raw table in
// the fixed order motion, high_pass, wm_csf, global, compcor, and
// concatenates their column slices. Validators and finders always
// consult the raw table, never the partially built output.
func (l *Loader) loadSingle(raw *table.Table) (*table.Table, []Diagnostic, error) {
	if raw == nil {
		return nil, nil, ErrNilTable
	}

	var parts []*table.Table
	var diags []Diagnostic

	if l.active[Motion] {
		part, err := loadMotion(raw, l.opts.Motion, l.opts.MotionPCA)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, part)
	}
	if l.active[HighPass] {
		part, err := loadHighPass(raw)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, part)
	}
	if l.active[WMCSF] {
		part, err := loadWMCSF(raw, l.opts.WMCSF)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, part)
	}
	if l.active[GlobalSignal] {
		part, err := loadGlobal(raw, l.opts.GlobalSignal)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, part)
	}
	if l.active[CompCor] {
		part, d, err := loadCompCor(raw, l.opts.CompCor, l.opts.NCompCor)
		if err != nil {
			return nil, nil, err
		}
		diags = append(diags, d...)
		parts = append(parts, part)
	}

	out, err := table.Concat(parts...)
	if err != nil {
		// Motion PCA may have dropped NaN rows; mixing the shortened
		// slice with full-length categories is rejected rather than
		// silently misaligning time points.
		return nil, nil, fmt.Errorf("concatenating categories: %w", err)
	}

	return out, diags, nil
}

// readInput resolves the path convenience and reads the TSV.
func readInput(path string) (*table.Table, error) {
	resolved, err := table.ConfoundsPath(path)
	if err != nil {
		return nil, err
	}

	return table.ReadTSV(resolved)
}
