package confounds

import (
	"fmt"
	"sort"

	"github.com/neurokit/confounds/pca"
	"github.com/neurokit/confounds/table"
)

// Base parameter names per category, per the fMRIPrep naming convention.
var (
	motionParams = []string{"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z"}
	wmCSFParams  = []string{"csf", "white_matter"}
	globalParams = []string{"global_signal"}
)

// highPassKeyword discovers the discrete-cosine drift regressors.
const highPassKeyword = "cosine"

// CompCor column prefixes: anatomical and temporal.
const (
	compCorAnatPrefix = "a"
	compCorTempPrefix = "t"
)

// loadMotion extracts the expanded head-motion columns and, when
// nPCA > 0, compresses them to motion_pca_1..nPCA principal components.
// PCA drops rows containing NaN, so the reduced slice may be shorter
// than the raw table; the orchestrator's concatenation rejects such a
// mix with other categories.
func loadMotion(raw *table.Table, mode ExpansionMode, nPCA int) (*table.Table, error) {
	names := ExpandNames(motionParams, mode)
	if err := checkColumns(raw, names, Motion); err != nil {
		return nil, err
	}
	sel, err := raw.Select(names...)
	if err != nil {
		return nil, err
	}
	if nPCA <= 0 {
		return sel, nil
	}

	cols := make([][]float64, 0, sel.Len())
	for _, name := range sel.Names() {
		col, err := sel.Col(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	scores, err := pca.Reduce(cols, nPCA)
	if err != nil {
		return nil, fmt.Errorf("%s: pca: %w", Motion, err)
	}
	outNames := make([]string, nPCA)
	for i := range outNames {
		outNames[i] = fmt.Sprintf("motion_pca_%d", i+1)
	}

	return table.New(outNames, scores)
}

// loadHighPass extracts every cosine drift regressor by keyword.
func loadHighPass(raw *table.Table) (*table.Table, error) {
	names, err := findByKeyword(raw, []string{highPassKeyword})
	if err != nil {
		return nil, err
	}

	return raw.Select(names...)
}

// loadWMCSF extracts the expanded white-matter and CSF averages.
func loadWMCSF(raw *table.Table, mode ExpansionMode) (*table.Table, error) {
	names := ExpandNames(wmCSFParams, mode)
	if err := checkColumns(raw, names, WMCSF); err != nil {
		return nil, err
	}

	return raw.Select(names...)
}

// loadGlobal extracts the expanded global-signal columns.
func loadGlobal(raw *table.Table, mode ExpansionMode) (*table.Table, error) {
	names := ExpandNames(globalParams, mode)
	if err := checkColumns(raw, names, GlobalSignal); err != nil {
		return nil, err
	}

	return raw.Select(names...)
}

// loadCompCor extracts component-based correction regressors for the
// given variant, requesting indices 0..n. Found names are sorted
// lexicographically (significant for CompCorFull, where anatomical and
// temporal lists merge) and re-validated as a consistency check.
// Absent indices come back as diagnostics; a load where every index is
// absent is fatal, since an empty category cannot be represented.
func loadCompCor(raw *table.Table, variant CompCorVariant, n int) (*table.Table, []Diagnostic, error) {
	var names []string
	var diags []Diagnostic
	switch variant {
	case CompCorAnat:
		names, diags = labelCompCor(raw, compCorAnatPrefix, n)
	case CompCorTemp:
		names, diags = labelCompCor(raw, compCorTempPrefix, n)
	case CompCorFull:
		anat, anatDiags := labelCompCor(raw, compCorAnatPrefix, n)
		temp, tempDiags := labelCompCor(raw, compCorTempPrefix, n)
		names = append(anat, temp...)
		diags = append(anatDiags, tempDiags...)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, diags, fmt.Errorf("%s: no %s component up to index %d: %w",
			CompCor, variant, n, ErrMissingColumn)
	}
	if err := checkColumns(raw, names, CompCor); err != nil {
		return nil, diags, err
	}

	sel, err := raw.Select(names...)
	if err != nil {
		return nil, diags, err
	}

	return sel, diags, nil
}
