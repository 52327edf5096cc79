package confounds_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurokit/confounds/confounds"
	"github.com/neurokit/confounds/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLoader_InvalidStrategy verifies every eager rejection happens
// at construction, before any table is read.
func TestNewLoader_InvalidStrategy(t *testing.T) {
	_, err := confounds.NewLoader(nil)
	assert.ErrorIs(t, err, confounds.ErrInvalidStrategy, "empty strategy must error")

	_, err = confounds.NewLoader([]confounds.Category{})
	assert.ErrorIs(t, err, confounds.ErrInvalidStrategy, "zero-length strategy must error")

	_, err = confounds.NewLoader([]confounds.Category{confounds.Motion, confounds.Category(99)})
	assert.ErrorIs(t, err, confounds.ErrInvalidStrategy, "unknown category must error")

	_, err = confounds.NewLoader([]confounds.Category{confounds.Motion, confounds.Motion})
	assert.ErrorIs(t, err, confounds.ErrInvalidStrategy, "repeated category must error")

	_, err = confounds.NewLoader(
		[]confounds.Category{confounds.Motion},
		confounds.WithMotionPCA(-1),
	)
	assert.ErrorIs(t, err, confounds.ErrInvalidStrategy, "negative pca count must error")

	_, err = confounds.NewLoader(
		[]confounds.Category{confounds.CompCor},
		confounds.WithNCompCor(-2),
	)
	assert.ErrorIs(t, err, confounds.ErrInvalidStrategy, "negative compcor bound must error")
}

// TestNewLoader_UnknownMode confirms out-of-enum modes and variants are
// rejected rather than silently treated as Basic.
func TestNewLoader_UnknownMode(t *testing.T) {
	_, err := confounds.NewLoader(
		[]confounds.Category{confounds.Motion},
		confounds.WithMotion(confounds.ExpansionMode(42)),
	)
	assert.ErrorIs(t, err, confounds.ErrUnknownMode)

	_, err = confounds.NewLoader(
		[]confounds.Category{confounds.WMCSF},
		confounds.WithWMCSF(confounds.ExpansionMode(-1)),
	)
	assert.ErrorIs(t, err, confounds.ErrUnknownMode)

	_, err = confounds.NewLoader(
		[]confounds.Category{confounds.CompCor},
		confounds.WithCompCor(confounds.CompCorVariant(7)),
	)
	assert.ErrorIs(t, err, confounds.ErrUnknownMode)
}

// TestLoad_MotionHighPass is the exact-column orchestration property:
// strategy {high_pass, motion} with basic motion on a table holding two
// cosines, six motion parameters and unrelated noise columns returns
// exactly those eight columns in fixed category order, nothing else.
func TestLoad_MotionHighPass(t *testing.T) {
	raw := newTableWith(t, 5,
		"cosine00", "cosine01",
		"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z",
		"framewise_displacement", "std_dvars",
	)
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.HighPass, confounds.Motion},
		confounds.WithMotion(confounds.Basic),
	)
	require.NoError(t, err)

	out, err := l.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z",
		"cosine00", "cosine01",
	}, out.Names(), "motion precedes high_pass regardless of strategy order")
	assert.Equal(t, 5, out.Rows())
}

// TestLoad_MissingColumn verifies the fatal missing-column path: no
// partial result, the sentinel matches, and the retained result stays
// untouched.
func TestLoad_MissingColumn(t *testing.T) {
	raw := newTableWith(t, 4, "csf", "cosine00") // white_matter absent
	l, err := confounds.NewLoader([]confounds.Category{confounds.WMCSF})
	require.NoError(t, err)

	out, err := l.Load(raw)
	assert.ErrorIs(t, err, confounds.ErrMissingColumn)
	assert.Nil(t, out, "no partial result on fatal error")
	assert.Nil(t, l.Confounds(), "retained result must stay empty")
}

// TestLoad_NoMatchingColumn verifies the keyword-finder failure path.
func TestLoad_NoMatchingColumn(t *testing.T) {
	raw := newTableWith(t, 4, "trans_x", "csf") // no cosine columns
	l, err := confounds.NewLoader([]confounds.Category{confounds.HighPass})
	require.NoError(t, err)

	_, err = l.Load(raw)
	assert.ErrorIs(t, err, confounds.ErrNoMatchingColumn)
}

// TestLoad_CompCorDiagnostics is the indexed-selector property:
// requesting indices 0..6 where only 0..3 exist yields exactly four
// columns plus one diagnostic per absent index, without failing.
func TestLoad_CompCorDiagnostics(t *testing.T) {
	raw := newTableWith(t, 4,
		"a_comp_cor_00", "a_comp_cor_01", "a_comp_cor_02", "a_comp_cor_03",
	)
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.CompCor},
		confounds.WithCompCor(confounds.CompCorAnat),
		confounds.WithNCompCor(6),
	)
	require.NoError(t, err)

	out, err := l.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a_comp_cor_00", "a_comp_cor_01", "a_comp_cor_02", "a_comp_cor_03",
	}, out.Names())

	diags := l.Diagnostics()
	require.Len(t, diags, 3, "one diagnostic per absent index 04..06")
	assert.Equal(t, "a_comp_cor_04", diags[0].Column)
	assert.Equal(t, "a_comp_cor_05", diags[1].Column)
	assert.Equal(t, "a_comp_cor_06", diags[2].Column)
	assert.Equal(t, confounds.CompCor, diags[0].Category)
}

// TestLoad_CompCorFull verifies the full variant merges anatomical and
// temporal components and sorts the union lexicographically.
func TestLoad_CompCorFull(t *testing.T) {
	raw := newSyntheticTable(t, 6)
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.CompCor},
		confounds.WithCompCor(confounds.CompCorFull),
		confounds.WithNCompCor(1),
	)
	require.NoError(t, err)

	out, err := l.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a_comp_cor_00", "a_comp_cor_01",
		"t_comp_cor_00", "t_comp_cor_01",
	}, out.Names())
	assert.Empty(t, l.Diagnostics(), "all requested components exist")
}

// TestLoad_CompCorAllAbsent confirms a compcor request with no
// surviving component is fatal, not an empty result.
func TestLoad_CompCorAllAbsent(t *testing.T) {
	raw := newTableWith(t, 4, "csf", "trans_x")
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.CompCor},
		confounds.WithNCompCor(3),
	)
	require.NoError(t, err)

	_, err = l.Load(raw)
	assert.ErrorIs(t, err, confounds.ErrMissingColumn)
}

// TestLoad_MotionPCA verifies the reducer property end to end: full
// motion expansion compressed to k components named motion_pca_1..k,
// preserving the row count when no NaN is present.
func TestLoad_MotionPCA(t *testing.T) {
	raw := newSyntheticTable(t, 30)
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.Motion},
		confounds.WithMotion(confounds.Full),
		confounds.WithMotionPCA(3),
	)
	require.NoError(t, err)

	out, err := l.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"motion_pca_1", "motion_pca_2", "motion_pca_3"}, out.Names())
	assert.Equal(t, 30, out.Rows())
}

// TestLoad_MotionPCARowPolicy exercises the documented row-alignment
// policy: a PCA-shortened motion slice may stand alone, but mixing it
// with a full-length category is rejected instead of silently
// misaligning time points.
func TestLoad_MotionPCARowPolicy(t *testing.T) {
	names := append(
		confounds.ExpandNames(
			[]string{"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z"},
			confounds.Basic,
		),
		"cosine00",
	)
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, 10)
		for i := range cols[j] {
			cols[j][i] = math.Sin(float64(i+2) * 0.7 * float64(j+1))
		}
	}
	cols[0][4] = math.NaN() // one incomplete motion row
	raw, err := table.New(names, cols)
	require.NoError(t, err)

	alone, err := confounds.NewLoader(
		[]confounds.Category{confounds.Motion},
		confounds.WithMotion(confounds.Basic),
		confounds.WithMotionPCA(2),
	)
	require.NoError(t, err)
	out, err := alone.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, 9, out.Rows(), "NaN row dropped when motion stands alone")

	mixed, err := confounds.NewLoader(
		[]confounds.Category{confounds.Motion, confounds.HighPass},
		confounds.WithMotion(confounds.Basic),
		confounds.WithMotionPCA(2),
	)
	require.NoError(t, err)
	_, err = mixed.Load(raw)
	assert.ErrorIs(t, err, table.ErrRowMismatch, "shortened motion cannot join full-length categories")
}

// TestLoad_NilTable covers the nil-input sentinel.
func TestLoad_NilTable(t *testing.T) {
	l, err := confounds.NewLoader([]confounds.Category{confounds.Motion})
	require.NoError(t, err)

	_, err = l.Load(nil)
	assert.ErrorIs(t, err, confounds.ErrNilTable)
}

// TestLoadAll verifies multi-input ordering, the retained batch result,
// and that a single-input Load retains a single table instead.
func TestLoadAll(t *testing.T) {
	first := newSyntheticTable(t, 5)
	second := newSyntheticTable(t, 8)
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.Motion},
		confounds.WithMotion(confounds.Basic),
	)
	require.NoError(t, err)

	outs, err := l.LoadAll([]*table.Table{first, second})
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, 5, outs[0].Rows(), "input order preserved")
	assert.Equal(t, 8, outs[1].Rows())
	assert.Len(t, l.AllConfounds(), 2)
	assert.Nil(t, l.Confounds(), "batch load retains no single result")

	single, err := l.Load(first)
	require.NoError(t, err)
	assert.Same(t, single, l.Confounds())
	assert.Nil(t, l.AllConfounds(), "single load retains no batch result")
}

// TestLoad_Deterministic is the round-trip property: loading the same
// table twice with the same configuration yields column- and
// value-identical results.
func TestLoad_Deterministic(t *testing.T) {
	raw := newSyntheticTable(t, 12)
	l, err := confounds.NewLoader(
		[]confounds.Category{
			confounds.Motion, confounds.HighPass, confounds.WMCSF,
			confounds.GlobalSignal, confounds.CompCor,
		},
		confounds.WithMotion(confounds.Full),
		confounds.WithWMCSF(confounds.Derivatives),
		confounds.WithGlobalSignal(confounds.Power2),
		confounds.WithNCompCor(5),
	)
	require.NoError(t, err)

	first, err := l.Load(raw)
	require.NoError(t, err)
	second, err := l.Load(raw)
	require.NoError(t, err)

	require.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		a, err := first.Col(name)
		require.NoError(t, err)
		b, err := second.Col(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, "column %s must be value-identical", name)
	}
}

// TestLoadFile verifies TSV ingestion through the loader, including the
// image-path convenience.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	tsv := "trans_x\ttrans_y\ttrans_z\trot_x\trot_y\trot_z\tcosine00\n" +
		"0.1\t0.2\t0.3\t0.01\t0.02\t0.03\t0.5\n" +
		"0.2\t0.3\t0.4\t0.02\t0.03\t0.04\t0.4\n"
	path := filepath.Join(dir, "sub-01_task-rest_desc-confounds_regressors.tsv")
	require.NoError(t, os.WriteFile(path, []byte(tsv), 0o644))

	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.Motion, confounds.HighPass},
		confounds.WithMotion(confounds.Basic),
	)
	require.NoError(t, err)

	out, err := l.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Len())
	assert.Equal(t, 2, out.Rows())

	// Image path resolves to the sibling confounds TSV written above.
	img := filepath.Join(dir, "sub-01_task-rest_space-MNI152NLin2009cAsym_desc-preproc_bold.nii.gz")
	out, err = l.LoadFile(img)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows())

	outs, err := l.LoadFiles([]string{path, path})
	require.NoError(t, err)
	assert.Len(t, outs, 2)

	_, err = l.LoadFile(filepath.Join(dir, "absent.tsv"))
	assert.Error(t, err)
}

// TestLoaderAccessors covers Strategy and Options round-trips.
func TestLoaderAccessors(t *testing.T) {
	l, err := confounds.NewLoader(
		[]confounds.Category{confounds.CompCor, confounds.Motion},
		confounds.WithMotionPCA(2),
		confounds.WithNCompCor(4),
	)
	require.NoError(t, err)

	assert.Equal(t, []confounds.Category{confounds.CompCor, confounds.Motion}, l.Strategy())
	opts := l.Options()
	assert.Equal(t, 2, opts.MotionPCA)
	assert.Equal(t, 4, opts.NCompCor)
	assert.Equal(t, confounds.Full, opts.Motion, "defaults fill unset fields")
}
