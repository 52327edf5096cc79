package confounds_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/neurokit/confounds/confounds"
	"github.com/neurokit/confounds/table"
	"github.com/stretchr/testify/require"
)

// syntheticNames is a plausible fMRIPrep confounds header: fully
// expanded motion, wm/csf and global signal, three cosine drift
// regressors, six anatomical and six temporal CompCor components, and
// two unrelated columns that must never leak into results.
func syntheticNames() []string {
	names := confounds.ExpandNames(
		[]string{"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z"},
		confounds.Full,
	)
	names = append(names, confounds.ExpandNames(
		[]string{"csf", "white_matter"}, confounds.Full)...)
	names = append(names, confounds.ExpandNames(
		[]string{"global_signal"}, confounds.Full)...)
	names = append(names, "cosine00", "cosine01", "cosine02")
	for _, prefix := range []string{"a", "t"} {
		for i := 0; i < 6; i++ {
			names = append(names, fmt.Sprintf("%s_comp_cor_%02d", prefix, i))
		}
	}
	names = append(names, "framewise_displacement", "std_dvars")

	return names
}

// newSyntheticTable builds a deterministic, non-degenerate raw table
// with the syntheticNames header and the given number of rows.
func newSyntheticTable(t *testing.T, rows int) *table.Table {
	t.Helper()
	names := syntheticNames()
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			cols[j][i] = math.Sin(float64(i+1)*0.31*float64(j+1)) + 0.01*float64(j)
		}
	}
	tb, err := table.New(names, cols)
	require.NoError(t, err)

	return tb
}

// newTableWith builds a small table from explicit names, filling each
// column with a deterministic ramp.
func newTableWith(t *testing.T, rows int, names ...string) *table.Table {
	t.Helper()
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			cols[j][i] = float64(i+1) * float64(j+1)
		}
	}
	tb, err := table.New(names, cols)
	require.NoError(t, err)

	return tb
}
