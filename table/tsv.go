package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// confoundsSuffix is the fMRIPrep naming for the confounds sidecar of a
// preprocessed image: the "_space-..." tail of the image file name is
// replaced by this suffix.
const confoundsSuffix = "_desc-confounds_regressors.tsv"

// ReadTSV loads a tab-separated confounds file with a header row and
// UTF-8 encoding, as emitted by fMRIPrep.
func ReadTSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseTSV(f)
}

// ParseTSV reads a tab-separated stream: one header row naming the
// columns, then one record per time point. Cells that do not parse as
// float64 (fMRIPrep writes "n/a" for missing values) become NaN.
// Records with a field count differing from the header are rejected.
func ParseTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("table: read header: %w", err)
	}

	cols := make([][]float64, len(header))
	for i := range cols {
		cols[i] = []float64{}
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read record: %w", err)
		}
		for i, cell := range rec {
			cols[i] = append(cols[i], parseCell(cell))
		}
	}

	return New(header, cols)
}

// parseCell converts one TSV cell to float64, mapping anything
// non-numeric ("n/a", "", free text) to NaN.
func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// ConfoundsPath derives the confounds-TSV path that sits next to a
// preprocessed image: for a path ending in a known image suffix
// (".nii", ".nii.gz"), the "_space-..." tail is replaced by
// "_desc-confounds_regressors.tsv". Any other path is returned
// unchanged, so TSV paths can be passed through directly.
//
// Returns ErrBadImagePath if an image path carries no "_space-" tag.
func ConfoundsPath(path string) (string, error) {
	if !strings.HasSuffix(path, ".nii") && !strings.HasSuffix(path, ".nii.gz") {
		return path, nil
	}
	idx := strings.Index(path, "_space-")
	if idx < 0 {
		return "", ErrBadImagePath
	}

	return path[:idx] + confoundsSuffix, nil
}
