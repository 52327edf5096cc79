package pca

import (
	"math"
	"sort"
)

// DropNaNRows returns a copy of the column-major data with every row
// containing a NaN (in any column) removed. Column count and order are
// preserved; the input is not modified.
func DropNaNRows(cols [][]float64) [][]float64 {
	out := make([][]float64, len(cols))
	for j := range out {
		out[j] = []float64{}
	}
	if len(cols) == 0 {
		return out
	}
	rows := len(cols[0])
	for r := 0; r < rows; r++ {
		keep := true
		for j := range cols {
			if math.IsNaN(cols[j][r]) {
				keep = false

				break
			}
		}
		if !keep {
			continue
		}
		for j := range cols {
			out[j] = append(out[j], cols[j][r])
		}
	}

	return out
}

// Standardize z-scores each column to zero mean and unit population
// variance. Constant columns (zero variance) become all-zero rather
// than dividing by zero. Returns a new column-major copy.
func Standardize(cols [][]float64) [][]float64 {
	out := make([][]float64, len(cols))
	for j, col := range cols {
		n := len(col)
		z := make([]float64, n)
		out[j] = z
		if n == 0 {
			continue
		}

		var sum float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(n)

		var sq float64
		for _, v := range col {
			d := v - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(n))

		// Degenerate std==0: zero the column, keep it in place.
		invStd := 0.0
		if std > 0 {
			invStd = 1.0 / std
		}
		for i, v := range col {
			z[i] = (v - mean) * invStd
		}
	}

	return out
}

// Reduce projects column-major data onto its k leading principal
// components: rows containing NaN are dropped, columns standardized,
// the sample covariance eigendecomposed, and scores computed against
// the k eigenvectors of largest eigenvalue. The result is column-major
// with k columns, ordered by descending explained variance.
//
// Errors: ErrNoData, ErrBadComponents, ErrEigenFailed.
func Reduce(cols [][]float64, k int) ([][]float64, error) {
	clean := DropNaNRows(cols)
	c := len(clean)
	if c == 0 {
		return nil, ErrNoData
	}
	r := len(clean[0])
	if r < 2 {
		return nil, ErrNoData
	}
	if k < 1 || k > r || k > c {
		return nil, ErrBadComponents
	}

	z := Standardize(clean)

	// Sample covariance of the standardized columns: cov = ZᵀZ/(r-1).
	cov := make([][]float64, c)
	inv := 1.0 / float64(r-1)
	for p := 0; p < c; p++ {
		cov[p] = make([]float64, c)
	}
	for p := 0; p < c; p++ {
		for q := p; q < c; q++ {
			var s float64
			for i := 0; i < r; i++ {
				s += z[p][i] * z[q][i]
			}
			cov[p][q] = s * inv
			cov[q][p] = s * inv
		}
	}

	eigs, vecs, err := jacobiEigen(cov)
	if err != nil {
		return nil, err
	}

	// Order components by descending eigenvalue, ties by lowest index.
	order := make([]int, c)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return eigs[order[a]] > eigs[order[b]]
	})

	// Project onto the k leading components with a fixed sign: the
	// largest-magnitude loading of each component is positive.
	scores := make([][]float64, k)
	for out := 0; out < k; out++ {
		comp := order[out]
		sign := componentSign(vecs, comp)
		col := make([]float64, r)
		for i := 0; i < r; i++ {
			var s float64
			for j := 0; j < c; j++ {
				s += z[j][i] * vecs[j][comp]
			}
			col[i] = s * sign
		}
		scores[out] = col
	}

	return scores, nil
}

// componentSign returns -1 when the largest-magnitude loading of the
// given eigenvector column is negative, +1 otherwise. Ties resolve to
// the lowest row index.
func componentSign(vecs [][]float64, comp int) float64 {
	best, bestAbs := 0.0, -1.0
	for j := range vecs {
		if a := math.Abs(vecs[j][comp]); a > bestAbs {
			bestAbs = a
			best = vecs[j][comp]
		}
	}
	if best < 0 {
		return -1
	}

	return 1
}

// jacobiEigen decomposes a symmetric matrix via classical Jacobi
// rotations with max-off-diagonal pivoting. Returns the eigenvalues
// (diagonal of the converged matrix) and the accumulated rotation
// matrix whose columns are the eigenvectors.
func jacobiEigen(m [][]float64) ([]float64, [][]float64, error) {
	n := len(m)

	// Working copy A and eigenvector accumulator V = I.
	a := make([][]float64, n)
	v := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		copy(a[i], m[i])
		v[i] = make([]float64, n)
		v[i][i] = 1
	}

	for iter := 0; iter < jacobiMaxRotations; iter++ {
		// Locate the largest off-diagonal element.
		p, q, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if n < 2 || maxOff <= jacobiTol {
			eigs := make([]float64, n)
			for i := 0; i < n; i++ {
				eigs[i] = a[i][i]
			}

			return eigs, v, nil
		}

		// Rotation angle zeroing a[p][q].
		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := a[i][p], a[i][q]
			a[i][p] = c*aip - s*aiq
			a[p][i] = a[i][p]
			a[i][q] = s*aip + c*aiq
			a[q][i] = a[i][q]
		}
		a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
		a[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
		a[p][q] = 0
		a[q][p] = 0

		for i := 0; i < n; i++ {
			vip, viq := v[i][p], v[i][q]
			v[i][p] = c*vip - s*viq
			v[i][q] = s*vip + c*viq
		}
	}

	return nil, nil, ErrEigenFailed
}
