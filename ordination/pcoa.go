package ordination

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDistanceShape is returned when a distance matrix is empty or not square.
	ErrDistanceShape = errors.New("ordination: distance matrix must be square and non-empty")

	// ErrEigenFailed is returned when the symmetric eigendecomposition does not converge.
	ErrEigenFailed = errors.New("ordination: eigendecomposition failed")
)

// PCoA runs principal coordinates analysis on a symmetric distance matrix dm
// and returns one row of dims coordinates per input point.
//
// Algorithm (classical MDS):
//  1. Square the distances: D2[i][j] = dm[i][j]².
//  2. Double-center: B = −0.5·J·D2·J with J = I − 11ᵀ/n, computed directly as
//     b_ij = −0.5·(d2_ij − rowmean_i − colmean_j + grandmean).
//  3. Eigendecompose B (symmetric) and keep the dims largest eigenvalues.
//  4. Coordinate axis a = eigenvector_a · √eigenvalue_a.
//
// Non-positive eigenvalues (possible when the distances are not perfectly
// Euclidean) yield an all-zero axis rather than complex coordinates.
//
// Errors: ErrDistanceShape if dm is empty or ragged, ErrEigenFailed if the
// decomposition does not converge.
func PCoA(dm [][]float64, dims int) ([][]float64, error) {
	n := len(dm)
	if n == 0 || dims <= 0 {
		return nil, ErrDistanceShape
	}
	for i := range dm {
		if len(dm[i]) != n {
			return nil, ErrDistanceShape
		}
	}

	// Squared distances and their row/grand means.
	d2 := make([][]float64, n)
	rowMean := make([]float64, n)
	var grand float64
	for i := range dm {
		d2[i] = make([]float64, n)
		for j := range dm[i] {
			v := dm[i][j] * dm[i][j]
			d2[i][j] = v
			rowMean[i] += v
		}
		rowMean[i] /= float64(n)
		grand += rowMean[i]
	}
	grand /= float64(n)

	// Double-centered Gower matrix. dm is symmetric, so column means equal row means.
	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, -0.5*(d2[i][j]-rowMean[i]-rowMean[j]+grand))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// gonum returns eigenvalues in ascending order; walk from the back.
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, dims)
	}
	for a := 0; a < dims && a < n; a++ {
		idx := n - 1 - a
		if vals[idx] <= 0 {
			continue
		}
		scale := math.Sqrt(vals[idx])
		for i := 0; i < n; i++ {
			coords[i][a] = vecs.At(i, idx) * scale
		}
	}

	return coords, nil
}

// JSPCoA maps K probability distributions to K×2 coordinates by running PCoA
// on their pairwise Jensen–Shannon divergence matrix. This is the default
// topic projection strategy for prepare.Prepare.
func JSPCoA(dists [][]float64) ([][]float64, error) {
	return PCoA(DistanceMatrix(dists), 2)
}
