package ordination

import "math"

// JensenShannon returns the Jensen–Shannon divergence between two discrete
// distributions p and q over the same support:
//
//	JSD(p,q) = 0.5·KL(p‖m) + 0.5·KL(q‖m),  m = 0.5·(p+q)
//
// Entries where p[i] (resp. q[i]) is zero contribute nothing to the
// corresponding KL term (the 0·log(0/·)=0 entropy convention), so the result
// is always finite and lies in [0, ln 2].
//
// Both slices must have the same length; p and q are assumed to be valid
// probability distributions (the caller validates upstream).
func JensenShannon(p, q []float64) float64 {
	var kp, kq float64
	for i := range p {
		m := 0.5 * (p[i] + q[i])
		if p[i] > 0 {
			kp += p[i] * math.Log(p[i]/m)
		}
		if q[i] > 0 {
			kq += q[i] * math.Log(q[i]/m)
		}
	}

	return 0.5 * (kp + kq)
}

// DistanceMatrix builds the full K×K symmetric Jensen–Shannon divergence
// matrix for K distributions. The diagonal is zero and each off-diagonal
// entry is computed once and mirrored.
//
// Complexity: O(K²·W) for K distributions over W support points.
func DistanceMatrix(dists [][]float64) [][]float64 {
	k := len(dists)
	dm := make([][]float64, k)
	for i := range dm {
		dm[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d := JensenShannon(dists[i], dists[j])
			dm[i][j] = d
			dm[j][i] = d
		}
	}

	return dm
}
