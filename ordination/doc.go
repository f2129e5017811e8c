// Package ordination projects a set of discrete probability distributions
// into a low-dimensional space via divergence-based principal coordinates
// analysis (PCoA, classical multidimensional scaling on a distance matrix).
//
// 🚀 What is it for?
//
//	Topic models describe each topic as a distribution over the vocabulary.
//	To draw topics as points on a plane, we need a notion of distance
//	between distributions and a projection that preserves those distances
//	as well as possible in 2D:
//	  • JensenShannon — symmetric, bounded divergence between two distributions
//	  • DistanceMatrix — full pairwise divergence matrix for K distributions
//	  • PCoA — double-centering + eigendecomposition of a distance matrix
//	  • JSPCoA — the composition of the three; the default topic projection
//
// ✨ Key properties:
//   - Deterministic: no randomness, stable output for identical input
//   - Zero-safe: 0·log(0/·) terms contribute 0 (entropy convention)
//   - Strict sentinels: ErrDistanceShape, ErrEigenFailed; no panics on input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ldaviz/ordination"
//
//	coords, err := ordination.JSPCoA(topicTermDists) // K×W in, K×2 out
//
// Complexity:
//   - DistanceMatrix: O(K²·W)
//   - PCoA:           O(K³) (dense symmetric eigendecomposition)
package ordination
