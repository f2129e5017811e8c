package prepare

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// termProportions returns each term's share of the whole corpus:
// TermFrequency / sum(TermFrequency).
func termProportions(termFrequency []float64) []float64 {
	total := floats.Sum(termFrequency)
	prop := make([]float64, len(termFrequency))
	if total == 0 {
		return prop
	}
	for i, f := range termFrequency {
		prop[i] = f / total
	}

	return prop
}

// topIndicesByScore returns the indices of the r largest scores in descending
// order. Ties are broken by ascending index, so the ranking is deterministic
// for any input. −Inf scores sort last and are only retained when r exceeds
// the number of finite scores.
func topIndicesByScore(scores []float64, r int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if r < len(idx) {
		idx = idx[:r]
	}

	return idx
}

// defaultTermInfo ranks terms for the topic-agnostic "Default" view.
//
// Saliency(term) = term_proportion(term) × distinctiveness(term), where
// distinctiveness is the KL divergence of the term's topic-given-term
// profile from the overall topic proportion. Zero entries contribute 0
// (entropy convention).
//
// The top r terms by saliency get the synthetic descending ranks r..1
// written to BOTH LogProb and LogLift. These are placeholder ranks, not
// probabilities: the default view orders by saliency rather than by any
// specific topic, and the client only needs monotone values to sort the
// bars by. Preserved exactly as a display convention.
func defaultTermInfo(topicTermDists [][]float64, topicProportion, termFrequency []float64, vocab []string, r int) ([]TermInfo, []int) {
	k := len(topicTermDists)
	w := len(vocab)
	termProp := termProportions(termFrequency)

	// Column sums of the distribution matrix normalize each vocabulary
	// column into a distribution of topics given the term.
	colSum := make([]float64, w)
	for t := 0; t < k; t++ {
		floats.Add(colSum, topicTermDists[t])
	}

	saliency := make([]float64, w)
	for j := 0; j < w; j++ {
		if colSum[j] == 0 {
			continue
		}
		var distinctiveness float64
		for t := 0; t < k; t++ {
			given := topicTermDists[t][j] / colSum[j]
			if given > 0 && topicProportion[t] > 0 {
				distinctiveness += given * math.Log(given/topicProportion[t])
			}
		}
		saliency[j] = termProp[j] * distinctiveness
	}

	top := topIndicesByScore(saliency, r)
	rows := make([]TermInfo, len(top))
	for rank, j := range top {
		synthetic := float64(r - rank)
		rows[rank] = TermInfo{
			Term:     vocab[j],
			Freq:     termFrequency[j],
			Total:    termFrequency[j],
			Category: "Default",
			LogProb:  synthetic,
			LogLift:  synthetic,
		}
	}

	return rows, top
}

// logMatrices precomputes the two K×W score components of relevance:
// logProb = log p(term|topic) and logLift = log(p(term|topic)/p(term)).
// Zero probabilities (and zero-frequency terms) yield −Inf, matching the
// limiting behavior of the reference numerics; −Inf entries never win a
// ranking, they are simply ordered last.
func logMatrices(topicTermDists [][]float64, termProp []float64) (logProb, logLift [][]float64) {
	k := len(topicTermDists)
	logProb = make([][]float64, k)
	logLift = make([][]float64, k)
	for t := 0; t < k; t++ {
		w := len(topicTermDists[t])
		lp := make([]float64, w)
		ll := make([]float64, w)
		for j := 0; j < w; j++ {
			p := topicTermDists[t][j]
			if p > 0 {
				lp[j] = math.Log(p)
			} else {
				lp[j] = math.Inf(-1)
			}
			if p > 0 && termProp[j] > 0 {
				ll[j] = math.Log(p / termProp[j])
			} else {
				ll[j] = math.Inf(-1)
			}
		}
		logProb[t] = lp
		logLift[t] = ll
	}

	return logProb, logLift
}

// lambdaSweep generates the relevance weights 0..1 inclusive at the given
// step. The final value is clamped to exactly 1.0 so both endpoints are
// always present even when accumulated floating error would overshoot.
func lambdaSweep(step float64) []float64 {
	n := int(math.Floor(1/step+1e-9)) + 1
	lambdas := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		l := float64(i) * step
		if l > 1 {
			l = 1
		}
		lambdas = append(lambdas, l)
	}
	if lambdas[len(lambdas)-1] < 1 {
		lambdas = append(lambdas, 1)
	}

	return lambdas
}

// chunkCount resolves the NumJobs convention into a chunk count for a sweep
// of the given size: n>0 ⇒ n chunks, n<0 ⇒ NumCPU+1+n chunks ("use most but
// not all cores"), always clamped to [1, size].
func chunkCount(numJobs, size int) int {
	n := numJobs
	if n < 0 {
		n = runtime.NumCPU() + 1 + n
	}
	if n < 1 {
		n = 1
	}
	if n > size {
		n = size
	}

	return n
}

// splitChunks partitions lambdas into n contiguous chunks of near-equal size.
func splitChunks(lambdas []float64, n int) [][]float64 {
	chunks := make([][]float64, 0, n)
	size := (len(lambdas) + n - 1) / n
	for start := 0; start < len(lambdas); start += size {
		end := start + size
		if end > len(lambdas) {
			end = len(lambdas)
		}
		chunks = append(chunks, lambdas[start:end])
	}

	return chunks
}

// rankChunk computes, for every λ in the chunk, the top-r term indices of
// every topic under relevance(λ) = λ·logProb + (1−λ)·logLift. Purely
// functional over its inputs: no shared mutable state with other chunks.
//
// A zero weight silences its component entirely: the sweep endpoints use the
// surviving component alone, because 0·(−Inf) is NaN and a NaN score would
// place a zero-probability term at an arbitrary rank instead of last.
func rankChunk(logProb, logLift [][]float64, r int, lambdas []float64) [][][]int {
	k := len(logProb)
	out := make([][][]int, len(lambdas))
	scores := make([]float64, 0)
	for li, lambda := range lambdas {
		perTopic := make([][]int, k)
		for t := 0; t < k; t++ {
			w := len(logProb[t])
			if cap(scores) < w {
				scores = make([]float64, w)
			}
			scores = scores[:w]
			switch lambda {
			case 0:
				copy(scores, logLift[t])
			case 1:
				copy(scores, logProb[t])
			default:
				for j := 0; j < w; j++ {
					scores[j] = lambda*logProb[t][j] + (1-lambda)*logLift[t][j]
				}
			}
			perTopic[t] = topIndicesByScore(scores, r)
		}
		out[li] = perTopic
	}

	return out
}

// sweepTopTerms fans the λ sweep out over contiguous chunks and joins the
// results back in λ order. Each worker fills its own pre-allocated slot, so
// no locking is needed and scheduling cannot influence the final content;
// the first worker error aborts the whole sweep.
func sweepTopTerms(logProb, logLift [][]float64, r int, lambdas []float64, numJobs int) ([][][]int, error) {
	chunks := splitChunks(lambdas, chunkCount(numJobs, len(lambdas)))
	results := make([][][][]int, len(chunks))

	var g errgroup.Group
	for ci, chunk := range chunks {
		ci, chunk := ci, chunk
		g.Go(func() error {
			results[ci] = rankChunk(logProb, logLift, r, chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	joined := make([][][]int, 0, len(lambdas))
	for _, res := range results {
		joined = append(joined, res...)
	}

	return joined, nil
}

// round4 rounds to 4 decimal places for the displayed log columns.
func round4(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1e4) / 1e4
}

// topicInfo builds the full ranked term table: the Default saliency rows
// followed by one block per topic. A topic's block contains every term that
// appears in its top r for ANY λ in the sweep — the union, not just the
// endpoints — because the client needs every term that could ever show as
// the relevance slider moves. Rows keep first-appearance order (λ ascending,
// rank descending within a λ), which is deterministic.
//
// The second result is the sorted union of the term indices referenced by
// any row (Default included); the token table is restricted to exactly
// these terms.
func topicInfo(am alignedModel, m ModelData, ttf [][]float64, o Options) ([]TermInfo, []int, error) {
	rows, retained := defaultTermInfo(am.topicTermDists, am.topicProportion, m.TermFrequency, m.Vocab, o.R)

	termProp := termProportions(m.TermFrequency)
	logProb, logLift := logMatrices(am.topicTermDists, termProp)
	lambdas := lambdaSweep(o.LambdaStep)

	perLambda, err := sweepTopTerms(logProb, logLift, o.R, lambdas, o.NumJobs)
	if err != nil {
		return nil, nil, fmt.Errorf("relevance sweep: %w", err)
	}

	k := len(am.topicTermDists)
	inUnion := make(map[int]struct{}, len(retained))
	for _, j := range retained {
		inUnion[j] = struct{}{}
	}

	for t := 0; t < k; t++ {
		seen := make(map[int]struct{}, o.R)
		category := fmt.Sprintf("Topic%d", t+1)
		for _, perTopic := range perLambda {
			for _, j := range perTopic[t] {
				if _, ok := seen[j]; ok {
					continue
				}
				seen[j] = struct{}{}
				inUnion[j] = struct{}{}
				rows = append(rows, TermInfo{
					Term:     m.Vocab[j],
					Freq:     ttf[t][j],
					Total:    m.TermFrequency[j],
					Category: category,
					LogProb:  round4(logProb[t][j]),
					LogLift:  round4(logLift[t][j]),
				})
			}
		}
	}

	union := make([]int, 0, len(inUnion))
	for j := range inUnion {
		union = append(union, j)
	}
	sort.Ints(union)

	return rows, union, nil
}
