package prepare

// termTopicFrequency estimates how many corpus occurrences of each term are
// attributable to each topic: each (post-reorder) topic row of the
// distribution matrix scaled by that topic's total mass, then rescaled per
// term so that summing the estimate over topics reproduces the true corpus
// TermFrequency exactly, eliminating floating drift. Terms whose raw
// estimate sums to zero are left at zero rather than dividing by zero.
//
// The result feeds both the displayed per-topic Freq column and the token
// table.
func termTopicFrequency(topicTermDists [][]float64, topicFreq, termFrequency []float64) [][]float64 {
	k := len(topicTermDists)
	w := len(termFrequency)

	ttf := make([][]float64, k)
	colSum := make([]float64, w)
	for t := 0; t < k; t++ {
		row := make([]float64, w)
		for j := 0; j < w; j++ {
			row[j] = topicTermDists[t][j] * topicFreq[t]
			colSum[j] += row[j]
		}
		ttf[t] = row
	}

	for j := 0; j < w; j++ {
		if colSum[j] == 0 {
			continue
		}
		correction := termFrequency[j] / colSum[j]
		for t := 0; t < k; t++ {
			ttf[t][j] *= correction
		}
	}

	return ttf
}
