package prepare

import (
	"math"
	"sort"
)

// tokenFreqCutoff drops term-topic entries whose raw (pre-normalization)
// frequency estimate is below half an occurrence. This bounds the payload
// sent to the client; it is not a statistical threshold.
const tokenFreqCutoff = 0.5

// buildTokenTable builds the term-highlighting table for exactly the terms
// referenced anywhere in the ranked term table (termIdx, ascending) across
// all K topics. Raw corrected frequencies below tokenFreqCutoff are dropped;
// the rest are rounded to whole counts and divided by the term's corpus
// total, yielding the fraction of the term's occurrences attributable to
// each topic, in [0,1]. Rows are sorted by term label, then 1-based topic id.
func buildTokenTable(termIdx []int, ttf [][]float64, vocab []string, termFrequency []float64) []TokenEntry {
	var rows []TokenEntry
	for _, j := range termIdx {
		for t := range ttf {
			raw := ttf[t][j]
			if raw < tokenFreqCutoff {
				continue
			}
			rows = append(rows, TokenEntry{
				Term:  vocab[j],
				Topic: t + 1,
				Freq:  math.Round(raw) / termFrequency[j],
			})
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Term != rows[b].Term {
			return rows[a].Term < rows[b].Term
		}
		return rows[a].Topic < rows[b].Topic
	})

	return rows
}
