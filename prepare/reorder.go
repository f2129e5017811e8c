package prepare

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// alignedModel holds the topic-indexed structures after the global topic
// reorder. The permutation is applied exactly once, here; every later stage
// works with these aligned copies and 0-based post-reorder indices, so
// display id = index+1 everywhere downstream.
type alignedModel struct {
	// topicTermDists is the row-permuted K×W distribution matrix.
	topicTermDists [][]float64

	// docTopicDists is the column-permuted D×K distribution matrix.
	docTopicDists [][]float64

	// topicFreq is the unnormalized document-length-weighted topic mass,
	// descending.
	topicFreq []float64

	// topicProportion is topicFreq normalized to sum to 1, descending.
	topicProportion []float64

	// order lists original topic indices in descending-mass order:
	// order[i] is the original index of the topic displayed as i+1.
	order []int
}

// reorderTopics weights each document's topic distribution by the document
// length, sums across documents into the topic mass vector, and permutes all
// topic-indexed structures into descending-mass order. Ties are broken by
// ascending original index, keeping the permutation deterministic.
// The inputs are never mutated; fresh slices are returned.
func reorderTopics(m ModelData) alignedModel {
	k := len(m.TopicTermDists)

	mass := make([]float64, k)
	for d, row := range m.DocTopicDists {
		for t := 0; t < k; t++ {
			mass[t] += row[t] * m.DocLengths[d]
		}
	}
	total := floats.Sum(mass)

	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return mass[order[a]] > mass[order[b]]
	})

	am := alignedModel{
		topicTermDists:  make([][]float64, k),
		docTopicDists:   make([][]float64, len(m.DocTopicDists)),
		topicFreq:       make([]float64, k),
		topicProportion: make([]float64, k),
		order:           order,
	}
	for i, orig := range order {
		row := make([]float64, len(m.TopicTermDists[orig]))
		copy(row, m.TopicTermDists[orig])
		am.topicTermDists[i] = row
		am.topicFreq[i] = mass[orig]
		if total > 0 {
			am.topicProportion[i] = mass[orig] / total
		}
	}
	for d, row := range m.DocTopicDists {
		permuted := make([]float64, k)
		for i, orig := range order {
			permuted[i] = row[orig]
		}
		am.docTopicDists[d] = permuted
	}

	return am
}
