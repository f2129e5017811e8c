package prepare

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// numDistRows counts how many valid distribution rows a matrix effectively
// contains: each row sum is rounded to 2 decimals, the rounded sums are
// accumulated, and the total is truncated to an integer. For a matrix of
// proper distributions this equals the row count; the rounding tolerates
// small per-row floating error but not systematic bias.
func numDistRows(m [][]float64) int {
	var total float64
	for _, row := range m {
		total += math.Round(floats.Sum(row)*100) / 100
	}

	return int(total)
}

// ragged reports whether any row of m differs in length from the first.
func ragged(m [][]float64) bool {
	if len(m) == 0 {
		return false
	}
	w := len(m[0])
	for _, row := range m[1:] {
		if len(row) != w {
			return true
		}
	}

	return false
}

// validate runs every input check unconditionally and collects all
// violations; it returns a *ValidationError listing each one, or nil when
// the model data is consistent. Downstream stages assume validated input
// and do not re-check.
func validate(m ModelData) error {
	var violations []string
	add := func(msg string) { violations = append(violations, msg) }

	k := len(m.TopicTermDists)
	d := len(m.DocTopicDists)
	w := len(m.Vocab)

	if k == 0 {
		add("TopicTermDists must have at least one row (one topic)")
	}
	if d == 0 {
		add("DocTopicDists must have at least one row (one document)")
	}
	if ragged(m.TopicTermDists) {
		add("rows of TopicTermDists have inconsistent lengths")
	}
	if ragged(m.DocTopicDists) {
		add("rows of DocTopicDists have inconsistent lengths")
	}

	if d > 0 && len(m.DocTopicDists[0]) != k {
		add("number of rows of TopicTermDists does not match number of columns of DocTopicDists; both should equal the number of topics in the model")
	}
	if len(m.DocLengths) != d {
		add("length of DocLengths does not match the number of rows of DocTopicDists; both should equal the number of documents in the data")
	}
	if k > 0 && len(m.TopicTermDists[0]) != w {
		add("number of columns of TopicTermDists does not match the vocabulary length (each row of TopicTermDists is a distribution over terms)")
	}
	if len(m.TermFrequency) != w {
		add("length of TermFrequency does not match the vocabulary length")
	}

	if numDistRows(m.TopicTermDists) != k {
		add("not all rows (distributions) of TopicTermDists sum to 1")
	}
	if numDistRows(m.DocTopicDists) != d {
		add("not all rows (distributions) of DocTopicDists sum to 1")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	return nil
}
