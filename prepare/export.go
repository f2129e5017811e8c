package prepare

import (
	"encoding/json"
	"math"
)

// jsonNumber returns v as an encodable JSON value. Non-finite values map to
// null: −Inf log scores are legitimate pipeline output for zero-probability
// entries, but encoding/json refuses infinities, so the payload carries null
// and the client treats the term as unscored.
func jsonNumber(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return v
}

// ToMap produces the column-oriented client payload. The top-level keys and
// the per-table column names are the compatibility contract with the
// downstream visualization client and must not change:
//
//	mdsDat, tinfo, token.table, R, lambda.step, plot.opts, topic.order
//
// The logprob/loglift columns may contain null; see jsonNumber.
func (d *PreparedData) ToMap() map[string]any {
	k := len(d.TopicCoordinates)
	xs := make([]float64, k)
	ys := make([]float64, k)
	topics := make([]int, k)
	clusters := make([]int, k)
	topicFreqs := make([]float64, k)
	for i, c := range d.TopicCoordinates {
		xs[i] = c.X
		ys[i] = c.Y
		topics[i] = c.Topic
		clusters[i] = c.Cluster
		topicFreqs[i] = c.Freq
	}

	n := len(d.TopicInfo)
	terms := make([]string, n)
	freqs := make([]float64, n)
	totals := make([]float64, n)
	categories := make([]string, n)
	logprobs := make([]any, n)
	loglifts := make([]any, n)
	for i, r := range d.TopicInfo {
		terms[i] = r.Term
		freqs[i] = r.Freq
		totals[i] = r.Total
		categories[i] = r.Category
		logprobs[i] = jsonNumber(r.LogProb)
		loglifts[i] = jsonNumber(r.LogLift)
	}

	t := len(d.TokenTable)
	tokenTopics := make([]int, t)
	tokenFreqs := make([]float64, t)
	tokenTerms := make([]string, t)
	for i, r := range d.TokenTable {
		tokenTopics[i] = r.Topic
		tokenFreqs[i] = r.Freq
		tokenTerms[i] = r.Term
	}

	return map[string]any{
		"mdsDat": map[string]any{
			"x":       xs,
			"y":       ys,
			"topics":  topics,
			"cluster": clusters,
			"Freq":    topicFreqs,
		},
		"tinfo": map[string]any{
			"Term":     terms,
			"Freq":     freqs,
			"Total":    totals,
			"Category": categories,
			"logprob":  logprobs,
			"loglift":  loglifts,
		},
		"token.table": map[string]any{
			"Topic": tokenTopics,
			"Freq":  tokenFreqs,
			"Term":  tokenTerms,
		},
		"R":           d.R,
		"lambda.step": d.LambdaStep,
		"plot.opts":   d.PlotOpts,
		"topic.order": d.TopicOrder,
	}
}

// ToJSON serializes the client payload. encoding/json sorts map keys, so the
// output is byte-stable for identical PreparedData.
func (d *PreparedData) ToJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// MarshalJSON makes PreparedData marshal as its client payload rather than
// as the Go struct.
func (d *PreparedData) MarshalJSON() ([]byte, error) {
	return d.ToJSON()
}
