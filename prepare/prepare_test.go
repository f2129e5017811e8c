package prepare_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/ldaviz/prepare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specModel is the worked K=2, W=3, D=2 example from the package docs.
func specModel() prepare.ModelData {
	return prepare.ModelData{
		TopicTermDists: [][]float64{
			{0.7, 0.2, 0.1},
			{0.1, 0.3, 0.6},
		},
		DocTopicDists: [][]float64{
			{0.9, 0.1},
			{0.2, 0.8},
		},
		DocLengths:    []float64{10, 20},
		Vocab:         []string{"a", "b", "c"},
		TermFrequency: []float64{5, 10, 15},
	}
}

// TestPrepare_SpecExample runs the full pipeline on the worked example and
// checks the externally visible invariants end to end.
func TestPrepare_SpecExample(t *testing.T) {
	data, err := prepare.Prepare(specModel(), nil)
	require.NoError(t, err)

	// Original topic 2 carries the larger weighted mass (17 vs 13), so the
	// client topic order lists it first, 1-based.
	assert.Equal(t, []int{2, 1}, data.TopicOrder)

	// Coordinates: one row per topic, display ids 1..K, Freq in percent,
	// descending with the reorder, cluster always the legacy constant 1.
	require.Len(t, data.TopicCoordinates, 2)
	assert.Equal(t, 1, data.TopicCoordinates[0].Topic)
	assert.Equal(t, 2, data.TopicCoordinates[1].Topic)
	assert.InDelta(t, 100*17.0/30.0, data.TopicCoordinates[0].Freq, 1e-9)
	assert.InDelta(t, 100*13.0/30.0, data.TopicCoordinates[1].Freq, 1e-9)
	for _, c := range data.TopicCoordinates {
		assert.Equal(t, 1, c.Cluster)
	}

	// R was clamped to the vocabulary size.
	assert.Equal(t, 3, data.R)

	// Every term-info row references a known term with usable log columns,
	// and both topics contribute rows alongside the Default view.
	categories := make(map[string]bool)
	for _, r := range data.TopicInfo {
		assert.Contains(t, []string{"a", "b", "c"}, r.Term)
		assert.False(t, math.IsNaN(r.LogProb), "logprob must be a number")
		assert.False(t, math.IsNaN(r.LogLift), "loglift must be a number")
		categories[r.Category] = true
	}
	assert.True(t, categories["Default"])
	assert.True(t, categories["Topic1"])
	assert.True(t, categories["Topic2"])

	// Token table: frequencies normalized per term, within [0,1], summing
	// to at most 1 per term across topics.
	perTerm := make(map[string]float64)
	for _, r := range data.TokenTable {
		assert.GreaterOrEqual(t, r.Freq, 0.0)
		assert.LessOrEqual(t, r.Freq, 1.0)
		perTerm[r.Term] += r.Freq
	}
	for term, sum := range perTerm {
		assert.LessOrEqual(t, sum, 1.0+1e-12, "term %q", term)
	}
}

// TestPrepare_Deterministic verifies repeated runs, with different worker
// counts, produce identical aggregates and identical JSON payloads.
func TestPrepare_Deterministic(t *testing.T) {
	a, err := prepare.Prepare(specModel(), &prepare.Options{NumJobs: 1})
	require.NoError(t, err)
	b, err := prepare.Prepare(specModel(), &prepare.Options{NumJobs: 7})
	require.NoError(t, err)
	c, err := prepare.Prepare(specModel(), &prepare.Options{NumJobs: -1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	ja, err := a.ToJSON()
	require.NoError(t, err)
	jb, err := b.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, ja, jb, "payload must be byte-identical")
}

// TestPrepare_ValidationFailure verifies broken input surfaces the collected
// validation error, matched by sentinel.
func TestPrepare_ValidationFailure(t *testing.T) {
	m := specModel()
	m.DocLengths = []float64{10}
	m.TermFrequency = []float64{1, 2}

	_, err := prepare.Prepare(m, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, prepare.ErrValidation)

	var verr *prepare.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Violations), 2)
}

// TestPrepare_ProjectionContract verifies a strategy returning the wrong
// shape fails loudly instead of being truncated or padded, and that a
// strategy error propagates.
func TestPrepare_ProjectionContract(t *testing.T) {
	wrongRows := func(d [][]float64) ([][]float64, error) {
		return [][]float64{{0, 0}}, nil
	}
	_, err := prepare.Prepare(specModel(), &prepare.Options{MDS: wrongRows})
	assert.ErrorIs(t, err, prepare.ErrProjectionShape)

	wrongCols := func(d [][]float64) ([][]float64, error) {
		return [][]float64{{0, 0, 0}, {0, 0, 0}}, nil
	}
	_, err = prepare.Prepare(specModel(), &prepare.Options{MDS: wrongCols})
	assert.ErrorIs(t, err, prepare.ErrProjectionShape)

	boom := errors.New("mds exploded")
	failing := func(d [][]float64) ([][]float64, error) { return nil, boom }
	_, err = prepare.Prepare(specModel(), &prepare.Options{MDS: failing})
	assert.ErrorIs(t, err, boom)
}

// TestPrepare_BadOptions verifies option validation.
func TestPrepare_BadOptions(t *testing.T) {
	_, err := prepare.Prepare(specModel(), &prepare.Options{R: -3})
	assert.ErrorIs(t, err, prepare.ErrBadOptions)

	_, err = prepare.Prepare(specModel(), &prepare.Options{LambdaStep: 1.5})
	assert.ErrorIs(t, err, prepare.ErrBadOptions)
}

// TestPrepare_PlotOptsPassthrough verifies custom plot options reach the
// aggregate untouched and the default labels apply otherwise.
func TestPrepare_PlotOptsPassthrough(t *testing.T) {
	data, err := prepare.Prepare(specModel(), nil)
	require.NoError(t, err)
	assert.Equal(t, prepare.DefaultXLabel, data.PlotOpts["xlab"])
	assert.Equal(t, prepare.DefaultYLabel, data.PlotOpts["ylab"])

	custom := map[string]string{"xlab": "dim 1", "ylab": "dim 2"}
	data, err = prepare.Prepare(specModel(), &prepare.Options{PlotOpts: custom})
	require.NoError(t, err)
	assert.Equal(t, custom, data.PlotOpts)
}

// TestPrepare_CustomProjection verifies any K×2 strategy satisfies the
// contract.
func TestPrepare_CustomProjection(t *testing.T) {
	grid := func(d [][]float64) ([][]float64, error) {
		coords := make([][]float64, len(d))
		for i := range coords {
			coords[i] = []float64{float64(i), 0}
		}
		return coords, nil
	}

	data, err := prepare.Prepare(specModel(), &prepare.Options{MDS: grid})
	require.NoError(t, err)
	assert.Equal(t, 0.0, data.TopicCoordinates[0].X)
	assert.Equal(t, 1.0, data.TopicCoordinates[1].X)
}

// TestPrepare_ZeroProbabilityEntries runs the pipeline on a model with a zero
// topic-term probability: the −Inf log scores must survive in the aggregate
// and the payload must still encode, carrying null for the unscorable cells.
func TestPrepare_ZeroProbabilityEntries(t *testing.T) {
	m := prepare.ModelData{
		TopicTermDists: [][]float64{
			{0.5, 0.5, 0},
			{0.2, 0.3, 0.5},
		},
		DocTopicDists: [][]float64{
			{0.9, 0.1},
			{0.2, 0.8},
		},
		DocLengths:    []float64{10, 20},
		Vocab:         []string{"a", "b", "c"},
		TermFrequency: []float64{5, 10, 15},
	}

	data, err := prepare.Prepare(m, nil)
	require.NoError(t, err)

	// Original topic 1 is lighter (mass 13 vs 17) and displays second, so its
	// zero entry for "c" surfaces under Topic2. R spans the whole vocabulary
	// here, so the term is retained despite its −Inf scores.
	require.Equal(t, []int{2, 1}, data.TopicOrder)
	var zeroRow *prepare.TermInfo
	for i, r := range data.TopicInfo {
		if r.Category == "Topic2" && r.Term == "c" {
			zeroRow = &data.TopicInfo[i]
		}
	}
	require.NotNil(t, zeroRow)
	assert.True(t, math.IsInf(zeroRow.LogProb, -1))
	assert.True(t, math.IsInf(zeroRow.LogLift, -1))

	raw, err := data.ToJSON()
	require.NoError(t, err, "payload must encode despite −Inf scores")
	assert.Contains(t, string(raw), "null")
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
}

// TestPrepare_ZeroFrequencyTerm runs the pipeline with a term absent from the
// corpus counts: its lift is −Inf everywhere, yet rankings and export stay
// well defined.
func TestPrepare_ZeroFrequencyTerm(t *testing.T) {
	m := specModel()
	m.TermFrequency = []float64{0, 10, 15}

	data, err := prepare.Prepare(m, nil)
	require.NoError(t, err)

	for _, r := range data.TopicInfo {
		if r.Category == "Default" {
			continue
		}
		assert.False(t, math.IsNaN(r.LogProb))
		assert.False(t, math.IsNaN(r.LogLift))
		if r.Term == "a" {
			assert.True(t, math.IsInf(r.LogLift, -1), "zero corpus frequency ⇒ −Inf lift")
		}
	}

	_, err = data.ToJSON()
	require.NoError(t, err)
}

// TestPrepare_TopicCategoriesAreDisplayIDs verifies per-topic categories use
// post-reorder 1-based ids, never original matrix indices.
func TestPrepare_TopicCategoriesAreDisplayIDs(t *testing.T) {
	data, err := prepare.Prepare(specModel(), nil)
	require.NoError(t, err)

	for _, r := range data.TopicInfo {
		if r.Category == "Default" {
			continue
		}
		assert.True(t, strings.HasPrefix(r.Category, "Topic"), "category %q", r.Category)
		assert.Contains(t, []string{"Topic1", "Topic2"}, r.Category)
	}
}
