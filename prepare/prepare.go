// Package prepare - pipeline entry point.
//
// Prepare is the canonical way to run the full transformation:
// validate → reorder → frequency correction → relevance sweep →
// token table → projection → assembly. Stages run in that order; only the
// relevance sweep is concurrent (see relevance.go).
package prepare

import (
	"fmt"

	"github.com/katalvlaran/ldaviz/ordination"
)

// resolveOptions applies the documented defaults to a possibly-nil Options
// and rejects nonsensical values.
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		if opts.R != 0 {
			o.R = opts.R
		}
		if opts.LambdaStep != 0 {
			o.LambdaStep = opts.LambdaStep
		}
		if opts.PlotOpts != nil {
			o.PlotOpts = opts.PlotOpts
		}
		if opts.NumJobs != 0 {
			o.NumJobs = opts.NumJobs
		}
		o.MDS = opts.MDS
	}
	if o.MDS == nil {
		o.MDS = ordination.JSPCoA
	}

	if o.R < 0 {
		return o, fmt.Errorf("%w: R must be non-negative, got %d", ErrBadOptions, o.R)
	}
	if o.LambdaStep <= 0 || o.LambdaStep > 1 {
		return o, fmt.Errorf("%w: LambdaStep must lie in (0,1], got %g", ErrBadOptions, o.LambdaStep)
	}

	return o, nil
}

// topicCoordinates runs the projection strategy over the reordered
// distribution matrix and assembles the layout table. The strategy contract
// is strict: exactly one (x,y) pair per topic, anything else fails loudly
// with ErrProjectionShape rather than being truncated or padded.
func topicCoordinates(mds Projection, topicTermDists [][]float64, topicProportion []float64) ([]TopicCoordinate, error) {
	k := len(topicTermDists)
	coords, err := mds(topicTermDists)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	if len(coords) != k {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrProjectionShape, len(coords), k)
	}
	for i, row := range coords {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrProjectionShape, i, len(row))
		}
	}

	table := make([]TopicCoordinate, k)
	for i := 0; i < k; i++ {
		table[i] = TopicCoordinate{
			X:       coords[i][0],
			Y:       coords[i][1],
			Topic:   i + 1,
			Cluster: 1, // reserved legacy client field
			Freq:    topicProportion[i] * 100,
		}
	}

	return table, nil
}

// Prepare transforms raw topic-model output into the PreparedData aggregate
// driving the interactive client.
//
// Contracts:
//   - m must satisfy every shape and row-stochasticity invariant; violations
//     are collected and returned together as a *ValidationError
//     (errors.Is(err, ErrValidation)).
//   - opts may be nil, meaning DefaultOptions(); zero fields resolve to their
//     documented defaults. R is clamped to the vocabulary size.
//   - The result is deterministic: identical inputs produce identical
//     PreparedData for any NumJobs setting.
//
// Errors: ErrValidation, ErrBadOptions, ErrProjectionShape, or whatever the
// injected projection strategy returns.
func Prepare(m ModelData, opts *Options) (*PreparedData, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(m); err != nil {
		return nil, err
	}
	if w := len(m.Vocab); o.R > w {
		o.R = w
	}

	am := reorderTopics(m)
	ttf := termTopicFrequency(am.topicTermDists, am.topicFreq, m.TermFrequency)

	info, retained, err := topicInfo(am, m, ttf, o)
	if err != nil {
		return nil, err
	}
	tokens := buildTokenTable(retained, ttf, m.Vocab, m.TermFrequency)

	coords, err := topicCoordinates(o.MDS, am.topicTermDists, am.topicProportion)
	if err != nil {
		return nil, err
	}

	// Client-facing topic order: original ids, 1-based, in display order.
	order := make([]int, len(am.order))
	for i, orig := range am.order {
		order[i] = orig + 1
	}

	return &PreparedData{
		TopicCoordinates: coords,
		TopicInfo:        info,
		TokenTable:       tokens,
		R:                o.R,
		LambdaStep:       o.LambdaStep,
		PlotOpts:         o.PlotOpts,
		TopicOrder:       order,
	}, nil
}
