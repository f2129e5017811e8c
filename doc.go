// Package ldaviz prepares the output of a fitted topic model for
// interactive LDAvis-style visualization — from raw distribution matrices
// to the exact tables the browser client consumes.
//
// 🚀 What is ldaviz?
//
//	A deterministic, validation-first transformation pipeline:
//		• Input checks: shape consistency & row-stochasticity, all
//		  violations reported at once
//		• Topic reordering: document-length-weighted mass, largest first
//		• Topic layout: Jensen–Shannon divergence + principal coordinates
//		• Term ranking: saliency default view plus a full relevance-weight
//		  (λ) sweep per topic, parallel over sweep chunks
//		• Token table: normalized term×topic frequencies for highlighting
//
// ✨ Why choose ldaviz?
//
//   - Deterministic – identical inputs yield byte-identical payloads,
//     regardless of worker count
//   - Strict contracts – sentinel errors, collected validation reports,
//     a projection interface that fails loudly on wrong shapes
//   - Client-compatible – the export schema (mdsDat, tinfo, token.table,
//     R, lambda.step, plot.opts, topic.order) is preserved exactly
//
// Everything is organized under two library packages and a CLI:
//
//	prepare/    — validation, reordering, relevance engine, token table,
//	              assembly and the column-oriented export
//	ordination/ — Jensen–Shannon divergence matrix + PCoA projection
//	cmd/ldaviz  — `prepare` and `topics` subcommands over model JSON files
//
// Quick start:
//
//	data, err := prepare.Prepare(prepare.ModelData{ /* five inputs */ }, nil)
//	if err != nil { /* ErrValidation lists every violated rule */ }
//	payload, _ := data.ToJSON()
//
// See examples/ for a runnable walkthrough.
package ldaviz
