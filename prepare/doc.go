// Package prepare transforms the raw numerical output of a fitted topic model
// into the compact data tables consumed by an LDAvis-style interactive
// client: 2D topic coordinates, a ranked per-topic term table across a
// relevance-weighting sweep, and a term-highlighting token table.
//
// 🚀 What does it do?
//
//	A topic model hands you matrices; a visualization needs tables.
//	Prepare bridges the two:
//	  • validates shape consistency and row-stochasticity of the inputs
//	  • reorders topics by document-length-weighted mass (largest first)
//	  • projects topics to 2D via Jensen–Shannon divergence + PCoA
//	  • ranks terms per topic for every value of the relevance weight λ
//	  • builds the normalized term×topic frequency table for highlighting
//
// ✨ Key properties:
//   - Deterministic: identical inputs yield identical PreparedData,
//     regardless of the worker count used for the λ sweep
//   - Strict validation: every violated input rule is reported at once
//     (ValidationError), never just the first one
//   - Pluggable projection: any func mapping a K×W distribution matrix to
//     K×2 coordinates can replace the default ordination.JSPCoA
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ldaviz/prepare"
//
//	data, err := prepare.Prepare(prepare.ModelData{
//	  TopicTermDists: ttd,        // K×W, rows sum to 1
//	  DocTopicDists:  dtd,        // D×K, rows sum to 1
//	  DocLengths:     lengths,    // D
//	  Vocab:          vocab,      // W
//	  TermFrequency:  termFreq,   // W
//	}, nil) // nil ⇒ DefaultOptions()
//	if err != nil {
//	  // ErrValidation / ErrBadOptions / ErrProjectionShape
//	}
//	payload, _ := data.ToJSON() // client contract: mdsDat, tinfo, token.table, ...
//
// The only concurrent stage is the λ sweep, a fork/join over disjoint chunks
// of λ values; everything else is a single pass over immutable inputs.
package prepare
