package prepare

// DEFAULTS - single source of truth for option zero-value behavior.
const (
	// DefaultR is the number of terms shown per topic (and in the default,
	// topic-agnostic view).
	DefaultR = 30

	// DefaultLambdaStep is the spacing of the relevance-weight sweep; 0.01
	// yields the 101 values 0.00, 0.01, …, 1.00.
	DefaultLambdaStep = 0.01

	// DefaultNumJobs selects the "use most but not all cores" convention:
	// a negative value n yields NumCPU+1+n sweep chunks.
	DefaultNumJobs = -1

	// DefaultXLabel / DefaultYLabel are the default axis labels passed
	// through to the client untouched.
	DefaultXLabel = "PC1"
	DefaultYLabel = "PC2"
)

// ModelData bundles the five raw outputs of a fitted topic model.
// K = number of topics, W = vocabulary size, D = number of documents.
// All shape and stochasticity invariants are checked by Prepare; see
// ValidationError for the reporting contract.
type ModelData struct {
	// TopicTermDists is the K×W matrix of per-topic distributions over the
	// vocabulary; each row must sum to 1.
	TopicTermDists [][]float64

	// DocTopicDists is the D×K matrix of per-document distributions over
	// topics; each row must sum to 1.
	DocTopicDists [][]float64

	// DocLengths holds the length (token count) of each document; length D.
	DocLengths []float64

	// Vocab holds the term labels, index-aligned with matrix columns; length W.
	Vocab []string

	// TermFrequency holds the corpus-wide frequency of each term; length W.
	TermFrequency []float64
}

// Projection maps a K×W topic-term distribution matrix to K×2 coordinates.
// Prepare enforces the K×2 contract on the result and fails with
// ErrProjectionShape on any other shape. ordination.JSPCoA is the default.
type Projection func(topicTermDists [][]float64) ([][]float64, error)

// Options configures Prepare.
//
// Fields:
//   - R          — number of terms kept per topic and in the default view
//     (clamped to the vocabulary size). 0 ⇒ DefaultR.
//   - LambdaStep — spacing of the relevance sweep in (0,1]. 0 ⇒ DefaultLambdaStep.
//   - MDS        — projection strategy for topic coordinates. nil ⇒ ordination.JSPCoA.
//   - PlotOpts   — passthrough plot options for the client. nil ⇒
//     {"xlab": DefaultXLabel, "ylab": DefaultYLabel}.
//   - NumJobs    — sweep chunking: n>0 ⇒ n chunks, n<0 ⇒ NumCPU+1+n chunks.
//     0 ⇒ DefaultNumJobs.
type Options struct {
	R          int
	LambdaStep float64
	MDS        Projection
	PlotOpts   map[string]string
	NumJobs    int
}

// DefaultOptions returns the documented defaults. The MDS field is left nil
// here and resolved to ordination.JSPCoA inside Prepare, keeping the zero
// Options value useful.
func DefaultOptions() Options {
	return Options{
		R:          DefaultR,
		LambdaStep: DefaultLambdaStep,
		PlotOpts:   map[string]string{"xlab": DefaultXLabel, "ylab": DefaultYLabel},
		NumJobs:    DefaultNumJobs,
	}
}

// TopicCoordinate is one row of the topic layout table: a topic's position on
// the plane, its 1-based display id, and its share of the corpus in percent.
// Cluster is a reserved legacy client field and is always 1.
type TopicCoordinate struct {
	X       float64
	Y       float64
	Topic   int
	Cluster int
	Freq    float64
}

// TermInfo is one row of the ranked term table. Category is "Default" for the
// topic-agnostic saliency ranking and "Topic<id>" (1-based, post-reorder) for
// per-topic rows. In Default rows LogProb and LogLift carry the synthetic
// descending ranks R..1, not probabilities; see defaultTermInfo.
type TermInfo struct {
	Term     string
	Freq     float64
	Total    float64
	Category string
	LogProb  float64
	LogLift  float64
}

// TokenEntry is one row of the term-highlighting table: the fraction of a
// term's corpus occurrences attributable to one topic. Freq lies in [0,1].
type TokenEntry struct {
	Term  string
	Topic int
	Freq  float64
}

// PreparedData is the sole exported artifact of the pipeline: the assembled,
// immutable aggregate of every derived table plus the configuration echoes
// the client needs. Use ToMap/ToJSON for the fixed-key client payload.
type PreparedData struct {
	TopicCoordinates []TopicCoordinate
	TopicInfo        []TermInfo
	TokenTable       []TokenEntry
	R                int
	LambdaStep       float64
	PlotOpts         map[string]string

	// TopicOrder lists the 1-based original topic ids in display order:
	// TopicOrder[0] is the original id of the topic displayed as topic 1.
	TopicOrder []int
}
