package schemas

// PatternLabel identifies one of the algorithmic techniques the classifier
// recognizes. The set is closed: adding a label means adding a detector and,
// if the pattern should animate, a simulator.
type PatternLabel string

const (
	PatternBinarySearch       PatternLabel = "Binary Search"
	PatternTwoPointers        PatternLabel = "Two Pointers"
	PatternSlidingWindow      PatternLabel = "Sliding Window"
	PatternSorting            PatternLabel = "Sorting"
	PatternDynamicProgramming PatternLabel = "Dynamic Programming"
	PatternTreeTraversal      PatternLabel = "Tree Traversal"

	// PatternUnknown is the sentinel returned when no detector clears the
	// confidence floor. It is a valid, well-formed result, not an error.
	PatternUnknown PatternLabel = "Unknown Algorithm"
)

// StepType is the machine-readable step category consumed by renderers.
func (p PatternLabel) StepType() string {
	switch p {
	case PatternBinarySearch:
		return "binary_search"
	case PatternTwoPointers:
		return "two_pointers"
	case PatternSlidingWindow:
		return "sliding_window"
	case PatternSorting:
		return "sorting"
	case PatternDynamicProgramming:
		return "dynamic_programming"
	case PatternTreeTraversal:
		return "tree_traversal"
	default:
		return "generic"
	}
}

// ProblemInstance is the normalized input a simulation runs against.
// It is immutable once built and always well-formed: extraction guarantees
// at least one non-empty sequence and a defined target.
type ProblemInstance struct {
	Sequences [][]int `json:"sequences"`
	Target    int     `json:"target"`
}

// Array returns the primary sequence. Extraction guarantees it is non-empty.
func (p ProblemInstance) Array() []int {
	return p.Sequences[0]
}

// PatternScore is one detector's ranked verdict. Confidence is always in [0,1].
type PatternScore struct {
	Label      PatternLabel `json:"label"`
	Confidence float64      `json:"confidence"`
}

// Step is a single snapshot of simulated execution state.
//
// Snapshot maps role names ("array", "target", "left", "right", "mid",
// "found") to values: ints, []int, bools, or nil for a not-yet-computed
// role. Steps are immutable once produced.
type Step struct {
	Index     int            `json:"index"`
	Type      string         `json:"type"`
	Narration string         `json:"narration"`
	Snapshot  map[string]any `json:"snapshot"`
}

// Trace is a fully materialized, non-empty, ordered step sequence with
// contiguous 1-based indices. Renderers may re-traverse it freely.
type Trace []Step

// AnalyzeRequest is the wire form of an analysis call. CustomArray and
// CustomTarget override anything extracted from the code text.
type AnalyzeRequest struct {
	Code         string `json:"code" binding:"required,max=65536"`
	CustomArray  []int  `json:"customArray,omitempty" binding:"omitempty,max=256"`
	CustomTarget *int   `json:"customTarget,omitempty"`
}

// CodeFeatures carries advisory structural facts about the submitted code.
// Extraction is best-effort; an unparseable submission yields zero values.
type CodeFeatures struct {
	Language     string   `json:"language"`
	Functions    []string `json:"functions,omitempty"`
	LoopCount    int      `json:"loop_count"`
	BranchCount  int      `json:"branch_count"`
	Recursive    bool     `json:"recursive"`
	SyntaxErrors bool     `json:"syntax_errors"`
}

// Metadata accompanies every analysis result.
type Metadata struct {
	Pattern         string        `json:"pattern"`
	TimeComplexity  string        `json:"time_complexity"`
	SpaceComplexity string        `json:"space_complexity"`
	TotalSteps      int           `json:"total_steps"`
	Features        *CodeFeatures `json:"features,omitempty"`
}

// AnalyzeResponse is the wire form of a completed analysis.
type AnalyzeResponse struct {
	Algorithm  string          `json:"algorithm"`
	Confidence float64         `json:"confidence"`
	Instance   ProblemInstance `json:"instance"`
	Steps      Trace           `json:"steps"`
	Metadata   Metadata        `json:"metadata"`
}

// PatternInfo describes one entry of the supported-pattern listing.
type PatternInfo struct {
	Label           PatternLabel `json:"label"`
	Type            string       `json:"type"`
	Simulated       bool         `json:"simulated"`
	TimeComplexity  string       `json:"time_complexity"`
	SpaceComplexity string       `json:"space_complexity"`
}
