// Package engine wires the extraction, classification and simulation stages
// into a single analysis pipeline.
package engine

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/algolens/algolens/api/schemas"
	"github.com/algolens/algolens/internal/classify"
	"github.com/algolens/algolens/internal/config"
	"github.com/algolens/algolens/internal/extract"
	"github.com/algolens/algolens/internal/features"
	"github.com/algolens/algolens/internal/simulate"
)

// complexity maps each pattern to its (time, space) big-O estimate. These
// annotate responses only; they describe the pattern, not the submission.
var complexity = map[schemas.PatternLabel][2]string{
	schemas.PatternBinarySearch:       {"O(log n)", "O(1)"},
	schemas.PatternTwoPointers:        {"O(n)", "O(1)"},
	schemas.PatternSlidingWindow:      {"O(n)", "O(1)"},
	schemas.PatternSorting:            {"O(n log n)", "O(1)"},
	schemas.PatternDynamicProgramming: {"O(n)", "O(n)"},
	schemas.PatternTreeTraversal:      {"O(n)", "O(h)"},
}

const unknownComplexity = "O(?)"

// Analyzer runs the full pipeline. All stages are pure and total, so
// Analyze never returns an error: every input, however malformed, produces
// a well-formed response.
type Analyzer struct {
	extractor  *extract.Extractor
	detectors  *classify.Registry
	simulators *simulate.Registry
	features   *features.Extractor
	logger     *zap.Logger
}

// New builds an Analyzer from analysis configuration. The detector and
// simulator registries are constructed here, once, and owned by the
// Analyzer for its lifetime.
func New(cfg config.AnalysisConfig, logger *zap.Logger) *Analyzer {
	logger = logger.Named("engine")
	return &Analyzer{
		extractor:  extract.New(cfg.DefaultSequence, cfg.DefaultTarget),
		detectors:  classify.NewRegistry(cfg.ConfidenceThreshold),
		simulators: simulate.NewRegistry(cfg.StepCap),
		features:   features.New(logger),
		logger:     logger,
	}
}

// Analyze classifies the submitted code, simulates the detected pattern over
// the extracted problem instance, and assembles the response.
func (a *Analyzer) Analyze(ctx context.Context, req schemas.AnalyzeRequest) schemas.AnalyzeResponse {
	instance := a.extractor.Extract(req.Code, joinInts(req.CustomArray), req.CustomTarget)
	score := a.detectors.Classify(req.Code)
	trace := a.simulators.Synthesize(score.Label, instance)
	feats := a.features.Extract(ctx, req.Code)

	a.logger.Debug("analysis complete",
		zap.String("algorithm", string(score.Label)),
		zap.Float64("confidence", score.Confidence),
		zap.Int("steps", len(trace)),
	)

	timeC, spaceC := complexityFor(score.Label)
	return schemas.AnalyzeResponse{
		Algorithm:  string(score.Label),
		Confidence: score.Confidence,
		Instance:   instance,
		Steps:      trace,
		Metadata: schemas.Metadata{
			Pattern:         score.Label.StepType(),
			TimeComplexity:  timeC,
			SpaceComplexity: spaceC,
			TotalSteps:      len(trace),
			Features:        &feats,
		},
	}
}

// Patterns lists every detectable pattern in registry order, with whether a
// reference simulation exists for it.
func (a *Analyzer) Patterns() []schemas.PatternInfo {
	labels := a.detectors.Labels()
	infos := make([]schemas.PatternInfo, len(labels))
	for i, label := range labels {
		timeC, spaceC := complexityFor(label)
		infos[i] = schemas.PatternInfo{
			Label:           label,
			Type:            label.StepType(),
			Simulated:       a.simulators.Simulated(label),
			TimeComplexity:  timeC,
			SpaceComplexity: spaceC,
		}
	}
	return infos
}

func complexityFor(label schemas.PatternLabel) (string, string) {
	if c, ok := complexity[label]; ok {
		return c[0], c[1]
	}
	return unknownComplexity, unknownComplexity
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
