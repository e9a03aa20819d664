// Package classify scores raw source text against a fixed set of pattern
// detectors. This is deliberately a weighted keyword scorer, not a parser:
// the result is a best guess at which classic technique the text implements,
// never a semantic judgment.
package classify

import (
	"github.com/algolens/algolens/api/schemas"
)

// Detector pairs a pattern label with a pure scoring function over raw text.
// Scores are always clamped to [0,1].
type Detector struct {
	Label schemas.PatternLabel
	Score func(text string) float64
}

// Registry is an immutable, ordered table of detectors. Order matters: ties
// are broken in favor of the first-registered detector, which keeps
// classification deterministic without any error path.
type Registry struct {
	detectors []Detector
	threshold float64
}

// NewRegistry builds the detector table for the closed pattern set. The
// threshold is the confidence floor below which the sentinel label is
// returned instead of a concrete pattern.
func NewRegistry(threshold float64) *Registry {
	return &Registry{
		threshold: threshold,
		detectors: []Detector{
			{Label: schemas.PatternBinarySearch, Score: scoreBinarySearch},
			{Label: schemas.PatternTwoPointers, Score: scoreTwoPointers},
			{Label: schemas.PatternSlidingWindow, Score: scoreSlidingWindow},
			{Label: schemas.PatternSorting, Score: scoreSorting},
			{Label: schemas.PatternDynamicProgramming, Score: scoreDynamicProgramming},
			{Label: schemas.PatternTreeTraversal, Score: scoreTreeTraversal},
		},
	}
}

// Labels returns the detectable pattern labels in registration order.
func (r *Registry) Labels() []schemas.PatternLabel {
	labels := make([]schemas.PatternLabel, len(r.detectors))
	for i, d := range r.detectors {
		labels[i] = d.Label
	}
	return labels
}

// Scores runs every detector and returns the full ranking in descending
// confidence order. Equal confidences keep registration order.
func (r *Registry) Scores(text string) []schemas.PatternScore {
	scores := make([]schemas.PatternScore, len(r.detectors))
	for i, d := range r.detectors {
		scores[i] = schemas.PatternScore{Label: d.Label, Confidence: d.Score(text)}
	}
	// Insertion sort keeps the sort stable so registration order breaks ties.
	for i := 1; i < len(scores); i++ {
		for j := i; j > 0 && scores[j].Confidence > scores[j-1].Confidence; j-- {
			scores[j], scores[j-1] = scores[j-1], scores[j]
		}
	}
	return scores
}

// Classify returns the best-scoring pattern above the confidence floor, or
// the sentinel label carrying the best sub-threshold confidence. Total and
// deterministic for every input.
func (r *Registry) Classify(text string) schemas.PatternScore {
	best := r.Scores(text)[0]
	if best.Confidence > r.threshold {
		return best
	}
	return schemas.PatternScore{Label: schemas.PatternUnknown, Confidence: best.Confidence}
}
