// Package simulate synthesizes illustrative execution traces for classified
// patterns. A trace is a reference walkthrough of the pattern over the
// extracted problem instance, not an execution of the submitted code.
package simulate

import (
	"fmt"

	"github.com/algolens/algolens/api/schemas"
)

// Simulator produces the full step sequence for one pattern over one
// problem instance. stepCap bounds the number of emitted steps so
// pathological inputs cannot produce unbounded traces.
type Simulator func(instance schemas.ProblemInstance, stepCap int) schemas.Trace

// Registry is an immutable table from pattern label to reference simulator.
// It intentionally parallels the detector registry without being coupled to
// it: a classified label with no simulator here is a defined fallback case
// (single placeholder step), never an error.
type Registry struct {
	stepCap    int
	simulators map[schemas.PatternLabel]Simulator
}

// NewRegistry builds the simulator table. Binary search is currently the
// only pattern with a reference simulation; Two Pointers is a first-class
// detectable label whose simulation is a known, deliberate gap.
func NewRegistry(stepCap int) *Registry {
	return &Registry{
		stepCap: stepCap,
		simulators: map[schemas.PatternLabel]Simulator{
			schemas.PatternBinarySearch: binarySearch,
		},
	}
}

// Simulated reports whether a label has a reference simulation.
func (r *Registry) Simulated(label schemas.PatternLabel) bool {
	_, ok := r.simulators[label]
	return ok
}

// Synthesize returns the trace for the given label and instance. Always
// non-empty with contiguous 1-based indices; labels without a simulator get
// the single placeholder step carrying the raw instance.
func (r *Registry) Synthesize(label schemas.PatternLabel, instance schemas.ProblemInstance) schemas.Trace {
	sim, ok := r.simulators[label]
	if !ok {
		return placeholder(label, instance)
	}
	trace := sim(instance, r.stepCap)
	if len(trace) == 0 {
		// Simulators are expected to emit at least the initial step; keep
		// the non-empty guarantee even if one misbehaves.
		return placeholder(label, instance)
	}
	return trace
}

// placeholder is the single generic step emitted for patterns without a
// reference simulation.
func placeholder(label schemas.PatternLabel, instance schemas.ProblemInstance) schemas.Trace {
	return schemas.Trace{{
		Index:     1,
		Type:      label.StepType(),
		Narration: fmt.Sprintf("%s detected. Detailed step-by-step visualization for this pattern is not yet available.", label),
		Snapshot: map[string]any{
			"array":  cloneInts(instance.Array()),
			"target": instance.Target,
		},
	}}
}

func cloneInts(s []int) []int {
	return append([]int(nil), s...)
}
