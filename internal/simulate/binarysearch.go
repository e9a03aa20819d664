package simulate

import (
	"fmt"

	"github.com/algolens/algolens/api/schemas"
)

// binarySearch is the canonical reference simulation: every other simulator
// added to the registry must satisfy the same contract (non-empty trace,
// contiguous 1-based indices, snapshot per step, bounded by stepCap with the
// found step exempt from the cap).
//
// Exhausting the search space emits no terminal "not found" step: the trace
// simply ends after the last comparison. Callers infer "not found" from the
// absence of a found step.
func binarySearch(instance schemas.ProblemInstance, stepCap int) schemas.Trace {
	array := cloneInts(instance.Array())
	target := instance.Target
	left, right := 0, len(array)-1

	trace := schemas.Trace{{
		Index: 1,
		Type:  schemas.PatternBinarySearch.StepType(),
		Narration: fmt.Sprintf(
			"Start binary search for target %d: left=%d, right=%d over %v", target, left, right, array),
		Snapshot: snapshot(array, target, left, right, nil, false),
	}}

	for left <= right && len(trace) < stepCap {
		mid := (left + right) / 2

		if array[mid] == target {
			// The found step always terminates the trace, cap or no cap.
			trace = append(trace, schemas.Step{
				Index: len(trace) + 1,
				Type:  schemas.PatternBinarySearch.StepType(),
				Narration: fmt.Sprintf(
					"Found it: array[%d] = %d equals target %d", mid, array[mid], target),
				Snapshot: snapshot(array, target, left, right, &mid, true),
			})
			break
		}

		var narration string
		if array[mid] < target {
			narration = fmt.Sprintf(
				"mid=(%d+%d)/2=%d; array[%d] = %d < %d, search the right half", left, right, mid, mid, array[mid], target)
		} else {
			narration = fmt.Sprintf(
				"mid=(%d+%d)/2=%d; array[%d] = %d > %d, search the left half", left, right, mid, mid, array[mid], target)
		}
		// The comparison snapshot carries the bounds as they were when mid
		// was computed, before either bound moves.
		trace = append(trace, schemas.Step{
			Index:     len(trace) + 1,
			Type:      schemas.PatternBinarySearch.StepType(),
			Narration: narration,
			Snapshot:  snapshot(array, target, left, right, &mid, false),
		})

		if array[mid] < target {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	return trace
}

// snapshot builds one step's state map. mid is nil before the first
// midpoint computation.
func snapshot(array []int, target, left, right int, mid *int, found bool) map[string]any {
	snap := map[string]any{
		"array":  array,
		"target": target,
		"left":   left,
		"right":  right,
		"mid":    nil,
		"found":  found,
	}
	if mid != nil {
		snap["mid"] = *mid
	}
	return snap
}
