package classify

import (
	"regexp"
	"strings"
)

// Word-boundary patterns for tokens too short or too common to match as
// bare substrings.
var (
	reDP    = regexp.MustCompile(`\bdp\b`)
	reNode  = regexp.MustCompile(`\bnode\b`)
	reStack = regexp.MustCompile(`\bstack\b`)
	reQueue = regexp.MustCompile(`\bqueue\b`)
	reRoot  = regexp.MustCompile(`\broot\b`)
)

func clamp01(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func hasBounds(text string) bool {
	lr := strings.Contains(text, "left") && strings.Contains(text, "right")
	lh := strings.Contains(text, "low") && strings.Contains(text, "high")
	return lr || lh
}

// scoreBinarySearch: left/right bounds plus midpoint vocabulary are the
// strongest signals; halving operators alone are weaker evidence.
func scoreBinarySearch(text string) float64 {
	text = strings.ToLower(text)
	var score float64
	if strings.Contains(text, "mid") {
		score += 0.35
	}
	if containsAny(text, "//", ">> 1", ">>1", "/ 2", "/2") {
		score += 0.25
	}
	if hasBounds(text) {
		score += 0.25
	}
	if strings.Contains(text, "while") {
		score += 0.1
	}
	if strings.Contains(text, "binary") {
		score += 0.15
	}
	return clamp01(score)
}

// scoreTwoPointers shares nearly all of its surface vocabulary with binary
// search, so any midpoint concept caps the score below the confidence floor
// rather than letting the two detectors fight over the same text.
func scoreTwoPointers(text string) float64 {
	text = strings.ToLower(text)
	var score float64
	if hasBounds(text) || (strings.Contains(text, "start") && strings.Contains(text, "end")) {
		score += 0.35
	}
	if containsAny(text, "++", "--", "+= 1", "-= 1", "+=1", "-=1") {
		score += 0.25
	}
	if strings.Contains(text, "while") {
		score += 0.15
	}
	if strings.Contains(text, "pointer") {
		score += 0.2
	}
	if containsAny(text, "palindrome", "sorted") {
		score += 0.1
	}
	if strings.Contains(text, "mid") && score > 0.2 {
		score = 0.2
	}
	return clamp01(score)
}

func scoreSlidingWindow(text string) float64 {
	text = strings.ToLower(text)
	var score float64
	if strings.Contains(text, "window") {
		score += 0.4
	}
	if hasBounds(text) {
		score += 0.15
	}
	if containsAny(text, "max(", "min(", "math.max", "math.min") {
		score += 0.15
	}
	if containsAny(text, "substring", "subarray", "longest") {
		score += 0.2
	}
	if strings.Contains(text, "for") {
		score += 0.1
	}
	if strings.Contains(text, "mid") {
		score -= 0.3
	}
	return clamp01(score)
}

func scoreSorting(text string) float64 {
	text = strings.ToLower(text)
	var score float64
	if strings.Contains(text, "sort") {
		score += 0.35
	}
	if strings.Contains(text, "swap") {
		score += 0.3
	}
	if containsAny(text, "bubble", "quick", "merge", "insertion", "selection") {
		score += 0.25
	}
	if strings.Count(text, "for") >= 2 {
		score += 0.1
	}
	return clamp01(score)
}

func scoreDynamicProgramming(text string) float64 {
	text = strings.ToLower(text)
	var score float64
	if reDP.MatchString(text) || strings.Contains(text, "dp[") {
		score += 0.35
	}
	if strings.Contains(text, "memo") {
		score += 0.35
	}
	if strings.Contains(text, "cache") {
		score += 0.15
	}
	if containsAny(text, "fib", "tabulation", "bottom-up", "top-down") {
		score += 0.15
	}
	if containsAny(text, "[i-1]", "[i - 1]", "[n-1]", "[n - 1]") {
		score += 0.2
	}
	return clamp01(score)
}

func scoreTreeTraversal(text string) float64 {
	text = strings.ToLower(text)
	var score float64
	if strings.Contains(text, "tree") || reNode.MatchString(text) {
		score += 0.3
	}
	if containsAny(text, "dfs", "bfs", "depth-first", "breadth-first", "depth_first", "breadth_first") {
		score += 0.3
	}
	if strings.Contains(text, "visit") {
		score += 0.2
	}
	if reStack.MatchString(text) || reQueue.MatchString(text) {
		score += 0.1
	}
	if containsAny(text, "children", "neighbors", "adjacent") {
		score += 0.15
	}
	if reRoot.MatchString(text) {
		score += 0.15
	}
	return clamp01(score)
}
