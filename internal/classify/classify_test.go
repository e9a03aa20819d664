package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolens/algolens/api/schemas"
)

const threshold = 0.3

const binarySearchCode = `
def binary_search(arr, target):
    left, right = 0, len(arr) - 1
    while left <= right:
        mid = (left + right) // 2
        if arr[mid] == target:
            return mid
        elif arr[mid] < target:
            left = mid + 1
        else:
            right = mid - 1
    return -1
`

const twoPointersCode = `
def is_palindrome(s):
    left, right = 0, len(s) - 1
    while left < right:
        if s[left] != s[right]:
            return False
        left += 1
        right -= 1
    return True
`

const slidingWindowCode = `
def longest_substring(s):
    left = 0
    best = 0
    window = {}
    for right in range(len(s)):
        best = max(best, right - left + 1)
    return best
`

const sortingCode = `
def bubble_sort(arr):
    for i in range(len(arr)):
        for j in range(len(arr) - 1):
            if arr[j] > arr[j + 1]:
                swap(arr, j, j + 1)
    return arr
`

const dpCode = `
def climb_stairs(n):
    dp = [0] * (n + 1)
    dp[0], dp[1] = 1, 1
    for i in range(2, n + 1):
        dp[i] = dp[i-1] + dp[i-2]
    return dp[n]
`

const treeCode = `
def dfs(root):
    visited = set()
    stack = [root]
    while stack:
        node = stack.pop()
        for child in node.children:
            stack.append(child)
`

func TestClassify_KnownPatterns(t *testing.T) {
	r := NewRegistry(threshold)

	tests := []struct {
		name string
		code string
		want schemas.PatternLabel
	}{
		{"binary search", binarySearchCode, schemas.PatternBinarySearch},
		{"two pointers", twoPointersCode, schemas.PatternTwoPointers},
		{"sliding window", slidingWindowCode, schemas.PatternSlidingWindow},
		{"sorting", sortingCode, schemas.PatternSorting},
		{"dynamic programming", dpCode, schemas.PatternDynamicProgramming},
		{"tree traversal", treeCode, schemas.PatternTreeTraversal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := r.Classify(tc.code)
			assert.Equal(t, tc.want, score.Label)
			assert.Greater(t, score.Confidence, threshold)
			assert.LessOrEqual(t, score.Confidence, 1.0)
		})
	}
}

func TestClassify_MidpointVocabularyBeatsTwoPointers(t *testing.T) {
	// Binary search and two pointers share surface vocabulary; any midpoint
	// concept must push the verdict to binary search.
	r := NewRegistry(threshold)

	score := r.Classify("left right mid //")
	assert.Equal(t, schemas.PatternBinarySearch, score.Label)
	assert.Greater(t, score.Confidence, threshold)
}

func TestClassify_UnknownWhenNothingMatches(t *testing.T) {
	r := NewRegistry(threshold)

	score := r.Classify("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, schemas.PatternUnknown, score.Label)
	assert.GreaterOrEqual(t, score.Confidence, 0.0)
	assert.LessOrEqual(t, score.Confidence, threshold)
}

func TestClassify_WeakSignalStaysUnknown(t *testing.T) {
	// A lone loop keyword is evidence for several patterns but never enough
	// to clear the floor on its own.
	r := NewRegistry(threshold)

	score := r.Classify("while something: pass")
	assert.Equal(t, schemas.PatternUnknown, score.Label)
}

func TestScores_AllConfidencesInRange(t *testing.T) {
	r := NewRegistry(threshold)

	inputs := []string{
		"", binarySearchCode, twoPointersCode, slidingWindowCode,
		sortingCode, dpCode, treeCode,
		"random text with left right mid window sort memo tree node visit",
	}
	for _, text := range inputs {
		for _, s := range r.Scores(text) {
			assert.GreaterOrEqual(t, s.Confidence, 0.0)
			assert.LessOrEqual(t, s.Confidence, 1.0)
		}
	}
}

func TestScores_TieBreakIsRegistrationOrder(t *testing.T) {
	r := NewRegistry(threshold)

	// Empty text scores zero everywhere; the ranking must preserve the
	// registry order exactly.
	scores := r.Scores("")
	require.Len(t, scores, 6)
	assert.Equal(t, r.Labels(), []schemas.PatternLabel{
		scores[0].Label, scores[1].Label, scores[2].Label,
		scores[3].Label, scores[4].Label, scores[5].Label,
	})
}

func TestClassify_Deterministic(t *testing.T) {
	r := NewRegistry(threshold)

	first := r.Classify(binarySearchCode)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Classify(binarySearchCode))
	}
}

func TestLabels_ClosedSet(t *testing.T) {
	r := NewRegistry(threshold)

	assert.Equal(t, []schemas.PatternLabel{
		schemas.PatternBinarySearch,
		schemas.PatternTwoPointers,
		schemas.PatternSlidingWindow,
		schemas.PatternSorting,
		schemas.PatternDynamicProgramming,
		schemas.PatternTreeTraversal,
	}, r.Labels())
}
