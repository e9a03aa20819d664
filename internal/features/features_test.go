package features

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtract_Python(t *testing.T) {
	e := New(zap.NewNop())

	code := `
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
	feats := e.Extract(context.Background(), code)

	assert.Equal(t, "python", feats.Language)
	require.Contains(t, feats.Functions, "binary_search")
	assert.Equal(t, 1, feats.LoopCount)
	assert.GreaterOrEqual(t, feats.BranchCount, 1)
	assert.False(t, feats.Recursive)
	assert.False(t, feats.SyntaxErrors)
}

func TestExtract_PythonRecursion(t *testing.T) {
	e := New(zap.NewNop())

	code := `
def factorial(n):
    if n <= 1:
        return 1
    return n * factorial(n - 1)
`
	feats := e.Extract(context.Background(), code)

	assert.True(t, feats.Recursive)
}

func TestExtract_JavaScript(t *testing.T) {
	e := New(zap.NewNop())

	code := `
function twoSum(nums, target) {
  const seen = {};
  for (let i = 0; i < nums.length; i++) {
    if (seen[target - nums[i]] !== undefined) {
      return [seen[target - nums[i]], i];
    }
    seen[nums[i]] = i;
  }
  return [];
}
`
	feats := e.Extract(context.Background(), code)

	assert.Equal(t, "javascript", feats.Language)
	assert.Contains(t, feats.Functions, "twoSum")
	assert.Equal(t, 1, feats.LoopCount)
	assert.False(t, feats.SyntaxErrors)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := New(zap.NewNop())

	feats := e.Extract(context.Background(), "   \n ")

	assert.Equal(t, "python", feats.Language)
	assert.Empty(t, feats.Functions)
	assert.Zero(t, feats.LoopCount)
}

func TestExtract_MangledInputNeverFails(t *testing.T) {
	e := New(zap.NewNop())

	// Tree-sitter produces a tree with error nodes; extraction must degrade,
	// not fail.
	feats := e.Extract(context.Background(), "def ((((:::\x00")

	assert.Equal(t, "python", feats.Language)
	assert.True(t, feats.SyntaxErrors)
}

func TestGuessLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"python def", "def solve():", "python"},
		{"python elif", "elif x > 1:", "python"},
		{"javascript function", "function solve() {}", "javascript"},
		{"javascript arrow", "const f = (x) => x + 1", "javascript"},
		{"defaults to python", "x = 1", "python"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guessLanguage(tc.code))
		})
	}
}
