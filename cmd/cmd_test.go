package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolens/algolens/api/schemas"
	"github.com/algolens/algolens/internal/config"
)

func TestReadCode_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.py")
	require.NoError(t, os.WriteFile(path, []byte("mid = (left + right) // 2"), 0o644))

	code, err := readCode([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "mid = (left + right) // 2", code)
}

func TestReadCode_MissingFile(t *testing.T) {
	_, err := readCode([]string{filepath.Join(t.TempDir(), "absent.py")})
	assert.Error(t, err)
}

func TestPatternsCommand(t *testing.T) {
	cfg = *config.NewDefaultConfig()

	cmd := newPatternsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.RunE(cmd, nil))

	var patterns []schemas.PatternInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &patterns))
	require.Len(t, patterns, 6)
	assert.Equal(t, schemas.PatternBinarySearch, patterns[0].Label)
	assert.True(t, patterns[0].Simulated)
	assert.Equal(t, schemas.PatternTreeTraversal, patterns[5].Label)
	assert.False(t, patterns[5].Simulated)
}

func TestVersionIsSet(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.Equal(t, Version, rootCmd.Version)
}
