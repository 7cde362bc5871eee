package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTargetsSingle(t *testing.T) {
	flags := &rootFlags{
		endpoint:    "ucs1.example.com",
		username:    "admin",
		passwordEnv: "UCS_PASSWORD",
		output:      "out.html",
	}
	targets, batch, err := resolveTargets(flags)
	require.NoError(t, err)
	assert.False(t, batch)
	require.Len(t, targets, 1)
	assert.Equal(t, "ucs1.example.com", targets[0].Endpoint)
	assert.Equal(t, "out.html", targets[0].Output)
}

func TestResolveTargetsBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
targets:
  - endpoint: ucs1
    username: admin
    password_env: P1
  - endpoint: ucs2
    username: admin
    password_env: P2
`), 0o644))

	targets, batch, err := resolveTargets(&rootFlags{batchFile: path})
	require.NoError(t, err)
	assert.True(t, batch)
	assert.Len(t, targets, 2)
}

func TestResolveTargetsErrors(t *testing.T) {
	_, _, err := resolveTargets(&rootFlags{})
	assert.Error(t, err)

	_, _, err = resolveTargets(&rootFlags{endpoint: "ucs1"})
	assert.Error(t, err, "endpoint without username")

	_, _, err = resolveTargets(&rootFlags{endpoint: "ucs1", username: "a", batchFile: "b.yaml"})
	assert.Error(t, err, "endpoint and batch are exclusive")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "ucs1.example.com_443", sanitizeFilename("ucs1.example.com:443"))
	assert.Equal(t, "a_b_c", sanitizeFilename(`a/b\c`))
}
