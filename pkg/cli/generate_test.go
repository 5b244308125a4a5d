package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hpckit/schedgen/pkg/fixture"
)

func TestRun_GenerateWritesArchiveAndManifest(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, fixture.DefaultArchiveName)
	manifest := filepath.Join(dir, "manifest.yaml")

	err := Run(context.Background(), []string{
		"schedgen", "generate",
		"--output", archive,
		"--manifest", manifest,
		"--log-level", "error",
	})
	require.NoError(t, err)

	_, err = os.Stat(archive)
	require.NoError(t, err)

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)

	var out fixture.Output
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, 50, out.TotalJobs)
	assert.Equal(t, 220, out.TotalFiles)
	assert.False(t, out.Skipped)
}

func TestRun_GenerateSkipsExistingArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), fixture.DefaultArchiveName)
	require.NoError(t, os.WriteFile(archive, []byte("sentinel"), 0o644))

	err := Run(context.Background(), []string{
		"schedgen", "generate",
		"--output", archive,
		"--log-level", "error",
	})
	require.NoError(t, err)

	// Without --force the pre-existing archive is untouched.
	data, err := os.ReadFile(archive)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data))
}

func TestRun_GenerateForceReplacesArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), fixture.DefaultArchiveName)
	require.NoError(t, os.WriteFile(archive, []byte("sentinel"), 0o644))

	err := Run(context.Background(), []string{
		"schedgen", "generate",
		"--force",
		"--output", archive,
		"--log-level", "error",
	})
	require.NoError(t, err)

	info, err := os.Stat(archive)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(len("sentinel")))
}

func TestRun_GenerateRejectsUnknownManifestFormat(t *testing.T) {
	err := Run(context.Background(), []string{
		"schedgen", "generate",
		"--format", "xml",
		"--log-level", "error",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown manifest format")
}
