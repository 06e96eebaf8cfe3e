package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "pairwise", c.Heuristic)
	assert.Equal(t, "fixed", c.Opener)
	assert.Equal(t, "raise", c.OpenerWord)
	assert.Equal(t, "local_dev_salt", c.DailySalt)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.WordsFile)
	assert.False(t, c.HardMode)
	assert.NoError(t, c.Validate())
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
hard_mode: true
heuristic: unique
opener_word: crane
`)

	c := Default()
	require.NoError(t, c.LoadFile(path))

	assert.True(t, c.HardMode)
	assert.Equal(t, "unique", c.Heuristic)
	assert.Equal(t, "crane", c.OpenerWord)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "fixed", c.Opener)
	assert.Equal(t, "local_dev_salt", c.DailySalt)
}

func TestLoadFileMissing(t *testing.T) {
	c := Default()
	err := c.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeConfig(t, "hard_mode: [broken")
	c := Default()
	assert.ErrorContains(t, c.LoadFile(path), "parsing config file")
}

func TestFromEnvOverridesFile(t *testing.T) {
	t.Setenv("HEURISTIC", "pairwise")
	t.Setenv("HARD_MODE", "true")
	t.Setenv("OPENER", "manual")
	t.Setenv("DAILY_SALT", "prod_salt")

	path := writeConfig(t, "heuristic: unique\n")
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pairwise", c.Heuristic)
	assert.True(t, c.HardMode)
	assert.Equal(t, "manual", c.Opener)
	assert.Equal(t, "prod_salt", c.DailySalt)
}

func TestFromEnvIgnoresEmptyAndMalformed(t *testing.T) {
	t.Setenv("OPENER_WORD", "")
	t.Setenv("HARD_MODE", "definitely")

	c := Default()
	c.FromEnv()
	assert.Equal(t, "raise", c.OpenerWord)
	assert.False(t, c.HardMode)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Heuristic = "entropy"
	assert.ErrorContains(t, c.Validate(), "unknown heuristic")

	c = Default()
	c.Opener = "oracle"
	assert.ErrorContains(t, c.Validate(), "unknown opener")
}

func TestLoadRejectsInvalidFileValues(t *testing.T) {
	path := writeConfig(t, "opener: oracle\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown opener")
}
