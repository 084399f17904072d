package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beat-arcade/internal/config"
)

func TestLookupLevel(t *testing.T) {
	for _, id := range []string{"warmup", "pulse"} {
		t.Run(id, func(t *testing.T) {
			f, err := lookupLevel(id)
			require.NoError(t, err)
			assert.Equal(t, id, f().Meta.ID)
		})
	}

	_, err := lookupLevel("nope")
	assert.Error(t, err)
}

func TestLookupLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: tiny\nbpm: 100\nlength: 8\n"), 0o600))

	f, err := lookupLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", f().Meta.ID)
}

func TestResolveLevel(t *testing.T) {
	flagLevelFile = ""
	_, err := resolveLevel(nil)
	assert.Error(t, err)

	_, err = resolveLevel([]string{"nope"})
	assert.Error(t, err)

	f, err := resolveLevel([]string{"warmup"})
	require.NoError(t, err)
	assert.Equal(t, "warmup", f().Meta.ID)
}

func TestLoadPath(t *testing.T) {
	defs, err := loadPath(filepath.Join("..", "..", "internal", "levels", "builtin"))
	require.NoError(t, err)
	assert.NotEmpty(t, defs)

	_, err = loadPath("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoadGameConfig(t *testing.T) {
	defer func() { flagDifficulty = "" }()

	flagDifficulty = "hard"
	cfg, preset, err := loadGameConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, preset)
	assert.NoError(t, cfg.Validate())

	flagDifficulty = "impossible"
	_, _, err = loadGameConfig()
	assert.Error(t, err)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	defer func() { flagLogLevel = "info" }()

	flagLogLevel = "loud"
	_, _, err := newLogger(os.Stderr)
	assert.Error(t, err)
}
