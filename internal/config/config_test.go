package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcli/internal/history"
	"petcli/internal/pet"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PETCLI_CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Whiskers", cfg.PetName)
	assert.Equal(t, history.DefaultLimit, cfg.HistoryLimit)

	// The defaults were written to disk.
	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	t.Setenv("PETCLI_CONFIG_DIR", t.TempDir())

	cfg := Default()
	cfg.PetName = "Mochi"
	cfg.HistoryLimit = 42
	cfg.LLMProvider = ProviderOllama
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Mochi", got.PetName)
	assert.Equal(t, 42, got.HistoryLimit)
	assert.Equal(t, ProviderOllama, got.LLMProvider)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PETCLI_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("pet_name = [broken"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config")
}

func TestLoadNormalizesHistoryLimit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PETCLI_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("history_limit = -5"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, history.DefaultLimit, cfg.HistoryLimit)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Setenv("PETCLI_CONFIG_DIR", t.TempDir())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Pet: pet.NewState("Mochi", now),
		Messages: []history.Message{
			{Role: history.RoleUser, Text: "hi", Time: now},
			{Role: history.RolePet, Text: "meow", Time: now},
		},
	}
	require.NoError(t, SaveSnapshot(snap))

	got, ok := LoadSnapshot()
	require.True(t, ok)
	assert.Equal(t, "Mochi", got.Pet.Name)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, history.RolePet, got.Messages[1].Role)
}

func TestLoadSnapshotMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PETCLI_CONFIG_DIR", dir)

	_, ok := LoadSnapshot()
	assert.False(t, ok, "missing snapshot")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0644))
	_, ok = LoadSnapshot()
	assert.False(t, ok, "corrupt snapshot")
}
