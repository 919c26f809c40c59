// Package config manages the TOML user configuration and the persisted pet
// state snapshot. Both live under ~/.config/petcli by default; the config is
// created with defaults on first run.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"petcli/internal/history"
	"petcli/internal/pet"
)

// Provider selects the completion backend.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds user preferences. Loaded once at startup; immutable for the
// session.
type Config struct {
	PetName             string `toml:"pet_name"`
	PetASCII            string `toml:"pet_ascii"`
	HistoryLimit        int    `toml:"history_limit"`
	CommandHistoryLimit int    `toml:"command_history_limit"`
	LLMProvider         string `toml:"llm_provider"`
	Model               string `toml:"model"`
	OllamaURL           string `toml:"ollama_url"`
	OllamaModel         string `toml:"ollama_model"`
	Debug               bool   `toml:"debug"`
}

const defaultASCII = `
  /\___/\
 (  o o  )
 (  =^=  )
  (____)
`

// Default returns the default configuration.
func Default() Config {
	return Config{
		PetName:             "Whiskers",
		PetASCII:            defaultASCII,
		HistoryLimit:        history.DefaultLimit,
		CommandHistoryLimit: 50,
		LLMProvider:         ProviderOpenAI,
		Model:               "gpt-4o-mini",
		OllamaURL:           "http://localhost:11434",
		OllamaModel:         "llama2",
	}
}

// Dir returns the directory where config and state are stored.
// PETCLI_CONFIG_DIR overrides for tests and odd setups.
func Dir() (string, error) {
	if dir := os.Getenv("PETCLI_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "petcli"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// StateFile returns the full path to the pet state snapshot.
func StateFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// Load reads the configuration, writing the defaults to disk first if no
// file exists yet. A malformed file is an error, not a silent fallback, so
// a typo never quietly resets the pet.
func Load() (Config, error) {
	path, err := File()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg); err != nil {
			return cfg, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("malformed config %s: %w", path, err)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = history.DefaultLimit
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := File()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Snapshot is what survives between sessions: the pet plus the bounded chat
// log it was holding when the program quit.
type Snapshot struct {
	Pet      pet.State         `json:"pet"`
	Messages []history.Message `json:"messages"`
}

// LoadSnapshot reads the persisted state. A missing file returns ok=false;
// a corrupt file is treated the same so startup never fails on state.
func LoadSnapshot() (Snapshot, bool) {
	path, err := StateFile()
	if err != nil {
		return Snapshot{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false
	}
	return snap, true
}

// SaveSnapshot writes the persisted state.
func SaveSnapshot(snap Snapshot) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := StateFile()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
