package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.MaxResults != 200 {
		t.Errorf("default max_results = %d, want 200", cfg.Search.MaxResults)
	}
	if cfg.Corpus.DBPath != "words.sqlite" {
		t.Errorf("default db_path = %q, want words.sqlite", cfg.Corpus.DBPath)
	}
	if cfg.CLI.StartingWords != "starting_words.txt" {
		t.Errorf("default starting_words = %q", cfg.CLI.StartingWords)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
max_results = 50

[corpus]
db_path = "custom.sqlite"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Search.MaxResults != 50 {
		t.Errorf("max_results = %d, want 50", cfg.Search.MaxResults)
	}
	if cfg.Corpus.DBPath != "custom.sqlite" {
		t.Errorf("db_path = %q, want custom.sqlite", cfg.Corpus.DBPath)
	}
	// untouched section keeps its default
	if cfg.CLI.Instructions != "instructions.txt" {
		t.Errorf("instructions = %q, want default", cfg.CLI.Instructions)
	}
}

// a file with one broken section still yields the valid sections
func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
max_results = 75

[corpus]
db_path = 12345
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got: %v", err)
	}
	if cfg.Search.MaxResults != 75 {
		t.Errorf("recovered max_results = %d, want 75", cfg.Search.MaxResults)
	}
	if cfg.Corpus.DBPath != "words.sqlite" {
		t.Errorf("bad db_path should fall back to default, got %q", cfg.Corpus.DBPath)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Search.MaxResults != 200 {
		t.Errorf("created config max_results = %d, want 200", cfg.Search.MaxResults)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("InitConfig did not write the config file: %v", err)
	}

	// loading the file it wrote round-trips the defaults
	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *reloaded != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", reloaded, cfg)
	}
}

func TestUpdatePersistsMaxResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	limit := 120
	if err := cfg.Update(path, &limit); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Search.MaxResults != 120 {
		t.Errorf("persisted max_results = %d, want 120", reloaded.Search.MaxResults)
	}
}
