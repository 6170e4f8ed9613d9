package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if len(cfg.Engines) != 3 {
		t.Fatalf("expected 3 default engines, got %d", len(cfg.Engines))
	}
	if cfg.Engines[0].Prefix != "g " {
		t.Errorf("expected google prefix first, got %q", cfg.Engines[0].Prefix)
	}
	if cfg.Debounce() != DefaultDebounceMS {
		t.Errorf("expected default debounce %d, got %d", DefaultDebounceMS, cfg.Debounce())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := NewConfig()
	cfg.Settings.DataDir = "/tmp/beacon-test"
	cfg.Settings.DebounceMS = 120

	if err := Save(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Settings == nil || loaded.Settings.DebounceMS != 120 {
		t.Errorf("settings lost in round trip: %+v", loaded.Settings)
	}
	if len(loaded.Engines) != 3 {
		t.Errorf("engines lost in round trip: %d", len(loaded.Engines))
	}

	dir, err := loaded.DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/beacon-test" {
		t.Errorf("expected configured data dir, got %q", dir)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	var notFound *ConfigNotFoundError
	if !asConfigNotFound(err, &notFound) {
		t.Errorf("expected ConfigNotFoundError, got %T: %v", err, err)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if _, ok := err.(*InvalidConfigError); !ok {
		t.Errorf("expected InvalidConfigError, got %T", err)
	}
}

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		name    string
		engine  candidate.SearchEngineConfig
		wantErr bool
	}{
		{"valid", candidate.SearchEngineConfig{Prefix: "g ", Name: "Google", URL: "https://g/?q={query}"}, false},
		{"empty prefix", candidate.SearchEngineConfig{Name: "X", URL: "https://x/{query}"}, true},
		{"empty name", candidate.SearchEngineConfig{Prefix: "x ", URL: "https://x/{query}"}, true},
		{"missing placeholder", candidate.SearchEngineConfig{Prefix: "x ", Name: "X", URL: "https://x/"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEngine(tt.engine)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DuplicatePrefix(t *testing.T) {
	cfg := NewConfig()
	cfg.Engines = append(cfg.Engines, candidate.SearchEngineConfig{
		Prefix: "g ", Name: "Other", URL: "https://other/?q={query}",
	})
	if err := cfg.Validate(); err == nil {
		t.Error("expected duplicate prefix to fail validation")
	}
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := NewConfig()
	cfg.Settings.DebounceMS = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected negative debounce to fail validation")
	}
}
