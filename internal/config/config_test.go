package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("config = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `[translate]
provider = "anthropic"
concurrency = 5

[export]
format = "vtt"
speaker_a_name = "Mira"
`
	path := filepath.Join(t.TempDir(), "scriptcue.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Translate.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Translate.Provider)
	}
	if cfg.Translate.Concurrency != 5 {
		t.Errorf("concurrency = %d, want 5", cfg.Translate.Concurrency)
	}
	// untouched keys keep defaults
	if cfg.Translate.BatchSize != 50 {
		t.Errorf("batch size = %d, want default 50", cfg.Translate.BatchSize)
	}
	if cfg.Export.Format != "vtt" {
		t.Errorf("format = %q, want vtt", cfg.Export.Format)
	}
	if cfg.Export.SpeakerAName != "Mira" {
		t.Errorf("speaker A name = %q, want Mira", cfg.Export.SpeakerAName)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptcue.toml")
	if err := os.WriteFile(path, []byte("[translate\nbroken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
