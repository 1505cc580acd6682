package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig(dir)
	if cfg.Endpoint != want.Endpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, want.Endpoint)
	}
	if cfg.Debug != want.Debug {
		t.Errorf("Debug = %v, want %v", cfg.Debug, want.Debug)
	}
	if cfg.HistoryPath != want.HistoryPath {
		t.Errorf("HistoryPath = %q, want %q", cfg.HistoryPath, want.HistoryPath)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig(dir)
	cfg.Endpoint = "http://translator.local:8080/translate"
	cfg.Debug = true

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Endpoint != cfg.Endpoint {
		t.Errorf("Endpoint = %q, want %q", got.Endpoint, cfg.Endpoint)
	}
	if !got.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()

	// Only the endpoint is set; everything else keeps its default.
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: http://remote:5000/translate\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Endpoint != "http://remote:5000/translate" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.HistoryPath == "" {
		t.Error("HistoryPath cleared by partial config")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: [broken\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig accepted malformed YAML")
	}
}

func TestLoadExamplesMissingFile(t *testing.T) {
	dir := t.TempDir()

	examples, err := LoadExamples(dir)
	if err != nil {
		t.Fatalf("LoadExamples: %v", err)
	}
	if len(examples) == 0 {
		t.Fatal("no built-in examples returned")
	}
	for i, ex := range examples {
		if ex.Javanese == "" || ex.Latin == "" {
			t.Errorf("example %d missing text: %+v", i, ex)
		}
	}
}

func TestSaveLoadExamples(t *testing.T) {
	dir := t.TempDir()

	in := []Example{
		{Javanese: "ꦱꦸꦒꦺꦁ ꦄꦮꦤ꧀", Latin: "sugeng awan", English: "good day"},
	}
	if err := SaveExamples(dir, in); err != nil {
		t.Fatalf("SaveExamples: %v", err)
	}

	got, err := LoadExamples(dir)
	if err != nil {
		t.Fatalf("LoadExamples: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Latin != "sugeng awan" {
		t.Errorf("Latin = %q", got[0].Latin)
	}
}
