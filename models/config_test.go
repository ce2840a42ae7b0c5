package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.PageSize)
	}
	if cfg.DefaultSort != string(SortRelevance) {
		t.Errorf("DefaultSort = %q, want relevance", cfg.DefaultSort)
	}
	if cfg.FeedbackBackend != FeedbackBackendFile {
		t.Errorf("FeedbackBackend = %q, want file", cfg.FeedbackBackend)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
dataset: /data/articles.json
feedback_backend: sqlite
page_size: 50
default_sort: date-desc
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Dataset != "/data/articles.json" {
		t.Errorf("Dataset = %q", cfg.Dataset)
	}
	if cfg.FeedbackBackend != FeedbackBackendSQLite {
		t.Errorf("FeedbackBackend = %q, want sqlite", cfg.FeedbackBackend)
	}
	if cfg.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.PageSize)
	}
	if cfg.DefaultSort != string(SortDateDesc) {
		t.Errorf("DefaultSort = %q, want date-desc", cfg.DefaultSort)
	}
	// Unset fields keep their defaults.
	if cfg.FeedbackDir == "" {
		t.Error("FeedbackDir lost its default")
	}
}

func TestLoadConfigInvalidFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
page_size: -5
default_sort: bogus
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want fallback 20", cfg.PageSize)
	}
	if cfg.DefaultSort != string(SortRelevance) {
		t.Errorf("DefaultSort = %q, want fallback relevance", cfg.DefaultSort)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dataset: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed yaml, got nil")
	}
}
