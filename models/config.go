package models

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Feedback storage backends.
const (
	FeedbackBackendFile   = "file"
	FeedbackBackendSQLite = "sqlite"
)

// Config holds runtime configuration, loaded from a YAML file with sensible
// defaults for every field.
type Config struct {
	// Dataset is the path to the article dataset JSON file.
	Dataset string `yaml:"dataset"`
	// Database is the path to the sqlite article index.
	Database string `yaml:"database"`
	// FeedbackBackend selects where votes are stored: file or sqlite.
	FeedbackBackend string `yaml:"feedback_backend"`
	// FeedbackDir is the directory for the file feedback backend.
	FeedbackDir string `yaml:"feedback_dir"`
	// PageSize is the number of articles per result page.
	PageSize int `yaml:"page_size"`
	// DefaultSort is the sort key applied when none is requested.
	DefaultSort string `yaml:"default_sort"`
}

const appDirName = "cbs-dashboard"

// DefaultConfig returns the configuration used when no config file exists.
// Mutable state lands under the user's XDG data directory.
func DefaultConfig() *Config {
	dataDir := filepath.Join(xdg.DataHome, appDirName)
	return &Config{
		Dataset:         "articles.json",
		Database:        filepath.Join(dataDir, "dashboard.db"),
		FeedbackBackend: FeedbackBackendFile,
		FeedbackDir:     filepath.Join(dataDir, "feedback"),
		PageSize:        20,
		DefaultSort:     string(SortRelevance),
	}
}

// LoadConfig reads configuration from path. A missing file yields the
// defaults; a malformed file is an error. Empty fields fall back to their
// default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, appDirName, "config.yaml")
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.DefaultSort == "" || !IsValidSortKey(SortKey(cfg.DefaultSort)) {
		cfg.DefaultSort = string(SortRelevance)
	}
	if cfg.FeedbackBackend == "" {
		cfg.FeedbackBackend = FeedbackBackendFile
	}
	return cfg, nil
}
