// Package common wires shared CLI concerns: logging, config, and opening the
// article and feedback stores.
package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/categorize"
	dbpkg "github.com/slaaziz/CBS/pkg/db"
	"github.com/slaaziz/CBS/pkg/feedback"
	"github.com/slaaziz/CBS/pkg/kv"
	"github.com/slaaziz/CBS/pkg/store"
)

// Logger builds the CLI logger: JSON on stderr, errors only under --quiet.
func Logger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by the global --config flag.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataset := c.String("dataset"); dataset != "" {
		cfg.Dataset = dataset
	}
	return cfg, nil
}

// OpenStore loads the article dataset with the default keyword classifier
// backfilling categories.
func OpenStore(cfg *models.Config) (*store.Store, error) {
	s, err := store.Load(cfg.Dataset, categorize.NewKeywordClassifier())
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %q: %w", cfg.Dataset, err)
	}
	return s, nil
}

// OpenFeedback opens the configured feedback backend. The returned closer
// releases the backend; it is a no-op for the file backend.
func OpenFeedback(cfg *models.Config, logger *slog.Logger) (*feedback.Store, func() error, error) {
	switch cfg.FeedbackBackend {
	case models.FeedbackBackendSQLite:
		database, err := dbpkg.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open feedback database: %w", err)
		}
		state := dbpkg.NewStateStore(database, "feedback")
		return feedback.NewStore(state, logger), database.Close, nil
	case models.FeedbackBackendFile, "":
		files, err := kv.NewFileStore(cfg.FeedbackDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open feedback storage: %w", err)
		}
		return feedback.NewStore(files, logger), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown feedback backend %q (valid: file, sqlite)", cfg.FeedbackBackend)
}

// PrintStructured writes v to stdout as yaml or json. Table output is
// handled by each command's own printer.
func PrintStructured(v interface{}, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Println(string(out))
	default:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Print(string(out))
	}
	return nil
}
