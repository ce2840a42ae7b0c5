// Package dataset implements the dataset import, dedupe and categorize
// commands: the offline maintenance side of the dashboard.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/slaaziz/CBS/internal/common"
	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/categorize"
	"github.com/slaaziz/CBS/pkg/importer"
	"github.com/slaaziz/CBS/pkg/store"
)

// ImportAction converts a scraper CSV export into the dataset JSON format.
func ImportAction(c *cli.Context) error {
	csvPath := c.String("csv")
	if csvPath == "" {
		return cli.Exit("--csv is required", 1)
	}

	logger := common.Logger(c)

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open csv %q: %w", csvPath, err)
	}
	defer f.Close()

	imp := importer.New(importer.Options{DetectLanguage: c.Bool("detect-language")})
	articles, rowErrs := imp.Import(f)
	for _, rowErr := range rowErrs {
		logger.Warn("skipped row", "error", rowErr)
	}
	logger.Info("import finished", "articles", len(articles), "skipped", len(rowErrs))

	if err := writeDataset(c.String("out"), articles); err != nil {
		return err
	}
	fmt.Printf("Geïmporteerd: %d artikelen (%d rijen overgeslagen)\n", len(articles), len(rowErrs))
	return nil
}

// DedupeReport is the structured output of the dedupe command.
type DedupeReport struct {
	Kept       int               `json:"kept" yaml:"kept"`
	Dropped    int               `json:"dropped" yaml:"dropped"`
	Duplicates []store.Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// DedupeAction reports duplicate ids in the dataset. With --write it also
// rewrites the dataset keeping the highest-scoring copy of each id.
func DedupeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	articles, err := readDataset(cfg.Dataset)
	if err != nil {
		return err
	}

	kept, dropped := store.Deduplicate(articles)
	report := DedupeReport{Kept: len(kept), Dropped: len(dropped), Duplicates: dropped}

	if c.Bool("write") && len(dropped) > 0 {
		if err := writeDataset(cfg.Dataset, kept); err != nil {
			return err
		}
		common.Logger(c).Info("dataset rewritten", "path", cfg.Dataset, "kept", len(kept), "dropped", len(dropped))
	}

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(report, format)
	}
	if len(dropped) == 0 {
		fmt.Println("Geen duplicaten gevonden.")
		return nil
	}
	fmt.Printf("%-12s %-6s %s\n", "ID", "Score", "Titel")
	for _, d := range dropped {
		fmt.Printf("%-12s %-6d %s\n", d.ID, d.Vertrouwensscore, d.Title)
	}
	fmt.Printf("%d duplicaten (behouden: %d artikelen)\n", len(dropped), len(kept))
	return nil
}

// CategorizeAction backfills missing categories from the keyword taxonomy.
// With --write it persists the result, otherwise it only reports changes.
func CategorizeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	articles, err := readDataset(cfg.Dataset)
	if err != nil {
		return err
	}

	classified := categorize.Apply(articles, categorize.NewKeywordClassifier())

	changed := 0
	for i := range articles {
		if articles[i].Category != classified[i].Category {
			changed++
			fmt.Printf("%-12s %q -> %q\n", articles[i].ID, articles[i].Category, classified[i].Category)
		}
	}

	if c.Bool("write") && changed > 0 {
		if err := writeDataset(cfg.Dataset, classified); err != nil {
			return err
		}
		common.Logger(c).Info("dataset rewritten", "path", cfg.Dataset, "recategorized", changed)
	}
	fmt.Printf("%d van %d artikelen gecategoriseerd\n", changed, len(articles))
	return nil
}

func readDataset(path string) ([]models.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", path, err)
	}
	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %q: %w", path, err)
	}
	return articles, nil
}

func writeDataset(path string, articles []models.Article) error {
	if path == "" {
		return cli.Exit("no output path configured", 1)
	}
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize dataset: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write dataset %q: %w", path, err)
	}
	return nil
}
