// Package db implements the db index and db query commands.
package db

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/slaaziz/CBS/internal/common"
	"github.com/slaaziz/CBS/models"
	dbpkg "github.com/slaaziz/CBS/pkg/db"
	"github.com/slaaziz/CBS/pkg/query"
)

// IndexAction loads the dataset and upserts every article into the SQLite
// index so db query can filter on it.
func IndexAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	database, err := dbpkg.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	count, err := database.UpsertArticles(s.Articles())
	if err != nil {
		return fmt.Errorf("failed to index articles: %w", err)
	}

	total, err := database.CountArticles()
	if err != nil {
		return fmt.Errorf("failed to count articles: %w", err)
	}

	common.Logger(c).Info("index updated", "path", database.Path(), "indexed", count, "total", total)
	fmt.Printf("Geïndexeerd: %d artikelen (%d totaal in %s)\n", count, total, database.Path())
	return nil
}

// QueryAction runs a filter expression against the SQLite index, e.g.
// "vertrouwensscore >= 70 AND category = Economie".
func QueryAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	sortKey := models.SortKey(c.String("sort"))
	if sortKey == "" {
		sortKey = models.SortKey(cfg.DefaultSort)
	}
	if sortKey != "" && !models.IsValidSortKey(sortKey) {
		return cli.Exit(fmt.Sprintf("unknown sort key %q (valid: %v)", sortKey, models.AllSortKeys()), 1)
	}

	database, err := dbpkg.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	resp, err := query.Execute(database, c.String("filter"), sortKey)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(resp, format)
	}
	fmt.Print(resp.FormatTable())
	return nil
}
