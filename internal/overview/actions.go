// Package overview implements the stats and graph commands.
package overview

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/slaaziz/CBS/internal/common"
	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/analytics"
	"github.com/slaaziz/CBS/pkg/filter"
	"github.com/slaaziz/CBS/pkg/graph"
)

// StatsAction prints dashboard overview numbers, over the whole dataset or
// over the subset matching --query-string filters.
func StatsAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	articles := s.Articles()
	filtered := articles
	var filters models.FilterState
	if raw := c.String("query-string"); raw != "" {
		values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
		if err != nil {
			return fmt.Errorf("invalid query string: %w", err)
		}
		filters = models.ParseFilterValues(values)
		filtered = filter.Apply(articles, filters)
	}

	overview := analytics.Summarize(filtered, c.Int("top-themes"))

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(overview, format)
	}
	printOverview(overview, filters, len(articles))
	return nil
}

// GraphAction emits the article-to-source network as yaml or json.
func GraphAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	g := graph.Build(s.Articles(), c.Int("max-sources"))

	format := c.String("format")
	if format != "yaml" && format != "json" {
		format = "yaml"
	}
	return common.PrintStructured(g, format)
}

func printOverview(o analytics.Overview, filters models.FilterState, datasetTotal int) {
	if labels := filters.Labels(); len(labels) > 0 {
		fmt.Printf("Filters:          %s\n", strings.Join(labels, ", "))
		fmt.Printf("Artikelen:        %d van %d\n", o.TotalArticles, datasetTotal)
	} else {
		fmt.Printf("Artikelen:        %d\n", o.TotalArticles)
	}
	fmt.Printf("Met match:        %d\n", o.MatchedArticles)
	fmt.Printf("Gem. score:       %d%%\n", o.AverageTrustScore)
	if len(o.Categories) > 0 {
		fmt.Println("Categorieën:")
		for _, cc := range o.Categories {
			fmt.Printf("  %-20s %d\n", cc.Category, cc.Count)
		}
	}
	if len(o.TopThemes) > 0 {
		fmt.Println("Thema's:")
		for _, tc := range o.TopThemes {
			fmt.Printf("  %-20s %d\n", tc.Theme, tc.Count)
		}
	}
}
