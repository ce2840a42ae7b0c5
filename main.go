package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/slaaziz/CBS/internal/browse"
	"github.com/slaaziz/CBS/internal/dataset"
	dbcmd "github.com/slaaziz/CBS/internal/db"
	"github.com/slaaziz/CBS/internal/feedback"
	"github.com/slaaziz/CBS/internal/overview"
	"github.com/slaaziz/CBS/models"
)

func main() {
	app := &cli.App{
		Name:  "cbsdash",
		Usage: "doorzoek en beoordeel mediaberichtgeving over CBS-cijfers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.StringFlag{
				Name:  "dataset",
				Usage: "override the dataset path from the config",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: table, yaml or json",
				Value:   "table",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "search and filter articles",
				ArgsUsage: "[query terms]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "categories", Usage: "comma-separated category filter"},
					&cli.StringFlag{Name: "sources", Usage: "comma-separated source filter"},
					&cli.StringFlag{Name: "themes", Usage: "comma-separated key theme filter"},
					&cli.StringFlag{Name: "publishers", Usage: "comma-separated publisher filter"},
					&cli.StringFlag{Name: "time-range", Usage: "all, 24h, week, month or quarter"},
					&cli.IntFlag{Name: "min-score", Usage: "minimum vertrouwensscore (0-100)"},
					&cli.StringFlag{Name: "content-type", Usage: "all, cbs-data, cbs-only or nieuwsvergadering"},
					&cli.IntFlag{Name: "citation-min", Usage: "minimum citation count"},
					&cli.IntFlag{Name: "citation-max", Usage: "maximum citation count"},
					&cli.StringFlag{Name: "media-quality", Usage: "comma-separated media quality levels"},
					&cli.StringFlag{Name: "query-string", Usage: "filters as a dashboard URL query string"},
					&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Usage: "sort key"},
					&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Usage: "result page", Value: 1},
					&cli.IntFlag{Name: "page-size", Usage: "articles per page"},
				},
				Action: browse.SearchAction,
			},
			{
				Name:  "article",
				Usage: "inspect a single article",
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "show an article with parent releases and feedback",
						ArgsUsage: "<id>",
						Action:    browse.ShowAction,
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "autocomplete titles and CBS numbers for a partial query",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "max suggestions per kind", Value: 5},
				},
				Action: browse.SuggestAction,
			},
			{
				Name:  "feedback",
				Usage: "record and inspect helpfulness votes",
				Subcommands: []*cli.Command{
					{
						Name:      "vote",
						Usage:     "vote on an article",
						ArgsUsage: "<id> <positive|negative>",
						Action:    feedback.VoteAction,
					},
					{
						Name:      "show",
						Usage:     "show recorded feedback",
						ArgsUsage: "[id]",
						Action:    feedback.ShowAction,
					},
					{
						Name:   "clear",
						Usage:  "remove all recorded votes",
						Action: feedback.ClearAction,
					},
				},
			},
			{
				Name:  "dataset",
				Usage: "maintain the article dataset",
				Subcommands: []*cli.Command{
					{
						Name:  "import",
						Usage: "convert a scraper CSV export to dataset JSON",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "csv", Usage: "CSV file to import", Required: true},
							&cli.StringFlag{Name: "out", Usage: "output JSON path", Required: true},
							&cli.BoolFlag{Name: "detect-language", Usage: "detect article language from the body"},
						},
						Action: dataset.ImportAction,
					},
					{
						Name:  "dedupe",
						Usage: "report duplicate article ids",
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "write", Usage: "rewrite the dataset without duplicates"},
						},
						Action: dataset.DedupeAction,
					},
					{
						Name:  "categorize",
						Usage: "backfill categories from the keyword taxonomy",
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "write", Usage: "persist recategorized articles"},
						},
						Action: dataset.CategorizeAction,
					},
				},
			},
			{
				Name:  "db",
				Usage: "SQLite article index",
				Subcommands: []*cli.Command{
					{
						Name:   "index",
						Usage:  "load the dataset into the SQLite index",
						Action: dbcmd.IndexAction,
					},
					{
						Name:  "query",
						Usage: "filter the index with an expression",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "filter",
								Usage: "e.g. \"vertrouwensscore >= 70 AND category = Economie\"",
							},
							&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Usage: "sort key"},
						},
						Action: dbcmd.QueryAction,
					},
				},
			},
			{
				Name:  "stats",
				Usage: "dashboard overview numbers",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query-string", Usage: "restrict to articles matching these filters"},
					&cli.IntFlag{Name: "top-themes", Usage: "number of top themes to list", Value: 10},
				},
				Action: overview.StatsAction,
			},
			{
				Name:  "graph",
				Usage: "article-to-source network data",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "max-sources", Usage: "cap on distinct source releases (0 = all)"},
				},
				Action: overview.GraphAction,
			},
			{
				Name:  "sort-keys",
				Usage: "list supported sort keys",
				Action: func(c *cli.Context) error {
					for _, key := range models.AllSortKeys() {
						fmt.Println(key)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
