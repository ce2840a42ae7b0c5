// Package browse implements the search, suggest and article detail commands.
package browse

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/slaaziz/CBS/internal/common"
	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/filter"
	"github.com/slaaziz/CBS/pkg/rank"
	"github.com/slaaziz/CBS/pkg/search"
	"github.com/slaaziz/CBS/pkg/store"
)

// SearchResponse is the structured output of the search command.
type SearchResponse struct {
	Query        string           `json:"query,omitempty" yaml:"query,omitempty"`
	Filters      []string         `json:"filters,omitempty" yaml:"filters,omitempty"`
	Sort         string           `json:"sort" yaml:"sort"`
	Page         int              `json:"page" yaml:"page"`
	TotalPages   int              `json:"total_pages" yaml:"total_pages"`
	TotalMatches int              `json:"total_matches" yaml:"total_matches"`
	Articles     []models.Article `json:"articles" yaml:"articles"`
}

// SearchAction runs the full pipeline: load, filter, search, sort, paginate.
func SearchAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	filters, err := filterStateFromFlags(c)
	if err != nil {
		return err
	}

	sortKey := models.SortKey(cfg.DefaultSort)
	if raw := c.String("sort"); raw != "" {
		sortKey = models.SortKey(raw)
		if !models.IsValidSortKey(sortKey) {
			return fmt.Errorf("invalid sort key %q", raw)
		}
	}

	pageSize := cfg.PageSize
	if c.IsSet("page-size") {
		pageSize = c.Int("page-size")
	}

	query := strings.Join(c.Args().Slice(), " ")

	results := filter.Apply(s.Articles(), filters)
	results = search.Apply(results, query)
	results = rank.Sort(results, sortKey)

	totalMatches := len(results)
	page, totalPages := rank.Paginate(results, pageSize, c.Int("page"))

	resp := SearchResponse{
		Query:        query,
		Filters:      filters.Labels(),
		Sort:         string(sortKey),
		Page:         min(max(c.Int("page"), 1), max(totalPages, 1)),
		TotalPages:   totalPages,
		TotalMatches: totalMatches,
		Articles:     page,
	}

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(resp, format)
	}
	printSearchTable(resp)
	return nil
}

func printSearchTable(resp SearchResponse) {
	if len(resp.Filters) > 0 {
		fmt.Printf("Actieve filters: %s\n\n", strings.Join(resp.Filters, " | "))
	}
	fmt.Printf("%-8s %-16s %-6s %-18s %-20s %-44s\n", "ID", "Datum", "Score", "Categorie", "Uitgever", "Titel")
	fmt.Println(strings.Repeat("-", 116))
	for _, a := range resp.Articles {
		fmt.Printf("%-8s %-16s %-6d %-18s %-20s %-44s\n",
			a.ID, displayDate(a), a.Vertrouwensscore, a.Category, truncate(a.Publisher, 20), truncate(a.Title, 44))
	}
	fmt.Printf("\n%d artikelen, pagina %d van %d\n", resp.TotalMatches, resp.Page, resp.TotalPages)
}

// displayDate renders the article date relative to now for recent articles.
func displayDate(a models.Article) string {
	date, ok := a.ParsedDate()
	if !ok {
		return "-"
	}
	if time.Since(date) < 90*24*time.Hour && time.Since(date) >= 0 {
		return humanize.Time(date)
	}
	return a.Date
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// filterStateFromFlags builds the FilterState. The --query-string flag takes
// a raw URL query and exercises the same parser the dashboard URL contract
// uses; the individual flags compose the equivalent query underneath.
func filterStateFromFlags(c *cli.Context) (models.FilterState, error) {
	if raw := c.String("query-string"); raw != "" {
		values, err := url.ParseQuery(raw)
		if err != nil {
			return models.FilterState{}, fmt.Errorf("invalid query string: %w", err)
		}
		return models.ParseFilterValues(values), nil
	}

	values := url.Values{}
	setIf := func(param, flag string) {
		if v := c.String(flag); v != "" {
			values.Set(param, v)
		}
	}
	setIf("categories", "categories")
	setIf("sources", "sources")
	setIf("themes", "themes")
	setIf("timeRange", "time-range")
	setIf("publishers", "publishers")
	setIf("contentType", "content-type")
	setIf("mediaQuality", "media-quality")
	if c.IsSet("min-score") {
		values.Set("minScore", fmt.Sprint(c.Int("min-score")))
	}
	if c.IsSet("citation-min") {
		values.Set("citationMin", fmt.Sprint(c.Int("citation-min")))
	}
	if c.IsSet("citation-max") {
		values.Set("citationMax", fmt.Sprint(c.Int("citation-max")))
	}
	return models.ParseFilterValues(values), nil
}

// ArticleDetail is the structured output of the article show command.
type ArticleDetail struct {
	Article     models.Article         `json:"article" yaml:"article"`
	Parents     []models.ParentLink    `json:"parents,omitempty" yaml:"parents,omitempty"`
	Feedback    models.ArticleFeedback `json:"feedback" yaml:"feedback"`
	Helpfulness string                 `json:"helpfulness,omitempty" yaml:"helpfulness,omitempty"`
}

// ShowAction renders one article with its parent releases and feedback
// tally. An unknown id is a not-found message, not a failure of the tool.
func ShowAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: article show <id>")
	}
	id := c.Args().First()

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	article, err := s.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return cli.Exit(fmt.Sprintf("Artikel %q niet gevonden. Gebruik 'search' om artikelen te vinden.", id), 1)
	}
	if err != nil {
		return err
	}

	logger := common.Logger(c)
	fb, closeFeedback, err := common.OpenFeedback(cfg, logger)
	var detail ArticleDetail
	detail.Article = article
	detail.Parents = article.ParentLinks()
	if err != nil {
		// Feedback storage being unavailable degrades the view, it does
		// not break it.
		logger.Error("feedback storage unavailable", "error", err)
		detail.Feedback = models.ArticleFeedback{ArticleID: id}
	} else {
		defer closeFeedback()
		detail.Feedback = fb.Get(id)
		detail.Helpfulness = fb.HelpfulnessText(id)
	}

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(detail, format)
	}
	printArticleDetail(detail)
	return nil
}

func printArticleDetail(d ArticleDetail) {
	a := d.Article
	fmt.Printf("%s\n", a.Title)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:               %s\n", a.ID)
	fmt.Printf("Datum:            %s\n", displayDate(a))
	fmt.Printf("Bron:             %s\n", a.Source)
	fmt.Printf("Uitgever:         %s\n", a.Publisher)
	fmt.Printf("Categorie:        %s\n", a.Category)
	fmt.Printf("Vertrouwensscore: %d%%\n", a.Vertrouwensscore)
	if len(a.Tags) > 0 {
		fmt.Printf("Tags:             %s\n", strings.Join(a.Tags, ", "))
	}
	if len(a.KeyThemes) > 0 {
		fmt.Printf("Thema's:          %s\n", strings.Join(a.KeyThemes, ", "))
	}
	if a.Snippet != "" {
		fmt.Printf("\n%s\n", a.Snippet)
	}
	if len(d.Parents) > 0 {
		fmt.Printf("\nGekoppelde CBS-publicaties (%d):\n", len(d.Parents))
		fmt.Println(strings.Repeat("-", 60))
		for _, p := range d.Parents {
			fmt.Printf("  %s", p.CBSNumber)
			if p.Title != "" {
				fmt.Printf("  %s", p.Title)
			}
			if p.Date != "" {
				fmt.Printf("  (%s)", p.Date)
			}
			fmt.Println()
		}
	}
	fmt.Printf("\nFeedback: +%d / -%d", d.Feedback.PositiveCount, d.Feedback.NegativeCount)
	if d.Helpfulness != "" {
		fmt.Printf("  %s", d.Helpfulness)
	}
	fmt.Println()
}

// SuggestResponse is the structured output of the suggest command.
type SuggestResponse struct {
	Query      string              `json:"query" yaml:"query"`
	Titles     []search.Suggestion `json:"titles,omitempty" yaml:"titles,omitempty"`
	CBSNumbers []string            `json:"cbsNumbers,omitempty" yaml:"cbsNumbers,omitempty"`
}

// SuggestAction prints autocomplete suggestions for a partial query.
func SuggestAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	query := strings.Join(c.Args().Slice(), " ")
	limit := c.Int("limit")
	resp := SuggestResponse{
		Query:      query,
		Titles:     search.Suggest(s.Articles(), query, limit),
		CBSNumbers: search.SuggestCBSNumbers(s.Articles(), query, limit),
	}

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(resp, format)
	}
	for _, suggestion := range resp.Titles {
		fmt.Printf("%s  (artikel %s)\n", suggestion.Title, suggestion.ArticleID)
	}
	for _, number := range resp.CBSNumbers {
		fmt.Println(number)
	}
	return nil
}

