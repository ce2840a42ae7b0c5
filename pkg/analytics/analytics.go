// Package analytics computes the dashboard overview numbers.
package analytics

import (
	"sort"

	"github.com/slaaziz/CBS/models"
)

// CategoryCount is the number of articles carrying one category label.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// ThemeCount is the number of articles mentioning one key theme.
type ThemeCount struct {
	Theme string `json:"theme" yaml:"theme"`
	Count int    `json:"count" yaml:"count"`
}

// Overview summarizes the collection for the dashboard landing view.
type Overview struct {
	TotalArticles   int             `json:"total_articles" yaml:"total_articles"`
	MatchedArticles int             `json:"matched_articles" yaml:"matched_articles"`
	// AverageTrustScore is computed over matched articles only; a score of
	// 0 means "no determined match" and would drag the average down.
	AverageTrustScore int             `json:"average_trust_score" yaml:"average_trust_score"`
	Categories        []CategoryCount `json:"categories" yaml:"categories"`
	TopThemes         []ThemeCount    `json:"top_themes,omitempty" yaml:"top_themes,omitempty"`
}

// Summarize computes the overview. Categories appear in first-seen order;
// themes are the topN most frequent, ties broken alphabetically.
func Summarize(articles []models.Article, topN int) Overview {
	o := Overview{TotalArticles: len(articles)}

	scoreSum := 0
	categoryCounts := make(map[string]int)
	var categoryOrder []string
	themeCounts := make(map[string]int)

	for _, a := range articles {
		if a.Vertrouwensscore > 0 {
			o.MatchedArticles++
			scoreSum += a.Vertrouwensscore
		}
		if _, seen := categoryCounts[a.Category]; !seen {
			categoryOrder = append(categoryOrder, a.Category)
		}
		categoryCounts[a.Category]++
		for _, theme := range a.KeyThemes {
			themeCounts[theme]++
		}
	}

	if o.MatchedArticles > 0 {
		o.AverageTrustScore = int(float64(scoreSum)/float64(o.MatchedArticles) + 0.5)
	}

	for _, category := range categoryOrder {
		o.Categories = append(o.Categories, CategoryCount{Category: category, Count: categoryCounts[category]})
	}

	o.TopThemes = topThemes(themeCounts, topN)
	return o
}

func topThemes(counts map[string]int, n int) []ThemeCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	themes := make([]ThemeCount, 0, len(counts))
	for theme, count := range counts {
		themes = append(themes, ThemeCount{Theme: theme, Count: count})
	}
	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return themes[i].Theme < themes[j].Theme
	})
	if len(themes) > n {
		themes = themes[:n]
	}
	return themes
}
