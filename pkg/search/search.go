// Package search provides the lightweight free-text match over the article
// collection. A match is binary: case-insensitive substring over title,
// snippet and body, or over any tag. There is no tokenization, stemming or
// relevance scoring; ordering belongs to the sorter.
package search

import (
	"strings"

	"github.com/slaaziz/CBS/models"
)

// Apply returns the articles matching query, preserving input order. A blank
// query is a no-op and returns the input unchanged.
func Apply(articles []models.Article, query string) []models.Article {
	query = strings.TrimSpace(query)
	if query == "" {
		return articles
	}
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if Matches(a, query) {
			out = append(out, a)
		}
	}
	return out
}

// Matches reports whether the article matches the query.
func Matches(a models.Article, query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Snippet), needle) ||
		strings.Contains(strings.ToLower(a.Body), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
