package search

import (
	"strings"

	"github.com/slaaziz/CBS/models"
)

// Suggestion is an autocomplete entry: an article title plus the id to jump
// to directly.
type Suggestion struct {
	Title     string `json:"title" yaml:"title"`
	ArticleID string `json:"articleId" yaml:"articleId"`
}

// Suggest returns up to limit title suggestions whose title contains query
// case-insensitively. An empty query suggests the leading articles as-is.
func Suggest(articles []models.Article, query string, limit int) []Suggestion {
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []Suggestion
	for _, a := range articles {
		if needle != "" && !strings.Contains(strings.ToLower(a.Title), needle) {
			continue
		}
		out = append(out, Suggestion{Title: a.Title, ArticleID: a.ID})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// SuggestCBSNumbers returns up to limit distinct CBS numbers, drawn from the
// parent linkage of the collection, that contain query case-insensitively.
func SuggestCBSNumbers(articles []models.Article, query string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		for _, number := range a.CBSNumber {
			if number == "" || seen[number] {
				continue
			}
			if needle != "" && !strings.Contains(strings.ToLower(number), needle) {
				continue
			}
			seen[number] = true
			out = append(out, number)
			if limit > 0 && len(out) >= limit {
				return out
			}
		}
	}
	return out
}
