// Package filter selects articles against a multi-facet FilterState.
//
// Facets compose conjunctively: an article must pass every populated facet.
// Within a facet the selected values compose disjunctively. An empty
// FilterState is the identity: every article passes, order untouched.
package filter

import (
	"strings"
	"time"

	"github.com/slaaziz/CBS/models"
)

// Apply returns the articles matching f, preserving input order. No elements
// are duplicated or invented; the result is always a subset of articles.
func Apply(articles []models.Article, f models.FilterState) []models.Article {
	return ApplyAt(articles, f, time.Now())
}

// ApplyAt is Apply with an explicit reference time for the time-range facet.
func ApplyAt(articles []models.Article, f models.FilterState, now time.Time) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if matches(a, f, now) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a models.Article, f models.FilterState, now time.Time) bool {
	if len(f.Categories) > 0 && !containsString(f.Categories, a.Category) {
		return false
	}
	if len(f.Sources) > 0 && !containsString(f.Sources, a.Source) {
		return false
	}
	if len(f.Themes) > 0 && !matchesThemes(a, f.Themes) {
		return false
	}
	if !matchesTimeRange(a, f.TimeRange, now) {
		return false
	}
	if f.MinVertrouwensscore != nil && a.Vertrouwensscore < *f.MinVertrouwensscore {
		return false
	}
	if len(f.Publishers) > 0 && !containsString(f.Publishers, a.Publisher) {
		return false
	}
	if f.ContentType != "" && f.ContentType != models.ContentTypeAll && a.ContentType != f.ContentType {
		return false
	}
	if f.CitationRange != nil && (a.Citations < f.CitationRange.Min || a.Citations > f.CitationRange.Max) {
		return false
	}
	if len(f.MediaQuality) > 0 && !containsInt(f.MediaQuality, a.MediaQuality) {
		return false
	}
	return true
}

// matchesThemes passes when any selected theme appears, case-insensitively,
// as a substring of any key theme or tag.
func matchesThemes(a models.Article, themes []string) bool {
	for _, theme := range themes {
		needle := strings.ToLower(theme)
		for _, kt := range a.KeyThemes {
			if strings.Contains(strings.ToLower(kt), needle) {
				return true
			}
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

// matchesTimeRange applies the fixed date buckets. An article without a
// parseable date is excluded by every bucket except "all"; a missing date is
// not treated as "recent".
func matchesTimeRange(a models.Article, timeRange string, now time.Time) bool {
	if timeRange == "" || timeRange == models.TimeRangeAll {
		return true
	}
	date, ok := a.ParsedDate()
	if !ok {
		return false
	}
	daysDiff := int(now.Sub(date).Hours() / 24)
	switch timeRange {
	case models.TimeRange24h:
		return daysDiff <= 1
	case models.TimeRange7d:
		return daysDiff <= 7
	case models.TimeRange30d:
		return daysDiff <= 30
	case models.TimeRange90d:
		return daysDiff <= 90
	}
	// Unknown bucket means no constraint, same as a malformed URL parameter.
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, n := range haystack {
		if n == needle {
			return true
		}
	}
	return false
}
