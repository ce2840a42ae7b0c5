// Package rank orders and pages article collections. Sorting is stable so
// that pagination over identical inputs is deterministic.
package rank

import (
	"sort"
	"strings"

	"github.com/slaaziz/CBS/models"
)

// Sort returns a new slice ordered by key. Ties keep their original relative
// order. Articles missing the sort field are pushed to the end: an article
// without a date sorts last under both date orders, and an unknown key falls
// back to relevance (vertrouwensscore descending).
func Sort(articles []models.Article, key models.SortKey) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key models.SortKey) func(a, b models.Article) bool {
	switch key {
	case models.SortDateDesc:
		return func(a, b models.Article) bool {
			da, aok := a.ParsedDate()
			db, bok := b.ParsedDate()
			if !aok || !bok {
				return aok && !bok
			}
			return da.After(db)
		}
	case models.SortDateAsc:
		return func(a, b models.Article) bool {
			da, aok := a.ParsedDate()
			db, bok := b.ParsedDate()
			if !aok || !bok {
				return aok && !bok
			}
			return da.Before(db)
		}
	case models.SortTrustAsc:
		return func(a, b models.Article) bool {
			return a.Vertrouwensscore < b.Vertrouwensscore
		}
	case models.SortCitationsDesc:
		return func(a, b models.Article) bool {
			return a.Citations > b.Citations
		}
	case models.SortPublisherAsc:
		return func(a, b models.Article) bool {
			return strings.ToLower(a.Publisher) < strings.ToLower(b.Publisher)
		}
	case models.SortQualityDesc:
		return func(a, b models.Article) bool {
			return a.MediaQuality > b.MediaQuality
		}
	case models.SortWordCountDesc:
		return func(a, b models.Article) bool {
			return a.WordCount > b.WordCount
		}
	case models.SortTrustDesc, models.SortRelevance:
		fallthrough
	default:
		return func(a, b models.Article) bool {
			return a.Vertrouwensscore > b.Vertrouwensscore
		}
	}
}
