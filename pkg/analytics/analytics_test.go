package analytics

import (
	"testing"

	"github.com/slaaziz/CBS/models"
)

func TestSummarize(t *testing.T) {
	articles := []models.Article{
		{ID: "1", Category: "Economie", Vertrouwensscore: 80, KeyThemes: []string{"inflatie", "prijzen"}},
		{ID: "2", Category: "Wonen", Vertrouwensscore: 60, KeyThemes: []string{"inflatie"}},
		{ID: "3", Category: "Economie", Vertrouwensscore: 0},
	}

	o := Summarize(articles, 10)

	if o.TotalArticles != 3 {
		t.Errorf("TotalArticles = %d, want 3", o.TotalArticles)
	}
	// Score 0 means no determined match and is kept out of the average.
	if o.MatchedArticles != 2 {
		t.Errorf("MatchedArticles = %d, want 2", o.MatchedArticles)
	}
	if o.AverageTrustScore != 70 {
		t.Errorf("AverageTrustScore = %d, want 70", o.AverageTrustScore)
	}

	if len(o.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(o.Categories))
	}
	// First-seen order, not alphabetical.
	if o.Categories[0].Category != "Economie" || o.Categories[0].Count != 2 {
		t.Errorf("Categories[0] = %+v, want Economie 2", o.Categories[0])
	}
	if o.Categories[1].Category != "Wonen" || o.Categories[1].Count != 1 {
		t.Errorf("Categories[1] = %+v, want Wonen 1", o.Categories[1])
	}

	if len(o.TopThemes) != 2 || o.TopThemes[0].Theme != "inflatie" || o.TopThemes[0].Count != 2 {
		t.Errorf("TopThemes = %+v, want inflatie first", o.TopThemes)
	}
}

func TestSummarizeAverageRounds(t *testing.T) {
	articles := []models.Article{
		{ID: "1", Vertrouwensscore: 70},
		{ID: "2", Vertrouwensscore: 75},
	}
	if o := Summarize(articles, 0); o.AverageTrustScore != 73 {
		t.Errorf("AverageTrustScore = %d, want 73 (72.5 rounded up)", o.AverageTrustScore)
	}
}

func TestSummarizeTopNThemesTieBreak(t *testing.T) {
	articles := []models.Article{
		{ID: "1", KeyThemes: []string{"b", "a", "c"}},
	}

	o := Summarize(articles, 2)
	if len(o.TopThemes) != 2 {
		t.Fatalf("len(TopThemes) = %d, want 2", len(o.TopThemes))
	}
	// All tie on count 1; alphabetical order breaks the tie.
	if o.TopThemes[0].Theme != "a" || o.TopThemes[1].Theme != "b" {
		t.Errorf("TopThemes = %+v, want [a b]", o.TopThemes)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	o := Summarize(nil, 10)
	if o.TotalArticles != 0 || o.MatchedArticles != 0 || o.AverageTrustScore != 0 {
		t.Errorf("Summarize(nil) = %+v, want zeroes", o)
	}
	if len(o.Categories) != 0 || len(o.TopThemes) != 0 {
		t.Errorf("Summarize(nil) produced lists: %+v", o)
	}
}
