package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/categorize"
)

func TestDeduplicateKeepsHighestScore(t *testing.T) {
	articles := []models.Article{
		{ID: "1", Title: "eerste", Vertrouwensscore: 60},
		{ID: "2", Title: "ander artikel", Vertrouwensscore: 80},
		{ID: "1", Title: "tweede", Vertrouwensscore: 90},
	}

	unique, dropped := Deduplicate(articles)

	if len(unique) != 2 {
		t.Fatalf("len(unique) = %d, want 2", len(unique))
	}
	// The winner takes the position of the first occurrence.
	if unique[0].ID != "1" || unique[0].Title != "tweede" {
		t.Errorf("unique[0] = %s %q, want the higher-scoring copy of 1 first", unique[0].ID, unique[0].Title)
	}
	if unique[1].ID != "2" {
		t.Errorf("unique[1].ID = %q, want 2", unique[1].ID)
	}

	if len(dropped) != 1 || dropped[0].Title != "eerste" || dropped[0].Vertrouwensscore != 60 {
		t.Errorf("dropped = %+v, want the 60-score copy", dropped)
	}
}

func TestDeduplicateTieKeepsFirst(t *testing.T) {
	articles := []models.Article{
		{ID: "1", Title: "eerste", Vertrouwensscore: 70},
		{ID: "1", Title: "tweede", Vertrouwensscore: 70},
	}

	unique, dropped := Deduplicate(articles)

	if len(unique) != 1 || unique[0].Title != "eerste" {
		t.Errorf("kept %q, want the first occurrence on a tie", unique[0].Title)
	}
	if len(dropped) != 1 || dropped[0].Title != "tweede" {
		t.Errorf("dropped = %+v, want the second occurrence", dropped)
	}
}

func TestDeduplicateNoDuplicates(t *testing.T) {
	articles := []models.Article{{ID: "1"}, {ID: "2"}}
	unique, dropped := Deduplicate(articles)
	if len(unique) != 2 || len(dropped) != 0 {
		t.Errorf("unique %d dropped %d, want 2 and 0", len(unique), len(dropped))
	}
}

func TestGet(t *testing.T) {
	s := New([]models.Article{{ID: "1", Title: "artikel"}}, nil)

	a, err := s.Get("1")
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if a.Title != "artikel" {
		t.Errorf("Title = %q, want artikel", a.Title)
	}

	_, err = s.Get("999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(999) error = %v, want ErrNotFound", err)
	}
}

func TestArticlesReturnsCopy(t *testing.T) {
	s := New([]models.Article{{ID: "1", Title: "origineel"}}, nil)

	articles := s.Articles()
	articles[0].Title = "aangepast"

	a, _ := s.Get("1")
	if a.Title != "origineel" {
		t.Error("mutating the returned slice changed the store")
	}
}

func TestNewBackfillsCategories(t *testing.T) {
	s := New([]models.Article{
		{ID: "1", Title: "Werkloosheid daalt"},
		{ID: "2", Title: "x", Category: "Wonen"},
	}, categorize.NewKeywordClassifier())

	a, _ := s.Get("1")
	if a.Category != "Arbeidsmarkt" {
		t.Errorf("Category = %q, want Arbeidsmarkt", a.Category)
	}
	b, _ := s.Get("2")
	if b.Category != "Wonen" {
		t.Errorf("Category = %q, want Wonen untouched", b.Category)
	}
}

func TestLoad(t *testing.T) {
	articles := []models.Article{
		{ID: "1", Title: "Inflatie stijgt", Vertrouwensscore: 85},
		{ID: "1", Title: "Inflatie stijgt (kopie)", Vertrouwensscore: 20},
	}
	data, err := json.Marshal(articles)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "articles.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after dedupe", s.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil); err == nil {
		t.Error("expected error for a missing dataset, got nil")
	}
}
