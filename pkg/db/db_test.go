package db

import (
	"testing"

	"github.com/slaaziz/CBS/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestUpsertArticles(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	articles := []models.Article{
		{
			ID:               "1",
			Title:            "Inflatie stijgt",
			Category:         "Economie",
			Vertrouwensscore: 85,
			Tags:             []string{"economie", "prijzen"},
			CBSNumber:        models.StringList{"84711NED"},
		},
		{ID: "2", Title: "Huizenprijzen dalen", Category: "Wonen", Vertrouwensscore: 40},
	}

	count, err := db.UpsertArticles(articles)
	if err != nil {
		t.Fatalf("UpsertArticles() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	total, err := db.CountArticles()
	if err != nil {
		t.Fatalf("CountArticles() failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}

	var tags string
	if err := db.QueryRow("SELECT tags FROM articles WHERE id = '1'").Scan(&tags); err != nil {
		t.Fatalf("failed to query tags: %v", err)
	}
	if tags != "economie,prijzen" {
		t.Errorf("tags = %q, want comma-joined", tags)
	}
}

func TestUpsertArticlesReplacesRow(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	db.UpsertArticles([]models.Article{{ID: "1", Title: "oud", Vertrouwensscore: 50}})

	_, err := db.UpsertArticles([]models.Article{{ID: "1", Title: "nieuw", Vertrouwensscore: 90}})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var title string
	var score int
	if err := db.QueryRow("SELECT title, vertrouwensscore FROM articles WHERE id = '1'").Scan(&title, &score); err != nil {
		t.Fatalf("failed to query article: %v", err)
	}
	if title != "nieuw" || score != 90 {
		t.Errorf("row = %q/%d, want nieuw/90", title, score)
	}

	total, _ := db.CountArticles()
	if total != 1 {
		t.Errorf("total = %d, want 1 after replacing", total)
	}
}

func TestStateStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	state := NewStateStore(db, "feedback")

	if _, ok, err := state.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v err %v, want absent without error", ok, err)
	}

	if err := state.Set("articleFeedback", []byte(`{"1":{}}`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	value, ok, err := state.Get("articleFeedback")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v err %v, want found", ok, err)
	}
	if string(value) != `{"1":{}}` {
		t.Errorf("value = %q", value)
	}

	// Overwrite keeps a single row per key.
	if err := state.Set("articleFeedback", []byte(`{}`)); err != nil {
		t.Fatalf("Set() update failed: %v", err)
	}
	var count int
	db.QueryRow("SELECT COUNT(*) FROM app_state WHERE namespace = 'feedback'").Scan(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}

	if err := state.Delete("articleFeedback"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := state.Get("articleFeedback"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting a missing key is not an error.
	if err := state.Delete("articleFeedback"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestStateStoreNamespacesAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	feedback := NewStateStore(db, "feedback")
	prefs := NewStateStore(db, "prefs")

	feedback.Set("key", []byte("a"))
	prefs.Set("key", []byte("b"))

	value, _, _ := feedback.Get("key")
	if string(value) != "a" {
		t.Errorf("feedback value = %q, want a", value)
	}
	value, _, _ = prefs.Get("key")
	if string(value) != "b" {
		t.Errorf("prefs value = %q, want b", value)
	}
}
