package db

import (
	"fmt"
	"strings"

	"github.com/slaaziz/CBS/models"
)

// UpsertArticles writes the collection into the index, replacing rows that
// share an id. Returns the number of rows written.
func (db *DB) UpsertArticles(articles []models.Article) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO articles (
			id, title, snippet, body, date, source, publisher, category,
			vertrouwensscore, content_type, media_quality, citations,
			word_count, language, tags, key_themes, cbs_numbers, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			snippet = excluded.snippet,
			body = excluded.body,
			date = excluded.date,
			source = excluded.source,
			publisher = excluded.publisher,
			category = excluded.category,
			vertrouwensscore = excluded.vertrouwensscore,
			content_type = excluded.content_type,
			media_quality = excluded.media_quality,
			citations = excluded.citations,
			word_count = excluded.word_count,
			language = excluded.language,
			tags = excluded.tags,
			key_themes = excluded.key_themes,
			cbs_numbers = excluded.cbs_numbers,
			updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, a := range articles {
		_, err := stmt.Exec(
			a.ID, a.Title, a.Snippet, a.Body, a.Date, a.Source, a.Publisher,
			a.Category, a.Vertrouwensscore, a.ContentType, a.MediaQuality,
			a.Citations, a.WordCount, a.Language,
			strings.Join(a.Tags, ","),
			strings.Join(a.KeyThemes, ","),
			strings.Join(a.CBSNumber, ","),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert article %q: %w", a.ID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return count, nil
}

// CountArticles returns the number of indexed articles.
func (db *DB) CountArticles() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}
