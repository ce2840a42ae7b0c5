// Package store loads the static article dataset and serves it as an
// immutable in-memory collection for the lifetime of the process.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/categorize"
)

// ErrNotFound is returned when an article id does not resolve, e.g. a deep
// link to a removed article.
var ErrNotFound = errors.New("article not found")

// Duplicate describes a dataset row dropped during duplicate resolution.
type Duplicate struct {
	ID               string `json:"id" yaml:"id"`
	Title            string `json:"title" yaml:"title"`
	Vertrouwensscore int    `json:"vertrouwensscore" yaml:"vertrouwensscore"`
}

// Store is the immutable article collection. All accessors return copies;
// nothing mutates the collection after construction.
type Store struct {
	articles []models.Article
	byID     map[string]int
}

// Load reads the dataset JSON at path and builds a store. The classifier
// backfills categories for uncategorized articles; pass nil to skip the
// categorize pass.
func Load(path string, classifier categorize.Classifier) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return New(articles, classifier), nil
}

// New builds a store from raw dataset rows: duplicates are resolved, and
// categories are backfilled when a classifier is supplied.
func New(articles []models.Article, classifier categorize.Classifier) *Store {
	unique, _ := Deduplicate(articles)
	if classifier != nil {
		unique = categorize.Apply(unique, classifier)
	}
	byID := make(map[string]int, len(unique))
	for i, a := range unique {
		byID[a.ID] = i
	}
	return &Store{articles: unique, byID: byID}
}

// Articles returns a copy of the collection in dataset order.
func (s *Store) Articles() []models.Article {
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Get resolves an article by id. Returns ErrNotFound when the id is unknown.
func (s *Store) Get(id string) (models.Article, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Article{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.articles[i], nil
}

// Len returns the number of articles in the store.
func (s *Store) Len() int {
	return len(s.articles)
}

// Deduplicate resolves duplicate article ids. The canonical policy: keep the
// occurrence with the highest vertrouwensscore; on a tie keep the first one
// seen. The kept article stays at the position of the first occurrence, so
// dataset order is preserved. The dropped rows are reported for diagnostics.
func Deduplicate(articles []models.Article) ([]models.Article, []Duplicate) {
	position := make(map[string]int)
	var unique []models.Article
	var dropped []Duplicate

	for _, a := range articles {
		i, seen := position[a.ID]
		if !seen {
			position[a.ID] = len(unique)
			unique = append(unique, a)
			continue
		}
		kept := unique[i]
		if a.Vertrouwensscore > kept.Vertrouwensscore {
			unique[i] = a
			dropped = append(dropped, Duplicate{ID: kept.ID, Title: kept.Title, Vertrouwensscore: kept.Vertrouwensscore})
		} else {
			dropped = append(dropped, Duplicate{ID: a.ID, Title: a.Title, Vertrouwensscore: a.Vertrouwensscore})
		}
	}
	return unique, dropped
}
