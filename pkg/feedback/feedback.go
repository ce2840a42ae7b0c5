// Package feedback tracks per-article vote tallies in durable local storage.
// The tallies are a local, best-effort signal for this profile only; there is
// no cross-device sync and no server-side aggregation.
package feedback

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/kv"
)

// StorageKey is the single namespaced key holding the whole feedback mapping.
const StorageKey = "articleFeedback"

// Store manages vote tallies over an injected key-value capability.
type Store struct {
	kv     kv.Store
	logger *slog.Logger
}

// NewStore wraps a kv.Store. A nil logger disables logging.
func NewStore(store kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{kv: store, logger: logger}
}

// All returns the complete feedback mapping. A missing or corrupt payload
// degrades to an empty mapping, never an error.
func (s *Store) All() map[string]models.ArticleFeedback {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Error("failed to read feedback storage", "error", err)
		return map[string]models.ArticleFeedback{}
	}
	if !ok {
		return map[string]models.ArticleFeedback{}
	}
	var all map[string]models.ArticleFeedback
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Error("corrupt feedback storage, starting empty", "error", err)
		return map[string]models.ArticleFeedback{}
	}
	if all == nil {
		all = map[string]models.ArticleFeedback{}
	}
	return all
}

// Get returns the tally for an article, zero-valued when no votes exist.
func (s *Store) Get(articleID string) models.ArticleFeedback {
	if fb, ok := s.All()[articleID]; ok {
		return fb
	}
	return models.ArticleFeedback{ArticleID: articleID}
}

// UserVote returns this profile's current vote for the article, or VoteNone.
func (s *Store) UserVote(articleID string) models.Vote {
	return s.Get(articleID).UserVote
}

// SubmitVote records a vote for the article and returns the updated tally.
// At most one vote per profile per article: a repeated vote of a different
// type moves one count from the old bucket to the new one. Counts never go
// negative. A storage write failure returns the updated tally alongside the
// error; the tally is simply not durable until storage recovers.
func (s *Store) SubmitVote(articleID string, vote models.Vote) (models.ArticleFeedback, error) {
	if vote != models.VotePositive && vote != models.VoteNegative {
		return models.ArticleFeedback{}, fmt.Errorf("invalid vote %q", vote)
	}

	all := s.All()
	fb, ok := all[articleID]
	if !ok {
		fb = models.ArticleFeedback{ArticleID: articleID}
	}

	switch fb.UserVote {
	case models.VotePositive:
		fb.PositiveCount = max(0, fb.PositiveCount-1)
	case models.VoteNegative:
		fb.NegativeCount = max(0, fb.NegativeCount-1)
	}

	if vote == models.VotePositive {
		fb.PositiveCount++
	} else {
		fb.NegativeCount++
	}
	fb.UserVote = vote

	all[articleID] = fb
	if err := s.save(all); err != nil {
		s.logger.Error("failed to persist vote", "article_id", articleID, "error", err)
		return fb, err
	}
	return fb, nil
}

// Clear removes all stored feedback.
func (s *Store) Clear() error {
	return s.kv.Delete(StorageKey)
}

// PositivePercentage returns the share of positive votes, rounded. ok is
// false when the article has no votes yet.
func (s *Store) PositivePercentage(articleID string) (int, bool) {
	fb := s.Get(articleID)
	total := fb.Total()
	if total == 0 {
		return 0, false
	}
	return int(float64(fb.PositiveCount)/float64(total)*100 + 0.5), true
}

// HelpfulnessText renders the tally as the display string, empty when there
// are no votes.
func (s *Store) HelpfulnessText(articleID string) string {
	fb := s.Get(articleID)
	total := fb.Total()
	if total == 0 {
		return ""
	}
	pct, _ := s.PositivePercentage(articleID)
	unit := "stemmen"
	if total == 1 {
		unit = "stem"
	}
	return fmt.Sprintf("%d%% vond dit nuttig (%d %s)", pct, total, unit)
}

func (s *Store) save(all map[string]models.ArticleFeedback) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to serialize feedback: %w", err)
	}
	return s.kv.Set(StorageKey, data)
}
