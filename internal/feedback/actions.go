// Package feedback implements the feedback vote, show and clear commands.
package feedback

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/slaaziz/CBS/internal/common"
	"github.com/slaaziz/CBS/models"
	"github.com/slaaziz/CBS/pkg/store"
)

// VoteAction records a helpfulness vote for an article. Voting the other way
// moves the earlier vote instead of stacking a second one.
func VoteAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: feedback vote <article-id> <positive|negative>", 1)
	}
	articleID := c.Args().Get(0)
	vote, err := models.ParseVote(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}
	if _, err := s.Get(articleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return cli.Exit(fmt.Sprintf("artikel %q niet gevonden", articleID), 1)
		}
		return err
	}

	logger := common.Logger(c)
	fb, closeFeedback, err := common.OpenFeedback(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFeedback()

	entry, err := fb.SubmitVote(articleID, vote)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	logger.Info("vote recorded", "article_id", articleID, "vote", string(vote))

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(entry, format)
	}
	fmt.Println(fb.HelpfulnessText(articleID))
	return nil
}

// ArticleReport pairs feedback tallies with the article title when the
// article is still present in the dataset.
type ArticleReport struct {
	ArticleID     string      `json:"article_id" yaml:"article_id"`
	Title         string      `json:"title,omitempty" yaml:"title,omitempty"`
	PositiveCount int         `json:"positive_count" yaml:"positive_count"`
	NegativeCount int         `json:"negative_count" yaml:"negative_count"`
	UserVote      models.Vote `json:"user_vote,omitempty" yaml:"user_vote,omitempty"`
	Helpfulness   string      `json:"helpfulness,omitempty" yaml:"helpfulness,omitempty"`
}

// FeedbackReport lists every article with recorded feedback.
type FeedbackReport struct {
	Articles []ArticleReport `json:"articles" yaml:"articles"`
}

// ShowAction prints recorded feedback, for one article or for all of them.
func ShowAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	s, err := common.OpenStore(cfg)
	if err != nil {
		return err
	}

	logger := common.Logger(c)
	fb, closeFeedback, err := common.OpenFeedback(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFeedback()

	all := fb.All()

	var report FeedbackReport
	if articleID := c.Args().First(); articleID != "" {
		entry, ok := all[articleID]
		if !ok {
			entry = models.ArticleFeedback{ArticleID: articleID}
		}
		report.Articles = append(report.Articles, buildReport(s, fb.HelpfulnessText(articleID), entry))
	} else {
		ids := make([]string, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			report.Articles = append(report.Articles, buildReport(s, fb.HelpfulnessText(id), all[id]))
		}
	}

	if format := c.String("format"); format == "yaml" || format == "json" {
		return common.PrintStructured(report, format)
	}
	printFeedbackTable(report)
	return nil
}

// ClearAction removes every recorded vote.
func ClearAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.Logger(c)
	fb, closeFeedback, err := common.OpenFeedback(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFeedback()

	if err := fb.Clear(); err != nil {
		return fmt.Errorf("failed to clear feedback: %w", err)
	}
	logger.Info("feedback cleared")
	fmt.Println("Feedback gewist.")
	return nil
}

func buildReport(s *store.Store, helpfulness string, entry models.ArticleFeedback) ArticleReport {
	r := ArticleReport{
		ArticleID:     entry.ArticleID,
		PositiveCount: entry.PositiveCount,
		NegativeCount: entry.NegativeCount,
		UserVote:      entry.UserVote,
		Helpfulness:   helpfulness,
	}
	if a, err := s.Get(entry.ArticleID); err == nil {
		r.Title = a.Title
	}
	return r
}

func printFeedbackTable(report FeedbackReport) {
	if len(report.Articles) == 0 {
		fmt.Println("Geen feedback gevonden.")
		return
	}
	fmt.Printf("%-12s %-4s %-4s %-10s %s\n", "ID", "+", "-", "Stem", "Titel")
	for _, r := range report.Articles {
		fmt.Printf("%-12s %-4d %-4d %-10s %s\n",
			r.ArticleID, r.PositiveCount, r.NegativeCount, string(r.UserVote), r.Title)
	}
}
