package models

import "fmt"

// Vote is a reader's judgment on an article-to-source match.
type Vote string

const (
	VoteNone     Vote = ""
	VotePositive Vote = "positive"
	VoteNegative Vote = "negative"
)

// ParseVote validates a vote string from user input.
func ParseVote(raw string) (Vote, error) {
	switch Vote(raw) {
	case VotePositive, VoteNegative:
		return Vote(raw), nil
	}
	return VoteNone, fmt.Errorf("invalid vote %q (valid: positive, negative)", raw)
}

// ArticleFeedback is the per-article vote tally held in local storage.
// UserVote tracks the single active vote of this profile, last write wins.
type ArticleFeedback struct {
	ArticleID     string `json:"articleId" yaml:"articleId"`
	PositiveCount int    `json:"positiveCount" yaml:"positiveCount"`
	NegativeCount int    `json:"negativeCount" yaml:"negativeCount"`
	UserVote      Vote   `json:"userVote,omitempty" yaml:"userVote,omitempty"`
}

// Total returns the number of recorded votes.
func (f ArticleFeedback) Total() int {
	return f.PositiveCount + f.NegativeCount
}
