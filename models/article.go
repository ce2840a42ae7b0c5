// Package models defines the data records shared across the dashboard core.
package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the canonical date format used throughout the dataset.
const DateLayout = "2006-01-02"

// Content types distinguish how an article relates to a statistical release.
const (
	ContentTypeAll               = "all"
	ContentTypeCBSData           = "cbs-data"
	ContentTypeCBSOnly           = "cbs-only"
	ContentTypeNieuwsvergadering = "nieuwsvergadering"
)

// Article is a media article annotated with a trust score and its linkage to
// one or more source statistical releases.
type Article struct {
	ID               string     `json:"id" yaml:"id"`
	Title            string     `json:"title" yaml:"title"`
	Snippet          string     `json:"snippet" yaml:"snippet"`
	Body             string     `json:"body" yaml:"body"`
	Date             string     `json:"date,omitempty" yaml:"date,omitempty"`
	Source           string     `json:"source" yaml:"source"`
	Publisher        string     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Category         string     `json:"category" yaml:"category"`
	Vertrouwensscore int        `json:"vertrouwensscore" yaml:"vertrouwensscore"`
	Tags             []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	KeyThemes        []string   `json:"keyThemes,omitempty" yaml:"keyThemes,omitempty"`
	WordCount        int        `json:"wordCount,omitempty" yaml:"wordCount,omitempty"`
	Citations        int        `json:"citations,omitempty" yaml:"citations,omitempty"`
	MediaQuality     int        `json:"mediaQuality,omitempty" yaml:"mediaQuality,omitempty"`
	ContentType      string     `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Language         string     `json:"language,omitempty" yaml:"language,omitempty"`
	RelatedArticles  []string   `json:"relatedArticles,omitempty" yaml:"relatedArticles,omitempty"`

	// Parent linkage fields. Source data encodes these as either a single
	// string or an index-aligned array of strings; StringList absorbs both
	// shapes at the ingestion boundary.
	CBSNumber     StringList `json:"cbsNumber,omitempty" yaml:"cbsNumber,omitempty"`
	ParentTitle   StringList `json:"parentTitle,omitempty" yaml:"parentTitle,omitempty"`
	ParentContent StringList `json:"parentContent,omitempty" yaml:"parentContent,omitempty"`
	ParentDate    StringList `json:"parentDate,omitempty" yaml:"parentDate,omitempty"`
	ParentLink    StringList `json:"parentLink,omitempty" yaml:"parentLink,omitempty"`
}

// ParentLink is the normalized one-to-many linkage between a media article
// and a source statistical release.
type ParentLink struct {
	CBSNumber string `json:"cbsNumber" yaml:"cbsNumber"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Content   string `json:"content,omitempty" yaml:"content,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`
}

// ParentLinks normalizes the index-aligned parent fields into one struct per
// source release. The i-th cbsNumber pairs with the i-th title/content/date/link.
func (a Article) ParentLinks() []ParentLink {
	if len(a.CBSNumber) == 0 {
		return nil
	}
	links := make([]ParentLink, 0, len(a.CBSNumber))
	for i, number := range a.CBSNumber {
		links = append(links, ParentLink{
			CBSNumber: number,
			Title:     a.ParentTitle.At(i),
			Content:   a.ParentContent.At(i),
			Date:      a.ParentDate.At(i),
			Link:      a.ParentLink.At(i),
		})
	}
	return links
}

// ParentCount returns the number of linked source releases.
func (a Article) ParentCount() int {
	return len(a.CBSNumber)
}

// ParsedDate parses the article date. ok is false when the date is absent or
// not in the canonical layout.
func (a Article) ParsedDate() (time.Time, bool) {
	if a.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StringList is a []string that also accepts a bare JSON string or null when
// unmarshalling. It always marshals back as an array, so the union-typed
// ambiguity stops at the ingestion boundary.
type StringList []string

// At returns the i-th element, or "" when the list is shorter.
func (l StringList) At(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
		} else {
			*l = StringList{s}
		}
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*l = StringList(values)
	return nil
}
