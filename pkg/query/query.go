package query

import (
	"fmt"
	"strings"

	"github.com/slaaziz/CBS/models"
	dbpkg "github.com/slaaziz/CBS/pkg/db"
)

// Result is a single indexed article matching the query. Body text is left
// out; `article show` renders the full record.
type Result struct {
	ID               string `json:"id" yaml:"id"`
	Title            string `json:"title" yaml:"title"`
	Date             string `json:"date,omitempty" yaml:"date,omitempty"`
	Source           string `json:"source,omitempty" yaml:"source,omitempty"`
	Publisher        string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Category         string `json:"category,omitempty" yaml:"category,omitempty"`
	Vertrouwensscore int    `json:"vertrouwensscore" yaml:"vertrouwensscore"`
	ContentType      string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	MediaQuality     int    `json:"mediaQuality,omitempty" yaml:"mediaQuality,omitempty"`
	Citations        int    `json:"citations,omitempty" yaml:"citations,omitempty"`
	WordCount        int    `json:"wordCount,omitempty" yaml:"wordCount,omitempty"`
	Language         string `json:"language,omitempty" yaml:"language,omitempty"`
	CBSNumbers       string `json:"cbsNumbers,omitempty" yaml:"cbsNumbers,omitempty"`
}

// Response is the data returned by a metadata query.
type Response struct {
	Filter      string   `json:"filter" yaml:"filter"`
	MatchCount  int      `json:"match_count" yaml:"match_count"`
	TotalCount  int      `json:"total_count" yaml:"total_count"`
	Matches     []Result `json:"matches" yaml:"matches"`
	WhereClause string   `json:"where_clause,omitempty" yaml:"where_clause,omitempty"` // For debugging
}

// Execute runs a metadata query against the article index, ordered by sort
// key. The filter syntax is documented on ParseFilter.
func Execute(db *dbpkg.DB, filter string, sortKey models.SortKey) (*Response, error) {
	filterResult, err := ParseFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse filter: %w", err)
	}

	baseQuery := `SELECT id, title, date, source, publisher, category,
		vertrouwensscore, content_type, media_quality, citations, word_count,
		language, cbs_numbers FROM articles WHERE ` + filterResult.WhereClause +
		" ORDER BY " + orderClause(sortKey)

	rows, err := db.Query(baseQuery, filterResult.Args...)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	var matches []Result
	for rows.Next() {
		var m Result
		err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.Date,
			&m.Source,
			&m.Publisher,
			&m.Category,
			&m.Vertrouwensscore,
			&m.ContentType,
			&m.MediaQuality,
			&m.Citations,
			&m.WordCount,
			&m.Language,
			&m.CBSNumbers,
		)
		if err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	totalCount, err := db.CountArticles()
	if err != nil {
		totalCount = 0 // Non-fatal
	}

	return &Response{
		Filter:      filter,
		MatchCount:  len(matches),
		TotalCount:  totalCount,
		Matches:     matches,
		WhereClause: filterResult.WhereClause, // For debugging
	}, nil
}

// orderClause maps a sort key onto the index columns. Empty dates land last
// under both date orders, mirroring the in-memory sorter.
func orderClause(key models.SortKey) string {
	switch key {
	case models.SortDateDesc:
		return "date = '' ASC, date DESC"
	case models.SortDateAsc:
		return "date = '' ASC, date ASC"
	case models.SortTrustAsc:
		return "vertrouwensscore ASC"
	case models.SortCitationsDesc:
		return "citations DESC"
	case models.SortPublisherAsc:
		return "LOWER(publisher) ASC"
	case models.SortQualityDesc:
		return "media_quality DESC"
	case models.SortWordCountDesc:
		return "word_count DESC"
	default:
		return "vertrouwensscore DESC"
	}
}

// FormatTable renders matches as an aligned text table.
func (r *Response) FormatTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-12s %-6s %-18s %-50s\n", "ID", "Date", "Score", "Category", "Title")
	b.WriteString(strings.Repeat("-", 100) + "\n")
	for _, m := range r.Matches {
		title := m.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(&b, "%-8s %-12s %-6d %-18s %-50s\n", m.ID, m.Date, m.Vertrouwensscore, m.Category, title)
	}
	fmt.Fprintf(&b, "\n%d of %d articles match\n", r.MatchCount, r.TotalCount)
	return b.String()
}
