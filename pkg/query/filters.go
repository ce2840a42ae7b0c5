// Package query runs filter-expression queries against the sqlite article
// index. It is the power-user complement to the facet flags: expressions
// compile to SQL WHERE clauses over indexed article metadata.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterResult represents parsed filter components for SQL generation.
type FilterResult struct {
	WhereClause string
	Args        []interface{}
}

// ParseFilter parses a filter expression into a SQL WHERE clause.
// Supported syntax:
//   - Simple: "category=Economie", "content_type=cbs-data"
//   - Comparison: "vertrouwensscore>=50", "citations>10"
//   - Theme lookup: "theme:klimaat" (matches tags and key themes)
//   - Boolean: "category=Economie AND vertrouwensscore>=50"
//
// Returns the WHERE clause and args for a prepared statement.
func ParseFilter(filter string) (*FilterResult, error) {
	if filter == "" {
		return &FilterResult{WhereClause: "1=1", Args: []interface{}{}}, nil
	}

	filter = strings.TrimSpace(filter)

	// Handle AND/OR by splitting and building clause
	var whereParts []string
	var args []interface{}

	if strings.Contains(strings.ToUpper(filter), " AND ") {
		parts := splitByKeyword(filter, "AND")
		for _, part := range parts {
			clause, partArgs, err := parseSimpleFilter(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			whereParts = append(whereParts, clause)
			args = append(args, partArgs...)
		}
		return &FilterResult{
			WhereClause: strings.Join(whereParts, " AND "),
			Args:        args,
		}, nil
	}

	if strings.Contains(strings.ToUpper(filter), " OR ") {
		parts := splitByKeyword(filter, "OR")
		for _, part := range parts {
			clause, partArgs, err := parseSimpleFilter(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			whereParts = append(whereParts, "("+clause+")")
			args = append(args, partArgs...)
		}
		return &FilterResult{
			WhereClause: strings.Join(whereParts, " OR "),
			Args:        args,
		}, nil
	}

	// Single filter
	clause, args, err := parseSimpleFilter(filter)
	if err != nil {
		return nil, err
	}

	return &FilterResult{
		WhereClause: clause,
		Args:        args,
	}, nil
}

// parseSimpleFilter parses a single filter expression.
// Examples: "category=Economie", "vertrouwensscore>=50", "theme:klimaat"
func parseSimpleFilter(filter string) (string, []interface{}, error) {
	filter = strings.TrimSpace(filter)

	// Theme filtering matches both the tags and key_themes columns.
	if strings.HasPrefix(filter, "theme:") {
		theme := strings.TrimSpace(strings.TrimPrefix(filter, "theme:"))
		if theme == "" {
			return "", nil, fmt.Errorf("empty theme filter")
		}
		pattern := "%" + theme + "%"
		return "(tags LIKE ? OR key_themes LIKE ?)", []interface{}{pattern, pattern}, nil
	}

	if !strings.ContainsAny(filter, "=<>!") {
		return "", nil, fmt.Errorf("invalid filter syntax: %s", filter)
	}

	// Comparison operators
	for _, op := range []string{">=", "<=", "!=", "=", ">", "<"} {
		if strings.Contains(filter, op) {
			parts := strings.SplitN(filter, op, 2)
			if len(parts) != 2 {
				continue
			}

			field := normalizeFieldName(strings.TrimSpace(parts[0]))
			value := strings.TrimSpace(parts[1])

			if !isValidField(field) {
				return "", nil, fmt.Errorf("invalid field: %s", field)
			}

			// Parse value (number or string)
			var arg interface{}
			if num, err := strconv.Atoi(value); err == nil {
				arg = num
			} else {
				// String value - remove quotes if present
				value = strings.Trim(value, "\"'")
				arg = value
			}

			return field + " " + op + " ?", []interface{}{arg}, nil
		}
	}

	return "", nil, fmt.Errorf("invalid filter syntax: %s", filter)
}

// splitByKeyword splits a string by AND/OR keywords (case-insensitive).
func splitByKeyword(s, keyword string) []string {
	upper := strings.ToUpper(s)
	pattern := " " + keyword + " "

	var parts []string
	remaining := s
	upperRemaining := upper

	for {
		idx := strings.Index(upperRemaining, pattern)
		if idx == -1 {
			parts = append(parts, remaining)
			break
		}

		parts = append(parts, remaining[:idx])
		remaining = remaining[idx+len(pattern):]
		upperRemaining = upperRemaining[idx+len(pattern):]
	}

	return parts
}

// validFields lists the queryable columns of the article index.
var validFields = map[string]bool{
	"id":               true,
	"category":         true,
	"source":           true,
	"publisher":        true,
	"vertrouwensscore": true,
	"content_type":     true,
	"media_quality":    true,
	"citations":        true,
	"word_count":       true,
	"language":         true,
	"date":             true,
}

func isValidField(field string) bool {
	return validFields[field]
}

// normalizeFieldName maps common aliases to database column names.
func normalizeFieldName(field string) string {
	switch field {
	case "score", "trust":
		return "vertrouwensscore"
	case "quality":
		return "media_quality"
	case "type":
		return "content_type"
	case "words":
		return "word_count"
	}
	return field
}
