package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Time range buckets for the date facet. TimeRangeAll is the canonical
// absence marker: it never appears in a serialized query string.
const (
	TimeRangeAll = "all"
	TimeRange24h = "24h"
	TimeRange7d  = "7d"
	TimeRange30d = "30d"
	TimeRange90d = "90d"
)

// CitationRangeMax is the upper bound treated as "unbounded" when
// serializing the citation range.
const CitationRangeMax = 200

// CitationRange bounds the citation count facet, inclusive on both ends.
type CitationRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// FilterState is the active facet selection. It is a plain value: derived
// from a query string on the way in, serialized back to one on the way out,
// never read from ambient state. An empty FilterState matches everything.
type FilterState struct {
	Categories          []string
	Sources             []string
	TimeRange           string
	Themes              []string
	MinVertrouwensscore *int
	Publishers          []string
	ContentType         string
	CitationRange       *CitationRange
	CitationType        string
	MediaQuality        []int
}

// NewFilterState returns the empty selection with canonical defaults.
func NewFilterState() FilterState {
	return FilterState{TimeRange: TimeRangeAll, ContentType: ContentTypeAll, CitationType: "all"}
}

// IsEmpty reports whether no facet constrains the result set.
func (f FilterState) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		len(f.Sources) == 0 &&
		(f.TimeRange == "" || f.TimeRange == TimeRangeAll) &&
		len(f.Themes) == 0 &&
		f.MinVertrouwensscore == nil &&
		len(f.Publishers) == 0 &&
		(f.ContentType == "" || f.ContentType == ContentTypeAll) &&
		f.CitationRange == nil &&
		len(f.MediaQuality) == 0
}

// ParseFilterValues reconstructs a FilterState from URL query parameters.
// Absent or malformed parameters default to "no constraint"; this never
// fails.
func ParseFilterValues(values url.Values) FilterState {
	f := NewFilterState()
	f.Categories = splitParam(values.Get("categories"))
	f.Sources = splitParam(values.Get("sources"))
	if tr := values.Get("timeRange"); isValidTimeRange(tr) {
		f.TimeRange = tr
	}
	f.Themes = splitParam(values.Get("themes"))
	if raw := values.Get("minScore"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.MinVertrouwensscore = &n
		}
	}
	f.Publishers = splitParam(values.Get("publishers"))
	if ct := values.Get("contentType"); ct != "" {
		f.ContentType = ct
	}
	minRaw, maxRaw := values.Get("citationMin"), values.Get("citationMax")
	if minRaw != "" || maxRaw != "" {
		r := CitationRange{Min: 0, Max: CitationRangeMax}
		if n, err := strconv.Atoi(minRaw); err == nil {
			r.Min = n
		}
		if n, err := strconv.Atoi(maxRaw); err == nil {
			r.Max = n
		}
		f.CitationRange = &r
	}
	if ct := values.Get("citationType"); ct != "" {
		f.CitationType = ct
	}
	for _, raw := range splitParam(values.Get("mediaQuality")) {
		if n, err := strconv.Atoi(raw); err == nil {
			f.MediaQuality = append(f.MediaQuality, n)
		}
	}
	return f
}

// Values serializes the FilterState to URL query parameters. Facets at their
// default are omitted so that absence keeps meaning "no constraint" on the
// round trip.
func (f FilterState) Values() url.Values {
	values := url.Values{}
	if len(f.Categories) > 0 {
		values.Set("categories", strings.Join(f.Categories, ","))
	}
	if len(f.Sources) > 0 {
		values.Set("sources", strings.Join(f.Sources, ","))
	}
	if f.TimeRange != "" && f.TimeRange != TimeRangeAll {
		values.Set("timeRange", f.TimeRange)
	}
	if len(f.Themes) > 0 {
		values.Set("themes", strings.Join(f.Themes, ","))
	}
	if f.MinVertrouwensscore != nil {
		values.Set("minScore", strconv.Itoa(*f.MinVertrouwensscore))
	}
	if len(f.Publishers) > 0 {
		values.Set("publishers", strings.Join(f.Publishers, ","))
	}
	if f.ContentType != "" && f.ContentType != ContentTypeAll {
		values.Set("contentType", f.ContentType)
	}
	if f.CitationRange != nil {
		if f.CitationRange.Min > 0 {
			values.Set("citationMin", strconv.Itoa(f.CitationRange.Min))
		}
		if f.CitationRange.Max < CitationRangeMax {
			values.Set("citationMax", strconv.Itoa(f.CitationRange.Max))
		}
	}
	if f.CitationType != "" && f.CitationType != "all" {
		values.Set("citationType", f.CitationType)
	}
	if len(f.MediaQuality) > 0 {
		parts := make([]string, len(f.MediaQuality))
		for i, q := range f.MediaQuality {
			parts[i] = strconv.Itoa(q)
		}
		values.Set("mediaQuality", strings.Join(parts, ","))
	}
	return values
}

// Labels renders the active facets as display chips, one per selection.
func (f FilterState) Labels() []string {
	var labels []string
	labels = append(labels, f.Categories...)
	labels = append(labels, f.Sources...)
	labels = append(labels, f.Themes...)

	timeLabels := map[string]string{
		TimeRange24h: "Laatste 24 uur",
		TimeRange7d:  "Laatste 7 dagen",
		TimeRange30d: "Laatste 30 dagen",
		TimeRange90d: "Laatste 90 dagen",
	}
	if f.TimeRange != "" && f.TimeRange != TimeRangeAll {
		if label, ok := timeLabels[f.TimeRange]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, f.TimeRange)
		}
	}
	if f.MinVertrouwensscore != nil {
		labels = append(labels, fmt.Sprintf("Vertrouwensscore >=%d%%", *f.MinVertrouwensscore))
	}
	for _, pub := range f.Publishers {
		labels = append(labels, "Uitgever: "+pub)
	}
	contentTypeLabels := map[string]string{
		ContentTypeCBSData:           "CBS Data",
		ContentTypeCBSOnly:           "Alleen CBS",
		ContentTypeNieuwsvergadering: "Nieuwsvergadering",
	}
	if f.ContentType != "" && f.ContentType != ContentTypeAll {
		if label, ok := contentTypeLabels[f.ContentType]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, f.ContentType)
		}
	}
	if f.CitationRange != nil && (f.CitationRange.Min > 0 || f.CitationRange.Max < CitationRangeMax) {
		labels = append(labels, fmt.Sprintf("Citaties: %d-%d", f.CitationRange.Min, f.CitationRange.Max))
	}
	for _, q := range f.MediaQuality {
		switch {
		case q == 0:
			labels = append(labels, "Kwaliteit: Geen sterren")
		case q == 1:
			labels = append(labels, "Kwaliteit: 1 ster")
		default:
			labels = append(labels, fmt.Sprintf("Kwaliteit: %d sterren", q))
		}
	}
	return labels
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func isValidTimeRange(tr string) bool {
	switch tr {
	case TimeRange24h, TimeRange7d, TimeRange30d, TimeRange90d:
		return true
	}
	return false
}
