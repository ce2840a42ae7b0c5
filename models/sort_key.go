package models

// SortKey selects the ordering applied to a result set.
type SortKey string

const (
	SortDateDesc      SortKey = "date-desc"
	SortDateAsc       SortKey = "date-asc"
	SortTrustDesc     SortKey = "trust-desc"
	SortTrustAsc      SortKey = "trust-asc"
	SortCitationsDesc SortKey = "citations-desc"
	SortPublisherAsc  SortKey = "publisher-asc"
	SortQualityDesc   SortKey = "quality-desc"
	SortWordCountDesc SortKey = "wordcount-desc"

	// SortRelevance orders by vertrouwensscore descending. The score is a
	// proxy for relevance, not a ranking over the query.
	SortRelevance SortKey = "relevance"
)

// AllSortKeys returns the supported sort keys in display order.
func AllSortKeys() []SortKey {
	return []SortKey{
		SortRelevance,
		SortDateDesc,
		SortDateAsc,
		SortTrustDesc,
		SortTrustAsc,
		SortCitationsDesc,
		SortPublisherAsc,
		SortQualityDesc,
		SortWordCountDesc,
	}
}

// IsValidSortKey reports whether key names a supported ordering.
func IsValidSortKey(key SortKey) bool {
	for _, k := range AllSortKeys() {
		if k == key {
			return true
		}
	}
	return false
}
