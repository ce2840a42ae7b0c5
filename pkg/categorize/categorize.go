// Package categorize assigns taxonomy categories to articles by keyword
// frequency. The keyword classifier is a best-effort heuristic, not a trained
// model: re-run a categorize pass whenever the keyword lists change.
package categorize

import (
	"regexp"
	"strings"

	"github.com/slaaziz/CBS/models"
)

// Uncategorized marks an article still awaiting classification.
const Uncategorized = "Uncategorized"

// DefaultCategory is assigned when no keyword list matches at all.
const DefaultCategory = "Economie"

// Classifier assigns a category to an article. Implementations must be
// idempotent for articles that already carry a category.
type Classifier interface {
	Classify(a models.Article) string
}

type taxonomyEntry struct {
	name     string
	keywords *regexp.Regexp
}

// The fixed taxonomy in canonical iteration order. Ties between categories
// resolve to the first entry reached.
var taxonomy = []taxonomyEntry{
	{"Economie", regexp.MustCompile(`(?i)economie|economisch|bbp|groei|inflatie|conjunctuur|omzet|faillissement|bedrijven|handel|export|import|financieel|investering|loonkosten|prijzen|markt|afzet`)},
	{"Arbeidsmarkt", regexp.MustCompile(`(?i)werkloosheid|werkgelegenheid|banen|arbeid|zzp|zelfstandig|werk|loonsverhoging|salaris|vacature|personeel|werknemer|werkgever|uitzend|beroep`)},
	{"Demografie", regexp.MustCompile(`(?i)bevolking|geboorte|sterfte|migratie|vergrijzing|inwoners|huishouden|demografisch|levensverwachting|immigratie|emigratie`)},
	{"Wonen", regexp.MustCompile(`(?i)woning|woningmarkt|huis|huizen|hypotheek|huur|bouw|vastgoed|woonruimte|woningtekort|leefbaarheid|buurt|wonen`)},
	{"Energie", regexp.MustCompile(`(?i)energie|gas|elektriciteit|aardgas|stroom|lng|energieprijzen|energietransitie|wind|zon|kolen|olie|energieverbruik`)},
	{"Veiligheid", regexp.MustCompile(`(?i)veiligheid|criminaliteit|overlast|politie|misdaad|diefstal|fraude|cybercrime|hack|gegevensmisbruik|woonoverlast|maffia`)},
	{"Milieu", regexp.MustCompile(`(?i)milieu|klimaat|co2|uitstoot|duurzaamheid|duurzaam|natuur|vervuiling|recycling|afval|stikstof|broeikas|certificaat|hout|palmolie|agro`)},
	{"Gezondheidszorg", regexp.MustCompile(`(?i)gezondheid|corona|covid|virus|epidemie|pandemie|vaccinatie|levensverwachting|gezond|dieet|voeding|vegetarisch|vlees|eten|maaltijd`)},
	{"Technologie", regexp.MustCompile(`(?i)digitaal|internet|ict|digitalisering|computer|software|cyber|online|technologie|ai|data|informatie|communicatie`)},
	{"Onderwijs", regexp.MustCompile(`(?i)onderwijs|school|student|universiteit|opleiding|studie|leraar|docent|vaardigheid`)},
	{"Mobiliteit", regexp.MustCompile(`(?i)verkeer|transport|auto|mobiliteit|vervoer|fiets|trein|weg|straat|motor`)},
	{"Landbouw", regexp.MustCompile(`(?i)landbouw|boer|agrarisch|veeteelt|akkerbouw|glastuinbouw|gewas|oogst`)},
	{"Toerisme", regexp.MustCompile(`(?i)toerisme|toerist|vakantie|recreatie|verblijf|hotel`)},
	{"Zorg", regexp.MustCompile(`(?i)zorg|zorgsector|verpleeg|ziekenhuis|patient|medisch`)},
}

// Taxonomy returns the category labels in canonical order.
func Taxonomy() []string {
	names := make([]string, len(taxonomy))
	for i, entry := range taxonomy {
		names[i] = entry.name
	}
	return names
}

// IsKnownCategory reports whether name is in the fixed taxonomy.
func IsKnownCategory(name string) bool {
	for _, entry := range taxonomy {
		if entry.name == name {
			return true
		}
	}
	return false
}

// KeywordClassifier categorizes by counting keyword matches over the
// article's text fields.
type KeywordClassifier struct{}

// NewKeywordClassifier returns the default classifier over the fixed taxonomy.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify returns the existing category unchanged unless the article is
// uncategorized. Otherwise it picks the category whose keywords match most
// often across title, snippet, body and parent titles, falling back to
// DefaultCategory when nothing matches.
func (kc *KeywordClassifier) Classify(a models.Article) string {
	if a.Category != "" && a.Category != Uncategorized {
		return a.Category
	}

	parts := []string{a.Title, a.Snippet, a.Body}
	parts = append(parts, a.ParentTitle...)
	searchText := strings.Join(parts, " ")

	best := DefaultCategory
	maxMatches := 0
	for _, entry := range taxonomy {
		count := len(entry.keywords.FindAllStringIndex(searchText, -1))
		if count > maxMatches {
			maxMatches = count
			best = entry.name
		}
	}
	return best
}

// Apply classifies every article and returns a new slice; input order is
// preserved and already-categorized articles pass through untouched.
func Apply(articles []models.Article, c Classifier) []models.Article {
	out := make([]models.Article, len(articles))
	for i, a := range articles {
		a.Category = c.Classify(a)
		out[i] = a
	}
	return out
}
