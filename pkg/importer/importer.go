// Package importer maps the source CSV export onto Article records. This
// boundary runs once at data-preparation time: it produces the dataset JSON
// the store loads, and never runs during normal operation.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/slaaziz/CBS/models"
)

// snippetLength is the number of characters of content used as the snippet.
const snippetLength = 200

// Options controls optional enrichment during import.
type Options struct {
	// DetectLanguage runs NL/EN language detection over each article.
	DetectLanguage bool
}

// Importer converts CSV rows into articles.
type Importer struct {
	opts     Options
	detector lingua.LanguageDetector
}

// New builds an importer. The language detector is only constructed when
// detection is requested, since building it loads language models.
func New(opts Options) *Importer {
	imp := &Importer{opts: opts}
	if opts.DetectLanguage {
		imp.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Dutch, lingua.English).
			Build()
	}
	return imp
}

// Import reads the CSV export and returns one Article per row. Rows that
// cannot be mapped are skipped and reported; a bad row never aborts the
// import.
func (imp *Importer) Import(r io.Reader) ([]models.Article, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read CSV header: %w", err)}
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns["child_id"]; !ok {
		return nil, []error{fmt.Errorf("CSV is missing the child_id column")}
	}

	var articles []models.Article
	var rowErrs []error
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", line, err))
			continue
		}
		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		article, err := imp.rowToArticle(field)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", line, err))
			continue
		}
		articles = append(articles, article)
	}
	return articles, rowErrs
}

// rowToArticle applies the fixed column mapping:
//
//	child_id                     -> id
//	parent_id                    -> cbsNumber
//	match                        -> contentType (1 = cbs-data, else all)
//	%                            -> vertrouwensscore
//	title_child                  -> title
//	content_child                -> body, snippet (first 200 chars)
//	publish_date_child           -> date (normalized to YYYY-MM-DD)
//	datasource_title_child       -> source
//	publisher_string_child       -> publisher
//	tags_string_child            -> tags
//	themes_string_child          -> keyThemes
//	taxonomies_string_child      -> category (first item, else "Overig")
//	media_value_child            -> mediaQuality (0-3)
//	word_count_child             -> wordCount
//	related_parents_string_child -> relatedArticles
//	title_parent / content_parent / publish_date_parent -> parent linkage
func (imp *Importer) rowToArticle(field func(string) string) (models.Article, error) {
	id := field("child_id")
	if id == "" {
		return models.Article{}, fmt.Errorf("empty child_id")
	}

	body := extractText(id, field("content_child"))
	article := models.Article{
		ID:               id,
		Title:            field("title_child"),
		Body:             body,
		Snippet:          makeSnippet(body),
		Date:             normalizeDate(field("publish_date_child")),
		Source:           field("datasource_title_child"),
		Publisher:        field("publisher_string_child"),
		Vertrouwensscore: clampScore(atoiDefault(field("%"), 0)),
		Tags:             splitAndClean(field("tags_string_child")),
		KeyThemes:        splitAndClean(field("themes_string_child")),
		WordCount:        atoiDefault(field("word_count_child"), 0),
		MediaQuality:     mediaQuality(field("media_value_child")),
		ContentType:      contentType(field("match")),
		RelatedArticles:  splitAndClean(field("related_parents_string_child")),
	}

	taxonomies := splitAndClean(field("taxonomies_string_child"))
	if len(taxonomies) > 0 {
		article.Category = taxonomies[0]
	} else {
		article.Category = "Overig"
	}

	if parentID := field("parent_id"); parentID != "" {
		article.CBSNumber = models.StringList{parentID}
		article.ParentTitle = singleOrNil(field("title_parent"))
		parentContent := field("content_parent")
		article.ParentContent = singleOrNil(extractText(parentID, parentContent))
		article.ParentDate = singleOrNil(normalizeDate(field("publish_date_parent")))
		if link := firstHyperlink(parentContent); link != "" {
			article.ParentLink = models.StringList{link}
		}
	}

	if imp.detector != nil {
		if lang, ok := imp.detector.DetectLanguageOf(article.Title + " " + article.Body); ok {
			article.Language = strings.ToLower(lang.IsoCode639_1().String())
		}
	}

	return article, nil
}

// extractText reduces content to plain text. Full HTML documents go through
// readability; fragments lose their markup via goquery; plain text passes
// through untouched.
func extractText(id, content string) string {
	if !strings.Contains(content, "<") || !strings.Contains(content, ">") {
		return content
	}
	if looksLikeDocument(content) {
		pageURL, _ := url.Parse("https://import.invalid/" + url.PathEscape(id))
		article, err := readability.FromReader(strings.NewReader(content), pageURL)
		if err == nil && strings.TrimSpace(article.TextContent) != "" {
			return strings.TrimSpace(article.TextContent)
		}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	return strings.TrimSpace(doc.Text())
}

func looksLikeDocument(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "<html") || strings.Contains(lower, "<body") || strings.Contains(lower, "<article")
}

// firstHyperlink returns the first anchor href in the content, used to
// recover a parent release link from its HTML body.
func firstHyperlink(content string) string {
	if !strings.Contains(content, "<a") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}
	href, _ := doc.Find("a[href]").First().Attr("href")
	return href
}

func makeSnippet(body string) string {
	runes := []rune(body)
	if len(runes) <= snippetLength {
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(string(runes[:snippetLength]))
}

// normalizeDate parses a source date string to YYYY-MM-DD. Unparseable input
// is dropped: a missing date is honest, a garbage date is not.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return ""
	}
	return t.Format(models.DateLayout)
}

func mediaQuality(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 3 {
		return 0
	}
	return n
}

func contentType(match string) string {
	if atoiDefault(match, 0) == 1 {
		return models.ContentTypeCBSData
	}
	return models.ContentTypeAll
}

func splitAndClean(raw string) []string {
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

func singleOrNil(value string) models.StringList {
	if value == "" {
		return nil
	}
	return models.StringList{value}
}

func atoiDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
	if err != nil {
		return def
	}
	return n
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
