package rank

import (
	"fmt"
	"strconv"

	"github.com/slaaziz/CBS/models"
)

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 20

// Paginate slices articles into fixed-size pages and returns the requested
// page plus the total page count. Page numbers are clamped into
// [1, totalPages], so an out-of-range request never fails; it returns the
// nearest valid page. An empty collection yields an empty page and
// totalPages 0.
func Paginate(articles []models.Article, pageSize, page int) ([]models.Article, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(articles) == 0 {
		return nil, 0
	}
	totalPages := (len(articles) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end], totalPages
}

// ValidateJump parses jump-to-page input. Unlike Paginate it does not clamp:
// invalid or out-of-range input is reported as an error so the caller can
// surface it and keep the current page.
func ValidateJump(input string, totalPages int) (int, error) {
	page, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", input)
	}
	if totalPages < 1 {
		return 0, fmt.Errorf("no pages to jump to")
	}
	if page < 1 || page > totalPages {
		return 0, fmt.Errorf("page %d out of range 1-%d", page, totalPages)
	}
	return page, nil
}
