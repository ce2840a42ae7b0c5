package rank

import (
	"fmt"
	"testing"

	"github.com/slaaziz/CBS/models"
)

func testArticles() []models.Article {
	return []models.Article{
		{ID: "1", Date: "2024-03-10", Vertrouwensscore: 70, Citations: 5, Publisher: "NOS"},
		{ID: "2", Date: "2024-01-05", Vertrouwensscore: 85, Citations: 12, Publisher: "ad"},
		{ID: "3", Vertrouwensscore: 85, Citations: 1, Publisher: "Trouw"},
		{ID: "4", Date: "2024-03-10", Vertrouwensscore: 40, Citations: 12, Publisher: "NRC"},
	}
}

func TestSortDateDesc(t *testing.T) {
	got := Sort(testArticles(), models.SortDateDesc)
	want := []string{"1", "4", "2", "3"}
	checkOrder(t, got, want)
}

func TestSortDateAscMissingDatesStillLast(t *testing.T) {
	got := Sort(testArticles(), models.SortDateAsc)
	want := []string{"2", "1", "4", "3"}
	checkOrder(t, got, want)
}

func TestSortTrustDesc(t *testing.T) {
	got := Sort(testArticles(), models.SortTrustDesc)
	// Articles 2 and 3 tie on 85; stability keeps 2 before 3.
	want := []string{"2", "3", "1", "4"}
	checkOrder(t, got, want)
}

func TestSortTrustAsc(t *testing.T) {
	got := Sort(testArticles(), models.SortTrustAsc)
	want := []string{"4", "1", "2", "3"}
	checkOrder(t, got, want)
}

func TestSortCitationsDescStable(t *testing.T) {
	got := Sort(testArticles(), models.SortCitationsDesc)
	want := []string{"2", "4", "1", "3"}
	checkOrder(t, got, want)
}

func TestSortPublisherCaseInsensitive(t *testing.T) {
	got := Sort(testArticles(), models.SortPublisherAsc)
	want := []string{"2", "1", "4", "3"}
	checkOrder(t, got, want)
}

func TestSortUnknownKeyFallsBackToRelevance(t *testing.T) {
	got := Sort(testArticles(), models.SortKey("bogus"))
	want := []string{"2", "3", "1", "4"}
	checkOrder(t, got, want)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	articles := testArticles()
	Sort(articles, models.SortDateDesc)
	if articles[0].ID != "1" || articles[3].ID != "4" {
		t.Error("Sort mutated its input slice")
	}
}

func checkOrder(t *testing.T, got []models.Article, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want[i])
		}
	}
}

func TestPaginate(t *testing.T) {
	articles := make([]models.Article, 45)
	for i := range articles {
		articles[i].ID = fmt.Sprint(i + 1)
	}

	page, totalPages := Paginate(articles, 20, 1)
	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}
	if len(page) != 20 || page[0].ID != "1" {
		t.Errorf("page 1: len %d first %s, want 20 / 1", len(page), page[0].ID)
	}

	page, _ = Paginate(articles, 20, 3)
	if len(page) != 5 || page[0].ID != "41" {
		t.Errorf("page 3: len %d first %s, want 5 / 41", len(page), page[0].ID)
	}
}

func TestPaginateExactCover(t *testing.T) {
	articles := make([]models.Article, 40)
	_, totalPages := Paginate(articles, 20, 1)
	if totalPages != 2 {
		t.Errorf("totalPages = %d, want 2 for an exact cover", totalPages)
	}
}

func TestPaginateClampsPage(t *testing.T) {
	articles := make([]models.Article, 30)
	for i := range articles {
		articles[i].ID = fmt.Sprint(i + 1)
	}

	page, totalPages := Paginate(articles, 20, 99)
	if totalPages != 2 || len(page) != 10 {
		t.Errorf("page 99 clamped to len %d of %d pages, want 10 of 2", len(page), totalPages)
	}

	page, _ = Paginate(articles, 20, -3)
	if len(page) != 20 || page[0].ID != "1" {
		t.Errorf("page -3 clamped to len %d first %s, want 20 / 1", len(page), page[0].ID)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, totalPages := Paginate(nil, 20, 1)
	if totalPages != 0 {
		t.Errorf("totalPages = %d, want 0", totalPages)
	}
	if len(page) != 0 {
		t.Errorf("len(page) = %d, want 0", len(page))
	}
}

func TestPaginateDefaultPageSize(t *testing.T) {
	articles := make([]models.Article, 25)
	_, totalPages := Paginate(articles, 0, 1)
	if totalPages != 2 {
		t.Errorf("totalPages = %d, want 2 with the default page size", totalPages)
	}
}

func TestValidateJump(t *testing.T) {
	tests := []struct {
		input      string
		totalPages int
		want       int
		wantErr    bool
	}{
		{"2", 5, 2, false},
		{"1", 1, 1, false},
		{"5", 5, 5, false},
		{"0", 5, 0, true},
		{"6", 5, 0, true},
		{"-1", 5, 0, true},
		{"abc", 5, 0, true},
		{"", 5, 0, true},
		{"1", 0, 0, true},
	}

	for _, tt := range tests {
		got, err := ValidateJump(tt.input, tt.totalPages)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateJump(%q, %d) error = %v, wantErr %v", tt.input, tt.totalPages, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateJump(%q, %d) = %d, want %d", tt.input, tt.totalPages, got, tt.want)
		}
	}
}
