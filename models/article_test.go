package models

import (
	"encoding/json"
	"testing"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{
			name: "bare string",
			json: `"84711NED"`,
			want: []string{"84711NED"},
		},
		{
			name: "array",
			json: `["84711NED", "85039NED"]`,
			want: []string{"84711NED", "85039NED"},
		},
		{
			name: "null",
			json: `null`,
			want: nil,
		},
		{
			name: "empty string",
			json: `""`,
			want: nil,
		},
		{
			name: "empty array",
			json: `[]`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.json), &got); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.json, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStringListUnmarshalInvalid(t *testing.T) {
	var got StringList
	if err := json.Unmarshal([]byte(`42`), &got); err == nil {
		t.Error("expected error for numeric input, got nil")
	}
}

func TestParentLinksAlignment(t *testing.T) {
	a := Article{
		CBSNumber:   StringList{"84711NED", "85039NED"},
		ParentTitle: StringList{"Inflatie stijgt", "Werkloosheid daalt"},
		ParentDate:  StringList{"2024-01-15"},
	}

	links := a.ParentLinks()
	if len(links) != 2 {
		t.Fatalf("len(links) = %d, want 2", len(links))
	}

	if links[0].CBSNumber != "84711NED" || links[0].Title != "Inflatie stijgt" {
		t.Errorf("links[0] = %+v, want 84711NED / Inflatie stijgt", links[0])
	}
	if links[0].Date != "2024-01-15" {
		t.Errorf("links[0].Date = %q, want 2024-01-15", links[0].Date)
	}

	// Shorter aligned lists pad with empty strings, they never panic.
	if links[1].Date != "" {
		t.Errorf("links[1].Date = %q, want empty", links[1].Date)
	}
	if links[1].Title != "Werkloosheid daalt" {
		t.Errorf("links[1].Title = %q, want Werkloosheid daalt", links[1].Title)
	}
}

func TestParentLinksEmpty(t *testing.T) {
	a := Article{ParentTitle: StringList{"orphaned title"}}
	if links := a.ParentLinks(); links != nil {
		t.Errorf("ParentLinks() = %v, want nil without cbs numbers", links)
	}
}

func TestParsedDate(t *testing.T) {
	a := Article{Date: "2024-03-01"}
	got, ok := a.ParsedDate()
	if !ok {
		t.Fatal("ParsedDate() ok = false, want true")
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 1 {
		t.Errorf("ParsedDate() = %v, want 2024-03-01", got)
	}

	for _, raw := range []string{"", "15-01-2024", "gisteren"} {
		a := Article{Date: raw}
		if _, ok := a.ParsedDate(); ok {
			t.Errorf("ParsedDate() ok = true for %q, want false", raw)
		}
	}
}

func TestArticleRoundTrip(t *testing.T) {
	in := `{
		"id": "7",
		"title": "CBS: economie groeit",
		"vertrouwensscore": 85,
		"cbsNumber": "84711NED",
		"parentTitle": ["Economische groei Q4"]
	}`

	var a Article
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if a.ID != "7" || a.Vertrouwensscore != 85 {
		t.Errorf("article = %+v, want id 7 score 85", a)
	}
	if len(a.CBSNumber) != 1 || a.CBSNumber[0] != "84711NED" {
		t.Errorf("CBSNumber = %v, want [84711NED]", a.CBSNumber)
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// The string form normalizes to an array on the way back out.
	var check map[string]interface{}
	if err := json.Unmarshal(out, &check); err != nil {
		t.Fatalf("re-Unmarshal failed: %v", err)
	}
	if _, isArray := check["cbsNumber"].([]interface{}); !isArray {
		t.Errorf("cbsNumber marshalled as %T, want array", check["cbsNumber"])
	}
}
