package httpserver

import (
	"net/url"
	"testing"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name         string
		query        url.Values
		wantPage     int
		wantPageSize int
		wantErr      bool
	}{
		{"defaults", url.Values{}, 1, 10, false},
		{"explicit values", url.Values{"page": {"3"}, "page_size": {"25"}}, 3, 25, false},
		{"page size at maximum", url.Values{"page_size": {"100"}}, 1, 100, false},
		{"zero page", url.Values{"page": {"0"}}, 0, 0, true},
		{"negative page", url.Values{"page": {"-2"}}, 0, 0, true},
		{"non-numeric page", url.Values{"page": {"abc"}}, 0, 0, true},
		{"page size too large", url.Values{"page_size": {"101"}}, 0, 0, true},
		{"zero page size", url.Values{"page_size": {"0"}}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize, err := parsePageParams(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePageParams(%v) expected error, got none", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePageParams(%v) unexpected error: %v", tt.query, err)
			}
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Fatalf("parsePageParams(%v) = (%d, %d), want (%d, %d)",
					tt.query, page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestBuildMovieFilters(t *testing.T) {
	query := url.Values{
		"title":        {"  Dune  "},
		"release_year": {"2021"},
		"genre":        {"Sci"},
	}

	filters, err := buildMovieFilters(query)
	if err != nil {
		t.Fatalf("buildMovieFilters unexpected error: %v", err)
	}
	if filters.Title == nil || *filters.Title != "Dune" {
		t.Fatalf("Title = %v, want Dune trimmed", filters.Title)
	}
	if filters.ReleaseYear == nil || *filters.ReleaseYear != 2021 {
		t.Fatalf("ReleaseYear = %v, want 2021", filters.ReleaseYear)
	}
	if filters.GenreName == nil || *filters.GenreName != "Sci" {
		t.Fatalf("GenreName = %v, want Sci", filters.GenreName)
	}
}

func TestBuildMovieFilters_Empty(t *testing.T) {
	filters, err := buildMovieFilters(url.Values{"title": {"   "}})
	if err != nil {
		t.Fatalf("buildMovieFilters unexpected error: %v", err)
	}
	if filters.Title != nil || filters.ReleaseYear != nil || filters.GenreName != nil {
		t.Fatalf("expected no filters from blank params, got %+v", filters)
	}
}

func TestBuildMovieFilters_BadYear(t *testing.T) {
	_, err := buildMovieFilters(url.Values{"release_year": {"twenty"}})
	if err == nil {
		t.Fatal("expected error for non-numeric release_year")
	}
}
