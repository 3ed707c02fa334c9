package main

import (
	"testing"
	"time"
)

const sampleCSV = `Title,Link,Published Date,Summary,AI Category,Source Category,Source Name,Source URL,Author
Post A,http://x/a,2025-08-25T10:00:00Z,Summary A,Tech,golang,SourceX,http://x,Alice
Post B,http://x/b,2025-08-25T11:00:00Z,Summary B,News,,SourceY,http://y,Bob`

func TestParseItemsValid(t *testing.T) {
	items, skipped := ParseItems(sampleCSV)

	if skipped != 0 {
		t.Errorf("ParseItems() skipped = %d, want 0", skipped)
	}
	if len(items) != 2 {
		t.Fatalf("ParseItems() returned %d items, want 2", len(items))
	}

	first := items[0]
	if first.Title != "Post A" {
		t.Errorf("items[0].Title = %q, want %q", first.Title, "Post A")
	}
	if first.Link != "http://x/a" {
		t.Errorf("items[0].Link = %q, want %q", first.Link, "http://x/a")
	}
	if first.Category != "Tech" {
		t.Errorf("items[0].Category = %q, want %q", first.Category, "Tech")
	}
	if first.SourceName != "SourceX" {
		t.Errorf("items[0].SourceName = %q, want %q", first.SourceName, "SourceX")
	}

	want := time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)
	if !first.Published.Equal(want) {
		t.Errorf("items[0].Published = %v, want %v", first.Published, want)
	}

	if items[1].Category != "News" {
		t.Errorf("items[1].Category = %q, want %q", items[1].Category, "News")
	}
}

func TestParseItemsEmpty(t *testing.T) {
	for _, data := range []string{"", "   ", "\n\n"} {
		items, skipped := ParseItems(data)
		if len(items) != 0 || skipped != 0 {
			t.Errorf("ParseItems(%q) = %d items, %d skipped, want 0, 0", data, len(items), skipped)
		}
	}
}

func TestParseItemsHeaderOnly(t *testing.T) {
	items, skipped := ParseItems("Title,Link,Published Date,Summary,AI Category,Source Name,Source URL,Author")

	if len(items) != 0 {
		t.Errorf("ParseItems() returned %d items, want 0", len(items))
	}
	if skipped != 0 {
		t.Errorf("ParseItems() skipped = %d, want 0", skipped)
	}
}

func TestParseItemsSkipsMalformedRows(t *testing.T) {
	tests := []struct {
		name        string
		row         string
		wantItems   int
		wantSkipped int
	}{
		{"empty title", ",http://x/c,2025-08-25T12:00:00Z,S,Tech,,SourceX,http://x,A", 2, 1},
		{"empty link", "Post C,,2025-08-25T12:00:00Z,S,Tech,,SourceX,http://x,A", 2, 1},
		{"empty date", "Post C,http://x/c,,S,Tech,,SourceX,http://x,A", 2, 1},
		{"bad date", "Post C,http://x/c,not-a-date,S,Tech,,SourceX,http://x,A", 2, 1},
		{"short row", "Post C", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, skipped := ParseItems(sampleCSV + "\n" + tt.row)
			if len(items) != tt.wantItems {
				t.Errorf("ParseItems() returned %d items, want %d", len(items), tt.wantItems)
			}
			if skipped != tt.wantSkipped {
				t.Errorf("ParseItems() skipped = %d, want %d", skipped, tt.wantSkipped)
			}
		})
	}
}

func TestParseItemsMissingRequiredColumns(t *testing.T) {
	data := "Title,Link\nPost A,http://x/a"

	items, _ := ParseItems(data)
	if len(items) != 0 {
		t.Errorf("ParseItems() returned %d items, want 0 when a required column is missing", len(items))
	}
}

func TestParseItemsTrimsWhitespace(t *testing.T) {
	data := "Title,Link,Published Date,Summary\n  Post A  ,  http://x/a  ,  2025-08-25T10:00:00Z  ,  hi  "

	items, skipped := ParseItems(data)
	if skipped != 0 {
		t.Fatalf("ParseItems() skipped = %d, want 0", skipped)
	}
	if len(items) != 1 {
		t.Fatalf("ParseItems() returned %d items, want 1", len(items))
	}
	if items[0].Title != "Post A" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Post A")
	}
	if items[0].Summary != "hi" {
		t.Errorf("Summary = %q, want %q", items[0].Summary, "hi")
	}
}
