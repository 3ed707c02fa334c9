package main

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"basic", "Test Article Title", "test-article-title"},
		{"special chars", "Article with Special! Characters@", "article-with-special-characters"},
		{"multiple spaces", "   Multiple   Spaces   ", "multiple-spaces"},
		{"html tags", "<b>Bold Title</b>", "bold-title"},
		{"embedded emphasis", "Title with <em>emphasis</em>", "title-with-emphasis"},
		{"dashes collapsed", "Title---With---Dashes", "title-with-dashes"},
		{"digits kept", "123-456", "123-456"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slugify(tt.text)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.text, result, tt.expected)
			}
		})
	}
}

func TestSlugifyLengthLimit(t *testing.T) {
	result := slugify(strings.Repeat("a", 100))

	if len(result) != 75 {
		t.Errorf("slugify() length = %d, want 75", len(result))
	}
}

func TestCleanHTMLContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"basic tags", "<p>Hello World</p>", "Hello World"},
		{"nested tags", "<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"amp entity", "&amp;", "&"},
		{"quot entity", "&quot;", `"`},
		{"whitespace", "Multiple    spaces   here", "Multiple spaces here"},
		{"empty", "", ""},
		{"plain text", "Plain text", "Plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanHTMLContent(tt.content)
			if result != tt.expected {
				t.Errorf("cleanHTMLContent(%q) = %q, want %q", tt.content, result, tt.expected)
			}
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	short := truncateDescription("short text")
	if short != "short text..." {
		t.Errorf("truncateDescription() = %q, want %q", short, "short text...")
	}

	long := truncateDescription(strings.Repeat("x", 200))
	if len(long) != 153 {
		t.Errorf("truncateDescription() length = %d, want 153", len(long))
	}
	if !strings.HasSuffix(long, "...") {
		t.Errorf("truncateDescription() = %q, missing ellipsis", long)
	}
}

func TestEscapeMetaValue(t *testing.T) {
	result := escapeMetaValue(`He said "hi"`)
	expected := `He said \"hi\"`

	if result != expected {
		t.Errorf("escapeMetaValue() = %q, want %q", result, expected)
	}
}
