package main

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex     = regexp.MustCompile(`<[^>]+>`)
	slugInvalidRegex = regexp.MustCompile(`[^\w\s-]`)
	slugDashRegex    = regexp.MustCompile(`[-\s]+`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// stripHTMLTags removes markup, keeping the text content
func stripHTMLTags(text string) string {
	return htmlTagRegex.ReplaceAllString(text, "")
}

// slugify converts text to a URL-friendly slug, capped at 75 characters
func slugify(text string) string {
	text = stripHTMLTags(text)
	text = slugInvalidRegex.ReplaceAllString(text, "")
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugDashRegex.ReplaceAllString(text, "-")

	runes := []rune(text)
	if len(runes) > 75 {
		runes = runes[:75]
	}
	return string(runes)
}

// cleanHTMLContent decodes entities, drops tags and collapses whitespace,
// producing plain readable text
func cleanHTMLContent(content string) string {
	if content == "" {
		return ""
	}

	content = html.UnescapeString(content)
	content = stripHTMLTags(content)
	content = whitespaceRegex.ReplaceAllString(content, " ")

	return strings.TrimSpace(content)
}

// truncateDescription shortens cleaned text for the page description
// metadata field
func truncateDescription(text string) string {
	runes := []rune(text)
	if len(runes) > 150 {
		runes = runes[:150]
	}
	return string(runes) + "..."
}

// escapeMetaValue escapes double quotes for Nikola metadata values
func escapeMetaValue(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}
