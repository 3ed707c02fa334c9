package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// BlogPostWriter creates one Nikola post per feed item under
// posts/<YYYY-MM-DD>/<slug>.md
type BlogPostWriter struct {
	postsDir    string
	defaultTags []string
	converter   *md.Converter
	overrides   *ConfigOverrides
}

// NewBlogPostWriter creates a writer that renders into postsDir
func NewBlogPostWriter(postsDir string, defaultTags []string, overrides *ConfigOverrides) *BlogPostWriter {
	return &BlogPostWriter{
		postsDir:    postsDir,
		defaultTags: defaultTags,
		converter:   md.NewConverter("", true, nil),
		overrides:   overrides,
	}
}

// postData feeds the blog post template
type postData struct {
	Title        string // metadata title, quotes escaped
	RawTitle     string // original title for the footer link
	Slug         string
	Date         string
	Tags         string
	Category     string // metadata category, lowercased
	CategoryName string // footer category as delivered by the feed
	Link         string
	Description  string
	Summary      string
	SourceName   string
	SourceURL    string
	Author       string
}

// WriteDate creates posts for every valid item. Items without a summary or
// category are skipped; existing post files are never overwritten.
func (w *BlogPostWriter) WriteDate(date string, items []FeedItem) (int, error) {
	created := 0
	for i, item := range items {
		if !w.isValidPost(item) {
			debugLog("Skipping item %d (%s): missing summary or category", i+1, item.Title)
			continue
		}

		ok, err := w.CreatePost(item)
		if err != nil {
			log.Printf("Error creating post for %q: %v", item.Title, err)
			continue
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// isValidPost reports whether the item carries enough content for a
// standalone post
func (w *BlogPostWriter) isValidPost(item FeedItem) bool {
	return strings.TrimSpace(item.Summary) != "" && strings.TrimSpace(item.Category) != ""
}

// CreatePost writes a single post file. Returns false when the target file
// already exists.
func (w *BlogPostWriter) CreatePost(item FeedItem) (bool, error) {
	dateStr := item.Published.Format("2006-01-02")
	dateDir := filepath.Join(w.postsDir, dateStr)
	if err := os.MkdirAll(dateDir, 0755); err != nil {
		return false, fmt.Errorf("creating date directory: %w", err)
	}

	slug := slugify(item.Title)
	if slug == "" {
		slug = "post"
	}
	path := filepath.Join(dateDir, slug+".md")

	if _, err := os.Stat(path); err == nil {
		debugLog("Skipping %s/%s.md - already exists", dateStr, slug)
		return false, nil
	}

	content, err := w.render(item, slug)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("writing post: %w", err)
	}

	debugLog("Created: %s/%s.md", dateStr, slug)
	return true, nil
}

func (w *BlogPostWriter) render(item FeedItem, slug string) ([]byte, error) {
	templateData := defaultPostTemplate
	if w.overrides != nil && w.overrides.PostTemplatePath != nil {
		data, err := os.ReadFile(*w.overrides.PostTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("reading post template: %w", err)
		}
		templateData = string(data)
	}

	tmpl, err := template.New("post").Parse(templateData)
	if err != nil {
		return nil, fmt.Errorf("parsing post template: %w", err)
	}

	category := strings.ToLower(item.Category)
	if category == "" {
		category = "tech"
	}

	author := item.Author
	if author == "" {
		author = "Unknown"
	}

	data := postData{
		Title:        escapeMetaValue(item.Title),
		RawTitle:     item.Title,
		Slug:         slug,
		Date:         item.Published.Format("2006-01-02 15:04:05 -0700"),
		Tags:         w.postTags(item),
		Category:     category,
		CategoryName: item.Category,
		Link:         item.Link,
		Description:  escapeMetaValue(truncateDescription(cleanHTMLContent(item.Summary))),
		Summary:      w.summaryMarkdown(item.Summary),
		SourceName:   item.SourceName,
		SourceURL:    item.SourceURL,
		Author:       author,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing post template: %w", err)
	}

	return buf.Bytes(), nil
}

// summaryMarkdown converts the HTML summary into markdown, falling back to
// plain text when conversion fails
func (w *BlogPostWriter) summaryMarkdown(summary string) string {
	converted, err := w.converter.ConvertString(summary)
	if err != nil {
		debugLog("Summary conversion failed, using plain text: %v", err)
		return cleanHTMLContent(summary)
	}
	return strings.TrimSpace(converted)
}

// postTags combines the item's category, its source categories and the
// configured default tags into a sorted, deduplicated tag list
func (w *BlogPostWriter) postTags(item FeedItem) string {
	seen := make(map[string]bool)

	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			seen[tag] = true
		}
	}

	add(item.Category)
	for _, tag := range strings.Split(item.SourceCategory, ",") {
		add(tag)
	}
	for _, tag := range w.defaultTags {
		add(tag)
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return strings.Join(tags, ",")
}
