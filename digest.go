package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

// Fallback group labels for rows with blank category/source fields
const (
	uncategorizedLabel = "Uncategorized"
	unknownSourceLabel = "Unknown"
)

// DigestLink is a single item rendered on a digest page
type DigestLink struct {
	Title string
	Link  string
}

// SourceGroup holds the links of one source within a category
type SourceGroup struct {
	Name  string
	Items []DigestLink
}

// CategoryGroup holds the sources of one category, sorted by name
type CategoryGroup struct {
	Name    string
	Sources []SourceGroup
}

// Digest is the set of feed items for one calendar date, partitioned by
// category then source
type Digest struct {
	Date       string
	Categories []CategoryGroup
}

// BuildDigest partitions items into the ordered category/source structure.
// Categories and sources are sorted alphabetically; items within a source
// are sorted by published time, then title, so repeated runs for the same
// date render identical pages.
func BuildDigest(date string, items []FeedItem) *Digest {
	type key struct {
		category string
		source   string
	}

	groups := make(map[key][]FeedItem)
	for _, item := range items {
		k := key{category: item.Category, source: item.SourceName}
		if k.category == "" {
			k.category = uncategorizedLabel
		}
		if k.source == "" {
			k.source = unknownSourceLabel
		}
		groups[k] = append(groups[k], item)
	}

	byCategory := make(map[string]map[string][]FeedItem)
	for k, grouped := range groups {
		if byCategory[k.category] == nil {
			byCategory[k.category] = make(map[string][]FeedItem)
		}
		byCategory[k.category][k.source] = grouped
	}

	digest := &Digest{Date: date}
	for _, category := range sortedKeys(byCategory) {
		group := CategoryGroup{Name: category}
		for _, source := range sortedKeys(byCategory[category]) {
			items := byCategory[category][source]
			sort.SliceStable(items, func(i, j int) bool {
				if !items[i].Published.Equal(items[j].Published) {
					return items[i].Published.Before(items[j].Published)
				}
				return items[i].Title < items[j].Title
			})

			sourceGroup := SourceGroup{Name: source}
			for _, item := range items {
				sourceGroup.Items = append(sourceGroup.Items, DigestLink{
					Title: stripHTMLTags(item.Title),
					Link:  item.Link,
				})
			}
			group.Sources = append(group.Sources, sourceGroup)
		}
		digest.Categories = append(digest.Categories, group)
	}

	return digest
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DigestWriter renders digest pages into the generator's pages directory
type DigestWriter struct {
	pagesDir  string
	overrides *ConfigOverrides
}

// NewDigestWriter creates a writer that renders into pagesDir
func NewDigestWriter(pagesDir string, overrides *ConfigOverrides) *DigestWriter {
	return &DigestWriter{pagesDir: pagesDir, overrides: overrides}
}

// WriteDate renders one digest page for the given date, overwriting any
// existing page so repeated runs stay idempotent.
func (w *DigestWriter) WriteDate(date string, items []FeedItem) (int, error) {
	digest := BuildDigest(date, items)

	content, err := w.render(digest)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(w.pagesDir, 0755); err != nil {
		return 0, fmt.Errorf("creating pages directory: %w", err)
	}

	path := filepath.Join(w.pagesDir, date+".md")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return 0, fmt.Errorf("writing digest page: %w", err)
	}

	debugLog("Wrote digest page %s (%d items)", path, len(items))
	return 1, nil
}

func (w *DigestWriter) render(digest *Digest) ([]byte, error) {
	templateData := defaultDigestTemplate
	if w.overrides != nil && w.overrides.DigestTemplatePath != nil {
		data, err := os.ReadFile(*w.overrides.DigestTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("reading digest template: %w", err)
		}
		templateData = string(data)
	}

	tmpl, err := template.New("digest").Parse(templateData)
	if err != nil {
		return nil, fmt.Errorf("parsing digest template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, digest); err != nil {
		return nil, fmt.Errorf("executing digest template: %w", err)
	}

	return buf.Bytes(), nil
}
