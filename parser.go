package main

import (
	"encoding/csv"
	"io"
	"log"
	"strings"

	"github.com/araddon/dateparse"
)

// CSV column names as produced by the feed endpoint
const (
	colTitle          = "Title"
	colLink           = "Link"
	colPublished      = "Published Date"
	colSummary        = "Summary"
	colCategory       = "AI Category"
	colSourceCategory = "Source Category"
	colSourceName     = "Source Name"
	colSourceURL      = "Source URL"
	colAuthor         = "Author"
)

// ParseItems converts raw CSV data into feed items. Rows missing required
// fields or carrying an unparseable published date are skipped, not fatal;
// the second return value is the number of skipped rows.
func ParseItems(data string) ([]FeedItem, int) {
	if strings.TrimSpace(data) == "" {
		return nil, 0
	}

	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Printf("Warning: unreadable CSV header: %v", err)
		return nil, 0
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colTitle, colLink, colPublished} {
		if _, ok := columns[required]; !ok {
			log.Printf("Warning: CSV is missing required column %q", required)
			return nil, 0
		}
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var items []FeedItem
	skipped := 0
	row := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			skipped++
			debugLog("Skipping row %d: %v", row, err)
			continue
		}

		title := field(record, colTitle)
		link := field(record, colLink)
		published := field(record, colPublished)
		if title == "" || link == "" || published == "" {
			skipped++
			debugLog("Skipping row %d: missing required fields", row)
			continue
		}

		publishedAt, err := dateparse.ParseAny(published)
		if err != nil {
			skipped++
			debugLog("Skipping row %d: unparseable published date %q: %v", row, published, err)
			continue
		}

		items = append(items, FeedItem{
			Title:          title,
			Link:           link,
			Published:      publishedAt,
			Summary:        field(record, colSummary),
			Category:       field(record, colCategory),
			SourceCategory: field(record, colSourceCategory),
			SourceName:     field(record, colSourceName),
			SourceURL:      field(record, colSourceURL),
			Author:         field(record, colAuthor),
		})
	}

	return items, skipped
}
