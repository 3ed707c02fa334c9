package main

import (
	"log"
	"time"
)

// PageWriter renders the items of one date into generator content files
type PageWriter interface {
	WriteDate(date string, items []FeedItem) (int, error)
}

// Importer drives the fetch-parse-write cycle for a batch of dates
type Importer struct {
	fetcher *FeedFetcher
	writer  PageWriter
}

// NewImporter creates an importer writing through the given page writer
func NewImporter(fetcher *FeedFetcher, writer PageWriter) *Importer {
	return &Importer{fetcher: fetcher, writer: writer}
}

// ImportDates processes the requested dates sequentially. An empty date
// list means today, fetched from the current-day endpoint. A failed date is
// reported and skipped; the remaining dates are still processed.
func (imp *Importer) ImportDates(dates []string) []DateResult {
	if len(dates) == 0 {
		today := time.Now().Format("2006-01-02")
		return []DateResult{imp.importOne(today, imp.fetcher.TodayURL())}
	}

	results := make([]DateResult, 0, len(dates))
	for i, date := range dates {
		log.Printf("[%d/%d] Processing %s", i+1, len(dates), date)
		results = append(results, imp.importOne(date, imp.fetcher.URLForDate(date)))
	}
	return results
}

func (imp *Importer) importOne(date, url string) DateResult {
	debugLog("Fetching data from %s...", url)

	data, err := imp.fetcher.FetchCSV(url)
	if err != nil {
		log.Printf("✗ Failed %s: %v", date, err)
		return DateResult{Date: date, Status: DateFetchFailed, Err: err}
	}

	items, skipped := ParseItems(data)
	if skipped > 0 {
		log.Printf("Skipped %d malformed rows for %s", skipped, date)
	}

	written, err := imp.writer.WriteDate(date, items)
	if err != nil {
		log.Printf("✗ Failed %s: %v", date, err)
		return DateResult{Date: date, Status: DateWriteFailed, Items: len(items), Skipped: skipped, Err: err}
	}

	log.Printf("✓ %s: %d items, %d files written", date, len(items), written)
	return DateResult{Date: date, Status: DateOK, Items: len(items), Skipped: skipped, Written: written}
}
