package main

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// FeedFetcher retrieves daily item CSVs from the feed endpoint
type FeedFetcher struct {
	host   string
	client *http.Client
}

// NewFeedFetcher creates a fetcher for the given endpoint host
func NewFeedFetcher(host string) *FeedFetcher {
	return &FeedFetcher{
		host: host,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TodayURL returns the endpoint for the current day's items
func (f *FeedFetcher) TodayURL() string {
	return fmt.Sprintf("http://%s/daily-items.csv", f.host)
}

// URLForDate returns the historical endpoint for a specific date (YYYY-MM-DD)
func (f *FeedFetcher) URLForDate(date string) string {
	return fmt.Sprintf("http://%s/daily-items/%s.csv", f.host, date)
}

// FetchCSV downloads the CSV document at url and returns its body
func (f *FeedFetcher) FetchCSV(url string) (string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}

	return string(body), nil
}
