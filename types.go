package main

import "time"

// FeedItem is one row of the daily items CSV.
type FeedItem struct {
	Title          string
	Link           string
	Published      time.Time
	Summary        string
	Category       string // "AI Category" column
	SourceCategory string
	SourceName     string
	SourceURL      string
	Author         string
}

// DateStatus represents the outcome status of processing one date
type DateStatus string

const (
	DateOK          DateStatus = "ok"
	DateFetchFailed DateStatus = "fetch_failed"
	DateWriteFailed DateStatus = "write_failed"
)

// DateResult tracks the outcome of processing each requested date
type DateResult struct {
	Date    string
	Status  DateStatus
	Items   int // valid items parsed from the CSV
	Skipped int // malformed rows dropped during parsing
	Written int // files written for this date
	Err     error
}
