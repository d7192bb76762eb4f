package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Sentiment is the coarse market-mood classification attached to a product
// by the upstream feed.
type Sentiment string

const (
	SentimentPanic Sentiment = "panic"
	SentimentBuy   Sentiment = "buy"
	SentimentHold  Sentiment = "hold"
)

// ParseSentiment maps a raw feed value onto the closed sentiment set.
// Matching is case-insensitive; unknown or empty values default to hold.
func ParseSentiment(raw string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "panic":
		return SentimentPanic
	case "buy":
		return SentimentBuy
	default:
		return SentimentHold
	}
}

// PricePoint is one daily price sample in a product's history.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// History is an ordered sequence of daily price samples. It decodes
// leniently: a malformed or non-array history field yields an empty
// history rather than failing the whole payload.
type History []PricePoint

func (h *History) UnmarshalJSON(data []byte) error {
	var points []PricePoint
	if err := json.Unmarshal(data, &points); err != nil {
		*h = nil
		return nil
	}
	*h = points
	return nil
}

// Product is one tracked component as delivered by the feed.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"` // e.g. "DDR5", "DDR4", "GPU", "SSD"
	CurrentPrice float64   `json:"current_price"`
	Change24h    float64   `json:"change_24h"`
	StockStatus  string    `json:"stock_status,omitempty"`
	Sentiment    Sentiment `json:"sentiment,omitempty"`
	History      History   `json:"history,omitempty"`
}

// Snapshot is the full set of products as last successfully fetched.
// Once published it is never mutated; each poll replaces it wholesale.
// LastUpdated carries the provider's timestamp verbatim (display form);
// FetchedAt is stamped locally when the poll succeeds.
type Snapshot struct {
	LastUpdated string    `json:"last_updated"`
	Products    []Product `json:"products"`
	FetchedAt   time.Time `json:"-"`
}
