package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"SiliconMeter/internal/model"
)

// HTTPFetcher fetches the snapshot JSON from a configured URL.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with optional proxy support.
func NewHTTPFetcher(feedURL, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		URL: feedURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

// wireProduct is the expected JSON shape of one product in the feed.
// Numeric fields are pointers so that absent values can be told apart from
// zero and validated instead of rendered as garbage.
type wireProduct struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	CurrentPrice *float64      `json:"current_price"`
	Change24h    *float64      `json:"change_24h"`
	StockStatus  string        `json:"stock_status"`
	Sentiment    string        `json:"sentiment"`
	History      model.History `json:"history"`
}

type wireSnapshot struct {
	LastUpdated string        `json:"last_updated"`
	Products    []wireProduct `json:"products"`
}

// FetchSnapshot performs one unauthenticated read of the feed resource and
// returns the sanitized snapshot.
func (f *HTTPFetcher) FetchSnapshot(ctx context.Context) (*model.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch snapshot: status %d, body: %s", resp.StatusCode, string(body))
	}
	var ws wireSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&ws); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return sanitize(&ws), nil
}

// sanitize converts the wire shape into the domain snapshot, applying the
// defensive policy: products missing a usable price are skipped with a
// warning, a missing change defaults to zero, stock status falls back to
// "Unknown", sentiment falls back to hold, and unusable history entries
// are dropped.
func sanitize(ws *wireSnapshot) *model.Snapshot {
	snap := &model.Snapshot{
		LastUpdated: ws.LastUpdated,
		Products:    make([]model.Product, 0, len(ws.Products)),
		FetchedAt:   time.Now(),
	}
	for _, wp := range ws.Products {
		if wp.CurrentPrice == nil || !isFinite(*wp.CurrentPrice) || *wp.CurrentPrice < 0 {
			log.Printf("[WARN] skipping product %q: missing or invalid current_price", wp.ID)
			continue
		}
		change := 0.0
		if wp.Change24h != nil && isFinite(*wp.Change24h) {
			change = *wp.Change24h
		}
		stock := wp.StockStatus
		if stock == "" {
			stock = "Unknown"
		}
		history := make(model.History, 0, len(wp.History))
		for _, pt := range wp.History {
			if pt.Date == "" || !isFinite(pt.Price) || pt.Price < 0 {
				continue
			}
			history = append(history, pt)
		}
		snap.Products = append(snap.Products, model.Product{
			ID:           wp.ID,
			Name:         wp.Name,
			Type:         wp.Type,
			CurrentPrice: *wp.CurrentPrice,
			Change24h:    change,
			StockStatus:  stock,
			Sentiment:    model.ParseSentiment(wp.Sentiment),
			History:      history,
		})
	}
	return snap
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
