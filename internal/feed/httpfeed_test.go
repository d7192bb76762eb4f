package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SiliconMeter/internal/model"
)

func serveJSON(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestFetchSnapshot_ValidPayload(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{
		"last_updated": "2025-06-01T12:00:00Z",
		"products": [
			{"id": "d5", "name": "32GB DDR5 Kit", "type": "DDR5",
			 "current_price": 129.99, "change_24h": 2.4,
			 "stock_status": "In Stock", "sentiment": "BUY",
			 "history": [{"date": "2025-05-31", "price": 127.0}]}
		]
	}`)
	defer srv.Close()

	snap, err := NewHTTPFetcher(srv.URL, "").FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.LastUpdated != "2025-06-01T12:00:00Z" {
		t.Errorf("unexpected last_updated: %s", snap.LastUpdated)
	}
	if len(snap.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(snap.Products))
	}
	p := snap.Products[0]
	if p.CurrentPrice != 129.99 || p.Change24h != 2.4 {
		t.Errorf("unexpected numerics: %+v", p)
	}
	if p.Sentiment != model.SentimentBuy {
		t.Errorf("expected sentiment buy (case-insensitive), got %s", p.Sentiment)
	}
	if len(p.History) != 1 {
		t.Errorf("expected 1 history sample, got %d", len(p.History))
	}
	if snap.FetchedAt.IsZero() {
		t.Error("expected FetchedAt to be stamped")
	}
}

func TestFetchSnapshot_NonOKStatus(t *testing.T) {
	srv := serveJSON(t, http.StatusServiceUnavailable, `upstream down`)
	defer srv.Close()

	if _, err := NewHTTPFetcher(srv.URL, "").FetchSnapshot(context.Background()); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestFetchSnapshot_MissingPriceSkipsProduct(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{
		"last_updated": "2025-06-01T12:00:00Z",
		"products": [
			{"id": "broken", "name": "No Price", "type": "DDR5"},
			{"id": "neg", "name": "Negative", "type": "DDR5", "current_price": -3},
			{"id": "ok", "name": "Fine", "type": "DDR4", "current_price": 80.0}
		]
	}`)
	defer srv.Close()

	snap, err := NewHTTPFetcher(srv.URL, "").FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Products) != 1 {
		t.Fatalf("expected invalid products to be skipped, got %d", len(snap.Products))
	}
	if snap.Products[0].ID != "ok" {
		t.Errorf("wrong product survived: %s", snap.Products[0].ID)
	}
}

func TestFetchSnapshot_MalformedHistoryTreatedAsEmpty(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{
		"products": [
			{"id": "h", "name": "Kit", "type": "DDR5",
			 "current_price": 100, "history": "not-an-array"}
		]
	}`)
	defer srv.Close()

	snap, err := NewHTTPFetcher(srv.URL, "").FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("malformed history should not fail the payload: %v", err)
	}
	if len(snap.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(snap.Products))
	}
	if len(snap.Products[0].History) != 0 {
		t.Errorf("expected empty history, got %d samples", len(snap.Products[0].History))
	}
}

func TestFetchSnapshot_Defaults(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{
		"products": [
			{"id": "d", "name": "Kit", "type": "DDR4", "current_price": 80,
			 "sentiment": "to-the-moon"}
		]
	}`)
	defer srv.Close()

	snap, err := NewHTTPFetcher(srv.URL, "").FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := snap.Products[0]
	if p.StockStatus != "Unknown" {
		t.Errorf("expected stock status fallback Unknown, got %q", p.StockStatus)
	}
	if p.Sentiment != model.SentimentHold {
		t.Errorf("expected unknown sentiment to default to hold, got %s", p.Sentiment)
	}
	if p.Change24h != 0 {
		t.Errorf("expected missing change to default to 0, got %v", p.Change24h)
	}
}

func TestSanitize_SkipsBadHistoryEntries(t *testing.T) {
	price := 100.0
	ws := &wireSnapshot{
		Products: []wireProduct{{
			ID: "x", Name: "Kit", Type: "DDR5", CurrentPrice: &price,
			History: model.History{
				{Date: "2025-06-01", Price: 99},
				{Date: "", Price: 98},
				{Date: "2025-06-02", Price: -1},
			},
		}},
	}
	snap := sanitize(ws)
	if got := len(snap.Products[0].History); got != 1 {
		t.Errorf("expected 1 usable history sample, got %d", got)
	}
}
