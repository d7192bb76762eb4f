package server

import (
	"net/http"
	"time"

	"SiliconMeter/internal/chart"
	"SiliconMeter/internal/model"
	"SiliconMeter/internal/snapshot"

	"github.com/gin-gonic/gin"
)

// Handler serves dashboard views derived from the current snapshot.
// Derived values (chart points, filtered lists) are pure functions of the
// snapshot and are recomputed per request, never cached across polls.
type Handler struct {
	Store     *snapshot.Store
	NewsItems []model.NewsItem
}

// dashboardResponse is the full single-page payload.
type dashboardResponse struct {
	LastUpdated string              `json:"last_updated"`
	FetchedAt   *time.Time          `json:"fetched_at,omitempty"`
	Ticker      []model.TickerEntry `json:"ticker"`
	Products    []model.Product     `json:"products"`
	Chart       []model.ChartPoint  `json:"chart"`
	News        []model.NewsItem    `json:"news"`
}

// Dashboard returns everything the page renders in one payload.
func (h *Handler) Dashboard(c *gin.Context) {
	snap := h.Store.Current()
	resp := dashboardResponse{
		Ticker:   []model.TickerEntry{},
		Products: []model.Product{},
		Chart:    []model.ChartPoint{},
		News:     h.newsOrEmpty(),
	}
	if snap != nil {
		resp.LastUpdated = snap.LastUpdated
		fetched := snap.FetchedAt
		resp.FetchedAt = &fetched
		resp.Ticker = tickerEntries(snap.Products)
		resp.Products = snap.Products
		resp.Chart = chart.Aggregate(snap.Products)
	}
	c.JSON(http.StatusOK, resp)
}

// Products returns the product list, optionally filtered by exact
// case-insensitive type match via ?type=.
func (h *Handler) Products(c *gin.Context) {
	snap := h.Store.Current()
	if snap == nil {
		c.JSON(http.StatusOK, gin.H{"products": []model.Product{}})
		return
	}
	filtered := chart.FilterByType(snap.Products, c.Query("type"))
	c.JSON(http.StatusOK, gin.H{
		"last_updated": snap.LastUpdated,
		"products":     filtered,
	})
}

// Chart returns the aggregated category-average series.
func (h *Handler) Chart(c *gin.Context) {
	snap := h.Store.Current()
	if snap == nil {
		c.JSON(http.StatusOK, gin.H{"points": []model.ChartPoint{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": chart.Aggregate(snap.Products)})
}

// Ticker returns the condensed marquee entries.
func (h *Handler) Ticker(c *gin.Context) {
	snap := h.Store.Current()
	if snap == nil {
		c.JSON(http.StatusOK, gin.H{"entries": []model.TickerEntry{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": tickerEntries(snap.Products)})
}

// News returns the static sidebar items.
func (h *Handler) News(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.newsOrEmpty()})
}

func (h *Handler) newsOrEmpty() []model.NewsItem {
	if h.NewsItems == nil {
		return []model.NewsItem{}
	}
	return h.NewsItems
}

func tickerEntries(products []model.Product) []model.TickerEntry {
	entries := make([]model.TickerEntry, len(products))
	for i, p := range products {
		entries[i] = model.TickerEntry{
			Name:      p.Name,
			Price:     p.CurrentPrice,
			Change24h: p.Change24h,
		}
	}
	return entries
}
