package feed

import (
	"context"
	"time"

	"SiliconMeter/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Snapshot *model.Snapshot
	Err      error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSnapshot(_ context.Context) (*model.Snapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Snapshot != nil {
		snap := *m.Snapshot
		snap.FetchedAt = time.Now()
		return &snap, nil
	}
	return demoSnapshot(), nil
}

// demoSnapshot builds a small fixed product set with a week of history so
// the dashboard renders something useful without a live feed.
func demoSnapshot() *model.Snapshot {
	now := time.Now()
	mk := func(base float64, drift float64) model.History {
		h := make(model.History, 7)
		for i := 0; i < 7; i++ {
			h[i] = model.PricePoint{
				Date:  now.AddDate(0, 0, i-7).Format("2006-01-02"),
				Price: base + drift*float64(i),
			}
		}
		return h
	}
	return &model.Snapshot{
		LastUpdated: now.Format(time.RFC3339),
		FetchedAt:   now,
		Products: []model.Product{
			{
				ID: "ddr5-32-6000", Name: "32GB DDR5-6000 Kit", Type: "DDR5",
				CurrentPrice: 129.99, Change24h: 2.4, StockStatus: "In Stock",
				Sentiment: model.SentimentHold, History: mk(118, 1.8),
			},
			{
				ID: "ddr4-32-3600", Name: "32GB DDR4-3600 Kit", Type: "DDR4",
				CurrentPrice: 74.50, Change24h: -1.1, StockStatus: "In Stock",
				Sentiment: model.SentimentBuy, History: mk(78, -0.5),
			},
			{
				ID: "gpu-hbm-accel", Name: "Accelerator 80GB HBM3", Type: "GPU",
				CurrentPrice: 28999, Change24h: 5.7, StockStatus: "Backorder",
				Sentiment: model.SentimentPanic, History: mk(26500, 380),
			},
			{
				ID: "ssd-2tb-nvme", Name: "2TB NVMe Gen4 SSD", Type: "SSD",
				CurrentPrice: 149.00, Change24h: 0.0, StockStatus: "Unknown",
				Sentiment: model.SentimentHold, History: mk(149, 0),
			},
		},
	}
}
