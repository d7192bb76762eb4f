package feed

import (
	"context"

	"SiliconMeter/internal/model"
)

// Fetcher defines the interface for fetching the full price snapshot.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*model.Snapshot, error)
	Name() string
}
