package recorder

import "SiliconMeter/internal/model"

// PollEvent records the outcome of one poll cycle.
type PollEvent struct {
	Status       string // "OK" or "ERROR"
	ProductCount int
	LastUpdated  string
	Note         string
}

// Recorder persists polled data for later analysis.
type Recorder interface {
	RecordPoll(evt *PollEvent) error
	RecordPrices(snap *model.Snapshot) error
	Close() error
}
