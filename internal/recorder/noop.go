package recorder

import "SiliconMeter/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPoll(_ *PollEvent) error        { return nil }
func (n *NoopRecorder) RecordPrices(_ *model.Snapshot) error { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
