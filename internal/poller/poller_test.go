package poller

import (
	"context"
	"errors"
	"testing"

	"SiliconMeter/internal/feed"
	"SiliconMeter/internal/model"
	"SiliconMeter/internal/recorder"
	"SiliconMeter/internal/snapshot"
)

// memRecorder captures recorded events for assertions.
type memRecorder struct {
	polls  []recorder.PollEvent
	prices int
}

func (m *memRecorder) RecordPoll(evt *recorder.PollEvent) error {
	m.polls = append(m.polls, *evt)
	return nil
}

func (m *memRecorder) RecordPrices(snap *model.Snapshot) error {
	m.prices += len(snap.Products)
	return nil
}

func (m *memRecorder) Close() error { return nil }

func TestPoll_SuccessReplacesSnapshot(t *testing.T) {
	store := snapshot.NewStore()
	rec := &memRecorder{}
	fetcher := &feed.MockFetcher{Snapshot: &model.Snapshot{
		LastUpdated: "2025-06-01T12:00:00Z",
		Products:    []model.Product{{ID: "a", Type: "DDR5", CurrentPrice: 100}},
	}}

	p := NewPoller(context.Background(), fetcher, store, rec)
	p.RunNow()

	snap := store.Current()
	if snap == nil {
		t.Fatal("expected snapshot after successful poll")
	}
	if len(snap.Products) != 1 || snap.LastUpdated != "2025-06-01T12:00:00Z" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if len(rec.polls) != 1 || rec.polls[0].Status != "OK" {
		t.Errorf("expected one OK poll event, got %+v", rec.polls)
	}
	if rec.prices != 1 {
		t.Errorf("expected 1 price row recorded, got %d", rec.prices)
	}
}

func TestPoll_FailureKeepsPreviousSnapshot(t *testing.T) {
	store := snapshot.NewStore()
	rec := &memRecorder{}
	previous := &model.Snapshot{
		LastUpdated: "2025-06-01T12:00:00Z",
		Products:    []model.Product{{ID: "a", Type: "DDR5", CurrentPrice: 100}},
	}
	store.Replace(previous)

	fetcher := &feed.MockFetcher{Err: errors.New("network unreachable")}
	p := NewPoller(context.Background(), fetcher, store, rec)
	p.RunNow()

	if got := store.Current(); got != previous {
		t.Error("failed poll must leave the previous snapshot untouched")
	}
	if len(rec.polls) != 1 || rec.polls[0].Status != "ERROR" {
		t.Errorf("expected one ERROR poll event, got %+v", rec.polls)
	}
	if rec.prices != 0 {
		t.Errorf("expected no price rows on failure, got %d", rec.prices)
	}
}

func TestRegister_BadCronSpec(t *testing.T) {
	p := NewPoller(context.Background(), &feed.MockFetcher{}, snapshot.NewStore(), &memRecorder{})
	if err := p.Register("not a cron spec"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestStartStop(t *testing.T) {
	p := NewPoller(context.Background(), &feed.MockFetcher{}, snapshot.NewStore(), &memRecorder{})
	if err := p.Register("0 */5 * * * *"); err != nil {
		t.Fatalf("register: %v", err)
	}
	p.Start()
	p.Stop() // must return once no job is running
}
