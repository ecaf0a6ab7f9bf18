package mgnrega

import (
	"context"
	"testing"
	"time"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/source"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/observability"
	"github.com/jonboulle/clockwork"
)

// signalSource signals on a channel each time it is fetched from, so tests
// can observe scheduler triggers without sleeping.
type signalSource struct {
	fetched chan struct{}
}

func (s *signalSource) Name() string { return "signal" }

func (s *signalSource) FetchDistrictStats(context.Context, string) ([]source.Record, error) {
	s.fetched <- struct{}{}
	return nil, nil
}

func waitSignal(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

// TestSchedulerRunsAtStartupAndDaily verifies one ingest at startup and
// another once the clock passes the next 03:30.
func TestSchedulerRunsAtStartupAndDaily(t *testing.T) {
	store := newTestStore(t)
	src := &signalSource{fetched: make(chan struct{}, 4)}
	p := NewPipeline(store, src, observability.NewMetricsForTesting())

	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s := NewScheduler(p, "Uttar Pradesh", clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	waitSignal(t, src.fetched, "startup ingest")

	// The scheduler is now parked on the daily timer; jump past 03:30.
	clock.BlockUntil(1)
	clock.Advance(16 * time.Hour)
	waitSignal(t, src.fetched, "daily ingest")
}

// TestUntilNext verifies the wall-clock arithmetic around midnight.
func TestUntilNext(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Duration
	}{
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 3*time.Hour + 30*time.Minute},
		{time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC), 24 * time.Hour},
		{time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC), 4 * time.Hour},
	}
	for _, c := range cases {
		if got := untilNext(c.now, 3, 30); got != c.want {
			t.Errorf("untilNext(%v) = %v, want %v", c.now, got, c.want)
		}
	}
}
