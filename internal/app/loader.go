package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/sheet"
	"github.com/five82/roster/internal/state"
)

// Loader performs the single fetch → parse → build pass and records the
// outcome in Store.
type Loader struct {
	Fetcher sheet.Fetcher
	Store   *state.Store
	Options roster.Options
	Logger  *zap.Logger
}

// Load runs the fetch if it has not run yet and returns the resulting
// snapshot. Later calls return the first result without fetching again.
func (l *Loader) Load(ctx context.Context) state.Snapshot {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if !l.Store.Begin() {
		return l.Store.Snapshot()
	}

	start := time.Now()
	text, err := l.Fetcher.FetchCSV(ctx)
	if err != nil {
		logger.Error("error fetching or parsing sheet data", zap.Error(err))
		l.Store.Complete(roster.Roster{}, 0, err)
		return l.Store.Snapshot()
	}

	records := roster.Parse(text)
	ros := roster.Build(records, l.Options)
	l.Store.Complete(ros, len(records), nil)
	logger.Info("roster loaded",
		zap.Int("records", len(records)),
		zap.Int("leaders", ros.LeaderCount()),
		zap.Int("members", ros.MemberCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return l.Store.Snapshot()
}
