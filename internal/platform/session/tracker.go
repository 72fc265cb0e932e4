// Package session does the round bookkeeping both frontends share: each
// finished round is recorded once in the session leaderboard, and restarts
// arm the next one.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// TopScores is how many session rounds are kept for display.
const TopScores = 3

// Event describes what a tick changed for the session.
type Event struct {
	Cleared   int  // Rows cleared this tick
	Restarted bool // A new round started
	Ended     bool // The round ended this tick
}

// Tracker watches step results and records finished rounds.
// It is not safe for concurrent use.
type Tracker struct {
	gameID   string
	store    *storage.Store
	logger   *log.Logger
	recorded bool
	stats    core.SessionStats
}

// NewTracker creates a tracker for gameID. store and logger may be nil;
// without a store rounds are only logged.
func NewTracker(gameID string, store *storage.Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{gameID: gameID, store: store, logger: logger}
	t.refresh()
	return t
}

// Observe inspects one step result. A game over is recorded the first time
// it is seen; later ticks of the same game over are ignored.
func (t *Tracker) Observe(res core.StepResult) Event {
	ev := Event{Cleared: res.Cleared, Restarted: res.Restarted}

	if res.Cleared > 0 {
		t.logger.Debug("lines cleared", "rows", res.Cleared, "score", res.State.Score)
	}

	if res.Restarted {
		t.recorded = false
		t.logger.Info("round restarted")
	}

	if res.State.GameOver && !t.recorded {
		t.recorded = true
		ev.Ended = true
		t.logger.Info("game over", "score", res.State.Score, "lines", res.State.Lines)
		t.record(res.State)
	}

	return ev
}

// Stats returns the session leaderboard as of the last recorded round.
func (t *Tracker) Stats() core.SessionStats {
	return t.stats
}

func (t *Tracker) record(state core.GameState) {
	if t.store == nil {
		return
	}
	if _, err := t.store.RecordRound(t.gameID, state.Score, state.Lines); err != nil {
		// The leaderboard is cosmetic; play continues without it.
		t.logger.Error("cannot record round", "err", err)
		return
	}
	t.refresh()
}

func (t *Tracker) refresh() {
	if t.store == nil {
		return
	}
	stats, err := t.store.Stats(t.gameID, TopScores)
	if err != nil {
		t.logger.Error("cannot read session stats", "err", err)
		return
	}
	t.stats = stats
}
