package engine

import (
	"context"
	"log/slog"

	"github.com/DVDHSN/EcoBudget/internal/gamify"
	"github.com/DVDHSN/EcoBudget/internal/model"
	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// Challenges returns the static challenge catalog.
func (e *Engine) Challenges() []model.ChallengeDef {
	return gamify.Challenges()
}

// ChallengeStates returns the current per-challenge state map. Elapsed
// unlock timers are flipped lazily here, so callers that never start the
// background ticker still observe unlocks on time.
func (e *Engine) ChallengeStates() map[string]model.ChallengeState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gamify.TickUnlocks(e.cfg.Now()) {
		e.saveSlot(context.Background(), storage.KeyChallenges, e.gamify.States())
	}
	return e.gamify.States()
}

// AcceptChallenge activates an available challenge. Accepting a locked,
// active, or completed challenge is a no-op.
func (e *Engine) AcceptChallenge(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gamify.Accept(id) {
		slog.Debug("accept ignored", "id", id)
		return
	}
	e.saveSlot(ctx, storage.KeyChallenges, e.gamify.States())

	// The challenge may already qualify against the current snapshot.
	e.evaluateChallenges(ctx)
	slog.Info("challenge accepted", "id", id)
}

// ClaimChallenge is the manual completion path: the challenge completes
// and its reward is awarded regardless of status. Unknown ids are ignored.
func (e *Engine) ClaimChallenge(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gamify.Claim(id, &e.stats, e.cfg.Now()) {
		slog.Debug("claim ignored, unknown challenge", "id", id)
		return
	}
	e.saveSlot(ctx, storage.KeyChallenges, e.gamify.States())
	e.saveSlot(ctx, storage.KeyStats, e.stats)
	slog.Info("challenge claimed", "id", id)
}

// RecentlyCompletedChallenge returns the challenge surfaced by the most
// recent completion pass, or nil when none is pending.
func (e *Engine) RecentlyCompletedChallenge() *model.ChallengeDef {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gamify.RecentlyCompleted()
}

// ClearChallengeNotification acknowledges the completion notification.
func (e *Engine) ClearChallengeNotification() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gamify.ClearRecentlyCompleted()
}

// PendingLevelUp returns the level reached by the most recent level-up,
// or nil when none is pending.
func (e *Engine) PendingLevelUp() *model.LevelDef {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gamify.PendingLevelUp()
}

// ClearLevelUp acknowledges the level-up notification.
func (e *Engine) ClearLevelUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gamify.ClearLevelUp()
}

// NextLevelXP returns the XP threshold for the next level.
func (e *Engine) NextLevelXP() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return gamify.NextLevelXP(e.stats.Level)
}
