package gamify

import (
	"log/slog"
	"time"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

// DefaultUnlockDelay is how long a locked challenge waits in the unlock
// queue once armed.
const DefaultUnlockDelay = 60 * time.Second

// Engine owns challenge state and level progression. It is not safe for
// concurrent use on its own; the budget engine serializes access.
type Engine struct {
	states      map[string]model.ChallengeState
	unlockDelay time.Duration
	prevLevel   int

	recentlyCompleted *model.ChallengeDef
	newLevel          *model.LevelDef
}

// NewEngine builds an engine from previously persisted challenge states,
// filling in defaults for catalog entries the stored map does not know
// about. currentLevel seeds level-up detection so a freshly loaded session
// does not replay an old level-up.
func NewEngine(stored map[string]model.ChallengeState, currentLevel int, unlockDelay time.Duration) *Engine {
	if unlockDelay <= 0 {
		unlockDelay = DefaultUnlockDelay
	}
	states := make(map[string]model.ChallengeState, len(catalog))
	for _, def := range catalog {
		if st, ok := stored[def.ID]; ok {
			states[def.ID] = st
			continue
		}
		status := model.StatusAvailable
		if _, locked := initiallyLocked[def.ID]; locked {
			status = model.StatusLocked
		}
		states[def.ID] = model.ChallengeState{Status: status}
	}
	if currentLevel < 1 {
		currentLevel = 1
	}
	return &Engine{
		states:      states,
		unlockDelay: unlockDelay,
		prevLevel:   currentLevel,
	}
}

// States returns a copy of the per-challenge state map for persistence or
// display.
func (e *Engine) States() map[string]model.ChallengeState {
	out := make(map[string]model.ChallengeState, len(e.states))
	for id, st := range e.states {
		out[id] = st
	}
	return out
}

// Evaluate runs the challenge-completion pass: every active challenge with
// a criteria predicate is checked against the current snapshot. All
// qualifying challenges complete together; their XP lands in a single
// award, and the last one in catalog order becomes the completion
// notification. Returns true if any state changed.
func (e *Engine) Evaluate(stats *model.UserStats, txs []model.Transaction, now time.Time) bool {
	totalXP := 0
	var lastCompleted *model.ChallengeDef

	for i, def := range catalog {
		st := e.states[def.ID]
		if st.Status != model.StatusActive || def.Criteria == nil {
			continue
		}
		if !def.Criteria(*stats, txs, now) {
			continue
		}
		e.states[def.ID] = model.ChallengeState{Status: model.StatusCompleted}
		totalXP += def.XPReward
		lastCompleted = &catalog[i]
		e.armUnlockQueue(now)
		slog.Info("challenge completed", "id", def.ID, "title", def.Title, "xp", def.XPReward)
	}

	if lastCompleted == nil {
		return false
	}
	e.AwardXP(stats, totalXP)
	e.recentlyCompleted = lastCompleted
	return true
}

// Accept moves an available challenge to active. Accepting a challenge in
// any other state is a no-op; the unguarded overwrite in the reference
// implementation allowed completed challenges to be re-run for double XP.
func (e *Engine) Accept(id string) bool {
	st, ok := e.states[id]
	if !ok || st.Status != model.StatusAvailable {
		return false
	}
	e.states[id] = model.ChallengeState{Status: model.StatusActive}
	return true
}

// Claim is the manual completion path, used for challenges without a
// criteria predicate: the challenge completes, the unlock queue advances,
// and the reward is granted regardless of current status. Unknown ids are
// ignored.
func (e *Engine) Claim(id string, stats *model.UserStats, now time.Time) bool {
	def, ok := ChallengeByID(id)
	if !ok {
		return false
	}
	e.states[id] = model.ChallengeState{Status: model.StatusCompleted}
	e.armUnlockQueue(now)
	e.AwardXP(stats, def.XPReward)
	e.recentlyCompleted = &def
	return true
}

// armUnlockQueue schedules the first locked, not-yet-scheduled challenge
// (catalog order) to unlock after the configured delay. It stays locked
// until the timer elapses.
func (e *Engine) armUnlockQueue(now time.Time) {
	for _, def := range catalog {
		st := e.states[def.ID]
		if st.Status == model.StatusLocked && st.UnlockTime == 0 {
			st.UnlockTime = now.Add(e.unlockDelay).UnixMilli()
			e.states[def.ID] = st
			slog.Debug("challenge unlock scheduled", "id", def.ID, "unlock_time", st.UnlockTime)
			return
		}
	}
}

// TickUnlocks flips every locked challenge whose unlock timer has elapsed
// to available, clearing the timer. Returns true if anything flipped.
func (e *Engine) TickUnlocks(now time.Time) bool {
	nowMs := now.UnixMilli()
	changed := false
	for id, st := range e.states {
		if st.Status == model.StatusLocked && st.UnlockTime != 0 && nowMs >= st.UnlockTime {
			e.states[id] = model.ChallengeState{Status: model.StatusAvailable}
			changed = true
			slog.Info("challenge unlocked", "id", id)
		}
	}
	return changed
}

// AwardXP adds XP to the aggregate and recomputes the level. Non-positive
// amounts are ignored.
func (e *Engine) AwardXP(stats *model.UserStats, amount int) {
	if amount <= 0 {
		return
	}
	stats.XP += amount
	lvl := CalculateLevel(stats.XP)
	stats.Level = lvl.Level
	stats.LevelTitle = lvl.Name
	e.observeLevel(lvl.Level)
}

// observeLevel compares the new level against the last one seen. An
// increase raises a level-up notification; a decrease (data reset) is
// absorbed silently. The tracked level follows every change.
func (e *Engine) observeLevel(level int) {
	if level > e.prevLevel {
		if lvl, ok := LevelByNumber(level); ok {
			e.newLevel = &lvl
			slog.Info("level up", "level", lvl.Level, "title", lvl.Name)
		}
	}
	e.prevLevel = level
}

// SyncLevel resets level tracking without raising a notification, for data
// resets and reloads.
func (e *Engine) SyncLevel(level int) {
	if level < 1 {
		level = 1
	}
	e.prevLevel = level
}

// RecentlyCompleted returns the challenge surfaced by the last completion,
// or nil.
func (e *Engine) RecentlyCompleted() *model.ChallengeDef {
	return e.recentlyCompleted
}

// ClearRecentlyCompleted acknowledges the completion notification.
func (e *Engine) ClearRecentlyCompleted() {
	e.recentlyCompleted = nil
}

// PendingLevelUp returns the level reached by the last level-up, or nil.
func (e *Engine) PendingLevelUp() *model.LevelDef {
	return e.newLevel
}

// ClearLevelUp acknowledges the level-up notification.
func (e *Engine) ClearLevelUp() {
	e.newLevel = nil
}

// Reset restores every challenge to its initial state.
func (e *Engine) Reset() {
	for _, def := range catalog {
		status := model.StatusAvailable
		if _, locked := initiallyLocked[def.ID]; locked {
			status = model.StatusLocked
		}
		e.states[def.ID] = model.ChallengeState{Status: status}
	}
	e.prevLevel = 1
	e.recentlyCompleted = nil
	e.newLevel = nil
}
