// Package engine implements the budget engine: the service object that
// owns the transaction ledger, capsules, recurring rules, and gamification
// state, and exposes the mutation API the presentation layer drives.
//
// All state transitions happen under one lock as whole-snapshot updates;
// every mutation ends with a synchronous challenge-evaluation pass and a
// best-effort persistence write. Persistence failures are logged and never
// corrupt in-memory state.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/DVDHSN/EcoBudget/internal/common"
	"github.com/DVDHSN/EcoBudget/internal/gamify"
	"github.com/DVDHSN/EcoBudget/internal/ledger"
	"github.com/DVDHSN/EcoBudget/internal/model"
	"github.com/DVDHSN/EcoBudget/internal/recurring"
	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// SupportedCurrencies are the display currencies the export honors.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "INR", "MYR"}

// ErrUnsupportedCurrency is returned for a currency outside the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Config holds tunables for the budget engine.
type Config struct {
	// UnlockDelay is how long a locked challenge waits once the unlock
	// queue arms it.
	UnlockDelay time.Duration
	// TickInterval is the cadence of the background unlock sweep. Zero
	// disables the background goroutine; unlocks still flip lazily on
	// reads.
	TickInterval time.Duration
	// Now supplies the clock; tests pin it.
	Now func() time.Time
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		UnlockDelay:  gamify.DefaultUnlockDelay,
		TickInterval: 5 * time.Second,
		Now:          time.Now,
	}
}

// Engine is the budget engine. Safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	store storage.Store
	cfg   Config

	stats        model.UserStats
	capsules     []model.Capsule
	transactions []model.Transaction
	rules        []model.RecurringTransaction
	gamify       *gamify.Engine
	currency     string
	translucent  bool

	done      chan struct{}
	closeOnce sync.Once
}

// New creates an engine with the default configuration.
func New(ctx context.Context, store storage.Store) (*Engine, error) {
	return NewWithConfig(ctx, store, DefaultConfig())
}

// NewWithConfig loads every state slice from the store (falling back to
// defaults on missing or corrupt slots), replays overdue recurring rules,
// and starts the unlock ticker.
func NewWithConfig(ctx context.Context, store storage.Store, cfg Config) (*Engine, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.UnlockDelay <= 0 {
		cfg.UnlockDelay = gamify.DefaultUnlockDelay
	}

	e := &Engine{
		store: store,
		cfg:   cfg,
		done:  make(chan struct{}),
	}
	e.load(ctx)
	e.gamify = gamify.NewEngine(e.loadChallengeStates(ctx), e.stats.Level, cfg.UnlockDelay)

	// Catch up recurring rules before anyone observes state.
	e.mu.Lock()
	e.catchUpRecurring(ctx)
	e.mu.Unlock()

	if cfg.TickInterval > 0 {
		go e.runTicker(cfg.TickInterval)
	}
	return e, nil
}

// Close stops the background unlock ticker. It does not close the store.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() { close(e.done) })
	return nil
}

func (e *Engine) load(ctx context.Context) {
	e.stats = model.DefaultStats()
	loadSlot(ctx, e.store, storage.KeyStats, &e.stats)
	if e.stats.SavingsGoals == nil {
		e.stats.SavingsGoals = []model.SavingsGoal{}
	}
	if e.stats.Level < 1 {
		e.stats.Level = 1
		e.stats.LevelTitle = "Novice"
	}

	loadSlot(ctx, e.store, storage.KeyCapsules, &e.capsules)
	loadSlot(ctx, e.store, storage.KeyTransactions, &e.transactions)
	loadSlot(ctx, e.store, storage.KeyRecurring, &e.rules)

	e.currency = "USD"
	loadSlot(ctx, e.store, storage.KeyCurrency, &e.currency)
	loadSlot(ctx, e.store, storage.KeyTranslucent, &e.translucent)
}

func (e *Engine) loadChallengeStates(ctx context.Context) map[string]model.ChallengeState {
	states := make(map[string]model.ChallengeState)
	loadSlot(ctx, e.store, storage.KeyChallenges, &states)
	return states
}

// loadSlot reads one slot, leaving dest untouched when the slot is absent
// or unreadable.
func loadSlot(ctx context.Context, store storage.Store, key string, dest any) {
	err := store.Get(ctx, key, dest)
	if err == nil || errors.Is(err, common.ErrNotFound) {
		return
	}
	slog.Warn("failed to load state slot, using default", "key", key, "error", err)
}

// saveSlot persists one slot best-effort; failures are logged, never
// propagated, and never touch in-memory state.
func (e *Engine) saveSlot(ctx context.Context, key string, value any) {
	if err := e.store.Set(ctx, key, value); err != nil {
		slog.Error("failed to persist state slot", "key", key, "error", err)
	}
}

// afterLedgerChange runs the shared tail of every transaction-list
// mutation: streak recompute, challenge evaluation, persistence.
func (e *Engine) afterLedgerChange(ctx context.Context) {
	e.stats.StreakDays = ledger.Streak(e.transactions, e.cfg.Now())
	e.evaluateChallenges(ctx)
	e.saveSlot(ctx, storage.KeyTransactions, e.transactions)
	e.saveSlot(ctx, storage.KeyStats, e.stats)
	e.saveSlot(ctx, storage.KeyCapsules, e.capsules)
}

// evaluateChallenges is the onMutation hook: it runs the challenge pass
// against the current snapshot and persists gamification changes.
func (e *Engine) evaluateChallenges(ctx context.Context) {
	if e.gamify.Evaluate(&e.stats, e.transactions, e.cfg.Now()) {
		e.saveSlot(ctx, storage.KeyChallenges, e.gamify.States())
		e.saveSlot(ctx, storage.KeyStats, e.stats)
	}
}

// catchUpRecurring replays due recurring instances into the ledger.
// Caller holds the lock.
func (e *Engine) catchUpRecurring(ctx context.Context) {
	res := recurring.Process(e.rules, e.stats, e.capsules, e.cfg.Now())
	if !res.Changed {
		return
	}

	// The materialized batch is chronological; reverse it so the prepend
	// keeps the ledger newest-first.
	batch := res.Transactions
	for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
		batch[i], batch[j] = batch[j], batch[i]
	}
	e.transactions = append(batch, e.transactions...)
	e.stats = res.Stats
	e.capsules = res.Capsules
	e.rules = res.Rules

	e.saveSlot(ctx, storage.KeyRecurring, e.rules)
	e.afterLedgerChange(ctx)
}

func (e *Engine) runTicker(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			e.sweepUnlocks(context.Background())
		}
	}
}

func (e *Engine) sweepUnlocks(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gamify.TickUnlocks(e.cfg.Now()) {
		e.saveSlot(ctx, storage.KeyChallenges, e.gamify.States())
	}
}

// Reset clears every persisted slice back to defaults.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats = model.DefaultStats()
	e.capsules = nil
	e.transactions = nil
	e.rules = nil
	e.currency = "USD"
	e.translucent = false
	e.gamify.Reset()
	e.gamify.SyncLevel(1)

	for _, key := range []string{
		storage.KeyStats, storage.KeyCapsules, storage.KeyTransactions,
		storage.KeyRecurring, storage.KeyChallenges, storage.KeyCurrency,
		storage.KeyTranslucent,
	} {
		if err := e.store.Delete(ctx, key); err != nil {
			slog.Error("failed to clear state slot", "key", key, "error", err)
		}
	}
	slog.Info("all budget data reset")
}
