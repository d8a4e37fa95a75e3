// Package storage implements the persistent key-value store the budget
// engine saves its state slices into. Each logical slice (stats, capsules,
// transactions, ...) lives under a stable key as a JSON blob, read once at
// engine construction and rewritten in full after every mutation.
package storage

import "context"

// Slot keys. These form the stable logical namespace shared with any
// other reader of the data file.
const (
	KeyStats        = "stats"
	KeyCapsules     = "capsules"
	KeyTransactions = "transactions"
	KeyRecurring    = "recurring"
	KeyChallenges   = "challenges"
	KeyCurrency     = "currency"
	KeyTranslucent  = "translucent"
)

// Store is the persistent store adapter. Implementations serialize values
// to JSON; Get returns common.ErrNotFound when the key is absent.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}
