package model

import "time"

// ChallengeStatus is the lifecycle state of a challenge.
type ChallengeStatus string

// Challenge lifecycle: locked -> available -> active -> completed.
// Completed is terminal.
const (
	StatusLocked    ChallengeStatus = "locked"
	StatusAvailable ChallengeStatus = "available"
	StatusActive    ChallengeStatus = "active"
	StatusCompleted ChallengeStatus = "completed"
)

// Criteria decides whether an active challenge is complete, given the
// current aggregate and the full transaction list (most-recent-first).
// Predicates must be pure; the evaluation time is passed in so tests can
// pin the clock.
type Criteria func(stats UserStats, txs []Transaction, now time.Time) bool

// ChallengeDef is a static catalog entry. Defs without Criteria can only
// be completed through a manual claim.
type ChallengeDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	XPReward    int
	Criteria    Criteria
}

// ChallengeState is the per-challenge mutable state. UnlockTime is the
// epoch-millisecond instant a locked challenge becomes available; zero
// means no unlock is scheduled.
type ChallengeState struct {
	Status     ChallengeStatus `json:"status"`
	UnlockTime int64           `json:"unlockTime,omitempty"`
}
