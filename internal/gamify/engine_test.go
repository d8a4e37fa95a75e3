package gamify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

func newTestEngine() *Engine {
	return NewEngine(nil, 1, time.Minute)
}

func TestNewEngineDefaults(t *testing.T) {
	e := newTestEngine()
	states := e.States()
	require.Len(t, states, 8)

	for _, id := range []string{"c1", "c2", "c3", "c4", "c8"} {
		assert.Equal(t, model.StatusAvailable, states[id].Status, id)
	}
	for _, id := range []string{"c5", "c6", "c7"} {
		assert.Equal(t, model.StatusLocked, states[id].Status, id)
	}
}

func TestNewEngineKeepsStoredStates(t *testing.T) {
	stored := map[string]model.ChallengeState{
		"c1": {Status: model.StatusCompleted},
		"c5": {Status: model.StatusActive},
	}
	e := NewEngine(stored, 3, time.Minute)
	states := e.States()
	assert.Equal(t, model.StatusCompleted, states["c1"].Status)
	assert.Equal(t, model.StatusActive, states["c5"].Status)
	assert.Equal(t, model.StatusLocked, states["c6"].Status, "missing entries get defaults")
}

func TestAcceptGuard(t *testing.T) {
	e := newTestEngine()

	assert.True(t, e.Accept("c3"))
	assert.Equal(t, model.StatusActive, e.States()["c3"].Status)

	assert.False(t, e.Accept("c3"), "accepting an active challenge is a no-op")
	assert.False(t, e.Accept("c5"), "locked challenges cannot be accepted")
	assert.False(t, e.Accept("nope"))
}

func TestEvaluateCompletesAndAwards(t *testing.T) {
	e := newTestEngine()
	stats := model.DefaultStats()
	stats.TotalSavings = dec("150")

	require.True(t, e.Accept("c3"))
	changed := e.Evaluate(&stats, nil, testNow)

	assert.True(t, changed)
	assert.Equal(t, model.StatusCompleted, e.States()["c3"].Status)
	assert.Equal(t, 200, stats.XP)
	assert.Equal(t, 1, stats.Level)
	require.NotNil(t, e.RecentlyCompleted())
	assert.Equal(t, "c3", e.RecentlyCompleted().ID)

	// completed challenges never re-award
	e.ClearRecentlyCompleted()
	assert.False(t, e.Evaluate(&stats, nil, testNow))
	assert.Equal(t, 200, stats.XP)
	assert.Nil(t, e.RecentlyCompleted())
}

func TestEvaluateMultipleCompletionsSingleAward(t *testing.T) {
	e := newTestEngine()
	stats := model.DefaultStats()
	stats.TotalSavings = dec("150")
	income := model.Transaction{ID: "i", Type: model.TypeIncome, Amount: dec("100"), Category: "Salary", Date: model.DateOf(testNow)}

	require.True(t, e.Accept("c3"))
	require.True(t, e.Accept("c8"))
	require.True(t, e.Evaluate(&stats, []model.Transaction{income}, testNow))

	assert.Equal(t, 400, stats.XP, "both rewards land in one award")
	assert.Equal(t, 2, stats.Level, "400 XP crosses the 300 boundary")
	require.NotNil(t, e.RecentlyCompleted())
	assert.Equal(t, "c8", e.RecentlyCompleted().ID, "last in catalog order wins the notification")
	require.NotNil(t, e.PendingLevelUp())
	assert.Equal(t, 2, e.PendingLevelUp().Level)
}

func TestUnlockQueue(t *testing.T) {
	e := newTestEngine()
	stats := model.DefaultStats()
	stats.TotalSavings = dec("150")

	require.True(t, e.Accept("c3"))
	require.True(t, e.Evaluate(&stats, nil, testNow))

	// only the first locked challenge is armed
	states := e.States()
	assert.Equal(t, testNow.Add(time.Minute).UnixMilli(), states["c5"].UnlockTime)
	assert.Zero(t, states["c6"].UnlockTime)
	assert.Zero(t, states["c7"].UnlockTime)

	// timer not yet elapsed
	assert.False(t, e.TickUnlocks(testNow.Add(30*time.Second)))
	assert.Equal(t, model.StatusLocked, e.States()["c5"].Status)

	// timer elapsed
	assert.True(t, e.TickUnlocks(testNow.Add(61*time.Second)))
	st := e.States()["c5"]
	assert.Equal(t, model.StatusAvailable, st.Status)
	assert.Zero(t, st.UnlockTime)

	// nothing left to flip
	assert.False(t, e.TickUnlocks(testNow.Add(2*time.Minute)))
}

func TestClaim(t *testing.T) {
	e := newTestEngine()
	stats := model.DefaultStats()

	// Claim completes regardless of status, even locked.
	assert.True(t, e.Claim("c5", &stats, testNow))
	assert.Equal(t, model.StatusCompleted, e.States()["c5"].Status)
	assert.Equal(t, 150, stats.XP)
	require.NotNil(t, e.RecentlyCompleted())
	assert.Equal(t, "c5", e.RecentlyCompleted().ID)

	// next locked challenge got armed
	assert.NotZero(t, e.States()["c6"].UnlockTime)

	assert.False(t, e.Claim("unknown", &stats, testNow))
	assert.Equal(t, 150, stats.XP)
}

func TestAwardXP(t *testing.T) {
	e := newTestEngine()
	stats := model.DefaultStats()

	e.AwardXP(&stats, 0)
	e.AwardXP(&stats, -50)
	assert.Zero(t, stats.XP)
	assert.Nil(t, e.PendingLevelUp())

	e.AwardXP(&stats, 800)
	assert.Equal(t, 800, stats.XP)
	assert.Equal(t, 3, stats.Level)
	assert.Equal(t, "Apprentice", stats.LevelTitle)
	require.NotNil(t, e.PendingLevelUp())
	assert.Equal(t, 3, e.PendingLevelUp().Level)

	e.ClearLevelUp()
	e.AwardXP(&stats, 1) // 801 XP, still level 3
	assert.Nil(t, e.PendingLevelUp())
}

func TestSyncLevelSilencesDecrease(t *testing.T) {
	e := NewEngine(nil, 5, time.Minute)
	stats := model.DefaultStats()

	e.SyncLevel(1)
	e.AwardXP(&stats, 100) // level 1, no change
	assert.Nil(t, e.PendingLevelUp())

	e.AwardXP(&stats, 300) // 400 XP, level 2: up from synced 1
	require.NotNil(t, e.PendingLevelUp())
	assert.Equal(t, 2, e.PendingLevelUp().Level)
}

func TestReset(t *testing.T) {
	e := newTestEngine()
	stats := model.DefaultStats()
	require.True(t, e.Claim("c1", &stats, testNow))

	e.Reset()
	states := e.States()
	assert.Equal(t, model.StatusAvailable, states["c1"].Status)
	assert.Equal(t, model.StatusLocked, states["c6"].Status)
	assert.Zero(t, states["c6"].UnlockTime)
	assert.Nil(t, e.RecentlyCompleted())
	assert.Nil(t, e.PendingLevelUp())
}
