package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name      string
		xp        int
		wantLevel int
		wantName  string
	}{
		{name: "zero xp", xp: 0, wantLevel: 1, wantName: "Novice"},
		{name: "just under boundary", xp: 299, wantLevel: 1, wantName: "Novice"},
		{name: "exactly on boundary", xp: 300, wantLevel: 2, wantName: "Learner"},
		{name: "mid table", xp: 8500, wantLevel: 10, wantName: "Analyst"},
		{name: "top of table", xp: 42000, wantLevel: 20, wantName: "Legend"},
		{name: "past the top", xp: 99999, wantLevel: 20, wantName: "Legend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLevel(tt.xp)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestLevelTableMonotonic(t *testing.T) {
	table := Levels()
	require.Len(t, table, 20)
	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].MinXP, table[i-1].MinXP, "MinXP must be strictly increasing")
		assert.Equal(t, table[i-1].Level+1, table[i].Level)
	}
	assert.Equal(t, 0, table[0].MinXP)
}

func TestNextLevelXP(t *testing.T) {
	assert.Equal(t, 300, NextLevelXP(1))
	assert.Equal(t, 42000, NextLevelXP(19))
	assert.Equal(t, 20000, NextLevelXP(20), "past the table falls back to level*1000")
}

func TestLevelByNumber(t *testing.T) {
	got, ok := LevelByNumber(5)
	require.True(t, ok)
	assert.Equal(t, "Saver", got.Name)

	_, ok = LevelByNumber(21)
	assert.False(t, ok)
}
