// Package gamify drives the experience-point economy: the level table, the
// challenge catalog, and the engine that evaluates challenge criteria and
// hands out XP.
package gamify

import "github.com/DVDHSN/EcoBudget/internal/model"

// levels is the static 20-entry progression table, sorted ascending by
// MinXP. The current level is the highest entry whose MinXP fits under the
// user's XP.
var levels = []model.LevelDef{
	// Phase 1: Foundations
	{Level: 1, Name: "Novice", MinXP: 0, Artifact: "Coin", ArtifactIcon: "monetization_on", Phase: "Foundations"},
	{Level: 2, Name: "Learner", MinXP: 300, Artifact: "Wallet", ArtifactIcon: "account_balance_wallet", Phase: "Foundations"},
	{Level: 3, Name: "Apprentice", MinXP: 750, Artifact: "Piggy Bank", ArtifactIcon: "savings", Phase: "Foundations"},
	{Level: 4, Name: "Explorer", MinXP: 1300, Artifact: "Ledger", ArtifactIcon: "receipt_long", Phase: "Foundations"},
	{Level: 5, Name: "Saver", MinXP: 2000, Artifact: "Balance", ArtifactIcon: "balance", Phase: "Foundations"},

	// Phase 2: Growth
	{Level: 6, Name: "Planner", MinXP: 2800, Artifact: "Budget", ArtifactIcon: "pie_chart", Phase: "Growth"},
	{Level: 7, Name: "Keeper", MinXP: 3800, Artifact: "Plan", ArtifactIcon: "assignment_turned_in", Phase: "Growth"},
	{Level: 8, Name: "Builder", MinXP: 5000, Artifact: "Chart", ArtifactIcon: "monitoring", Phase: "Growth"},
	{Level: 9, Name: "Strategist", MinXP: 6400, Artifact: "Streak", ArtifactIcon: "local_fire_department", Phase: "Growth"},
	{Level: 10, Name: "Analyst", MinXP: 8000, Artifact: "Goal", ArtifactIcon: "flag", Phase: "Growth"},

	// Phase 3: Wealth Building
	{Level: 11, Name: "Controller", MinXP: 9800, Artifact: "Vault", ArtifactIcon: "lock", Phase: "Wealth Building"},
	{Level: 12, Name: "Optimizer", MinXP: 11800, Artifact: "Key", ArtifactIcon: "vpn_key", Phase: "Wealth Building"},
	{Level: 13, Name: "Specialist", MinXP: 14000, Artifact: "Crown", ArtifactIcon: "emoji_events", Phase: "Wealth Building"},
	{Level: 14, Name: "Expert", MinXP: 16500, Artifact: "Gem", ArtifactIcon: "diamond", Phase: "Wealth Building"},
	{Level: 15, Name: "Master", MinXP: 19500, Artifact: "Treasure", ArtifactIcon: "inventory_2", Phase: "Wealth Building"},

	// Phase 4: Freedom
	{Level: 16, Name: "Guru", MinXP: 23000, Artifact: "Path", ArtifactIcon: "alt_route", Phase: "Freedom"},
	{Level: 17, Name: "Commander", MinXP: 27000, Artifact: "Bridge", ArtifactIcon: "architecture", Phase: "Freedom"},
	{Level: 18, Name: "Visionary", MinXP: 31500, Artifact: "Horizon", ArtifactIcon: "wb_twilight", Phase: "Freedom"},
	{Level: 19, Name: "Architect", MinXP: 36500, Artifact: "Estate", ArtifactIcon: "domain", Phase: "Freedom"},
	{Level: 20, Name: "Legend", MinXP: 42000, Artifact: "Legacy", ArtifactIcon: "auto_awesome", Phase: "Freedom"},
}

// Levels returns a copy of the level table.
func Levels() []model.LevelDef {
	out := make([]model.LevelDef, len(levels))
	copy(out, levels)
	return out
}

// CalculateLevel returns the highest level whose MinXP does not exceed xp.
// An xp sitting exactly on a boundary qualifies for that level.
func CalculateLevel(xp int) model.LevelDef {
	for i := len(levels) - 1; i >= 0; i-- {
		if xp >= levels[i].MinXP {
			return levels[i]
		}
	}
	return levels[0]
}

// LevelByNumber looks a level up by its number.
func LevelByNumber(level int) (model.LevelDef, bool) {
	for _, l := range levels {
		if l.Level == level {
			return l, true
		}
	}
	return model.LevelDef{}, false
}

// NextLevelXP returns the XP threshold of the level after the given one.
// Past the top of the table it extrapolates the way the reference app did.
func NextLevelXP(level int) int {
	if next, ok := LevelByNumber(level + 1); ok {
		return next.MinXP
	}
	return level * 1000
}
