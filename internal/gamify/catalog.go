package gamify

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

var (
	savingsStarterTarget = decimal.NewFromInt(100)
	budgetMasterTarget   = decimal.NewFromInt(500)
	reduceMinLastWeek    = decimal.NewFromInt(50)
	reduceMargin         = decimal.NewFromInt(20)
)

// diningCategories are treated as eating out for the No Eat Out challenge.
var diningCategories = map[string]struct{}{
	"food & dining": {},
	"restaurants":   {},
	"dining":        {},
	"fast food":     {},
}

// catalog is the compiled-in challenge table. Order is significant: the
// unlock queue and the "last completed" notification both follow it.
var catalog = []model.ChallengeDef{
	{
		ID:          "c1",
		Title:       "No Eat Out Week",
		Description: "Spend $0 on Dining/Restaurants in the last 7 days.",
		Icon:        "restaurant_menu",
		XPReward:    150,
		Criteria:    noEatOutWeek,
	},
	{
		ID:          "c2",
		Title:       "Reduce Expenses",
		Description: "Spend $20 less this week compared to last week.",
		Icon:        "trending_down",
		XPReward:    100,
		Criteria:    reduceExpenses,
	},
	{
		ID:          "c3",
		Title:       "Savings Starter",
		Description: "Reach $100 in total savings to unlock your potential.",
		Icon:        "savings",
		XPReward:    200,
		Criteria: func(stats model.UserStats, _ []model.Transaction, _ time.Time) bool {
			return stats.TotalSavings.GreaterThanOrEqual(savingsStarterTarget)
		},
	},
	{
		ID:          "c4",
		Title:       "No Spend Weekend",
		Description: "Spend nothing on the most recent Saturday & Sunday.",
		Icon:        "weekend",
		XPReward:    300,
		Criteria:    noSpendWeekend,
	},
	{
		ID:          "c8",
		Title:       "First Harvest",
		Description: "Record your first income transaction to start the flow.",
		Icon:        "monetization_on",
		XPReward:    200,
		Criteria:    hasIncome,
	},
	// Initially locked challenges.
	{
		ID:          "c5",
		Title:       "Goal Setter",
		Description: "Create at least 1 savings goal to visualize your dreams.",
		Icon:        "flag",
		XPReward:    150,
		Criteria: func(stats model.UserStats, _ []model.Transaction, _ time.Time) bool {
			return len(stats.SavingsGoals) >= 1
		},
	},
	{
		ID:          "c6",
		Title:       "Budget Master",
		Description: "Log over $500 in monthly expenses to track high flow.",
		Icon:        "account_balance_wallet",
		XPReward:    250,
		Criteria: func(stats model.UserStats, _ []model.Transaction, _ time.Time) bool {
			return stats.MonthlyExpenses.GreaterThanOrEqual(budgetMasterTarget)
		},
	},
	{
		ID:          "c7",
		Title:       "Income Stream",
		Description: "Log at least one income transaction.",
		Icon:        "payments",
		XPReward:    200,
		Criteria:    hasIncome,
	},
}

// initiallyLocked challenges start life locked and are released one at a
// time through the unlock queue.
var initiallyLocked = map[string]struct{}{
	"c5": {},
	"c6": {},
	"c7": {},
}

// Challenges returns a copy of the challenge catalog in stable order.
func Challenges() []model.ChallengeDef {
	out := make([]model.ChallengeDef, len(catalog))
	copy(out, catalog)
	return out
}

// ChallengeByID looks a definition up in the catalog.
func ChallengeByID(id string) (model.ChallengeDef, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return model.ChallengeDef{}, false
}

// noEatOutWeek passes when the user was active in the last 7 days but
// logged no dining expense over that window. The activity check keeps a
// fresh account from auto-winning.
func noEatOutWeek(_ model.UserStats, txs []model.Transaction, now time.Time) bool {
	cutoff := model.DateOf(now.AddDate(0, 0, -7))

	active := false
	for _, tx := range txs {
		if !tx.Date.Before(cutoff) {
			active = true
			break
		}
	}
	if !active {
		return false
	}

	for _, tx := range txs {
		if tx.Type != model.TypeExpense || tx.Date.Before(cutoff) {
			continue
		}
		if _, dining := diningCategories[strings.ToLower(tx.Category)]; dining {
			return false
		}
	}
	return true
}

// reduceExpenses passes when this week's spend undercuts last week's by at
// least $20, and last week had meaningful spend to compare against.
func reduceExpenses(_ model.UserStats, txs []model.Transaction, now time.Time) bool {
	today := model.DateOf(now)
	oneWeekAgo := model.DateOf(now.AddDate(0, 0, -7))
	twoWeeksAgo := model.DateOf(now.AddDate(0, 0, -14))

	thisWeek := decimal.Zero
	lastWeek := decimal.Zero
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		switch {
		case !tx.Date.Before(oneWeekAgo) && !tx.Date.After(today):
			thisWeek = thisWeek.Add(tx.Amount)
		case !tx.Date.Before(twoWeeksAgo) && tx.Date.Before(oneWeekAgo):
			lastWeek = lastWeek.Add(tx.Amount)
		}
	}

	return lastWeek.GreaterThan(reduceMinLastWeek) &&
		lastWeek.Sub(thisWeek).GreaterThanOrEqual(reduceMargin)
}

// noSpendWeekend passes when the most recent fully elapsed weekend saw no
// expenses. If today is Sunday the previous weekend is judged, not this
// one.
func noSpendWeekend(_ model.UserStats, txs []model.Transaction, now time.Time) bool {
	day := int(now.Weekday()) // Sunday == 0
	back := day
	if day == 0 {
		back = 7
	}
	sunday := model.DateOf(now.AddDate(0, 0, -back))
	saturday := sunday.AddDays(-1)

	hasHistory := false
	for _, tx := range txs {
		if tx.Date.Before(saturday) {
			hasHistory = true
			break
		}
	}
	if !hasHistory {
		return false
	}

	for _, tx := range txs {
		if tx.Type == model.TypeExpense && (tx.Date == saturday || tx.Date == sunday) {
			return false
		}
	}
	return true
}

func hasIncome(_ model.UserStats, txs []model.Transaction, _ time.Time) bool {
	for _, tx := range txs {
		if tx.Type == model.TypeIncome {
			return true
		}
	}
	return false
}
