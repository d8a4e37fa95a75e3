package ledger

import (
	"sort"
	"time"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

// Streak counts consecutive calendar days with at least one transaction,
// ending today or yesterday. A gap of more than one day stops the count;
// if the most recent activity is older than yesterday the streak is 0.
//
// This is the one aggregate recomputed from scratch on every mutation.
func Streak(txs []model.Transaction, now time.Time) int {
	seen := make(map[model.Date]struct{}, len(txs))
	for _, tx := range txs {
		seen[tx.Date] = struct{}{}
	}
	if len(seen) == 0 {
		return 0
	}

	dates := make([]model.Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	// ISO dates sort correctly as strings.
	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })

	today := model.DateOf(now)
	yesterday := today.AddDays(-1)
	if dates[0] != today && dates[0] != yesterday {
		return 0
	}

	streak := 1
	current := dates[0]
	for _, d := range dates[1:] {
		if d != current.AddDays(-1) {
			break
		}
		streak++
		current = d
	}
	return streak
}
