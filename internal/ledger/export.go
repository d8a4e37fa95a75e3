package ledger

import (
	"fmt"
	"io"
	"strings"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

// ExportCSV writes the transaction list in current list order
// (most-recent-first) as CSV with columns
// Date, Type, Category, Amount, Currency, Note.
//
// Category is always quoted and Note is quoted only when present, with
// internal quotes doubled; Amount always carries two decimal places. The
// format is fixed, so rows are built by hand rather than with
// encoding/csv (which quotes only when it has to).
func ExportCSV(w io.Writer, txs []model.Transaction, currency string) error {
	if _, err := io.WriteString(w, "Date,Type,Category,Amount,Currency,Note\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, tx := range txs {
		note := ""
		if tx.Note != "" {
			note = quote(tx.Note)
		}
		row := fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			tx.Date, tx.Type, quote(tx.Category), tx.Amount.StringFixed(2), currency, note)
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
