package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage ledger transactions",
	}
	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())
	cmd.AddCommand(txListCmd())
	return cmd
}

func txFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "expense", "transaction type (expense, income, savings)")
	cmd.Flags().String("amount", "", "amount (positive decimal)")
	cmd.Flags().String("category", "", "category (goal name for savings)")
	cmd.Flags().String("date", "", "calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().String("icon", "", "icon name")
	cmd.Flags().String("note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
}

func txFromFlags(cmd *cobra.Command) (model.Transaction, error) {
	txType, err := model.ParseTransactionType(mustString(cmd, "type"))
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := decimal.NewFromString(mustString(cmd, "amount"))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	return model.Transaction{
		Type:     txType,
		Amount:   amount,
		Category: mustString(cmd, "category"),
		Date:     model.Date(mustString(cmd, "date")),
		Icon:     mustString(cmd, "icon"),
		Note:     mustString(cmd, "note"),
	}, nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func txAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := txFromFlags(cmd)
			if err != nil {
				return err
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := eng.AddTransaction(cmd.Context(), tx)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Added %s %s (%s) on %s [%s]\n",
				added.Type, added.Amount.StringFixed(2), added.Category, added.Date, added.ID)
			reportNotifications(eng)
			return nil
		},
	}
	txFlags(cmd)
	return cmd
}

func txEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := txFromFlags(cmd)
			if err != nil {
				return err
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.EditTransaction(cmd.Context(), args[0], tx); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Edited transaction %s\n", args[0])
			reportNotifications(eng)
			return nil
		},
	}
	txFlags(cmd)
	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction and revert its effects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			removed, ok := eng.DeleteTransaction(cmd.Context(), args[0])
			if !ok {
				fmt.Fprintf(os.Stdout, "No transaction with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(os.Stdout, "Deleted %s %s (%s). Re-add with:\n  ecobudget tx add --type %s --amount %s --category %q --date %s\n",
				removed.Type, removed.Amount.StringFixed(2), removed.Category,
				removed.Type, removed.Amount.String(), removed.Category, removed.Date)
			return nil
		},
	}
}

func txListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txs := eng.Transactions()
			if len(txs) == 0 {
				fmt.Fprintln(os.Stdout, "No transactions yet.")
				return nil
			}
			for _, tx := range txs {
				note := ""
				if tx.Note != "" {
					note = "  " + tx.Note
				}
				fmt.Fprintf(os.Stdout, "%s  %-7s  %10s  %-20s%s  [%s]\n",
					tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Category, note, tx.ID)
			}
			return nil
		},
	}
}

// reportNotifications surfaces challenge completions and level-ups caused
// by the mutation that just ran.
func reportNotifications(eng interface {
	RecentlyCompletedChallenge() *model.ChallengeDef
	PendingLevelUp() *model.LevelDef
}) {
	if c := eng.RecentlyCompletedChallenge(); c != nil {
		fmt.Fprintf(os.Stdout, "🏆 Challenge complete: %s (+%d XP)\n", c.Title, c.XPReward)
	}
	if l := eng.PendingLevelUp(); l != nil {
		fmt.Fprintf(os.Stdout, "⬆️  Level up! Level %d: %s (%s)\n", l.Level, l.Name, l.Artifact)
	}
}
