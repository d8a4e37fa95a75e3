package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring transaction rules",
	}
	cmd.AddCommand(recurringAddCmd())
	cmd.AddCommand(recurringDeleteCmd())
	cmd.AddCommand(recurringListCmd())
	return cmd
}

func recurringAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring rule and replay overdue instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			txType, err := model.ParseTransactionType(mustString(cmd, "type"))
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(mustString(cmd, "amount"))
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			interval, err := model.ParseInterval(mustString(cmd, "interval"))
			if err != nil {
				return err
			}

			rule := model.RecurringTransaction{
				Type:      txType,
				Amount:    amount,
				Category:  mustString(cmd, "category"),
				Icon:      mustString(cmd, "icon"),
				Note:      mustString(cmd, "note"),
				Interval:  interval,
				StartDate: model.Date(mustString(cmd, "start")),
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := eng.AddRecurringRule(cmd.Context(), rule)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Added %s recurring %s of %s (%s), next due %s [%s]\n",
				added.Interval, added.Type, added.Amount.StringFixed(2), added.Category, added.NextDate, added.ID)
			reportNotifications(eng)
			return nil
		},
	}
	cmd.Flags().String("type", "expense", "transaction type (expense, income, savings)")
	cmd.Flags().String("amount", "", "amount (positive decimal)")
	cmd.Flags().String("category", "", "category")
	cmd.Flags().String("interval", "monthly", "recurrence interval (daily, weekly, monthly, yearly)")
	cmd.Flags().String("start", "", "start date YYYY-MM-DD")
	cmd.Flags().String("icon", "", "icon name")
	cmd.Flags().String("note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func recurringDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recurring rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if eng.DeleteRecurringRule(cmd.Context(), args[0]) {
				fmt.Fprintf(os.Stdout, "Deleted recurring rule %s\n", args[0])
			} else {
				fmt.Fprintf(os.Stdout, "No recurring rule with id %s\n", args[0])
			}
			return nil
		},
	}
}

func recurringListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			rules := eng.RecurringRules()
			if len(rules) == 0 {
				fmt.Fprintln(os.Stdout, "No recurring rules yet.")
				return nil
			}
			for _, r := range rules {
				fmt.Fprintf(os.Stdout, "%-8s %-7s %10s  %-20s next %s  [%s]\n",
					r.Interval, r.Type, r.Amount.StringFixed(2), r.Category, r.NextDate, r.ID)
			}
			return nil
		},
	}
}
