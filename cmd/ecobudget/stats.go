package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the derived budget aggregate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			stats := eng.Stats()
			fmt.Fprintf(os.Stdout, "Balance:          %s %s\n", stats.CurrentBalance.StringFixed(2), eng.Currency())
			fmt.Fprintf(os.Stdout, "Monthly expenses: %s\n", stats.MonthlyExpenses.StringFixed(2))
			fmt.Fprintf(os.Stdout, "Total savings:    %s\n", stats.TotalSavings.StringFixed(2))
			fmt.Fprintf(os.Stdout, "Streak:           %d day(s)\n", stats.StreakDays)
			fmt.Fprintf(os.Stdout, "Level:            %d (%s), %d XP, next level at %d XP\n",
				stats.Level, stats.LevelTitle, stats.XP, eng.NextLevelXP())
			return nil
		},
	}
}

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or set the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				fmt.Fprintln(os.Stdout, eng.Currency())
				return nil
			}
			if err := eng.SetCurrency(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Currency set to %s\n", eng.Currency())
			return nil
		},
	}
}
