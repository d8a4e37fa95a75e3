package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalUpdateCmd())
	cmd.AddCommand(goalEditCmd())
	cmd.AddCommand(goalDeleteCmd())
	cmd.AddCommand(goalListCmd())
	return cmd
}

func goalAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := decimal.NewFromString(mustString(cmd, "target"))
			if err != nil {
				return fmt.Errorf("invalid target: %w", err)
			}
			current := decimal.Zero
			if s := mustString(cmd, "current"); s != "" {
				if current, err = decimal.NewFromString(s); err != nil {
					return fmt.Errorf("invalid current amount: %w", err)
				}
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.AddSavingsGoal(cmd.Context(), args[0], target, current); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Added savings goal %q with target %s\n", args[0], target.StringFixed(2))
			reportNotifications(eng)
			return nil
		},
	}
	cmd.Flags().String("target", "", "target amount (positive decimal)")
	cmd.Flags().String("current", "", "starting amount (default 0)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func goalUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <name> <delta>",
		Short: "Adjust a goal's saved amount directly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta: %w", err)
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			eng.UpdateSavingsGoal(cmd.Context(), args[0], delta)
			fmt.Fprintf(os.Stdout, "Updated savings goal %q by %s\n", args[0], delta.StringFixed(2))
			reportNotifications(eng)
			return nil
		},
	}
}

func goalEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Rename or retarget a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := decimal.NewFromString(mustString(cmd, "target"))
			if err != nil {
				return fmt.Errorf("invalid target: %w", err)
			}
			current, err := decimal.NewFromString(mustString(cmd, "current"))
			if err != nil {
				return fmt.Errorf("invalid current amount: %w", err)
			}
			newName := mustString(cmd, "name")
			if newName == "" {
				newName = args[0]
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.EditSavingsGoal(cmd.Context(), args[0], newName, target, current); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Edited savings goal %q\n", args[0])
			return nil
		},
	}
	cmd.Flags().String("name", "", "new goal name (default: unchanged)")
	cmd.Flags().String("target", "", "target amount")
	cmd.Flags().String("current", "", "saved amount")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("current")
	return cmd
}

func goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			eng.DeleteSavingsGoal(cmd.Context(), args[0])
			fmt.Fprintf(os.Stdout, "Deleted savings goal %q\n", args[0])
			return nil
		},
	}
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			stats := eng.Stats()
			if len(stats.SavingsGoals) == 0 {
				fmt.Fprintln(os.Stdout, "No savings goals yet.")
				return nil
			}
			for _, g := range stats.SavingsGoals {
				fmt.Fprintf(os.Stdout, "%-20s %10s / %-10s\n",
					g.Name, g.Current.StringFixed(2), g.Target.StringFixed(2))
			}
			fmt.Fprintf(os.Stdout, "Total savings: %s\n", stats.TotalSavings.StringFixed(2))
			return nil
		},
	}
}
