package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func capsuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capsule",
		Short: "Manage category spending capsules",
	}
	cmd.AddCommand(capsuleAddCmd())
	cmd.AddCommand(capsuleEditCmd())
	cmd.AddCommand(capsuleDeleteCmd())
	cmd.AddCommand(capsuleListCmd())
	return cmd
}

func capsuleFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "capsule name (matched against expense categories)")
	cmd.Flags().String("total", "", "budget limit (positive decimal)")
	cmd.Flags().String("icon", "", "icon name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("total")
}

func capsuleAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a spending capsule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			total, err := decimal.NewFromString(mustString(cmd, "total"))
			if err != nil {
				return fmt.Errorf("invalid total: %w", err)
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			capsule, err := eng.AddCapsule(cmd.Context(), mustString(cmd, "name"), total, mustString(cmd, "icon"))
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Added capsule %q with limit %s [%s]\n",
				capsule.Name, capsule.Total.StringFixed(2), capsule.ID)
			return nil
		},
	}
	capsuleFlags(cmd)
	return cmd
}

func capsuleEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a capsule's name, limit, or icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := decimal.NewFromString(mustString(cmd, "total"))
			if err != nil {
				return fmt.Errorf("invalid total: %w", err)
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.EditCapsule(cmd.Context(), args[0], mustString(cmd, "name"), total, mustString(cmd, "icon")); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Edited capsule %s\n", args[0])
			return nil
		},
	}
	capsuleFlags(cmd)
	return cmd
}

func capsuleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a capsule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if eng.DeleteCapsule(cmd.Context(), args[0]) {
				fmt.Fprintf(os.Stdout, "Deleted capsule %s\n", args[0])
			} else {
				fmt.Fprintf(os.Stdout, "No capsule with id %s\n", args[0])
			}
			return nil
		},
	}
}

func capsuleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List capsules with their budget usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			capsules := eng.Capsules()
			if len(capsules) == 0 {
				fmt.Fprintln(os.Stdout, "No capsules yet.")
				return nil
			}
			for _, c := range capsules {
				fmt.Fprintf(os.Stdout, "%-20s %10s / %-10s  [%s]\n",
					c.Name, c.Spent.StringFixed(2), c.Total.StringFixed(2), c.ID)
			}
			return nil
		},
	}
}
