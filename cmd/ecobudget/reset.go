package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all budget data",
		Long: `Reset clears every persisted slice (transactions, capsules, savings
goals, recurring rules, challenge progress, XP and preferences) back to
their defaults. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				fmt.Fprintf(os.Stdout, "This will erase all budget data. Are you sure? [y/N]: ")
				var response string
				if _, err := fmt.Scanln(&response); err != nil || (response != "y" && response != "Y") {
					fmt.Fprintln(os.Stdout, "Reset canceled.")
					return nil
				}
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			eng.Reset(cmd.Context())
			fmt.Fprintln(os.Stdout, "All budget data reset.")
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	return cmd
}
