package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/DVDHSN/EcoBudget/internal/model"
	"github.com/DVDHSN/EcoBudget/internal/ofx"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import an OFX/QFX bank statement into the ledger",
		Long: `Import parses an OFX or QFX statement and feeds each line through the
normal transaction path: debits become expenses, credits become income,
and capsules, streaks and challenges all react as if entered by hand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer func() { _ = f.Close() }()

			entries, err := ofx.NewParser().ParseFile(cmd.Context(), f)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(os.Stdout, "Statement contains no transactions.")
				return nil
			}

			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			bar := progressbar.Default(int64(len(entries)), "importing")
			imported := 0
			for _, entry := range entries {
				_, err := eng.AddTransaction(cmd.Context(), model.Transaction{
					Type:     entry.Type,
					Amount:   entry.Amount,
					Category: entry.Category,
					Date:     entry.Date,
					Note:     entry.Note,
				})
				if err != nil {
					fmt.Fprintf(os.Stderr, "skipping entry (%s %s): %v\n", entry.Category, entry.Amount, err)
				} else {
					imported++
				}
				_ = bar.Add(1)
			}

			fmt.Fprintf(os.Stdout, "\nImported %d of %d statement entries.\n", imported, len(entries))
			reportNotifications(eng)
			return nil
		},
	}
}
