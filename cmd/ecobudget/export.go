package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the transaction ledger as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if len(eng.Transactions()) == 0 {
				fmt.Fprintln(os.Stderr, "No transactions to export.")
				return nil
			}

			out := os.Stdout
			if path := mustString(cmd, "output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						fmt.Fprintf(os.Stderr, "failed to close export file: %v\n", err)
					}
				}()
				out = f
			}

			return eng.ExportCSV(out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "write CSV to a file instead of stdout")
	return cmd
}
