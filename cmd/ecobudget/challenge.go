package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func challengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "View and work on challenges",
	}
	cmd.AddCommand(challengeListCmd())
	cmd.AddCommand(challengeAcceptCmd())
	cmd.AddCommand(challengeClaimCmd())
	return cmd
}

func challengeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List challenges and their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			states := eng.ChallengeStates()
			for _, def := range eng.Challenges() {
				st := states[def.ID]
				fmt.Fprintf(os.Stdout, "%-4s %-10s %4d XP  %s: %s\n",
					def.ID, st.Status, def.XPReward, def.Title, def.Description)
			}
			return nil
		},
	}
}

func challengeAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id>",
		Short: "Accept an available challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			eng.AcceptChallenge(cmd.Context(), args[0])
			fmt.Fprintf(os.Stdout, "Challenge %s accepted (if it was available)\n", args[0])
			reportNotifications(eng)
			return nil
		},
	}
}

func challengeClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <id>",
		Short: "Manually claim a challenge reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			eng.ClaimChallenge(cmd.Context(), args[0])
			reportNotifications(eng)
			return nil
		},
	}
}
