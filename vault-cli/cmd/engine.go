package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultlayer/vault-engine/vault-cli/commands/engine"
)

func engineCmd() *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "engine",
		Short: "Conversion engine commands",
	}

	previewCmd := &cobra.Command{
		Use:   "preview <deposit|mint|withdraw|redeem> <amount>",
		Short: "To preview a conversion against an empty vault.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			engine.Preview(args[0], args[1])
		},
	}

	rateCmd := &cobra.Command{
		Use:   "rate",
		Short: "To print the configured bootstrap exchange rate.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			engine.Rate()
		},
	}

	simulateAttackCmd := &cobra.Command{
		Use:   "simulate-attack <attackerDeposit> <donation> <victimDeposit>",
		Short: "To replay the first-depositor inflation sequence.",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			engine.SimulateAttack(args[0], args[1], args[2])
		},
	}

	subCmd.AddCommand(previewCmd)
	subCmd.AddCommand(rateCmd)
	subCmd.AddCommand(simulateAttackCmd)

	return subCmd
}
