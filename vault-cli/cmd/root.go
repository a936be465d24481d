package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultlayer/vault-engine/vault-cli/conf"
)

func Cmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vault-engine",
		Short: "Inspect and simulate the vault conversion engine.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf.InitConfig()
		},
	}

	engine := engineCmd()
	rootCmd.AddCommand(engine)

	rootCmd.Version = conf.GetVersion()

	return rootCmd
}
