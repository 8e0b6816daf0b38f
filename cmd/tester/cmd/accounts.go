package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b-harvest/evm-network-profiles/config"
)

func AccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the test accounts of the simulated network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			profile, err := cfg.Network(config.NetworkSimulated)
			if err != nil {
				return err
			}

			for i, acc := range profile.Accounts {
				addr, err := acc.Address()
				if err != nil {
					return fmt.Errorf("account %d: %w", i, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "val%d %s %s\n", i, addr.Hex(), acc.Balance)
			}
			return nil
		},
	}
	return cmd
}
