package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/evm-network-profiles/client"
	"github.com/b-harvest/evm-network-profiles/config"
)

func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [network]",
		Short: "Connect to a remote network and verify its chain id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			profile, err := cfg.Network(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			c, err := client.NewClient(ctx, profile)
			if err != nil {
				return fmt.Errorf("new client: %w", err)
			}
			defer c.Stop()

			chainID, err := c.ChainID(ctx)
			if err != nil {
				return err
			}

			if _, err := cfg.Etherscan.Require(); errors.Is(err, config.ErrMissingAPIKey) {
				log.Warn().Msg("ETHERSCAN_API is not set, contract verification will fail")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s chain id %s\n", profile.Name, profile.Endpoint, chainID)
			return nil
		},
	}
	return cmd
}
