package cmd

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/evm-network-profiles/client"
	"github.com/b-harvest/evm-network-profiles/simchain"
	"github.com/b-harvest/evm-network-profiles/tx"
)

func DeployCmd() *cobra.Command {
	var (
		account  int
		count    int
		gasLimit uint64
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "deploy [network] [bytecode]",
		Short: "Deploy contract bytecode with the network test accounts",
		Args:  cobra.ExactArgs(2),
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

			bytecode, err := hexutil.Decode(args[1])
			if err != nil {
				return fmt.Errorf("failed to decode bytecode hex: %w", err)
			}

			dispenser, err := NewAccountDispenser(profile, account)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			var (
				backend tx.Backend
				chainID *big.Int
				commit  func()
			)
			if profile.Endpoint.Embedded() {
				sim, err := simchain.New(profile, log.Logger)
				if err != nil {
					return err
				}
				defer sim.Close() // nolint: errcheck

				backend, chainID = sim.Client(), sim.ChainID()
				commit = func() { sim.Commit() }
			} else {
				c, err := client.NewClient(ctx, profile)
				if err != nil {
					return fmt.Errorf("new client: %w", err)
				}
				defer c.Stop()

				chainID, err = c.ChainID(ctx)
				if err != nil {
					return err
				}
				backend, commit = c.GetETHClient(), func() {}
			}

			t := tx.NewTransaction(backend, chainID, gasLimit)
			for i := 0; i < count; i++ {
				key, err := dispenser.Next()
				if err != nil {
					return err
				}

				signedTx, addr, err := t.Deploy(ctx, key, bytecode)
				if err != nil {
					return err
				}
				commit()

				receipt, err := t.WaitReceipt(ctx, signedTx.Hash())
				if err != nil {
					return fmt.Errorf("wait for %s: %w", signedTx.Hash(), err)
				}

				log.Info().Msgf("deployment:%d; tx:%s; status:%d; block:%s", i+1, signedTx.Hash().Hex(), receipt.Status, receipt.BlockNumber)
				fmt.Fprintln(cmd.OutOrStdout(), addr.Hex())
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&account, "account", 0, "position of the first test account to deploy with")
	cmd.Flags().IntVar(&count, "count", 1, "number of deployments, rotating through the test accounts")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 3_000_000, "gas limit of each deployment")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	return cmd
}
