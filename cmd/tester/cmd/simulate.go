package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/evm-network-profiles/config"
	"github.com/b-harvest/evm-network-profiles/simchain"
)

func SimulateCmd() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulated network and produce blocks on its mining interval",
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

			backend, err := simchain.New(profile, log.Logger)
			if err != nil {
				return err
			}
			defer backend.Close() // nolint: errcheck

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			log.Info().Msgf("chain id %s, %d funded accounts", backend.ChainID(), len(profile.Accounts))
			return backend.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	return cmd
}
