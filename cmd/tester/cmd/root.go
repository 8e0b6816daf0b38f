package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/evm-network-profiles/config"
)

var (
	logLevel     string
	envFile      string
	settingsFile string
)

// RootCmd returns the tester command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tester",
		Short: "Resolve and exercise the EVM test network profiles",
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", zerolog.InfoLevel.String(), "logging level")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultDotenvPath, "dotenv file read before the environment")
	cmd.PersistentFlags().StringVar(&settingsFile, "config", config.DefaultConfigPath, "settings file")
	cmd.PersistentFlags().AddFlagSet(config.EnvFlagSet())

	cmd.AddCommand(
		NetworksCmd(),
		AccountsCmd(),
		CheckCmd(),
		DeployCmd(),
		SimulateCmd(),
	)

	return cmd
}

// SetLogger sets the global zerolog logger to a console writer at the given level.
func SetLogger(logLevel string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := SetLogger(logLevel); err != nil {
		return nil, err
	}

	env, err := config.LoadEnv(envFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	settings, err := config.Read(settingsFile)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := config.Build(env, settings)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("resolved networks %v", cfg.NetworkNames())
	return cfg, nil
}
