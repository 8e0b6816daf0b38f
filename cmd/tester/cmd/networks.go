package cmd

import (
	"github.com/spf13/cobra"

	"github.com/b-harvest/evm-network-profiles/codec"
)

func NetworksCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "Print the resolved configuration for the deployment toolchain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			bz, err := codec.Marshal(cfg, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", codec.FormatYAML, "output format (yaml|json)")
	return cmd
}
