package app

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command, which prints the effective configuration.
func NewConfigCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Args:  cobra.NoArgs,
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.load(cmd.Name())
			if err != nil {
				return err
			}

			out, err := cfg.YAML()
			if err != nil {
				return err
			}

			_, err = root.streams.Out.Write(out)

			return err
		},
	}
}
