package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) providersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the available packaging providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := c.environment()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), providerTable(reg.Providers(), cfg.Packaging))
			return nil
		},
	}
}
