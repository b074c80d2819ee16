package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List keystores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := wire.Wallet.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names {
				addr, err := wire.Wallet.Address(name.String())
				if err != nil {
					wire.Log.Warn("skip unreadable keystore", "name", name, "err", err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, addr)
			}
			return tw.Flush()
		},
	}
}
