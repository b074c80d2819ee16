package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeYes bool

func removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a keystore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			addr, err := wire.Wallet.Address(name)
			if err != nil {
				return err
			}
			if !removeYes {
				return fmt.Errorf("refusing to delete %s (%s) without --yes", name, addr)
			}
			if err := wire.Wallet.Remove(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s).\n", name, addr)
			return nil
		},
	}
	cmd.Flags().BoolVar(&removeYes, "yes", false, "confirm deletion")
	return cmd
}
