package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyseal/internal/mnemonic"
)

var exportMnemonic bool

// export <name>: decrypt and print the secret key.
func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Print the secret key of a keystore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, _, err := unlock(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			defer acct.Clear()

			sk, err := acct.SecretKey(cmd.Context())
			if err != nil {
				return err
			}
			out := sk
			if exportMnemonic {
				if out, err = mnemonic.FromSecretKey(sk); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&exportMnemonic, "mnemonic", false, "print the 24-word seed backup instead")
	return cmd
}
