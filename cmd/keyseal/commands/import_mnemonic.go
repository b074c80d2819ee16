package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// import-mnemonic <name>: restore a keystore from the words on stdin.
func importMnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-mnemonic <name>",
		Short: "Restore a keystore from a 24-word seed backup read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read mnemonic: %w", err)
			}
			pw, err := newPassword(cmd, "", "", "New password")
			if err != nil {
				return err
			}
			rec, err := wire.Wallet.ImportMnemonic(args[0], pw, string(words))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keystore %s restored.\nAddress: %s\n", rec.Name, rec.PublicKey)
			return nil
		},
	}
}
