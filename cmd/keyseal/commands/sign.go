package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var signHex bool

// sign <name> <message>: print the hex Ed25519 signature of message.
func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <name> <message>",
		Short: "Sign a message with a keystore's key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := []byte(args[1])
			if signHex {
				var err error
				if msg, err = hex.DecodeString(args[1]); err != nil {
					return fmt.Errorf("decode message: %w", err)
				}
			}

			acct, _, err := unlock(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			defer acct.Clear()

			sig, err := acct.Sign(cmd.Context(), msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
			return nil
		},
	}
	cmd.Flags().BoolVar(&signHex, "hex", false, "message is hex encoded")
	return cmd
}
