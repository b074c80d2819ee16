package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keyseal/internal/domain/types"
)

var secretKeyFlag string

// create <name>: generate a fresh key, or seal an existing one, as a new keystore.
func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a keystore from a new or existing secret key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			sk := secretKeyFlag
			if sk == "-" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read secret key: %w", err)
				}
				sk = strings.TrimSpace(line)
			}

			pw, err := newPassword(cmd, "", "", "New password")
			if err != nil {
				return err
			}

			var rec types.Record
			if sk == "" {
				rec, err = wire.Wallet.Generate(name, pw)
			} else {
				rec, err = wire.Wallet.Create(name, pw, sk)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keystore %s created.\nAddress: %s\n", rec.Name, rec.PublicKey)
			return nil
		},
	}
	cmd.Flags().StringVar(&secretKeyFlag, "secret-key", "", "import this sk_ key instead of generating one (- reads stdin)")
	return cmd
}
