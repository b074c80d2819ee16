package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newPasswordEnv  string
	newPasswordFile string
)

// passwd <name>: re-encrypt a keystore under a new password.
func passwdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd <name>",
		Short: "Change the password of a keystore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			acct, oldPw, err := unlock(cmd.Context(), cmd, name)
			if err != nil {
				return err
			}
			acct.Clear()

			newPw, err := newPassword(cmd, newPasswordEnv, newPasswordFile, "New password")
			if err != nil {
				return err
			}
			rec, err := wire.Wallet.ChangePassword(name, oldPw, newPw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password changed for %s (record %s).\n", rec.Name, rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&newPasswordEnv, "new-password-env", "", "read the new password from this environment variable")
	cmd.Flags().StringVar(&newPasswordFile, "new-password-file", "", "read the new password from the first line of this file")
	cmd.MarkFlagsMutuallyExclusive("new-password-env", "new-password-file")
	return cmd
}
