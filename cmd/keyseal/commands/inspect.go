package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keyseal/internal/domain/types"
	"keyseal/internal/keystore"
	"keyseal/internal/store"
)

// inspect <name|path>: print a record as stored. Paths ending in .json are
// read directly instead of from the keystore dir.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name|file.json>",
		Short: "Print a keystore record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rec types.Record
				err error
			)
			if strings.HasSuffix(args[0], ".json") {
				rec, err = store.LoadFile(args[0])
			} else {
				rec, err = wire.Wallet.Inspect(args[0])
			}
			if err != nil {
				return err
			}
			b, err := keystore.Marshal(rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
