package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"keyseal/internal/account"
	"keyseal/internal/prompt"
)

// passwordSource returns the configured non-interactive source, or a terminal
// prompt when none is set. The bool reports whether the source is interactive.
func passwordSource(cmd *cobra.Command, label string, confirm bool) (prompt.Source, bool) {
	switch {
	case passwordEnv != "":
		return prompt.Env(passwordEnv), false
	case passwordFile != "":
		return prompt.File(passwordFile), false
	default:
		return &prompt.Terminal{In: os.Stdin, Out: cmd.ErrOrStderr(), Label: label, Confirm: confirm}, true
	}
}

// newPassword asks for the password a record will be sealed under.
func newPassword(cmd *cobra.Command, envName, fileName, label string) (string, error) {
	var src prompt.Source
	switch {
	case envName != "":
		src = prompt.Env(envName)
	case fileName != "":
		src = prompt.File(fileName)
	default:
		src, _ = passwordSource(cmd, label, true)
	}
	return src.Password(cmd.Context())
}

// unlock opens name and decrypts it, re-prompting after a wrong password when
// the password is typed interactively. The caller must Clear the account.
func unlock(ctx context.Context, cmd *cobra.Command, name string) (*account.Account, string, error) {
	src, interactive := passwordSource(cmd, "Password for "+name, false)
	retry := wire.Retry()
	if !interactive {
		retry.Attempts = 1
	}

	var (
		acct *account.Account
		used string
	)
	err := retry.Do(ctx, src, func(pw string) error {
		a, err := wire.Wallet.Open(name, prompt.Static(pw))
		if err != nil {
			return err
		}
		if err := a.Unlock(ctx); err != nil {
			return err
		}
		acct, used = a, pw
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return acct, used, nil
}
