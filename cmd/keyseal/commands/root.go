package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keyseal/internal/app"
)

var (
	home            string
	configPath      string
	passwordEnv     string
	passwordFile    string
	logLevel        string
	metricsTextfile string

	wire *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "keyseal",
		Short:         "Password-encrypted Ed25519 keystore",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, cmd.ErrOrStderr())
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "keystore dir (default ~/.keyseal)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&passwordEnv, "password-env", "", "read the password from this environment variable")
	root.PersistentFlags().StringVar(&passwordFile, "password-file", "", "read the password from the first line of this file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")
	root.MarkFlagsMutuallyExclusive("password-env", "password-file")

	root.AddCommand(
		createCmd(),
		importMnemonicCmd(),
		addressCmd(),
		exportCmd(),
		signCmd(),
		passwdCmd(),
		inspectCmd(),
		listCmd(),
		removeCmd(),
	)

	return root
}

// loadConfig builds the effective config: defaults, then the YAML file, then flags.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	dir := home
	if dir == "" {
		var err error
		if dir, err = app.DefaultHome(); err != nil {
			return app.Config{}, err
		}
	}

	path, required := configPath, true
	if path == "" {
		path, required = filepath.Join(dir, app.ConfigFileName), false
	}
	cfg, err := app.LoadConfig(path, app.DefaultConfig(dir), required)
	if err != nil {
		return app.Config{}, err
	}

	if cmd.Flags().Changed("home") || cfg.Home == "" {
		cfg.Home = dir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if metricsTextfile != "" {
		cfg.Metrics.Textfile = metricsTextfile
	}
	if err := cfg.Validate(); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}
