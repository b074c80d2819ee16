package app

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"keyseal/internal/keystore"
	"keyseal/internal/logging"
	"keyseal/internal/metrics"
	"keyseal/internal/prompt"
	"keyseal/internal/services/wallet"
	"keyseal/internal/store"
)

// Wire bundles the store, codec and services for the CLI.
type Wire struct {
	Config  Config
	Log     *slog.Logger
	Metrics *metrics.Prometheus
	Store   *store.KeystoreFileStore
	Codec   *keystore.Codec
	Wallet  *wallet.Service
}

// NewWire constructs the dependency graph from cfg. Log output goes to logOut,
// or stderr when nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: logOut})
	if err != nil {
		return nil, err
	}

	m := metrics.NewPrometheus()
	codec := keystore.New(
		keystore.WithKDFParams(cfg.KDFParams()),
		keystore.WithLogger(log),
		keystore.WithMetrics(m),
	)
	fs := store.NewKeystoreFileStore(cfg.Home)

	return &Wire{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Store:   fs,
		Codec:   codec,
		Wallet:  wallet.New(fs, codec, log),
	}, nil
}

// Retry returns the password retry policy for interactive unlocks. Only a
// wrong password is worth asking again for.
func (w *Wire) Retry() prompt.Retry {
	return prompt.Retry{
		Attempts: w.Config.Prompt.Attempts,
		Interval: w.Config.Prompt.Interval,
		Retryable: func(err error) bool {
			return errors.Is(err, keystore.ErrInvalidPassword)
		},
	}
}

// Close flushes the metrics textfile if one is configured.
func (w *Wire) Close() error {
	if w.Config.Metrics.Textfile == "" {
		return nil
	}
	if err := w.Metrics.WriteTextfile(w.Config.Metrics.Textfile); err != nil {
		w.Log.Warn("write metrics textfile", "path", w.Config.Metrics.Textfile, "err", err)
		return err
	}
	return nil
}
