package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrAborted is returned when password entry was cancelled.
	ErrAborted = errors.New("password entry aborted")
	// ErrMismatch is returned when a confirmed password was typed differently twice.
	ErrMismatch = errors.New("passwords do not match")
	// ErrNoPassword is returned by non-interactive sources that have nothing to offer.
	ErrNoPassword = errors.New("no password available")
)

// Source yields a password on demand.
type Source interface {
	Password(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (string, error)

// Password calls f.
func (f SourceFunc) Password(ctx context.Context) (string, error) { return f(ctx) }

// Static always returns password.
func Static(password string) Source {
	return SourceFunc(func(context.Context) (string, error) { return password, nil })
}

// Env reads the password from the environment variable name.
func Env(name string) Source {
	return SourceFunc(func(context.Context) (string, error) {
		pw, ok := os.LookupEnv(name)
		if !ok {
			return "", fmt.Errorf("%w: $%s is not set", ErrNoPassword, name)
		}
		return pw, nil
	})
}

// File reads the password from the first line of path.
func File(path string) Source {
	return SourceFunc(func(context.Context) (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read password file: %w", err)
		}
		line, _, _ := strings.Cut(string(b), "\n")
		return strings.TrimSuffix(line, "\r"), nil
	})
}
