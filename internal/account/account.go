// Package account gives read access to one keystore record, decrypting it at
// most once per process.
//
// The address is served straight from the record, so commands that only
// display identity never pay the key-derivation cost or prompt for a
// password. The first call that needs the secret key asks the password
// source, runs Recover once, and keeps the seed in a locked, guarded memory
// buffer until Clear is called.
package account

import (
	"context"
	"sync"

	"github.com/awnumar/memguard"

	"keyseal/internal/crypto"
	"keyseal/internal/domain"
	"keyseal/internal/domain/types"
	"keyseal/internal/prompt"
)

// Account wraps a loaded record and the means to unlock it.
type Account struct {
	record   types.Record
	codec    domain.Recoverer
	password prompt.Source

	mu   sync.Mutex
	seed *memguard.LockedBuffer
}

// New returns an Account for rec. Nothing is decrypted until needed.
func New(rec types.Record, codec domain.Recoverer, password prompt.Source) *Account {
	return &Account{record: rec, codec: codec, password: password}
}

// Name returns the record's display label.
func (a *Account) Name() string { return a.record.Name }

// Address returns the record's public identifier without decrypting anything.
func (a *Account) Address() string { return a.record.PublicKey }

// Record returns the wrapped record.
func (a *Account) Record() types.Record { return a.record }

// Unlocked reports whether the secret key is currently cached.
func (a *Account) Unlocked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seed != nil && a.seed.IsAlive()
}

// Unlock decrypts and caches the secret key if it is not cached yet.
func (a *Account) Unlock(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.unlockLocked(ctx)
}

// SecretKey returns the sk_ encoded secret key.
//
// The returned string cannot be wiped; prefer Sign where possible.
func (a *Account) SecretKey(ctx context.Context) (string, error) {
	var out string
	err := a.withSeed(ctx, func(seed types.SecretKey) {
		out = seed.Encode()
	})
	return out, err
}

// Sign returns the Ed25519 signature of data.
func (a *Account) Sign(ctx context.Context, data []byte) ([]byte, error) {
	var sig []byte
	err := a.withSeed(ctx, func(seed types.SecretKey) {
		sig = crypto.SignEd25519(seed, data)
	})
	return sig, err
}

// Clear destroys the cached secret key. A later SecretKey or Sign unlocks again.
func (a *Account) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seed != nil {
		a.seed.Destroy()
		a.seed = nil
	}
}

func (a *Account) withSeed(ctx context.Context, fn func(seed types.SecretKey)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.unlockLocked(ctx); err != nil {
		return err
	}

	var seed types.SecretKey
	copy(seed[:], a.seed.Bytes())
	defer seed.Wipe()
	fn(seed)
	return nil
}

func (a *Account) unlockLocked(ctx context.Context) error {
	if a.seed != nil && a.seed.IsAlive() {
		return nil
	}
	pw, err := a.password.Password(ctx)
	if err != nil {
		return err
	}
	encoded, err := a.codec.Recover(pw, a.record)
	if err != nil {
		return err
	}
	sk, err := types.ParseSecretKey(encoded)
	if err != nil {
		return err
	}
	// NewBufferFromBytes wipes sk as it copies it into guarded memory.
	a.seed = memguard.NewBufferFromBytes(sk.Slice())
	a.seed.Freeze()
	return nil
}
