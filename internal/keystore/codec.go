package keystore

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"keyseal/internal/crypto"
	"keyseal/internal/domain"
	"keyseal/internal/domain/types"
	"keyseal/internal/logging"
	"keyseal/internal/metrics"
)

// Codec dumps and recovers keystore records. A Codec holds only configuration,
// so one value may be shared and used concurrently.
type Codec struct {
	params  crypto.KDFParams
	rand    io.Reader
	log     *slog.Logger
	metrics metrics.Recorder
}

// Option configures a Codec.
type Option func(*Codec)

// WithKDFParams overrides the Argon2id costs written into new records.
func WithKDFParams(p crypto.KDFParams) Option { return func(c *Codec) { c.params = p } }

// WithRandom replaces crypto/rand.Reader as the source of salts, nonces and ids.
func WithRandom(r io.Reader) Option { return func(c *Codec) { c.rand = r } }

// WithLogger sets the logger; records are described at debug level only.
func WithLogger(l *slog.Logger) Option { return func(c *Codec) { c.log = l } }

// WithMetrics sets the recorder notified of every Dump, Recover and derivation.
func WithMetrics(m metrics.Recorder) Option { return func(c *Codec) { c.metrics = m } }

// New returns a Codec using the default KDF costs unless overridden.
func New(opts ...Option) *Codec {
	c := &Codec{
		params:  crypto.DefaultKDFParams(),
		rand:    rand.Reader,
		log:     logging.Discard(),
		metrics: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KDFParams returns the costs applied to new records.
func (c *Codec) KDFParams() crypto.KDFParams { return c.params }

// Dump encrypts secretKey under password and returns a new version 1 record.
func (c *Codec) Dump(name, password, secretKey string) (rec types.Record, err error) {
	defer func() { c.metrics.ObserveDump(resultLabel(err)) }()

	if err := c.params.Validate(); err != nil {
		return types.Record{}, err
	}
	sk, err := types.ParseSecretKey(secretKey)
	if err != nil {
		return types.Record{}, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}
	defer sk.Wipe()

	return c.seal(name, password, sk)
}

func (c *Codec) seal(name, password string, sk types.SecretKey) (types.Record, error) {
	salt, err := crypto.RandomSalt(c.rand)
	if err != nil {
		return types.Record{}, err
	}
	nonce, err := crypto.RandomNonce(c.rand)
	if err != nil {
		return types.Record{}, err
	}
	id, err := uuid.NewRandomFromReader(c.rand)
	if err != nil {
		return types.Record{}, fmt.Errorf("generate record id: %w", err)
	}

	key, err := c.deriveKey(password, salt, c.params)
	if err != nil {
		return types.Record{}, err
	}
	defer crypto.Wipe(key[:])

	rec := types.Record{
		Name:      name,
		Version:   types.RecordVersion,
		PublicKey: sk.PublicKey().Address(),
		ID:        id.String(),
		Crypto: types.RecordCrypto{
			SecretType:   types.SecretTypeEd25519,
			SymmetricAlg: types.SymmetricAlgXSalsa20Poly1305,
			KDF:          types.KDFArgon2id,
			KDFParams: types.KDFParams{
				MemLimitKiB: c.params.MemoryKiB,
				OpsLimit:    c.params.TimeCost,
				Parallelism: c.params.Parallelism,
				Salt:        salt,
			},
			Ciphertext:   crypto.Seal(key, nonce, sk.Slice()),
			CipherParams: types.CipherParams{Nonce: nonce[:]},
		},
	}
	c.log.Debug("keystore record created",
		"id", rec.ID,
		"name", rec.Name,
		"address", rec.PublicKey,
		"memlimit_kib", c.params.MemoryKiB,
		"opslimit", c.params.TimeCost,
		"parallelism", c.params.Parallelism,
	)
	return rec, nil
}

// Recover opens rec with password and returns the sk_ encoded secret key.
func (c *Codec) Recover(password string, rec types.Record) (secretKey string, err error) {
	defer func() { c.metrics.ObserveRecover(resultLabel(err)) }()

	sk, err := c.open(password, rec)
	if err != nil {
		c.log.Debug("keystore unlock failed", "id", rec.ID, "name", rec.Name, "err", err)
		return "", err
	}
	defer sk.Wipe()
	return sk.Encode(), nil
}

func (c *Codec) open(password string, rec types.Record) (types.SecretKey, error) {
	var sk types.SecretKey
	if err := checkVersion(rec); err != nil {
		return sk, err
	}
	if err := checkAlgorithms(rec); err != nil {
		return sk, err
	}
	if err := checkShape(rec); err != nil {
		return sk, err
	}

	key, err := c.deriveKey(password, rec.Crypto.KDFParams.Salt, kdfParams(rec))
	if err != nil {
		return sk, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	defer crypto.Wipe(key[:])

	var nonce [crypto.NonceBytes]byte
	copy(nonce[:], rec.Crypto.CipherParams.Nonce)

	plaintext, err := crypto.Open(key, &nonce, rec.Crypto.Ciphertext)
	if errors.Is(err, crypto.ErrAuthFailed) {
		return sk, ErrInvalidPassword
	}
	if err != nil {
		return sk, err
	}
	defer crypto.Wipe(plaintext)
	copy(sk[:], plaintext)

	if sk.PublicKey().Address() != rec.PublicKey {
		sk.Wipe()
		return sk, ErrPublicKeyMismatch
	}
	c.log.Debug("keystore unlocked", "id", rec.ID, "name", rec.Name)
	return sk, nil
}

// ChangePassword re-encrypts the key in rec under newPassword. The result is a
// brand-new record with a fresh salt, nonce and id; rec itself is untouched.
func (c *Codec) ChangePassword(oldPassword, newPassword string, rec types.Record) (types.Record, error) {
	if err := c.params.Validate(); err != nil {
		return types.Record{}, err
	}
	sk, err := c.open(oldPassword, rec)
	c.metrics.ObserveRecover(resultLabel(err))
	if err != nil {
		return types.Record{}, err
	}
	defer sk.Wipe()

	out, err := c.seal(rec.Name, newPassword, sk)
	c.metrics.ObserveDump(resultLabel(err))
	return out, err
}

func (c *Codec) deriveKey(password string, salt []byte, p crypto.KDFParams) (*[crypto.KeyBytes]byte, error) {
	pw := []byte(password)
	defer crypto.Wipe(pw)

	start := time.Now()
	key, err := crypto.DeriveKey(pw, salt, p)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	c.metrics.ObserveKDF(elapsed)
	c.log.Debug("argon2id key derived", "duration", elapsed)
	return key, nil
}

var defaultCodec = New()

// Dump encrypts secretKey with the default codec.
func Dump(name, password, secretKey string) (types.Record, error) {
	return defaultCodec.Dump(name, password, secretKey)
}

// Recover opens rec with the default codec.
func Recover(password string, rec types.Record) (string, error) {
	return defaultCodec.Recover(password, rec)
}

// Compile-time assertion that Codec implements domain.RecordCodec.
var _ domain.RecordCodec = (*Codec)(nil)
