package wallet

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"keyseal/internal/account"
	"keyseal/internal/crypto"
	"keyseal/internal/domain"
	"keyseal/internal/domain/types"
	"keyseal/internal/logging"
	"keyseal/internal/mnemonic"
	"keyseal/internal/prompt"
	"keyseal/internal/store"
)

// MinPasswordLength is the shortest password accepted for new records.
const MinPasswordLength = 1

// ErrEmptyPassword is returned when a new record would be sealed under a
// password shorter than MinPasswordLength.
var ErrEmptyPassword = errors.New("password must not be empty")

// Service manages keystore records using a backing store and codec.
type Service struct {
	store domain.RecordStore
	codec domain.RecordCodec
	log   *slog.Logger
	rand  io.Reader
}

// New returns a wallet service. A nil logger discards output.
func New(s domain.RecordStore, codec domain.RecordCodec, log *slog.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: s, codec: codec, log: log, rand: rand.Reader}
}

// WithRandom returns a copy of s drawing fresh keys from r.
func (s *Service) WithRandom(r io.Reader) *Service {
	out := *s
	out.rand = r
	return &out
}

// Create seals secretKey under password and saves it as name.
func (s *Service) Create(name, password, secretKey string) (types.Record, error) {
	if err := s.checkNew(name, password); err != nil {
		return types.Record{}, err
	}
	rec, err := s.codec.Dump(name, password, secretKey)
	if err != nil {
		return types.Record{}, err
	}
	if err := s.store.SaveRecord(rec); err != nil {
		return types.Record{}, fmt.Errorf("save %s: %w", name, err)
	}
	s.log.Info("keystore created", "name", name, "address", rec.PublicKey, "id", rec.ID)
	return rec, nil
}

// Generate creates name from a freshly generated key.
func (s *Service) Generate(name, password string) (types.Record, error) {
	if err := s.checkNew(name, password); err != nil {
		return types.Record{}, err
	}
	seed, err := crypto.GenerateSeed(s.rand)
	if err != nil {
		return types.Record{}, err
	}
	sk := types.SecretKey(seed)
	crypto.Wipe(seed[:])
	defer sk.Wipe()
	return s.Create(name, password, sk.Encode())
}

// ImportMnemonic creates name from a 24-word seed backup.
func (s *Service) ImportMnemonic(name, password, words string) (types.Record, error) {
	sk, err := mnemonic.ToSecretKey(words)
	if err != nil {
		return types.Record{}, err
	}
	return s.Create(name, password, sk)
}

// Open loads name and returns an account that prompts src when the secret key
// is first needed.
func (s *Service) Open(name string, src prompt.Source) (*account.Account, error) {
	rec, err := s.Inspect(name)
	if err != nil {
		return nil, err
	}
	return account.New(rec, s.codec, src), nil
}

// Address returns the public address of name without decrypting it.
func (s *Service) Address(name string) (string, error) {
	rec, err := s.Inspect(name)
	if err != nil {
		return "", err
	}
	return rec.PublicKey, nil
}

// ChangePassword re-encrypts name under newPassword.
func (s *Service) ChangePassword(name, oldPassword, newPassword string) (types.Record, error) {
	if len(newPassword) < MinPasswordLength {
		return types.Record{}, ErrEmptyPassword
	}
	rec, err := s.Inspect(name)
	if err != nil {
		return types.Record{}, err
	}
	next, err := s.codec.ChangePassword(oldPassword, newPassword, rec)
	if err != nil {
		return types.Record{}, err
	}
	if err := s.store.ReplaceRecord(next); err != nil {
		return types.Record{}, fmt.Errorf("replace %s: %w", name, err)
	}
	s.log.Info("keystore password changed", "name", name, "old_id", rec.ID, "id", next.ID)
	return next, nil
}

// Inspect returns the stored record for name.
func (s *Service) Inspect(name string) (types.Record, error) {
	rec, err := s.store.LoadRecord(domain.WalletName(name))
	if err != nil {
		return types.Record{}, fmt.Errorf("load %s: %w", name, err)
	}
	return rec, nil
}

// List returns all stored wallet names.
func (s *Service) List() ([]domain.WalletName, error) {
	return s.store.ListRecords()
}

// Remove deletes name from the store.
func (s *Service) Remove(name string) error {
	if err := s.store.DeleteRecord(domain.WalletName(name)); err != nil {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	s.log.Info("keystore removed", "name", name)
	return nil
}

func (s *Service) checkNew(name, password string) error {
	if err := store.ValidateName(domain.WalletName(name)); err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return ErrEmptyPassword
	}
	_, err := s.store.LoadRecord(domain.WalletName(name))
	switch {
	case err == nil:
		return fmt.Errorf("%s: %w", name, store.ErrExists)
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return err
	}
}
