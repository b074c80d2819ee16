package crypto

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	KeyBytes  = 32
	SaltBytes = 16

	// DefaultMemoryKiB is the Argon2id memory cost applied to new records.
	DefaultMemoryKiB uint32 = 64 * 1024
	// DefaultTimeCost is the Argon2id pass count applied to new records.
	DefaultTimeCost uint32 = 3
	// DefaultParallelism is the Argon2id lane count applied to new records.
	DefaultParallelism uint8 = 4

	// MaxMemoryKiB caps the Argon2id memory cost (4 GiB) accepted from any
	// record, so a crafted file cannot exhaust memory.
	MaxMemoryKiB uint32 = 4 * 1024 * 1024
	// MaxTimeCost caps the Argon2id pass count accepted from any record.
	MaxTimeCost uint32 = 64
)

var (
	// ErrInvalidKDFParams is returned for cost parameters Argon2id cannot run with.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")
	// ErrInvalidSalt is returned when the salt is not SaltBytes long.
	ErrInvalidSalt = errors.New("invalid salt size")
)

// KDFParams are the Argon2id cost parameters stored alongside every record.
type KDFParams struct {
	MemoryKiB   uint32
	TimeCost    uint32
	Parallelism uint8
}

// DefaultKDFParams returns the cost parameters used when the caller sets none.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		MemoryKiB:   DefaultMemoryKiB,
		TimeCost:    DefaultTimeCost,
		Parallelism: DefaultParallelism,
	}
}

// Validate reports whether p is usable as-is. Values are never clamped.
func (p KDFParams) Validate() error {
	switch {
	case p.TimeCost == 0:
		return fmt.Errorf("%w: opslimit must be positive", ErrInvalidKDFParams)
	case p.TimeCost > MaxTimeCost:
		return fmt.Errorf("%w: opslimit %d above maximum %d", ErrInvalidKDFParams, p.TimeCost, MaxTimeCost)
	case p.MemoryKiB > MaxMemoryKiB:
		return fmt.Errorf("%w: memlimit_kib %d above maximum %d", ErrInvalidKDFParams, p.MemoryKiB, MaxMemoryKiB)
	case p.Parallelism == 0:
		return fmt.Errorf("%w: parallelism must be positive", ErrInvalidKDFParams)
	case p.MemoryKiB < 8*uint32(p.Parallelism):
		// Argon2 needs at least 8 KiB per lane.
		return fmt.Errorf("%w: memlimit_kib %d below minimum %d",
			ErrInvalidKDFParams, p.MemoryKiB, 8*uint32(p.Parallelism))
	}
	return nil
}

// DeriveKey stretches password and salt into a 32-byte key using Argon2id.
//
// The call is deliberately expensive and blocks for as long as p demands.
func DeriveKey(password, salt []byte, p KDFParams) (*[KeyBytes]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(salt) != SaltBytes {
		return nil, ErrInvalidSalt
	}
	raw := argon2.IDKey(password, salt, p.TimeCost, p.MemoryKiB, p.Parallelism, KeyBytes)
	defer Wipe(raw)

	var key [KeyBytes]byte
	copy(key[:], raw)
	return &key, nil
}

// RandomSalt reads a fresh salt from r.
func RandomSalt(r io.Reader) ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	return salt, nil
}
