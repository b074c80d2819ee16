package types

import (
	"errors"
	"fmt"

	"keyseal/internal/crypto"
)

const (
	// SecretKeyPrefix tags the text form of a SecretKey.
	SecretKeyPrefix = "sk"
	// AddressPrefix tags the text form of a PublicKey.
	AddressPrefix = "ak"
)

// ErrInvalidKeyEncoding is returned for text that is not a well-formed key.
var ErrInvalidKeyEncoding = errors.New("invalid key encoding")

// SecretKey is a raw Ed25519 seed.
type SecretKey [crypto.SeedBytes]byte

// Slice returns the key as a []byte sharing the array's memory.
func (k *SecretKey) Slice() []byte { return k[:] }

// Encode returns the sk_ text form of the key.
func (k SecretKey) Encode() string { return crypto.EncodeCheck(SecretKeyPrefix, k[:]) }

// String never reveals key material, so a SecretKey is safe to pass to a logger.
func (k SecretKey) String() string { return SecretKeyPrefix + "_[REDACTED]" }

// PublicKey derives the matching Ed25519 public key.
func (k SecretKey) PublicKey() PublicKey { return PublicKey(crypto.PublicKeyFromSeed(k)) }

// Wipe zeroes the key in place.
func (k *SecretKey) Wipe() { crypto.Wipe(k[:]) }

// PublicKey is an Ed25519 public key.
type PublicKey [32]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Address returns the ak_ text form of the key.
func (p PublicKey) Address() string { return crypto.EncodeCheck(AddressPrefix, p[:]) }

// String returns the address.
func (p PublicKey) String() string { return p.Address() }

// ParseSecretKey decodes an sk_ encoded Ed25519 seed.
func ParseSecretKey(s string) (SecretKey, error) {
	var k SecretKey
	raw, err := crypto.DecodeCheck(SecretKeyPrefix, s)
	if err != nil {
		return k, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	defer crypto.Wipe(raw)
	if len(raw) != len(k) {
		return k, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrInvalidKeyEncoding, len(k), len(raw))
	}
	copy(k[:], raw)
	return k, nil
}

// ParseAddress decodes an ak_ encoded Ed25519 public key.
func ParseAddress(s string) (PublicKey, error) {
	var p PublicKey
	raw, err := crypto.DecodeCheck(AddressPrefix, s)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	if len(raw) != len(p) {
		return p, fmt.Errorf("%w: address must be %d bytes, got %d", ErrInvalidKeyEncoding, len(p), len(raw))
	}
	copy(p[:], raw)
	return p, nil
}
