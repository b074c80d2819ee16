// Package mnemonic renders an Ed25519 seed as a 24-word BIP-39 phrase for
// paper backup, and turns such a phrase back into an sk_ key.
//
// The seed is used directly as BIP-39 entropy; no PBKDF2 stretching or HD
// derivation is involved, so the words encode exactly the 32 seed bytes.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"keyseal/internal/crypto"
	"keyseal/internal/domain/types"
)

// ErrInvalidMnemonic is returned for phrases with unknown words, a bad
// checksum, or a length other than 24 words.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// FromSecretKey returns the 24-word phrase for an sk_ encoded key.
func FromSecretKey(secretKey string) (string, error) {
	sk, err := types.ParseSecretKey(secretKey)
	if err != nil {
		return "", err
	}
	defer sk.Wipe()
	return bip39.NewMnemonic(sk.Slice())
}

// ToSecretKey returns the sk_ encoded key for a 24-word phrase.
func ToSecretKey(words string) (string, error) {
	phrase := Normalize(words)
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	defer crypto.Wipe(entropy)
	if len(entropy) != crypto.SeedBytes {
		return "", fmt.Errorf("%w: want 24 words, got %d", ErrInvalidMnemonic, len(strings.Fields(phrase)))
	}

	var sk types.SecretKey
	copy(sk[:], entropy)
	defer sk.Wipe()
	return sk.Encode(), nil
}

// Normalize lowercases words and collapses whitespace.
func Normalize(words string) string {
	return strings.Join(strings.Fields(strings.ToLower(words)), " ")
}
