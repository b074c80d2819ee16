package crypto

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	NonceBytes = 24
	// Overhead is the Poly1305 tag length appended by Seal.
	Overhead = secretbox.Overhead
)

// ErrAuthFailed is returned by Open when the ciphertext does not verify.
// A wrong key, a wrong nonce and a modified ciphertext are indistinguishable.
var ErrAuthFailed = errors.New("message authentication failed")

// Seal encrypts and authenticates plaintext with XSalsa20-Poly1305.
//
// The result is exactly len(plaintext)+Overhead bytes. The caller must never
// reuse nonce under the same key.
func Seal(key *[KeyBytes]byte, nonce *[NonceBytes]byte, plaintext []byte) []byte {
	return secretbox.Seal(nil, plaintext, nonce, key)
}

// Open verifies and decrypts ciphertext produced by Seal.
func Open(key *[KeyBytes]byte, nonce *[NonceBytes]byte, ciphertext []byte) ([]byte, error) {
	pt, ok := secretbox.Open(nil, ciphertext, nonce, key)
	if !ok {
		return nil, ErrAuthFailed
	}
	return pt, nil
}

// RandomNonce reads a fresh nonce from r.
func RandomNonce(r io.Reader) (*[NonceBytes]byte, error) {
	var nonce [NonceBytes]byte
	if _, err := io.ReadFull(r, nonce[:]); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return &nonce, nil
}
