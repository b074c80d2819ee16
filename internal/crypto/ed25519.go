package crypto

import (
	"crypto/ed25519"
	"io"
)

// SeedBytes is the length of an Ed25519 private seed.
const SeedBytes = ed25519.SeedSize

// GenerateSeed returns a fresh Ed25519 seed read from r.
func GenerateSeed(r io.Reader) (seed [SeedBytes]byte, err error) {
	_, err = io.ReadFull(r, seed[:])
	return seed, err
}

// PublicKeyFromSeed derives the Ed25519 public key for seed.
func PublicKeyFromSeed(seed [SeedBytes]byte) (pub [ed25519.PublicKeySize]byte) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	defer Wipe(priv)
	copy(pub[:], priv.Public().(ed25519.PublicKey))
	return pub
}

// SignEd25519 signs msg with the key expanded from seed and returns the signature.
func SignEd25519(seed [SeedBytes]byte, msg []byte) []byte {
	priv := ed25519.NewKeyFromSeed(seed[:])
	defer Wipe(priv)
	return ed25519.Sign(priv, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub [ed25519.PublicKeySize]byte, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
