// Package crypto exposes the minimal primitives used by keyseal.
//
// Contents
//
//   - Argon2id password stretching with explicit cost parameters
//     (DeriveKey, KDFParams, DefaultKDFParams)
//   - XSalsa20-Poly1305 one-shot authenticated encryption (Seal, Open)
//   - Ed25519 public-key derivation, signing and verification from a 32-byte
//     seed (PublicKeyFromSeed, SignEd25519, VerifyEd25519)
//   - Prefixed base58check text encoding for keys (EncodeCheck, DecodeCheck)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Nothing in this package keeps state between calls. Randomness is always
// drawn from an io.Reader supplied by the caller so that record creation can
// be made reproducible in tests; production callers pass crypto/rand.Reader.
package crypto
