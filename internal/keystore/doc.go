// Package keystore converts between a password-protected keystore record and
// the sk_ encoded Ed25519 secret key it wraps.
//
// Dump stretches the password with Argon2id under a fresh random salt and
// seals the 32-byte seed with XSalsa20-Poly1305 under a fresh random nonce.
// Recover checks the record's version and algorithm identifiers before doing
// any expensive work, re-derives the key from the stored salt and costs, and
// opens the ciphertext. A failed open is always reported as
// ErrInvalidPassword: the cipher cannot tell a wrong password from a damaged
// file, and neither can the caller.
//
// # Notes
//
// Records are values. Nothing here touches the file system; see
// internal/store for persistence. Each Recover performs exactly one key
// derivation, which takes hundreds of milliseconds with default costs, so
// callers should cache the result (see internal/account) rather than call it
// in a loop.
package keystore
