package keystore

import (
	"errors"

	"keyseal/internal/domain/types"
)

var (
	// ErrInvalidKeyFormat is returned by Dump when the secret key is not a
	// well-formed sk_ encoded Ed25519 seed.
	ErrInvalidKeyFormat = errors.New("invalid secret key format")

	// ErrUnsupportedVersion is returned for any record version other than 1.
	ErrUnsupportedVersion = errors.New("unsupported keystore version")

	// ErrUnsupportedAlgorithm is returned when the record names a KDF, cipher or
	// secret type this implementation does not support.
	ErrUnsupportedAlgorithm = errors.New("unsupported keystore algorithm")

	// ErrInvalidPassword is returned when the ciphertext does not verify.
	// It covers both a wrong password and a corrupted or tampered record.
	ErrInvalidPassword = errors.New("invalid password or corrupted keystore")

	// ErrMalformedRecord is returned when fields are missing or have the wrong
	// shape or length.
	ErrMalformedRecord = errors.New("malformed keystore record")

	// ErrPublicKeyMismatch is returned when the record decrypts but its
	// public_key field does not belong to the decrypted secret key.
	ErrPublicKeyMismatch = errors.New("keystore public key does not match secret key")
)

// Result labels reported to the metrics recorder.
const (
	resultOK                   = "ok"
	resultInvalidKeyFormat     = "invalid_key_format"
	resultUnsupportedVersion   = "unsupported_version"
	resultUnsupportedAlgorithm = "unsupported_algorithm"
	resultInvalidPassword      = "invalid_password"
	resultMalformedRecord      = "malformed_record"
	resultPublicKeyMismatch    = "public_key_mismatch"
	resultError                = "error"
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrInvalidKeyFormat), errors.Is(err, types.ErrInvalidKeyEncoding):
		return resultInvalidKeyFormat
	case errors.Is(err, ErrUnsupportedVersion):
		return resultUnsupportedVersion
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return resultUnsupportedAlgorithm
	case errors.Is(err, ErrInvalidPassword):
		return resultInvalidPassword
	case errors.Is(err, ErrMalformedRecord):
		return resultMalformedRecord
	case errors.Is(err, ErrPublicKeyMismatch):
		return resultPublicKeyMismatch
	default:
		return resultError
	}
}
