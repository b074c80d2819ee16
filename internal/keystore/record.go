package keystore

import (
	"encoding/json"
	"fmt"

	"keyseal/internal/crypto"
	"keyseal/internal/domain/types"
)

// sealedBytes is the exact ciphertext length for a sealed Ed25519 seed.
const sealedBytes = crypto.SeedBytes + crypto.Overhead

// Parse decodes a keystore record from its JSON form.
//
// The version is checked before the rest of the document is interpreted, so a
// future format is reported as ErrUnsupportedVersion rather than as a
// confusing shape error.
func Parse(data []byte) (types.Record, error) {
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return types.Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if probe.Version == nil {
		return types.Record{}, fmt.Errorf("%w: missing version", ErrMalformedRecord)
	}
	if *probe.Version != types.RecordVersion {
		return types.Record{}, fmt.Errorf("%w %d", ErrUnsupportedVersion, *probe.Version)
	}

	var rec types.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := checkShape(rec); err != nil {
		return types.Record{}, err
	}
	return rec, nil
}

// Marshal encodes rec as indented JSON.
func Marshal(rec types.Record) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}

// checkVersion and checkAlgorithms are cheap and run before any key derivation.
func checkVersion(rec types.Record) error {
	if rec.Version != types.RecordVersion {
		return fmt.Errorf("%w %d", ErrUnsupportedVersion, rec.Version)
	}
	return nil
}

func checkAlgorithms(rec types.Record) error {
	c := rec.Crypto
	if c.KDF != types.KDFArgon2id {
		return fmt.Errorf("%w: kdf %q", ErrUnsupportedAlgorithm, c.KDF)
	}
	if c.SymmetricAlg != types.SymmetricAlgXSalsa20Poly1305 {
		return fmt.Errorf("%w: symmetric_alg %q", ErrUnsupportedAlgorithm, c.SymmetricAlg)
	}
	if c.SecretType != types.SecretTypeEd25519 {
		return fmt.Errorf("%w: secret_type %q", ErrUnsupportedAlgorithm, c.SecretType)
	}
	return nil
}

func checkShape(rec types.Record) error {
	c := rec.Crypto
	switch {
	case len(c.KDFParams.Salt) != crypto.SaltBytes:
		return fmt.Errorf("%w: salt must be %d bytes, got %d", ErrMalformedRecord, crypto.SaltBytes, len(c.KDFParams.Salt))
	case len(c.CipherParams.Nonce) != crypto.NonceBytes:
		return fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedRecord, crypto.NonceBytes, len(c.CipherParams.Nonce))
	case len(c.Ciphertext) != sealedBytes:
		return fmt.Errorf("%w: ciphertext must be %d bytes, got %d", ErrMalformedRecord, sealedBytes, len(c.Ciphertext))
	}
	if err := kdfParams(rec).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if _, err := types.ParseAddress(rec.PublicKey); err != nil {
		return fmt.Errorf("%w: public_key: %v", ErrMalformedRecord, err)
	}
	return nil
}

func kdfParams(rec types.Record) crypto.KDFParams {
	p := rec.Crypto.KDFParams
	return crypto.KDFParams{
		MemoryKiB:   p.MemLimitKiB,
		TimeCost:    p.OpsLimit,
		Parallelism: p.Parallelism,
	}
}
