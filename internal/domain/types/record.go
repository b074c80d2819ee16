package types

import (
	"encoding/hex"
	"encoding/json"
)

// Identifiers written into every record this module produces.
const (
	RecordVersion                = 1
	SecretTypeEd25519            = "ed25519"
	SymmetricAlgXSalsa20Poly1305 = "xsalsa20-poly1305"
	KDFArgon2id                  = "argon2id"
)

// Record is one password-encrypted secret key as persisted on disk.
//
// The JSON field names are the interoperability contract with other keystore
// implementations and must not change.
type Record struct {
	Name      string       `json:"name"`
	Version   int          `json:"version"`
	PublicKey string       `json:"public_key"`
	ID        string       `json:"id"`
	Crypto    RecordCrypto `json:"crypto"`
}

// RecordCrypto names the algorithms and carries the parameters needed to
// re-derive the key and open the ciphertext.
type RecordCrypto struct {
	SecretType   string       `json:"secret_type"`
	SymmetricAlg string       `json:"symmetric_alg"`
	KDF          string       `json:"kdf"`
	KDFParams    KDFParams    `json:"kdf_params"`
	Ciphertext   HexBytes     `json:"ciphertext"`
	CipherParams CipherParams `json:"cipher_params"`
}

// KDFParams holds the Argon2id costs and salt used for this record.
type KDFParams struct {
	MemLimitKiB uint32   `json:"memlimit_kib"`
	OpsLimit    uint32   `json:"opslimit"`
	Parallelism uint8    `json:"parallelism"`
	Salt        HexBytes `json:"salt"`
}

// CipherParams holds the per-record nonce.
type CipherParams struct {
	Nonce HexBytes `json:"nonce"`
}

// HexBytes marshals as a lowercase hex string.
type HexBytes []byte

// MarshalJSON encodes b as a hex string.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

// UnmarshalJSON mirrors MarshalJSON. Both cases of hex digits are accepted.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// Clone returns a deep copy so callers can mutate one record without
// touching another.
func (r Record) Clone() Record {
	out := r
	out.Crypto.Ciphertext = append(HexBytes(nil), r.Crypto.Ciphertext...)
	out.Crypto.KDFParams.Salt = append(HexBytes(nil), r.Crypto.KDFParams.Salt...)
	out.Crypto.CipherParams.Nonce = append(HexBytes(nil), r.Crypto.CipherParams.Nonce...)
	return out
}
